package dynarray

import (
	"slices"
	"sync"

	"github.com/fxamacker/cbor/v2"
)

// CBORCodec holds the encoding modes used for arrays. Encoding is core
// deterministic, so equal contents always give identical bytes.
type CBORCodec struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

func NewCBORCodec() (CBORCodec, error) {
	enc, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return CBORCodec{}, err
	}
	dec, err := cbor.DecOptions{}.DecMode()
	if err != nil {
		return CBORCodec{}, err
	}
	return CBORCodec{enc: enc, dec: dec}, nil
}

func (c CBORCodec) Marshal(v any) ([]byte, error) {
	return c.enc.Marshal(v)
}

func (c CBORCodec) Unmarshal(data []byte, v any) error {
	return c.dec.Unmarshal(data, v)
}

var defaultCodec = sync.OnceValues(NewCBORCodec)

// MarshalCBOR encodes the contents as a CBOR array. An empty array encodes
// as an empty CBOR array, never as null.
func (a *DynamicArray[T]) MarshalCBOR() ([]byte, error) {
	codec, err := defaultCodec()
	if err != nil {
		return nil, err
	}
	items := a.items
	if items == nil {
		items = []T{}
	}
	return codec.Marshal(items)
}

// UnmarshalCBOR replaces the contents with the decoded CBOR array. On error
// the array is left unchanged.
func (a *DynamicArray[T]) UnmarshalCBOR(data []byte) error {
	codec, err := defaultCodec()
	if err != nil {
		return err
	}
	var items []T
	if err := codec.Unmarshal(data, &items); err != nil {
		return err
	}
	if items == nil {
		items = []T{}
	}
	a.items = slices.Clip(items)
	return nil
}
