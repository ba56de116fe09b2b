package spans

/*

# Reducing index sets to spans

Batch removal from a contiguous buffer is cheapest when it is done one run of
consecutive positions at a time. Given an arbitrary set of indices, possibly
unsorted, possibly with duplicates and possibly containing the NotFound
sentinel, Extract returns the fewest inclusive [First, Last] spans that cover
exactly the distinct valid indices.

For example

	indices: [9, 2, -1, 3, 1, 10, 4, 8, 3]
	sorted:  [1, 2, 3, 3, 4, 8, 9, 10]     (sentinel dropped)
	spans:   [{1 4} {8 10}]

The spans are returned in ascending order of First and are pairwise
disjoint. A caller removing them from a buffer should walk them from the last
to the first, so that removing a higher span never moves the positions of a
lower span that is still to be processed.

The functions here work on plain data and hold no state. They place no
requirement on the caller beyond passing ints.

*/
