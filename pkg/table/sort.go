package table

import "sort"

// SortedView returns row positions ordered by state. Rows with an absent
// value sort after rows with a present value in both directions. The sort is
// stable, so equal values keep their input order. rows is not modified.
func SortedView(rows []Row, state SortState) []int {
	view := make([]int, len(rows))
	for i := range view {
		view[i] = i
	}
	if !state.IsSorted() {
		return view
	}

	sort.SliceStable(view, func(i, j int) bool {
		return compareRows(rows[view[i]], rows[view[j]], state) < 0
	})
	return view
}

func compareRows(a, b Row, state SortState) int {
	av, aok := a.Lookup(state.Key)
	bv, bok := b.Lookup(state.Key)

	switch {
	case !aok && !bok:
		return 0
	case !aok:
		return 1
	case !bok:
		return -1
	}

	cmp := CompareValues(av, bv)
	if !state.Ascending {
		cmp = -cmp
	}
	return cmp
}
