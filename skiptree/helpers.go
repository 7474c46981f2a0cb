package skiptree

import (
	"sort"

	"github.com/intellect4all/invidx/row"
)

func rowsEqual[T row.Row[T]](a, b T) bool {
	return !a.Less(b) && !b.Less(a)
}

// lowerBoundRows returns the index of the first entry in rows that is not
// less than query (std::lower_bound with operator<), or len(rows) if
// every entry is less than query.
func lowerBoundRows[T row.Row[T]](rows []T, query T) int {
	return sort.Search(len(rows), func(i int) bool {
		return !rows[i].Less(query)
	})
}
