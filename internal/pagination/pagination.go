// Package pagination derives page counts and visible item ranges from the
// list dimensions the book service reports. All functions are pure; the
// browser model owns the actual page/limit state.
package pagination

// Limits are the selectable page sizes, in cycling order.
var Limits = []int{5, 10, 25, 50}

// DefaultLimit is used when the configured page size is not one of Limits.
const DefaultLimit = 10

// TotalPages returns ceil(total/limit), or 0 for an empty collection.
func TotalPages(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// Range returns the 1-based positions of the first and last item visible on
// the given page. Both are 0 when the collection is empty.
func Range(page, limit, total int) (start, end int) {
	if total <= 0 {
		return 0, 0
	}
	start = (page-1)*limit + 1
	end = page * limit
	if end > total {
		end = total
	}
	return start, end
}

// CanPrev reports whether a previous page exists.
func CanPrev(page int) bool {
	return page > 1
}

// CanNext reports whether a further page exists.
func CanNext(page, limit, total int) bool {
	return page < TotalPages(total, limit)
}

// ValidLimit reports whether n is one of the selectable page sizes.
func ValidLimit(n int) bool {
	for _, l := range Limits {
		if l == n {
			return true
		}
	}
	return false
}

// NextLimit returns the page size after n in the cycle, wrapping around.
// An unknown n restarts the cycle at the first entry.
func NextLimit(n int) int {
	for i, l := range Limits {
		if l == n {
			return Limits[(i+1)%len(Limits)]
		}
	}
	return Limits[0]
}
