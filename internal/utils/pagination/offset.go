package pagination

const (
	// DefaultLimit is the page size used when none is requested.
	DefaultLimit = 20
	// MaxLimit caps the page size a caller may request.
	MaxLimit = 100
)

// Normalize clamps a requested limit and offset into the accepted range.
// A non-positive limit falls back to DefaultLimit; a negative offset becomes zero.
func Normalize(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
