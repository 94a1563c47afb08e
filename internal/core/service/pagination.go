package service

import (
	"math"

	"github.com/inkpress/blog-api/internal/core/domain"
)

// DefaultPageLimit is used when no positive limit is configured.
const DefaultPageLimit = 10

// Paginator turns zero-based page numbers into store windows of a fixed size.
type Paginator struct {
	limit int
}

func NewPaginator(limit int) Paginator {
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	return Paginator{limit: limit}
}

// Limit returns the page size. The zero Paginator uses DefaultPageLimit.
func (p Paginator) Limit() int {
	if p.limit <= 0 {
		return DefaultPageLimit
	}
	return p.limit
}

// Window returns the skip/take pair for page. Pages past the end are valid
// and simply yield an empty result from the store. A page whose offset does
// not fit in an int64 is clamped to math.MaxInt64, which matches nothing.
func (p Paginator) Window(page int) (domain.PageWindow, error) {
	if page < 0 {
		return domain.PageWindow{}, domain.ErrInvalidPage
	}
	limit := int64(p.Limit())
	skip := int64(math.MaxInt64)
	if int64(page) <= math.MaxInt64/limit {
		skip = int64(page) * limit
	}
	return domain.PageWindow{Skip: skip, Limit: limit}, nil
}
