package entity

import (
	"math"
	"strings"
)

// Default page descriptor used when a search carries none.
const (
	DefaultPageNumber = 0
	DefaultPageSize   = 10
)

// SortDirection orders a sort property ascending or descending.
type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

// ParseSortDirection accepts asc/desc in any case; anything else is ascending.
func ParseSortDirection(value string) SortDirection {
	if strings.EqualFold(strings.TrimSpace(value), "desc") {
		return SortDesc
	}

	return SortAsc
}

// SortOrder sorts by one attribute path.
type SortOrder struct {
	Property  string
	Direction SortDirection
}

// Pageable selects one page of a result set.
type Pageable struct {
	PageNumber int
	PageSize   int
	Sort       []SortOrder
}

// DefaultPageable is page 0 of size 10, unsorted.
func DefaultPageable() Pageable {
	return Pageable{PageNumber: DefaultPageNumber, PageSize: DefaultPageSize}
}

// Offset is the index of the first element of the page. It saturates at
// math.MaxInt instead of wrapping, and is never negative.
func (p Pageable) Offset() int {
	if p.PageNumber <= 0 || p.PageSize <= 0 {
		return 0
	}
	if p.PageNumber > math.MaxInt/p.PageSize {
		return math.MaxInt
	}

	return p.PageNumber * p.PageSize
}

// Page is one slice of a larger result set plus the size of the whole set.
type Page[T any] struct {
	Content       []T
	PageNumber    int
	PageSize      int
	TotalElements int64
	TotalPages    int
}

// NewPage assembles a page and derives its page count.
func NewPage[T any](content []T, pageable Pageable, total int64) *Page[T] {
	if content == nil {
		content = []T{}
	}

	totalPages := 0
	if pageable.PageSize > 0 {
		totalPages = int((total + int64(pageable.PageSize) - 1) / int64(pageable.PageSize))
	}

	return &Page[T]{
		Content:       content,
		PageNumber:    pageable.PageNumber,
		PageSize:      pageable.PageSize,
		TotalElements: total,
		TotalPages:    totalPages,
	}
}
