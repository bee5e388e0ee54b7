// Package paging holds the paginated query result wrapper and its request.
package paging

// Default paging values.
const (
	DefaultCurrent = 1
	DefaultSize    = 10
	MaxSize        = 500
)

// Query selects one page. Current is 1-based.
type Query struct {
	Current int64
	Size    int64
}

// Normalize returns q with defaults applied and Size capped at MaxSize.
func (q Query) Normalize() Query {
	if q.Current < 1 {
		q.Current = DefaultCurrent
	}

	if q.Size < 1 {
		q.Size = DefaultSize
	}

	if q.Size > MaxSize {
		q.Size = MaxSize
	}

	return q
}

// Offset returns the number of rows to skip.
func (q Query) Offset() int64 {
	n := q.Normalize()
	return (n.Current - 1) * n.Size
}

// Page is one page of records plus the metadata of the whole result.
type Page[E any] struct {
	Records []*E  `json:"records"`
	Total   int64 `json:"total"`
	Current int64 `json:"current"`
	Size    int64 `json:"size"`
}

// NewPage creates a page for q.
func NewPage[E any](q Query, records []*E, total int64) *Page[E] {
	n := q.Normalize()

	return &Page[E]{
		Records: records,
		Total:   total,
		Current: n.Current,
		Size:    n.Size,
	}
}

// Pages returns the number of pages in the whole result.
func (p *Page[E]) Pages() int64 {
	if p.Size <= 0 {
		return 0
	}

	return (p.Total + p.Size - 1) / p.Size
}
