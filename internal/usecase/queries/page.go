package queries

import (
	"math"

	"lendshare/internal/pkg/errs"
)

// UnboundedSize stands in for "no size given": the whole result set fits in
// page zero.
const UnboundedSize = int32(math.MaxInt32)

// PageWindow is a page-aligned slice of a listing. Index is from/size with
// integer division, so a from that is not a multiple of size selects the page
// containing that offset rather than the exact row. Callers rely on this, do
// not replace it with a plain row offset.
type PageWindow struct {
	Index int32
	Size  int32
}

func NewPageWindow(from, size *int32) (PageWindow, error) {
	f := int32(0)
	if from != nil {
		if *from < 0 {
			return PageWindow{}, errs.ErrInvalidPagination
		}
		f = *from
	}

	s := UnboundedSize
	if size != nil {
		if *size <= 0 {
			return PageWindow{}, errs.ErrInvalidPagination
		}
		s = *size
	}

	return PageWindow{Index: f / s, Size: s}, nil
}

func (w PageWindow) Limit() int32 {
	return w.Size
}

func (w PageWindow) Offset() int32 {
	return w.Index * w.Size
}
