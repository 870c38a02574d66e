//go:build unit

package queries_test

import (
	"testing"

	"lendshare/internal/pkg/errs"
	"lendshare/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int32p(v int32) *int32 { return &v }

func TestNewPageWindow(t *testing.T) {
	tests := []struct {
		name       string
		from       *int32
		size       *int32
		wantIndex  int32
		wantSize   int32
		wantOffset int32
		errIs      error
	}{
		{name: "defaults", from: nil, size: nil, wantIndex: 0, wantSize: queries.UnboundedSize, wantOffset: 0},
		{name: "aligned window", from: int32p(0), size: int32p(10), wantIndex: 0, wantSize: 10, wantOffset: 0},
		{name: "second page", from: int32p(10), size: int32p(10), wantIndex: 1, wantSize: 10, wantOffset: 10},
		{name: "offset floored to page boundary", from: int32p(5), size: int32p(5), wantIndex: 1, wantSize: 5, wantOffset: 5},
		{name: "offset inside page floors down", from: int32p(7), size: int32p(5), wantIndex: 1, wantSize: 5, wantOffset: 5},
		{name: "from smaller than size", from: int32p(3), size: int32p(10), wantIndex: 0, wantSize: 10, wantOffset: 0},
		{name: "from without size", from: int32p(42), size: nil, wantIndex: 0, wantSize: queries.UnboundedSize, wantOffset: 0},
		{name: "negative from", from: int32p(-1), size: int32p(10), errIs: errs.ErrInvalidPagination},
		{name: "zero size", from: int32p(0), size: int32p(0), errIs: errs.ErrInvalidPagination},
		{name: "negative size", from: int32p(0), size: int32p(-5), errIs: errs.ErrInvalidPagination},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := queries.NewPageWindow(tt.from, tt.size)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantIndex, page.Index)
			assert.Equal(t, tt.wantSize, page.Size)
			assert.Equal(t, tt.wantSize, page.Limit())
			assert.Equal(t, tt.wantOffset, page.Offset())
		})
	}
}
