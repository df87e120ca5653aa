package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizedClampsValues(t *testing.T) {
	tests := []struct {
		name string
		in   PaginationOptions
		want PaginationOptions
	}{
		{"zero values", PaginationOptions{}, PaginationOptions{Page: 1, PageSize: 20}},
		{"negative page", PaginationOptions{Page: -3, PageSize: 10}, PaginationOptions{Page: 1, PageSize: 10}},
		{"oversized page size", PaginationOptions{Page: 2, PageSize: 500}, PaginationOptions{Page: 2, PageSize: 20}},
		{"valid passes through", PaginationOptions{Page: 4, PageSize: 25}, PaginationOptions{Page: 4, PageSize: 25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalized())
		})
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, PaginationOptions{Page: 1, PageSize: 10}.Offset())
	assert.Equal(t, 30, PaginationOptions{Page: 4, PageSize: 10}.Offset())
}

func TestNewPageCeilsPages(t *testing.T) {
	assert.Equal(t, 0, NewPage(1, 10, 0).Pages)
	assert.Equal(t, 1, NewPage(1, 10, 10).Pages)
	assert.Equal(t, 2, NewPage(1, 10, 11).Pages)
	assert.Equal(t, 5, NewPage(1, 20, 99).Pages)
}

func TestNewPaginatedNeverReturnsNilItems(t *testing.T) {
	p := NewPaginated[string](nil, PaginationOptions{Page: 9, PageSize: 10}, 5)

	assert.NotNil(t, p.Items)
	assert.Empty(t, p.Items)
	assert.True(t, p.Empty)
	assert.Equal(t, 9, p.Page.Number)
	assert.Equal(t, 1, p.Page.Pages)
}
