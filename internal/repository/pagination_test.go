package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageRequestNormalize(t *testing.T) {
	tests := []struct {
		name      string
		in        PageRequest
		wantPage  int
		wantLimit int
	}{
		{"zero value gets defaults", PageRequest{}, 1, 10},
		{"negative values get defaults", PageRequest{Page: -3, Limit: -1}, 1, 10},
		{"explicit values kept", PageRequest{Page: 4, Limit: 25}, 4, 25},
		{"page only", PageRequest{Page: 2}, 2, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.Normalize()
			assert.Equal(t, tt.wantPage, tt.in.Page)
			assert.Equal(t, tt.wantLimit, tt.in.Limit)
		})
	}
}

func TestPageRequestSkip(t *testing.T) {
	assert.Equal(t, 0, PageRequest{Page: 1, Limit: 10}.Skip())
	assert.Equal(t, 10, PageRequest{Page: 2, Limit: 10}.Skip())
	assert.Equal(t, 75, PageRequest{Page: 4, Limit: 25}.Skip())
}

func TestNewPaginationInfo(t *testing.T) {
	t.Run("middle page", func(t *testing.T) {
		info := NewPaginationInfo(45, 2, 10)

		assert.Equal(t, int64(45), info.Total)
		assert.Equal(t, 5, info.TotalPages)
		assert.True(t, info.HasNext)
		assert.True(t, info.HasPrev)
	})

	t.Run("first page", func(t *testing.T) {
		info := NewPaginationInfo(45, 1, 10)

		assert.True(t, info.HasNext)
		assert.False(t, info.HasPrev)
	})

	t.Run("last page", func(t *testing.T) {
		info := NewPaginationInfo(45, 5, 10)

		assert.False(t, info.HasNext)
		assert.True(t, info.HasPrev)
	})

	t.Run("exact multiple has no partial page", func(t *testing.T) {
		info := NewPaginationInfo(40, 4, 10)

		assert.Equal(t, 4, info.TotalPages)
		assert.False(t, info.HasNext)
	})

	t.Run("empty result", func(t *testing.T) {
		info := NewPaginationInfo(0, 1, 10)

		assert.Equal(t, 0, info.TotalPages)
		assert.False(t, info.HasNext)
		assert.False(t, info.HasPrev)
	})
}
