package translatable

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageRequest_Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   PageRequest
		want PageRequest
	}{
		{"vacío", PageRequest{}, PageRequest{Limit: DefaultPageLimit}},
		{"negativos", PageRequest{Limit: -3, Offset: -1}, PageRequest{Limit: DefaultPageLimit}},
		{"tope", PageRequest{Limit: 1000, Offset: 7}, PageRequest{Limit: MaxPageLimit, Offset: 7}},
		{"válido", PageRequest{Limit: 5, Offset: 10}, PageRequest{Limit: 5, Offset: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalize())
		})
	}
}

func TestNewPage_ItemsNilSeVuelveVacío(t *testing.T) {
	p := NewPage[int](nil, 0, PageRequest{Limit: 10})
	require.NotNil(t, p.Items)
	assert.Empty(t, p.Items)
	assert.False(t, p.HasNext())
}

func TestMapPage(t *testing.T) {
	p := NewPage([]int{1, 2}, 5, PageRequest{Limit: 2, Offset: 2})
	got := MapPage(p, strconv.Itoa)

	assert.Equal(t, []string{"1", "2"}, got.Items)
	assert.Equal(t, 5, got.Total)
	assert.Equal(t, 2, got.Limit)
	assert.Equal(t, 2, got.Offset)
	assert.True(t, got.HasNext())
}
