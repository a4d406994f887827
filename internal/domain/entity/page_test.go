package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageable_Offset(t *testing.T) {
	tests := []struct {
		name     string
		pageable Pageable
		want     int
	}{
		{name: "first page", pageable: Pageable{PageNumber: 0, PageSize: 10}, want: 0},
		{name: "third page", pageable: Pageable{PageNumber: 2, PageSize: 10}, want: 20},
		{name: "negative page", pageable: Pageable{PageNumber: -3, PageSize: 10}, want: 0},
		{name: "zero size", pageable: Pageable{PageNumber: 4, PageSize: 0}, want: 0},
		{name: "last exact page", pageable: Pageable{PageNumber: math.MaxInt / 10, PageSize: 10}, want: (math.MaxInt / 10) * 10},
		{name: "overflow saturates", pageable: Pageable{PageNumber: math.MaxInt / 5, PageSize: 10}, want: math.MaxInt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.pageable.Offset())
		})
	}
}
