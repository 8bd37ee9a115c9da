package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDealersByBrand(t *testing.T) {
	tests := []struct {
		name        string
		brand       string
		expectedIDs []string
	}{
		{name: "lowercase brand", brand: "bmw", expectedIDs: []string{"bmw-1", "bmw-2", "bmw-3"}},
		{name: "exact brand", brand: "BMW", expectedIDs: []string{"bmw-1", "bmw-2", "bmw-3"}},
		{name: "mixed case hyphenated brand", brand: "mercedes-benz", expectedIDs: []string{"mercedes-1", "mercedes-2", "mercedes-3"}},
		{name: "single dealer brand", brand: "Kia", expectedIDs: []string{"kia-1"}},
		{name: "unknown brand", brand: "Lada", expectedIDs: nil},
		{name: "empty brand", brand: "", expectedIDs: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := DealersByBrand(tt.brand)
			var ids []string
			for _, d := range ds {
				ids = append(ids, d.ID)
				assert.True(t, strings.EqualFold(d.Brand, tt.brand))
			}
			assert.Equal(t, tt.expectedIDs, ids)
		})
	}
}

func TestDealersByBrandStableOrder(t *testing.T) {
	first := DealersByBrand("Toyota")
	second := DealersByBrand("toyota")
	require.Len(t, first, 3)
	assert.Equal(t, first, second)
}

func TestDealersReturnsCopy(t *testing.T) {
	ds := Dealers()
	require.NotEmpty(t, ds)
	original := ds[0].Name
	ds[0].Name = "mutated"
	assert.Equal(t, original, Dealers()[0].Name)
}

func TestDealerNames(t *testing.T) {
	names := DealerNames()
	require.Len(t, names, len(Dealers()))
	assert.Contains(t, names, "BMW Авилон")
	assert.Contains(t, names, "Kia Центр Запад")
}
