package recommender

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectCategory(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Parle-G Biscuit", "snacks"},
		{"Amul Milk 500ml", "dairy"},
		{"Brown Bread", "bakery"},
		{"Basmati Rice 1kg", "grains"},
		{"Sunflower Oil", "cooking"},
		{"Lifebuoy Soap", "hygiene"},
		{"Taj Tea Powder", "beverages"},
		{"Notebook", "other"},
		{"", "other"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, DetectCategory(tc.name), "name %q", tc.name)
	}
}

func TestDetectCategoryCaseInsensitive(t *testing.T) {
	assert.Equal(t, "hygiene", DetectCategory("SOAP BAR"))
	assert.Equal(t, "dairy", DetectCategory("mIlK"))
}

func TestDetectCategoryFirstGroupWins(t *testing.T) {
	// "milk bread" matches both dairy and bakery; dairy is evaluated first
	assert.Equal(t, "dairy", DetectCategory("Milk Bread"))
}
