package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		suffix string
		want   string
	}{
		{"plain text", "Leather Shoes", "", "leather-shoes"},
		{"with suffix", "Leather Shoes", "k3x", "leather-shoes-k3x"},
		{"unicode text", "کیف و کفش", "abc", "kyf-w-kfsh-abc"},
		{"empty base keeps suffix", "", "k3x", "k3x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateSlug(tt.text, tt.suffix))
		})
	}
}

func TestGenerateUniqueSlug(t *testing.T) {
	now := time.UnixMilli(1700000000000)

	got := GenerateUniqueSlug("My Store", now)
	assert.True(t, ValidSlugToken(got), "generated slug must be a valid token: %s", got)

	again := GenerateUniqueSlug("My Store", now.Add(time.Second))
	assert.NotEqual(t, got, again, "different instants must produce different slugs")
}

func TestValidSlugToken(t *testing.T) {
	valid := []string{"shoes", "mens-fashion", "a1-b2-c3"}
	for _, s := range valid {
		assert.True(t, ValidSlugToken(s), s)
	}

	invalid := []string{"", "Shoes", "double--hyphen", "-leading", "trailing-", "under_score", "space here"}
	for _, s := range invalid {
		assert.False(t, ValidSlugToken(s), s)
	}
}
