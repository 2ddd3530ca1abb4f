package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tishe/storefront/internal/catalog"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "simple name", value: "Rings", want: "rings"},
		{name: "spaces become dashes", value: "Wedding Rings", want: "wedding-rings"},
		{name: "punctuation collapses", value: "Gold & Silver!!", want: "gold-silver"},
		{name: "leading and trailing trimmed", value: "  --Earrings--  ", want: "earrings"},
		{name: "already a slug", value: "pearl-necklaces", want: "pearl-necklaces"},
		{name: "empty", value: "", want: ""},
		{name: "only punctuation", value: "?!*", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, catalog.Slugify(tt.value))
		})
	}
}
