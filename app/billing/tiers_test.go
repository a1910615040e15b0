package billing_test

import (
	"testing"
	"time"

	"gj-schools/app/billing"

	"github.com/stretchr/testify/assert"
)

func TestTierAmount(t *testing.T) {
	tests := []struct {
		class string
		want  string
	}{
		{"Grade 9A", "2000.00"},
		{"Grade 9B", "2000.00"},
		{"Grade 8A", "1500.00"},
		{"Grade 7C", "1200.00"},
		{"Grade 6B", "1200.00"},
		{"Grade 5A", "450.00"},
		{"Kindergarten", "450.00"},
		{"", "450.00"},
	}
	for _, tt := range tests {
		got := billing.TierAmount(tt.class)
		assert.Equal(t, tt.want, got.StringFixed(2), "class %q", tt.class)
	}
}

func TestTermDueDate(t *testing.T) {
	enrolled := time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, time.April, 15, 10, 0, 0, 0, time.UTC), billing.TermDueDate(enrolled))
}
