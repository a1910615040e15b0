package payments

import (
	"testing"
	"time"

	"gj-schools/app/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePaymentRequestValidation(t *testing.T) {
	valid := CreatePaymentRequest{FeeID: "INV12345678", Amount: 200.00}
	require.NoError(t, helpers.Validate.Struct(valid))

	tests := []struct {
		name string
		req  CreatePaymentRequest
	}{
		{"missing fee id", CreatePaymentRequest{Amount: 100}},
		{"zero amount", CreatePaymentRequest{FeeID: "INV12345678", Amount: 0}},
		{"negative amount", CreatePaymentRequest{FeeID: "INV12345678", Amount: -50}},
		{"amount above cap", CreatePaymentRequest{FeeID: "INV12345678", Amount: 1000000}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := helpers.Validate.Struct(tt.req)
			assert.Error(t, err)
			assert.NotEmpty(t, helpers.ValidationMessage(err))
		})
	}
}

func TestParseDate(t *testing.T) {
	d, err := parseDate("2025-03-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC), d)

	d, err = parseDate("2025-03-15T10:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 10, d.Hour())

	_, err = parseDate("15/03/2025")
	assert.Error(t, err)
}
