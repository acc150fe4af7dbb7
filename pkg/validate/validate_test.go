package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type request struct {
	UserID   string  `validate:"required,uuid"`
	Currency string  `validate:"required,iso4217"`
	Amount   float64 `validate:"gt=0"`
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name        string
		req         request
		expectError string
	}{
		{
			name: "Valid request",
			req:  request{UserID: "0b8e5a52-2bd6-4f0b-95b3-5a7f1f2a9a11", Currency: "UAH", Amount: 10},
		},
		{
			name:        "Unknown currency",
			req:         request{UserID: "0b8e5a52-2bd6-4f0b-95b3-5a7f1f2a9a11", Currency: "XYZ", Amount: 10},
			expectError: "Currency failed on 'iso4217'",
		},
		{
			name:        "Non positive amount and bad id",
			req:         request{UserID: "42", Currency: "EUR", Amount: 0},
			expectError: "UserID failed on 'uuid'; Amount failed on 'gt'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.req)
			if tt.expectError == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.expectError)
		})
	}
}

func TestIsCurrency(t *testing.T) {
	assert.True(t, IsCurrency("USD"))
	assert.True(t, IsCurrency("UAH"))
	assert.False(t, IsCurrency("usd"))
	assert.False(t, IsCurrency(""))
	assert.False(t, IsCurrency("DOLLARS"))
}

func TestIsUUID(t *testing.T) {
	assert.True(t, IsUUID("0b8e5a52-2bd6-4f0b-95b3-5a7f1f2a9a11"))
	assert.False(t, IsUUID(""))
	assert.False(t, IsUUID("42"))
}
