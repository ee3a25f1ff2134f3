package httputil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateStatusCode(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected bool
	}{
		{"valid 100", "100", true},
		{"valid 200", "200", true},
		{"synthetic 480", "480", true},
		{"valid 599", "599", true},

		{"invalid 099", "099", false},
		{"invalid 600", "600", false},
		{"default keyword", "default", false},
		{"wildcard", "2XX", false},
		{"too short", "20", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidateStatusCode(tt.code))
		})
	}
}

func TestIsSuccessStatus(t *testing.T) {
	assert.True(t, IsSuccessStatus("200"))
	assert.True(t, IsSuccessStatus("204"))
	assert.False(t, IsSuccessStatus("301"))
	assert.False(t, IsSuccessStatus("480"))
	assert.False(t, IsSuccessStatus("2XX"))
}

func TestNormalizeMethod(t *testing.T) {
	assert.Equal(t, MethodPost, NormalizeMethod(" POST "))
	assert.Equal(t, MethodGet, NormalizeMethod("get"))
}

func TestMethodsOrder(t *testing.T) {
	assert.Len(t, Methods, 8)
	assert.Equal(t, MethodGet, Methods[0])
	assert.Equal(t, MethodTrace, Methods[len(Methods)-1])
}
