package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoyaltyPointsEarned(t *testing.T) {
	tests := []struct {
		name     string
		total    float64
		divisor  int
		expected int
	}{
		{"whole division", 530, 10, 53},
		{"fraction floors", 539.99, 10, 53},
		{"below one point", 9.99, 10, 0},
		{"exact divisor", 10, 10, 1},
		{"zero total", 0, 10, 0},
		{"negative total", -50, 10, 0},
		{"custom divisor", 530, 25, 21},
		{"zero divisor falls back to default", 530, 0, 53},
		{"negative divisor falls back to default", 530, -5, 53},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, loyaltyPointsEarned(tt.total, tt.divisor))
		})
	}
}
