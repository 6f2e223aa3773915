package services

import (
	"math"
	"testing"
)

func TestNextReputation(t *testing.T) {
	cases := []struct {
		name       string
		reputation float64
		upWeight   float64
		downWeight float64
		expected   float64
	}{
		{"fresh weighted votes", 10, 5, 2, 0.998*10 + 0.9*(5-2)}, // 12.68
		{"decay only", 100, 0, 0, 99.8},
		{"below floor without votes drops to zero", 0.005, 0, 0, 0},
		{"below floor but active keeps decaying", 0.005, 3, 0, 0.998*0.005 + 0.9*3},
		{"net downvotes can go negative", 1, 0, 5, 0.998*1 - 0.9*5},
		{"exactly zero stays zero", 0, 0, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NextReputation(tc.reputation, tc.upWeight, tc.downWeight)
			if math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("NextReputation(%v, %v, %v) = %v, want %v",
					tc.reputation, tc.upWeight, tc.downWeight, got, tc.expected)
			}
		})
	}
}

func TestNextReputationRoundTrip(t *testing.T) {
	// 10 声望 + 5 加权赞 - 2 加权踩 → 12.68
	got := NextReputation(10, 5, 2)
	if math.Abs(got-12.68) > 1e-9 {
		t.Errorf("Expected 12.68, got %v", got)
	}
}
