package services

import (
	"testing"
)

func TestAllowance(t *testing.T) {
	cases := []struct {
		name       string
		reputation int
		invited    int
		expected   int
	}{
		{"reputation 1, nothing sent", 1, 0, 1},
		{"reputation 3, nothing sent", 3, 0, 100},
		{"reputation 3 after one send", 3, 1, 99},
		{"reputation 2 exhausted", 2, 10, 0},
		{"over-invited goes negative", 1, 5, -4},
		{"reputation below 1 clamps to 1", 0, 0, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Allowance(tc.reputation, tc.invited); got != tc.expected {
				t.Errorf("Allowance(%d, %d) = %d, want %d", tc.reputation, tc.invited, got, tc.expected)
			}
		})
	}
}

// 配额随声望重算：同一个用户声望涨一级，可用配额指数级变多
func TestAllowanceTracksReputation(t *testing.T) {
	invited := 9
	if got := Allowance(2, invited); got != 1 {
		t.Errorf("at reputation 2: %d, want 1", got)
	}
	if got := Allowance(3, invited); got != 91 {
		t.Errorf("at reputation 3: %d, want 91", got)
	}
}
