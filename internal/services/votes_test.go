package services

import (
	"satlink/internal/models"
	"testing"
)

func TestVoteTransition(t *testing.T) {
	const rep = 4

	cases := []struct {
		name       string
		existing   int
		value      int
		votesDelta int
		upDelta    float64
		downDelta  float64
		flip       bool
		noop       bool
	}{
		{"first upvote", 0, models.VoteUp, 1, rep, 0, false, false},
		{"first downvote", 0, models.VoteDown, -1, 0, rep, false, false},
		{"flip down to up", models.VoteDown, models.VoteUp, 2, rep, -rep, true, false},
		{"flip up to down", models.VoteUp, models.VoteDown, -2, -rep, rep, true, false},
		{"repeat upvote is noop", models.VoteUp, models.VoteUp, 0, 0, 0, false, true},
		{"repeat downvote is noop", models.VoteDown, models.VoteDown, 0, 0, 0, false, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := voteTransition(tc.existing, tc.value, rep)
			if got.noop != tc.noop {
				t.Fatalf("noop = %v, want %v", got.noop, tc.noop)
			}
			if got.noop {
				return
			}
			if got.votesDelta != tc.votesDelta {
				t.Errorf("votesDelta = %d, want %d", got.votesDelta, tc.votesDelta)
			}
			if got.upDelta != tc.upDelta {
				t.Errorf("upDelta = %v, want %v", got.upDelta, tc.upDelta)
			}
			if got.downDelta != tc.downDelta {
				t.Errorf("downDelta = %v, want %v", got.downDelta, tc.downDelta)
			}
			if got.flip != tc.flip {
				t.Errorf("flip = %v, want %v", got.flip, tc.flip)
			}
		})
	}
}

// 先赞后踩：改票后这个用户只留在踩集合里，totalVotes 相对赞完之后
// 正好变化 2（票行被改写而不是新建一行）。
func TestVoteFlipDeltas(t *testing.T) {
	up := voteTransition(0, models.VoteUp, 3)
	flip := voteTransition(models.VoteUp, models.VoteDown, 3)

	if !flip.flip {
		t.Fatal("expected a flip transition")
	}
	if up.votesDelta != 1 || flip.votesDelta != -2 {
		t.Errorf("deltas = %d then %d, want 1 then -2", up.votesDelta, flip.votesDelta)
	}

	// 权重净效应：赞的 +3 被 -3 抵消，踩记 +3
	if up.upDelta+flip.upDelta != 0 {
		t.Errorf("up weight should cancel out, got %v", up.upDelta+flip.upDelta)
	}
	if flip.downDelta != 3 {
		t.Errorf("down weight = %v, want 3", flip.downDelta)
	}
}
