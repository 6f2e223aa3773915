package services

import (
	"satlink/internal/models"
	"testing"
)

func TestFlushMessage(t *testing.T) {
	cases := []struct {
		count    int
		ntype    models.NotificationType
		expected string
	}{
		{7, models.NotificationTypeUpvote, "7 upvote on your post."},
		{1, models.NotificationTypeComment, "1 comment on your post."},
		{42, models.NotificationTypeTip, "42 tip on your post."},
		{3, models.NotificationTypeDownvote, "3 downvote on your post."},
	}

	for _, tc := range cases {
		if got := flushMessage(tc.count, tc.ntype); got != tc.expected {
			t.Errorf("flushMessage(%d, %s) = %q, want %q", tc.count, tc.ntype, got, tc.expected)
		}
	}
}
