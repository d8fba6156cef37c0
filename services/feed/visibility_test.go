package feed

import (
	"testing"

	"lokapasar/models"

	"github.com/stretchr/testify/assert"
)

func TestIsVisible(t *testing.T) {
	cases := []struct {
		name            string
		status          string
		reelBlocked     bool
		merchantBlocked bool
		want            bool
	}{
		{"published and unblocked", models.ReelStatusPublished, false, false, true},
		{"draft", models.ReelStatusDraft, false, false, false},
		{"in review", models.ReelStatusInReview, false, false, false},
		{"reel blocked", models.ReelStatusPublished, true, false, false},
		{"merchant blocked", models.ReelStatusPublished, false, true, false},
		{"both blocked", models.ReelStatusPublished, true, true, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reel := models.Reel{Status: tc.status, Blocked: tc.reelBlocked}
			merchant := models.Merchant{Blocked: tc.merchantBlocked}
			assert.Equal(t, tc.want, IsVisible(reel, merchant))
		})
	}
}
