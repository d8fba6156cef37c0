package feed

import "lokapasar/models"

// IsVisible is the moderation gate consulted by the feed and by every public
// read path: a reel is visible only while it is published, not blocked itself,
// and its merchant is not blocked.
func IsVisible(reel models.Reel, merchant models.Merchant) bool {
	return reel.Status == models.ReelStatusPublished &&
		!reel.Blocked &&
		!merchant.Blocked
}
