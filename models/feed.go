package models

// FeedEntry is one ranked feed item: a visible reel plus its distance from the
// requester to the owning merchant.
type FeedEntry struct {
	Reel
	DistanceKm float64 `json:"distanceKm"`
}

// FeedPage is a paginated slice of the ranked feed.
type FeedPage struct {
	Entries []FeedEntry `json:"entries"`
	Meta    PageMeta    `json:"meta"`
}

// PageMeta describes the pagination envelope returned with every list read.
type PageMeta struct {
	CurrentPage int `json:"currentPage"`
	LastPage    int `json:"lastPage"`
	PerPage     int `json:"perPage"`
	Total       int `json:"total"`
}
