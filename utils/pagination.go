package utils

import (
	"lokapasar/models"
)

// Paginate slices an already-ordered result set. Page is 1-based; perPage is
// clamped to [1, maxPerPage]. An out-of-range page yields an empty slice with
// accurate meta, never an index error. LastPage is max(1, ceil(total/perPage))
// so an empty result set still reports page 1 as its last page.
func Paginate[T any](items []T, page, perPage, maxPerPage int) ([]T, models.PageMeta) {
	if page < 1 {
		page = 1
	}
	if maxPerPage < 1 {
		maxPerPage = 1
	}
	if perPage < 1 {
		perPage = 1
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	total := len(items)
	lastPage := (total + perPage - 1) / perPage
	if lastPage < 1 {
		lastPage = 1
	}

	meta := models.PageMeta{
		CurrentPage: page,
		LastPage:    lastPage,
		PerPage:     perPage,
		Total:       total,
	}

	start := (page - 1) * perPage
	if start >= total {
		return []T{}, meta
	}
	end := start + perPage
	if end > total {
		end = total
	}
	return items[start:end], meta
}
