package utils

import (
	"math"
	"strconv"
)

// Paginate is the pagination block of the response envelope.
type Paginate struct {
	Total       int64 `json:"total"`
	PerPage     int   `json:"per_page"`
	CurrentPage int   `json:"current_page"`
	LastPage    int   `json:"last_page"`
}

// NewPaginate computes envelope pagination metadata.
// last_page = ceil(total/limit), never below 1.
func NewPaginate(total int64, page, limit int) Paginate {
	lastPage := int(math.Ceil(float64(total) / float64(limit)))
	if lastPage == 0 {
		lastPage = 1
	}
	return Paginate{
		Total:       total,
		PerPage:     limit,
		CurrentPage: page,
		LastPage:    lastPage,
	}
}

// ParsePageLimit parses and normalizes page/limit query values.
// Page is 1-based; limit defaults to 10 and is capped at 100.
func ParsePageLimit(pageStr, limitStr string) (int, int) {
	page := 1
	limit := 10

	if pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}
	if limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 100 {
			limit = l
		}
	}
	return page, limit
}

// CalculateOffset calculates the offset for database queries
func CalculateOffset(page, limit int) int {
	return (page - 1) * limit
}
