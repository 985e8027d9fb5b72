package services

import (
	"fmt"
	"math"

	"expensetracker_backend/internal/services/dto"
	"expensetracker_backend/pkg/apperrors"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// checkPage computes the total-page count and rejects a requested page beyond
// it. An empty table never triggers the rejection; empty results are reported
// by the handler as the resource's not-found message instead.
func checkPage(count int64, page, limit int) (int, error) {
	totalPages := int(math.Ceil(float64(count) / float64(limit)))
	if page > totalPages && totalPages > 0 {
		return 0, apperrors.NewInvalidPage(totalPages)
	}
	return totalPages, nil
}

func newPagination(page, totalPages, limit int) dto.Pagination {
	return dto.Pagination{
		Page:  fmt.Sprintf("%d out of %d", page, totalPages),
		Limit: limit,
	}
}
