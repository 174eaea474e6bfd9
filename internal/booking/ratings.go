package booking

import (
	"context"
	"fmt"
	"strings"

	"github.com/Leganyst/barber-booking/internal/model"
	"github.com/Leganyst/barber-booking/internal/paging"
	"github.com/Leganyst/barber-booking/internal/repository"
)

// Summary — средняя оценка услуги с одним знаком после запятой.
type Summary struct {
	Service string  `json:"service"`
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}

func (s *Service) ServiceSummary(ctx context.Context, service string) (Summary, error) {
	totals, err := s.reviews.AverageAndCount(ctx, strings.TrimSpace(service))
	if err != nil {
		return Summary{}, fmt.Errorf("service rating: %w", err)
	}
	return summarize(totals), nil
}

// AllServiceSummaries — по всем услугам с отзывами, по имени услуги.
func (s *Service) AllServiceSummaries(ctx context.Context) ([]Summary, error) {
	rows, err := s.reviews.AverageByService(ctx)
	if err != nil {
		return nil, fmt.Errorf("service ratings: %w", err)
	}
	out := make([]Summary, 0, len(rows))
	for _, r := range rows {
		out = append(out, summarize(r))
	}
	return out, nil
}

// ListServiceReviews — отзывы услуги, новые сначала. page с 1.
func (s *Service) ListServiceReviews(
	ctx context.Context,
	service string,
	page, pageSize int,
) (paging.Page[model.Review], error) {
	service = strings.TrimSpace(service)
	if service == "" {
		return paging.Page[model.Review]{}, invalid("service is required")
	}
	page, pageSize = paging.Normalize(page, pageSize)

	items, total, err := s.reviews.ListByService(ctx, service, pageSize, paging.Offset(page, pageSize))
	if err != nil {
		return paging.Page[model.Review]{}, fmt.Errorf("list reviews: %w", err)
	}
	return paging.New(items, page, pageSize, total), nil
}

func summarize(t repository.RatingTotals) Summary {
	return Summary{
		Service: t.Service,
		Average: roundedAverage(t.Total, t.Reviews),
		Count:   t.Reviews,
	}
}

// roundedAverage — total/count с округлением до десятых, половина вверх.
// Считается в целых, чтобы 4.45 не превратилось в 4.4.
func roundedAverage(total, count int64) float64 {
	if count <= 0 {
		return 0
	}
	tenths := (total*20 + count) / (2 * count)
	return float64(tenths) / 10
}
