package stats

import (
	"context"
	"errors"
	"fmt"
)

// ErrInternal возвращается при внутренних ошибках сервиса
var ErrInternal = errors.New("service: internal error")

// MonthlyStatResponse статистика одного месяца
type MonthlyStatResponse struct {
	Month    string `json:"month"`
	Bookings int64  `json:"bookings"`
	Revenue  int64  `json:"revenue"`
}

// StatsResponse сводная статистика по бронированиям
type StatsResponse struct {
	TotalBookings int64                 `json:"totalBookings"`
	TotalRevenue  int64                 `json:"totalRevenue"`
	AverageRating *float64              `json:"averageRating,omitempty"`
	Monthly       []MonthlyStatResponse `json:"monthly"`
}

// Service сервис статистики для админ-панели
type Service struct {
	bookingRepo BookingStatsRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса статистики
func NewService(bookingRepo BookingStatsRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Get собирает сводные показатели и помесячную разбивку
func (s *Service) Get(ctx context.Context) (*StatsResponse, error) {
	totals, err := s.bookingRepo.GetTotals(ctx)
	if err != nil {
		s.logger.Error("Get: failed to load totals: %v", err)
		return nil, fmt.Errorf("%w: Get - load totals: %v", ErrInternal, err)
	}

	monthly, err := s.bookingRepo.GetMonthlyStats(ctx)
	if err != nil {
		s.logger.Error("Get: failed to load monthly stats: %v", err)
		return nil, fmt.Errorf("%w: Get - load monthly stats: %v", ErrInternal, err)
	}

	resp := &StatsResponse{
		TotalBookings: totals.Bookings,
		TotalRevenue:  totals.Revenue,
		AverageRating: totals.AverageRating,
		Monthly:       make([]MonthlyStatResponse, 0, len(monthly)),
	}
	for _, m := range monthly {
		resp.Monthly = append(resp.Monthly, MonthlyStatResponse{
			Month:    m.Month,
			Bookings: m.Bookings,
			Revenue:  m.Revenue,
		})
	}

	return resp, nil
}
