package analytics

import (
	"context"

	bookingRepo "servana/database/repository/booking"
	providerRepo "servana/database/repository/provider"
	reviewRepo "servana/database/repository/review"
	serviceRepo "servana/database/repository/service"
	userRepo "servana/database/repository/user"

	"go.mongodb.org/mongo-driver/bson"
)

// DashboardSummary is the admin dashboard headline payload.
type DashboardSummary struct {
	Users            int64                         `json:"users"`
	Providers        int64                         `json:"providers"`
	PendingProviders int64                         `json:"pendingProviders"`
	Services         int64                         `json:"services"`
	Reviews          int64                         `json:"reviews"`
	Bookings         []bookingRepo.StatusCount     `json:"bookingsByStatus"`
	TopProviders     []bookingRepo.ProviderRevenue `json:"topProviders"`
}

// AnalyticsService exposes the aggregation-backed reporting endpoints.
type AnalyticsService interface {
	Dashboard(ctx context.Context) (*DashboardSummary, error)
	RevenueByMonth(ctx context.Context, months int) ([]bookingRepo.MonthlyRevenue, error)
	BookingsByStatus(ctx context.Context) ([]bookingRepo.StatusCount, error)
	TopProviders(ctx context.Context, limit int64) ([]bookingRepo.ProviderRevenue, error)
}

// DefaultAnalyticsService is the production implementation.
type DefaultAnalyticsService struct {
	Users     userRepo.UserRepository
	Providers providerRepo.ProviderRepository
	Services  serviceRepo.ServiceRepository
	Bookings  bookingRepo.BookingRepository
	Reviews   reviewRepo.ReviewRepository
}

func (s *DefaultAnalyticsService) Dashboard(ctx context.Context) (*DashboardSummary, error) {
	_, users, err := s.Users.List(bson.M{}, 0, 1)
	if err != nil {
		return nil, err
	}
	_, providers, err := s.Providers.List(bson.M{}, 0, 1)
	if err != nil {
		return nil, err
	}
	_, pending, err := s.Providers.List(bson.M{"verification.status": "pending"}, 0, 1)
	if err != nil {
		return nil, err
	}
	_, services, err := s.Services.List(bson.M{}, 0, 1)
	if err != nil {
		return nil, err
	}
	_, reviews, err := s.Reviews.List(bson.M{}, 0, 1)
	if err != nil {
		return nil, err
	}
	byStatus, err := s.Bookings.CountByStatus()
	if err != nil {
		return nil, err
	}
	top, err := s.Bookings.TopProviders(5)
	if err != nil {
		return nil, err
	}

	return &DashboardSummary{
		Users:            users,
		Providers:        providers,
		PendingProviders: pending,
		Services:         services,
		Reviews:          reviews,
		Bookings:         byStatus,
		TopProviders:     top,
	}, nil
}

func (s *DefaultAnalyticsService) RevenueByMonth(ctx context.Context, months int) ([]bookingRepo.MonthlyRevenue, error) {
	if months < 1 || months > 36 {
		months = 12
	}
	return s.Bookings.RevenueByMonth(months)
}

func (s *DefaultAnalyticsService) BookingsByStatus(ctx context.Context) ([]bookingRepo.StatusCount, error) {
	return s.Bookings.CountByStatus()
}

func (s *DefaultAnalyticsService) TopProviders(ctx context.Context, limit int64) ([]bookingRepo.ProviderRevenue, error) {
	if limit < 1 || limit > 50 {
		limit = 10
	}
	return s.Bookings.TopProviders(limit)
}
