package booking

import (
	"context"
	"time"

	bookingRepo "servana/database/repository/booking"
	providerRepo "servana/database/repository/provider"
	serviceRepo "servana/database/repository/service"
	userRepo "servana/database/repository/user"
	"servana/models"
	"servana/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// DefaultBookingService is the production implementation of BookingService.
type DefaultBookingService struct {
	Repo      bookingRepo.BookingRepository
	Users     userRepo.UserRepository
	Providers providerRepo.ProviderRepository
	Services  serviceRepo.ServiceRepository
	Stats     StatsRecorder
	Notifier  StatusNotifier
	Tasks     Enqueuer
}

// CreateBooking creates a pending booking against an available service of a
// verified, active provider. The response is complete when this returns;
// stats increments and the confirmation email run as background work.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, userID string, req CreateBookingRequest) (*models.Booking, error) {
	usr, err := s.Users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if usr == nil || !usr.IsActive() {
		return nil, utils.NotFoundError("user")
	}

	svc, err := s.Services.GetByID(req.ServiceID)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, utils.NotFoundError("service")
	}
	if !svc.Bookable() {
		return nil, utils.ValidationError("service is not available for booking", nil)
	}

	prov, err := s.Providers.GetByID(svc.ProviderID)
	if err != nil {
		return nil, err
	}
	if prov == nil || !prov.CanOperate() {
		return nil, utils.ValidationError("provider is not active and verified", nil)
	}

	now := time.Now()
	b := &models.Booking{
		ID:          uuid.New().String(),
		BookingCode: GenerateBookingCode(now),
		UserID:      usr.ID,
		ServiceID:   svc.ID,
		ProviderID:  prov.ID,
		ServiceDetails: models.ServiceSnapshot{
			Name:        svc.Name,
			Category:    svc.Category,
			Description: svc.Description,
			BasePrice:   svc.BasePrice,
			Duration:    svc.Duration,
		},
		CustomerInfo: models.CustomerSnapshot{
			Name:        usr.Name,
			Email:       usr.Email,
			PhoneNumber: usr.PhoneNumber,
			Address:     firstNonEmpty(req.Address, usr.Address),
		},
		Pricing: models.Pricing{
			BaseAmount:        svc.BasePrice,
			AdditionalCharges: req.AdditionalCharges,
			Discount:          req.Discount,
			Taxes:             models.Taxes{Total: req.TaxTotal},
			Currency:          svc.Currency,
		},
		Scheduling: models.Scheduling{
			ScheduledDate: req.ScheduledDate,
			TimeSlot:      req.TimeSlot,
		},
		Status:        models.BookingPending,
		StatusHistory: []models.StatusEntry{},
		PaymentStatus: models.PaymentPending,
		Notes:         req.Notes,
	}
	RecomputeTotal(&b.Pricing)

	if err := s.Repo.Create(b); err != nil {
		return nil, err
	}

	// Fire-and-forget: callers cannot assume these completed when the
	// response arrives.
	if s.Tasks != nil {
		if err := s.Tasks.EnqueueBookingCreated(b.ID); err != nil {
			utils.GetLogger().Warn("failed to enqueue booking-created side effects",
				zap.String("bookingId", b.ID), zap.Error(err))
		}
	}

	return b, nil
}

// GetBooking returns a booking visible to the actor: admin, the owning user,
// or the owning provider.
func (s *DefaultBookingService) GetBooking(ctx context.Context, id string, actor Actor) (*models.Booking, error) {
	b, err := s.loadAuthorized(id, actor)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// GetBookingByCode resolves the human-readable booking code, with the same
// visibility rules as GetBooking.
func (s *DefaultBookingService) GetBookingByCode(ctx context.Context, code string, actor Actor) (*models.Booking, error) {
	b, err := s.Repo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, utils.NotFoundError("booking")
	}
	return authorize(b, actor)
}

// ListBookings returns a booking page; handlers build the filter from the
// caller's role so users and providers only see their own.
func (s *DefaultBookingService) ListBookings(ctx context.Context, filter bson.M, skip, limit int64) ([]models.Booking, int64, error) {
	return s.Repo.List(filter, skip, limit)
}

// Timeline returns the append-only status history.
func (s *DefaultBookingService) Timeline(ctx context.Context, id string, actor Actor) ([]models.StatusEntry, error) {
	b, err := s.loadAuthorized(id, actor)
	if err != nil {
		return nil, err
	}
	return b.StatusHistory, nil
}

func (s *DefaultBookingService) loadAuthorized(id string, actor Actor) (*models.Booking, error) {
	b, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, utils.NotFoundError("booking")
	}
	return authorize(b, actor)
}

func authorize(b *models.Booking, actor Actor) (*models.Booking, error) {
	switch actor.Kind {
	case models.UpdatedByAdmin, models.UpdatedBySystem:
		return b, nil
	case models.UpdatedByUser:
		if b.UserID == actor.ID {
			return b, nil
		}
	case models.UpdatedByProvider:
		if b.ProviderID == actor.ID {
			return b, nil
		}
	}
	return nil, utils.ForbiddenError("you do not have access to this booking")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
