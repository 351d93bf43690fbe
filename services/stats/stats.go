package stats

import (
	"sync"

	providerRepo "servana/database/repository/provider"
	serviceRepo "servana/database/repository/service"
	userRepo "servana/database/repository/user"
	"servana/models"
	"servana/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// Propagator keeps the denormalized counters on User, Provider and Service
// documents in step with booking events. Each event issues independent
// atomic increments against the affected documents, fired in parallel and
// best-effort: there is no transaction, no retry, and partial application is
// the accepted consistency model. Failures are logged with the entity and
// delta so an operator can reconcile by hand.
type Propagator struct {
	Users     userRepo.UserRepository
	Providers providerRepo.ProviderRepository
	Services  serviceRepo.ServiceRepository
}

// BookingCreated increments the total-booking counters.
func (p *Propagator) BookingCreated(b *models.Booking) {
	p.apply(b, bson.M{"stats.totalBookings": 1}, bson.M{"stats.totalBookings": 1}, bson.M{"stats.totalBookings": 1})
}

// BookingCompleted increments completed counts and the revenue/spend totals
// by the booking's total amount.
func (p *Propagator) BookingCompleted(b *models.Booking) {
	amount := b.Pricing.TotalAmount
	p.apply(b,
		bson.M{"stats.completedBookings": 1, "stats.totalSpent": amount},
		bson.M{"stats.completedBookings": 1, "stats.totalEarnings": amount},
		bson.M{"stats.completedBookings": 1},
	)
}

// BookingCancelled increments cancelled counts only; no revenue moves.
func (p *Propagator) BookingCancelled(b *models.Booking) {
	p.apply(b, bson.M{"stats.cancelledBookings": 1}, bson.M{"stats.cancelledBookings": 1}, bson.M{"stats.cancelledBookings": 1})
}

// apply fires the three increments in parallel and waits for all of them,
// so callers that need determinism (the task worker, tests) can rely on
// completion when it returns.
func (p *Propagator) apply(b *models.Booking, userInc, providerInc, serviceInc bson.M) {
	logger := utils.GetLogger()
	var wg sync.WaitGroup

	run := func(entity, id string, fn func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(); err != nil {
				logger.Error("stats increment failed",
					zap.String("entity", entity),
					zap.String("id", id),
					zap.String("bookingId", b.ID),
					zap.Error(err),
				)
			}
		}()
	}

	run("user", b.UserID, func() error { return p.Users.IncrementStats(b.UserID, userInc) })
	run("provider", b.ProviderID, func() error { return p.Providers.IncrementStats(b.ProviderID, providerInc) })
	run("service", b.ServiceID, func() error { return p.Services.IncrementStats(b.ServiceID, serviceInc) })

	wg.Wait()
}
