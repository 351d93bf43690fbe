package tasks

import (
	"context"
	"encoding/json"
	"time"

	bookingRepo "servana/database/repository/booking"
	"servana/services/email"
	"servana/services/stats"
	"servana/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Worker processes background tasks: stats propagation and customer emails
// that run after the booking-create response has been sent.
type Worker struct {
	Bookings bookingRepo.BookingRepository
	Stats    *stats.Propagator
	Notifier *email.Notifier
}

// Start runs the asynq server in the background with a few start retries.
func (w *Worker) Start() {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeBookingCreated, w.handleBookingCreated)

	go func() {
		logger := utils.GetLogger()
		logger.Info("[BookingWorker] starting async worker")
		const maxAttempts = 5
		for attempt := 1; attempt <= maxAttempts; attempt++ {
			err := srv.Run(mux)
			if err == nil {
				return
			}
			logger.Error("[BookingWorker] worker failed to start",
				zap.Int("attempt", attempt), zap.Error(err))
			if attempt == maxAttempts {
				logger.Fatal("[BookingWorker] max start attempts reached")
			}
			time.Sleep(time.Duration(attempt*2) * time.Second)
		}
	}()
}

func (w *Worker) handleBookingCreated(ctx context.Context, task *asynq.Task) error {
	var p BookingCreatedPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		utils.GetLogger().Error("[BookingWorker] invalid payload", zap.Error(err))
		return err
	}

	b, err := w.Bookings.GetByID(p.BookingID)
	if err != nil {
		return err
	}
	if b == nil {
		// The booking vanished between enqueue and processing; nothing to do.
		utils.GetLogger().Warn("[BookingWorker] booking not found",
			zap.String("bookingId", p.BookingID))
		return nil
	}

	if w.Stats != nil {
		w.Stats.BookingCreated(b)
	}
	if w.Notifier != nil {
		w.Notifier.BookingStatusChanged(ctx, b)
	}
	return nil
}
