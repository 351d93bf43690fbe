package tasks

import (
	"encoding/json"

	"servana/config"

	"github.com/hibiken/asynq"
)

const TypeBookingCreated = "booking:created"

// BookingCreatedPayload carries just the booking id; the worker reloads the
// document so it always acts on current state.
type BookingCreatedPayload struct {
	BookingID string `json:"bookingId"`
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// Client enqueues background tasks. It satisfies the booking service's
// Enqueuer interface.
type Client struct {
	inner *asynq.Client
}

func NewClient() *Client {
	return &Client{inner: asynq.NewClient(redisOpts())}
}

func (c *Client) EnqueueBookingCreated(bookingID string) error {
	b, err := json.Marshal(BookingCreatedPayload{BookingID: bookingID})
	if err != nil {
		return err
	}
	task := asynq.NewTask(TypeBookingCreated, b)
	_, err = c.inner.Enqueue(task, asynq.MaxRetry(3), asynq.Queue("default"))
	return err
}

func (c *Client) Close() error {
	return c.inner.Close()
}
