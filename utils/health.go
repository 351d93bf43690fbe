package utils

import (
	"context"
	"runtime"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

var processStart = time.Now()

// HealthStatus is the health endpoint payload: process uptime, datastore
// connectivity and memory usage.
type HealthStatus struct {
	Status        string    `json:"status"`
	UptimeSeconds float64   `json:"uptimeSeconds"`
	Mongo         bool      `json:"mongo"`
	MemoryAllocMB float64   `json:"memoryAllocMb"`
	MemorySysMB   float64   `json:"memorySysMb"`
	NumGoroutine  int       `json:"numGoroutine"`
	CheckedAt     time.Time `json:"checkedAt"`
}

// CheckHealth pings the datastore and snapshots process stats.
func CheckHealth(ctx context.Context, mongoClient *mongo.Client) HealthStatus {
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	mongoHealthy := mongoClient != nil && mongoClient.Ping(pingCtx, nil) == nil

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	status := "ok"
	if !mongoHealthy {
		status = "degraded"
	}
	return HealthStatus{
		Status:        status,
		UptimeSeconds: time.Since(processStart).Seconds(),
		Mongo:         mongoHealthy,
		MemoryAllocMB: float64(mem.Alloc) / (1024 * 1024),
		MemorySysMB:   float64(mem.Sys) / (1024 * 1024),
		NumGoroutine:  runtime.NumGoroutine(),
		CheckedAt:     time.Now(),
	}
}
