package models

import "math"

// AccountStatus is the lifecycle status shared by principal documents.
// Soft deletion flips status to inactive; documents are never removed.
type AccountStatus string

const (
	StatusActive    AccountStatus = "active"
	StatusInactive  AccountStatus = "inactive"
	StatusSuspended AccountStatus = "suspended"
	StatusPending   AccountStatus = "pending" // Provider only, pre-verification.
)

// PrincipalKind tags which credential store a resolved principal came from.
type PrincipalKind string

const (
	KindUser     PrincipalKind = "user"
	KindProvider PrincipalKind = "provider"
	KindAdmin    PrincipalKind = "admin"
)

// RatingSummary holds the denormalized rating aggregate kept on Service and
// Provider documents. It is recomputed from the full review set on every
// review save, never incremented.
type RatingSummary struct {
	Average      float64     `bson:"average" json:"average"`
	Count        int         `bson:"count" json:"count"`
	Distribution map[int]int `bson:"distribution" json:"distribution"`
}

// ComputeRatingSummary recomputes a rating aggregate from scratch.
func ComputeRatingSummary(ratings []int) RatingSummary {
	summary := RatingSummary{Distribution: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}}
	if len(ratings) == 0 {
		return summary
	}
	total := 0
	for _, r := range ratings {
		total += r
		if r >= 1 && r <= 5 {
			summary.Distribution[r]++
		}
	}
	summary.Count = len(ratings)
	summary.Average = math.Round(float64(total)/float64(len(ratings))*100) / 100
	return summary
}
