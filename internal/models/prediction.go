package models

import "time"

// Prediction is the stored outcome of a single predict call.
type Prediction struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	InputData string    `json:"inputData"`
	Label     string    `json:"prediction"`
	Accuracy  float64   `json:"accuracy"`
	CreatedAt time.Time `json:"createdAt"`
}

// DashboardStats aggregates a user's activity for the dashboard view.
// AIHealthScore is a synthetic figure, not derived from stored data.
type DashboardStats struct {
	Insights      int     `json:"insights"`
	Predictions   int     `json:"predictions"`
	AvgConfidence float64 `json:"avgConfidence"`
	AIHealthScore float64 `json:"aiHealthScore"`
}
