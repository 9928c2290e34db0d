package models

import "time"

// Insight is an AI-generated finding owned by a single user. Rows are
// append-only; there is no update or delete path.
type Insight struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Confidence  float64   `json:"confidence"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
}
