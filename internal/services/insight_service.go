package services

import (
	"database/sql"

	"github.com/Madiha-Maha/AuroraMind-AI/internal/models"
)

// InsightServiceProvider defines the interface for insight services.
type InsightServiceProvider interface {
	List(userID int64) ([]models.Insight, error)
	Create(userID int64, title, description string, confidence float64, category string) (int64, error)
}

// InsightService provides access to a user's insight rows.
type InsightService struct {
	db *sql.DB
}

// NewInsightService creates a new InsightService.
func NewInsightService(db *sql.DB) *InsightService {
	return &InsightService{db: db}
}

// List returns the 10 most recent insights owned by the given user,
// newest first. The id tiebreaker keeps the order stable when several rows
// share a creation second.
func (s *InsightService) List(userID int64) ([]models.Insight, error) {
	rows, err := s.db.Query(
		`SELECT id, user_id, title, description, confidence, category, created_at
		 FROM insights WHERE user_id = ?
		 ORDER BY created_at DESC, id DESC LIMIT 10`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	insights := []models.Insight{}
	for rows.Next() {
		var in models.Insight
		if err := rows.Scan(&in.ID, &in.UserID, &in.Title, &in.Description, &in.Confidence, &in.Category, &in.CreatedAt); err != nil {
			return nil, err
		}
		insights = append(insights, in)
	}
	return insights, rows.Err()
}

// Create inserts a new insight for the given user and returns the new row id.
func (s *InsightService) Create(userID int64, title, description string, confidence float64, category string) (int64, error) {
	res, err := s.db.Exec(
		"INSERT INTO insights (user_id, title, description, confidence, category) VALUES (?, ?, ?, ?, ?)",
		userID, title, description, confidence, category,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
