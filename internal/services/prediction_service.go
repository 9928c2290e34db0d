package services

import (
	"database/sql"
	"math"
	"math/rand/v2"

	"github.com/Madiha-Maha/AuroraMind-AI/internal/models"
)

// The two outcome labels a predict call can produce, picked uniformly at
// random. The randomness is the contract: this is a stand-in for a model,
// not a bug to fix.
var predictionLabels = [2]string{"Positive Outcome Expected", "Caution Advised"}

// PredictionServiceProvider defines the interface for prediction services.
type PredictionServiceProvider interface {
	List(userID int64) ([]models.Prediction, error)
	Predict(userID int64, inputData string) (models.Prediction, error)
	DashboardStats(userID int64) (models.DashboardStats, error)
}

// PredictionService runs the simulated model and stores its output.
type PredictionService struct {
	db *sql.DB
}

// NewPredictionService creates a new PredictionService.
func NewPredictionService(db *sql.DB) *PredictionService {
	return &PredictionService{db: db}
}

// List returns the 10 most recent predictions owned by the given user, newest first.
func (s *PredictionService) List(userID int64) ([]models.Prediction, error) {
	rows, err := s.db.Query(
		`SELECT id, user_id, input_data, prediction, accuracy, created_at
		 FROM predictions WHERE user_id = ?
		 ORDER BY created_at DESC, id DESC LIMIT 10`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	predictions := []models.Prediction{}
	for rows.Next() {
		var p models.Prediction
		if err := rows.Scan(&p.ID, &p.UserID, &p.InputData, &p.Label, &p.Accuracy, &p.CreatedAt); err != nil {
			return nil, err
		}
		predictions = append(predictions, p)
	}
	return predictions, rows.Err()
}

// Predict picks a label and an accuracy in [0.85, 0.95], stores the row for
// the given user, and returns it.
func (s *PredictionService) Predict(userID int64, inputData string) (models.Prediction, error) {
	p := models.Prediction{
		UserID:    userID,
		InputData: inputData,
		Label:     predictionLabels[rand.IntN(len(predictionLabels))],
		Accuracy:  0.85 + rand.Float64()*0.10,
	}

	res, err := s.db.Exec(
		"INSERT INTO predictions (user_id, input_data, prediction, accuracy) VALUES (?, ?, ?, ?)",
		p.UserID, p.InputData, p.Label, p.Accuracy,
	)
	if err != nil {
		return models.Prediction{}, err
	}

	p.ID, err = res.LastInsertId()
	if err != nil {
		return models.Prediction{}, err
	}
	return p, nil
}

// DashboardStats aggregates the user's row counts and average insight
// confidence. The average is 0 when no insights exist. The health score is a
// synthetic value in [85, 95], independent of stored data.
func (s *PredictionService) DashboardStats(userID int64) (models.DashboardStats, error) {
	var stats models.DashboardStats

	err := s.db.QueryRow("SELECT COUNT(*) FROM insights WHERE user_id = ?", userID).Scan(&stats.Insights)
	if err != nil {
		return models.DashboardStats{}, err
	}

	err = s.db.QueryRow("SELECT COUNT(*) FROM predictions WHERE user_id = ?", userID).Scan(&stats.Predictions)
	if err != nil {
		return models.DashboardStats{}, err
	}

	err = s.db.QueryRow("SELECT COALESCE(AVG(confidence), 0) FROM insights WHERE user_id = ?", userID).Scan(&stats.AvgConfidence)
	if err != nil {
		return models.DashboardStats{}, err
	}

	stats.AIHealthScore = math.Round((85+rand.Float64()*10)*10) / 10
	return stats, nil
}
