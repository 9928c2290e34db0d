package services

import (
	"database/sql"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/Madiha-Maha/AuroraMind-AI/internal/models"
)

// UserServiceProvider defines the interface for user services.
type UserServiceProvider interface {
	Register(email, password, name string) (int64, error)
	GetByEmail(email string) (models.User, error)
	Authenticate(email, password string) (models.User, error)
}

// UserService provides business logic for account management.
type UserService struct {
	db *sql.DB
}

// NewUserService creates a new UserService.
func NewUserService(db *sql.DB) *UserService {
	return &UserService{db: db}
}

// Register creates a new user, hashing their password, and returns the new
// row id. The email uniqueness constraint lives in the database, so two
// concurrent registrations of the same address resolve to exactly one winner;
// the loser sees ErrDuplicateEmail.
func (s *UserService) Register(email, password, name string) (int64, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}

	res, err := s.db.Exec(
		"INSERT INTO users (email, password, name) VALUES (?, ?, ?)",
		email, string(hashedPassword), name,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return 0, ErrDuplicateEmail
		}
		return 0, err
	}

	return res.LastInsertId()
}

// GetByEmail retrieves a single user by their email, including the password hash.
func (s *UserService) GetByEmail(email string) (models.User, error) {
	var user models.User
	row := s.db.QueryRow("SELECT id, email, password, name, created_at FROM users WHERE email = ?", email)
	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Name, &user.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

// Authenticate verifies a user's credentials. The bcrypt comparison is
// constant-time with respect to the stored hash; the only signal out of this
// function is which sentinel error came back.
func (s *UserService) Authenticate(email, password string) (models.User, error) {
	user, err := s.GetByEmail(email)
	if err != nil {
		return models.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, ErrInvalidPassword
	}

	// Don't send the password hash to the client
	user.PasswordHash = ""
	return user, nil
}
