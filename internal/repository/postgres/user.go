package postgres

import (
	"context"
	"database/sql"

	"signalbot/internal/domain"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// FindByTelegramID looks a user up by their Telegram id
func (r *UserRepo) FindByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error) {
	var u domain.User
	var lastName, username sql.NullString
	query := `
		SELECT id, telegram_id, first_name, last_name, username, language_code, created_at
		FROM users
		WHERE telegram_id = $1
	`
	err := r.db.QueryRowContext(ctx, query, telegramID).Scan(
		&u.ID, &u.TelegramID, &u.FirstName, &lastName, &username, &u.Language, &u.CreatedAt,
	)

	if err == sql.ErrNoRows {
		// User doesn't exist yet
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	u.LastName = lastName.String
	u.Username = username.String

	return &u, nil
}

// Create inserts a new user record
func (r *UserRepo) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (telegram_id, first_name, last_name, username, language_code)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (telegram_id) DO NOTHING
	`
	_, err := r.db.ExecContext(ctx, query,
		user.TelegramID,
		user.FirstName,
		nullString(user.LastName),
		nullString(user.Username),
		user.Language,
	)
	return err
}

// UpdateLanguage persists a new preferred language for the user
func (r *UserRepo) UpdateLanguage(ctx context.Context, telegramID int64, lang string) error {
	query := `UPDATE users SET language_code = $2 WHERE telegram_id = $1`
	_, err := r.db.ExecContext(ctx, query, telegramID, lang)
	return err
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
