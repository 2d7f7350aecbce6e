package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"signalbot/internal/domain"
)

func TestUserRepo_FindByTelegramID(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name          string
		telegramID    int64
		mockRows      *sqlmock.Rows
		mockError     error
		expectedUser  *domain.User
		expectedError bool
	}{
		{
			name:       "existing user",
			telegramID: 123,
			mockRows: sqlmock.NewRows([]string{
				"id", "telegram_id", "first_name", "last_name", "username", "language_code", "created_at",
			}).AddRow(1, 123, "Alice", "Smith", "alice", "de", now),
			expectedUser: &domain.User{
				ID:         1,
				TelegramID: 123,
				FirstName:  "Alice",
				LastName:   "Smith",
				Username:   "alice",
				Language:   "de",
				CreatedAt:  now,
			},
		},
		{
			name:       "user without optional fields",
			telegramID: 456,
			mockRows: sqlmock.NewRows([]string{
				"id", "telegram_id", "first_name", "last_name", "username", "language_code", "created_at",
			}).AddRow(2, 456, "Bob", nil, nil, "en", now),
			expectedUser: &domain.User{
				ID:         2,
				TelegramID: 456,
				FirstName:  "Bob",
				Language:   "en",
				CreatedAt:  now,
			},
		},
		{
			name:         "user not exists",
			telegramID:   789,
			mockError:    sql.ErrNoRows,
			expectedUser: nil,
		},
		{
			name:          "database error",
			telegramID:    999,
			mockError:     fmt.Errorf("connection refused"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewUserRepo(db)

			query := "SELECT id, telegram_id, first_name, last_name, username, language_code, created_at"

			if tt.mockError != nil {
				mock.ExpectQuery(query).WithArgs(tt.telegramID).WillReturnError(tt.mockError)
			} else {
				mock.ExpectQuery(query).WithArgs(tt.telegramID).WillReturnRows(tt.mockRows)
			}

			user, err := repo.FindByTelegramID(context.Background(), tt.telegramID)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUser, user)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepo_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepo(db)

	user := &domain.User{
		TelegramID: 123,
		FirstName:  "Alice",
		LastName:   "Smith",
		Username:   "alice",
		Language:   "de",
	}

	mock.ExpectExec("INSERT INTO users").
		WithArgs(user.TelegramID, user.FirstName,
			sql.NullString{String: "Smith", Valid: true},
			sql.NullString{String: "alice", Valid: true},
			user.Language).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.Create(context.Background(), user)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_Create_EmptyOptionalFields(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepo(db)

	user := &domain.User{
		TelegramID: 456,
		FirstName:  "Bob",
		Language:   "en",
	}

	// Empty last name and username are stored as NULL
	mock.ExpectExec("INSERT INTO users").
		WithArgs(user.TelegramID, user.FirstName,
			sql.NullString{}, sql.NullString{}, user.Language).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.Create(context.Background(), user)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_UpdateLanguage(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepo(db)

	mock.ExpectExec("UPDATE users SET language_code").
		WithArgs(int64(123), "fr").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.UpdateLanguage(context.Background(), 123, "fr")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
