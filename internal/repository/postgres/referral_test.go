package postgres

import (
	"context"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestReferralRepo_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewReferralRepo(db)

	mock.ExpectExec("INSERT INTO referrals").
		WithArgs(int64(100), int64(200)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.Create(context.Background(), 100, 200)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReferralRepo_SumBonusForReferrer(t *testing.T) {
	tests := []struct {
		name          string
		referrerID    int64
		mockRows      *sqlmock.Rows
		mockError     error
		expectedSum   float64
		expectedError bool
	}{
		{
			name:        "referrer with earnings",
			referrerID:  100,
			mockRows:    sqlmock.NewRows([]string{"coalesce"}).AddRow(1.25),
			expectedSum: 1.25,
		},
		{
			name:        "referrer without earnings",
			referrerID:  200,
			mockRows:    sqlmock.NewRows([]string{"coalesce"}).AddRow(0),
			expectedSum: 0,
		},
		{
			name:          "database error",
			referrerID:    300,
			mockError:     fmt.Errorf("connection refused"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewReferralRepo(db)

			query := "SELECT COALESCE\\(SUM\\(bonus\\), 0\\) FROM referrals"

			if tt.mockError != nil {
				mock.ExpectQuery(query).WithArgs(tt.referrerID).WillReturnError(tt.mockError)
			} else {
				mock.ExpectQuery(query).WithArgs(tt.referrerID).WillReturnRows(tt.mockRows)
			}

			sum, err := repo.SumBonusForReferrer(context.Background(), tt.referrerID)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedSum, sum)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestReferralRepo_CountReferrals(t *testing.T) {
	tests := []struct {
		name          string
		referrerID    int64
		onlyPaid      bool
		expectedCount int
	}{
		{
			name:          "all referrals",
			referrerID:    100,
			onlyPaid:      false,
			expectedCount: 5,
		},
		{
			name:          "only paid referrals",
			referrerID:    100,
			onlyPaid:      true,
			expectedCount: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewReferralRepo(db)

			query := "SELECT COUNT\\(\\*\\) FROM referrals WHERE referrer_id = \\$1"
			if tt.onlyPaid {
				query += " AND bonus > 0"
			}

			mock.ExpectQuery(query).
				WithArgs(tt.referrerID).
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(tt.expectedCount))

			count, err := repo.CountReferrals(context.Background(), tt.referrerID, tt.onlyPaid)

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedCount, count)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
