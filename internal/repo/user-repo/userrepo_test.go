package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/adesinaj/kobovest/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_FindByEmail(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		email     string
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name:  "Existing user",
			email: "ada@example.com",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "email", "first_name", "last_name", "password_hash"}).
					AddRow(1, "ada@example.com", "Ada", "Obi", "hashed")
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, email, first_name, last_name, password_hash FROM users WHERE email = $1`)).
					WithArgs("ada@example.com").
					WillReturnRows(rows)
			},
			found: true,
		},
		{
			name:  "Unknown email returns nil",
			email: "nobody@example.com",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, email, first_name, last_name, password_hash FROM users WHERE email = $1`)).
					WithArgs("nobody@example.com").
					WillReturnError(pgx.ErrNoRows)
			},
			found: false,
		},
		{
			name:  "Database error",
			email: "ada@example.com",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, email, first_name, last_name, password_hash FROM users WHERE email = $1`)).
					WithArgs("ada@example.com").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			user, err := repo.FindByEmail(context.Background(), tt.email)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if tt.found {
				assert.NotNil(t, user)
				assert.Equal(t, tt.email, user.Email)
			} else {
				assert.Nil(t, user)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users`)).
		WithArgs("ada@example.com", "Ada", "Obi", "hashed").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(1))

	user, err := repo.Create(context.Background(), &domain.User{
		Email:        "ada@example.com",
		FirstName:    "Ada",
		LastName:     "Obi",
		PasswordHash: "hashed",
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
