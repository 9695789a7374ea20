//go:build unit

package readstore

import (
	"context"
	"testing"

	"shareit/internal/infra"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/tests/common/builder"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserReadQueries struct {
	mock.Mock
}

func (m *MockUserReadQueries) FindUserByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Users, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func (m *MockUserReadQueries) ListUsers(ctx context.Context, db sqlc.DBTX) ([]sqlc.Users, error) {
	args := m.Called(ctx, db)
	return args.Get(0).([]sqlc.Users), args.Error(1)
}

func TestUserReadStore_FindByID(t *testing.T) {
	alice := builder.NewUserBuilder().BuildInfra()

	tests := []struct {
		name       string
		userID     int64
		mockReturn sqlc.Users
		mockError  error
		wantKind   infra.RepositoryErrorKind
	}{
		{
			name:       "success",
			userID:     alice.ID,
			mockReturn: alice,
		},
		{
			name:       "user not found",
			userID:     99,
			mockReturn: sqlc.Users{},
			mockError:  pgx.ErrNoRows,
			wantKind:   infra.KindNotFound,
		},
		{
			name:       "database error",
			userID:     alice.ID,
			mockReturn: sqlc.Users{},
			mockError:  assert.AnError,
			wantKind:   infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserReadQueries)
			mockQueries.On("FindUserByID", mock.Anything, mock.Anything, tt.userID).Return(tt.mockReturn, tt.mockError)

			store := NewUserReadStore(mockQueries, nil)

			view, err := store.FindByID(context.Background(), tt.userID)

			if tt.wantKind != "" {
				assert.Error(t, err)
				assert.Nil(t, view)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, alice.ID, view.ID)
				assert.Equal(t, alice.Name, view.Name)
				assert.Equal(t, alice.Email, view.Email)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestUserReadStore_List(t *testing.T) {
	t.Run("keeps storage order", func(t *testing.T) {
		rows := []sqlc.Users{
			builder.NewUserBuilder().WithID(1).BuildInfra(),
			builder.NewUserBuilder().WithID(2).WithName("Bob").WithEmail("bob@example.com").BuildInfra(),
		}
		mockQueries := new(MockUserReadQueries)
		mockQueries.On("ListUsers", mock.Anything, mock.Anything).Return(rows, nil)

		views, err := NewUserReadStore(mockQueries, nil).List(context.Background())

		assert.NoError(t, err)
		if assert.Len(t, views, 2) {
			assert.Equal(t, int64(1), views[0].ID)
			assert.Equal(t, "Bob", views[1].Name)
		}
		mockQueries.AssertExpectations(t)
	})

	t.Run("empty table gives empty slice", func(t *testing.T) {
		mockQueries := new(MockUserReadQueries)
		mockQueries.On("ListUsers", mock.Anything, mock.Anything).Return([]sqlc.Users{}, nil)

		views, err := NewUserReadStore(mockQueries, nil).List(context.Background())

		assert.NoError(t, err)
		assert.NotNil(t, views)
		assert.Empty(t, views)
	})

	t.Run("database error", func(t *testing.T) {
		mockQueries := new(MockUserReadQueries)
		mockQueries.On("ListUsers", mock.Anything, mock.Anything).Return([]sqlc.Users(nil), assert.AnError)

		_, err := NewUserReadStore(mockQueries, nil).List(context.Background())

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
