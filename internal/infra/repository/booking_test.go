//go:build unit

package repository_test

import (
	"context"
	"testing"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/infra/repository"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/pkg/pgconv"
	"shareit/tests/common/builder"
	repositorymock "shareit/tests/mock/repository"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBookingRepository_Create(t *testing.T) {
	ctx := context.Background()
	bb := builder.NewBookingBuilder()
	b, err := bb.BuildDomain()
	require.NoError(t, err)

	q := repositorymock.NewMockBookingWriteQueries(gomock.NewController(t))
	q.EXPECT().CreateBooking(ctx, nil, sqlc.CreateBookingParams{
		ItemID:    bb.ItemID,
		BookerID:  bb.BookerID,
		StartDate: pgconv.TimeToPgtype(bb.Start),
		EndDate:   pgconv.TimeToPgtype(bb.End),
		Status:    "WAITING",
	}).Return(int64(100), nil)

	id, err := repository.NewBookingRepository(q).Create(ctx, nil, b)

	require.NoError(t, err)
	assert.Equal(t, int64(100), id)
}

func TestBookingRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	approved := builder.NewBookingBuilder().WithStatus(booking.StatusApproved).BuildStored()

	tests := []struct {
		name     string
		affected int64
		dbErr    error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "success", affected: 1},
		{name: "row vanished", affected: 0, wantKind: infra.KindNotFound},
		{name: "overlapping approval", dbErr: &pgconn.PgError{Code: pgerrcode.ExclusionViolation}, wantKind: infra.KindConflict},
		{name: "database error", dbErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := repositorymock.NewMockBookingWriteQueries(gomock.NewController(t))
			q.EXPECT().UpdateBookingStatus(ctx, nil, sqlc.UpdateBookingStatusParams{ID: approved.ID(), Status: "APPROVED"}).
				Return(tt.affected, tt.dbErr)

			err := repository.NewBookingRepository(q).UpdateStatus(ctx, nil, approved)

			if tt.wantKind == "" {
				require.NoError(t, err)
				return
			}
			assert.True(t, infra.IsKind(err, tt.wantKind))
		})
	}
}

func TestBookingRepository_FindApprovedIntersecting(t *testing.T) {
	ctx := context.Background()
	bb := builder.NewBookingBuilder().WithStatus(booking.StatusApproved)
	period := booking.ReconstructPeriod(bb.Start, bb.End)

	t.Run("rebuilds rows", func(t *testing.T) {
		q := repositorymock.NewMockBookingWriteQueries(gomock.NewController(t))
		q.EXPECT().FindIntersectingBookings(ctx, nil, sqlc.FindIntersectingBookingsParams{
			ItemID:    bb.ItemID,
			Statuses:  []string{"APPROVED"},
			StartDate: pgconv.TimeToPgtype(bb.Start),
			EndDate:   pgconv.TimeToPgtype(bb.End),
		}).Return([]sqlc.Bookings{bb.BuildInfra()}, nil)

		got, err := repository.NewBookingRepository(q).FindApprovedIntersecting(ctx, nil, bb.ItemID, period)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, booking.StatusApproved, got[0].Status())
	})

	t.Run("unknown stored status is a storage failure", func(t *testing.T) {
		row := bb.BuildInfra()
		row.Status = "LOST"
		q := repositorymock.NewMockBookingWriteQueries(gomock.NewController(t))
		q.EXPECT().FindIntersectingBookings(ctx, nil, gomock.Any()).Return([]sqlc.Bookings{row}, nil)

		_, err := repository.NewBookingRepository(q).FindApprovedIntersecting(ctx, nil, bb.ItemID, period)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
