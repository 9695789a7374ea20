//go:build unit

package queries_test

import (
	"context"
	"testing"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/usecase/queries"
	"shareit/tests/common/builder"
	queriesmock "shareit/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var now = builder.BaseTime

func notFound() error {
	return infra.WrapRepoErr("not found", nil, infra.KindNotFound)
}

func TestBookingQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	view := builder.NewBookingBuilder().BuildView()

	tests := []struct {
		name        string
		requesterID int64
		storeErr    error
		wantErr     error
	}{
		{name: "booker sees the booking", requesterID: view.Booker.ID},
		{name: "owner sees the booking", requesterID: view.ItemOwnerID},
		{name: "third user gets not found", requesterID: 77, wantErr: queries.ErrBookingNotFound},
		{name: "missing booking", requesterID: view.Booker.ID, storeErr: notFound(), wantErr: queries.ErrBookingNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			bookings := queriesmock.NewMockBookingReadStore(ctrl)
			users := queriesmock.NewMockUserReadStore(ctrl)

			if tt.storeErr != nil {
				bookings.EXPECT().FindByID(ctx, view.ID).Return(nil, tt.storeErr)
			} else {
				bookings.EXPECT().FindByID(ctx, view.ID).Return(view, nil)
			}

			got, err := queries.NewBookingQueries(bookings, users, clock.NewMockClock(now)).GetByID(ctx, tt.requesterID, view.ID)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, view, got)
		})
	}
}

func TestBookingQueries_List(t *testing.T) {
	ctx := context.Background()
	bob := builder.NewUserBuilder().WithID(2).WithName("Bob").BuildView()
	page := queries.Page{From: 0, Size: 10}

	t.Run("booker listing passes party, filter and clock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		bookings := queriesmock.NewMockBookingReadStore(ctrl)
		users := queriesmock.NewMockUserReadStore(ctrl)

		waiting, err := booking.FilterFor(booking.StateWaiting)
		require.NoError(t, err)
		want := queries.BookingListQuery{Party: queries.PartyBooker, UserID: bob.ID, Filter: waiting, Now: now, Page: page}

		users.EXPECT().FindByID(ctx, bob.ID).Return(bob, nil)
		bookings.EXPECT().List(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, q queries.BookingListQuery) ([]*queries.BookingView, error) {
				if diff := cmp.Diff(want, q); diff != "" {
					t.Errorf("list query mismatch (-want +got):\n%s", diff)
				}
				return []*queries.BookingView{builder.NewBookingBuilder().BuildView()}, nil
			})

		got, err := queries.NewBookingQueries(bookings, users, clock.NewMockClock(now)).
			ListByBooker(ctx, bob.ID, booking.StateWaiting, page)

		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("owner listing uses the owner side", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		bookings := queriesmock.NewMockBookingReadStore(ctrl)
		users := queriesmock.NewMockUserReadStore(ctrl)

		users.EXPECT().FindByID(ctx, int64(1)).Return(builder.NewUserBuilder().BuildView(), nil)
		bookings.EXPECT().List(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, q queries.BookingListQuery) ([]*queries.BookingView, error) {
				assert.Equal(t, queries.PartyOwner, q.Party)
				assert.Nil(t, q.Filter.Status)
				return nil, nil
			})

		got, err := queries.NewBookingQueries(bookings, users, clock.NewMockClock(now)).
			ListByOwner(ctx, 1, booking.StateAll, queries.Page{})

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		bookings := queriesmock.NewMockBookingReadStore(ctrl)
		users := queriesmock.NewMockUserReadStore(ctrl)

		users.EXPECT().FindByID(ctx, int64(9)).Return(nil, notFound())

		_, err := queries.NewBookingQueries(bookings, users, clock.NewMockClock(now)).
			ListByBooker(ctx, 9, booking.StateAll, page)

		require.ErrorIs(t, err, queries.ErrUserNotFound)
	})

	t.Run("unknown state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		bookings := queriesmock.NewMockBookingReadStore(ctrl)
		users := queriesmock.NewMockUserReadStore(ctrl)

		users.EXPECT().FindByID(ctx, bob.ID).Return(bob, nil)

		_, err := queries.NewBookingQueries(bookings, users, clock.NewMockClock(now)).
			ListByBooker(ctx, bob.ID, booking.State("SOMETIMES"), page)

		require.ErrorIs(t, err, booking.ErrUnknownState)
	})
}
