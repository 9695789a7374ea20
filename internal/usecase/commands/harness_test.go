//go:build unit

package commands_test

import (
	"context"
	"testing"

	"shareit/internal/infra"
	"shareit/internal/usecase/shared"
	sharedmock "shareit/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

// txHarness runs Within callbacks against a mocked transaction.
type txHarness struct {
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	reads         *sharedmock.MockCommandReads
	users         *sharedmock.MockUserRepository
	items         *sharedmock.MockItemRepository
	bookings      *sharedmock.MockBookingRepository
	comments      *sharedmock.MockCommentRepository
	notifications *sharedmock.MockNotificationRepository
}

func newTxHarness(t *testing.T) *txHarness {
	t.Helper()
	ctrl := gomock.NewController(t)

	h := &txHarness{
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		tx:            sharedmock.NewMockTx(ctrl),
		reads:         sharedmock.NewMockCommandReads(ctrl),
		users:         sharedmock.NewMockUserRepository(ctrl),
		items:         sharedmock.NewMockItemRepository(ctrl),
		bookings:      sharedmock.NewMockBookingRepository(ctrl),
		comments:      sharedmock.NewMockCommentRepository(ctrl),
		notifications: sharedmock.NewMockNotificationRepository(ctrl),
	}

	h.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, h.tx)
		}).AnyTimes()

	h.tx.EXPECT().DB().Return(nil).AnyTimes()
	h.tx.EXPECT().Reads().Return(h.reads).AnyTimes()
	h.tx.EXPECT().Users().Return(h.users).AnyTimes()
	h.tx.EXPECT().Items().Return(h.items).AnyTimes()
	h.tx.EXPECT().Bookings().Return(h.bookings).AnyTimes()
	h.tx.EXPECT().Comments().Return(h.comments).AnyTimes()
	h.tx.EXPECT().Notifications().Return(h.notifications).AnyTimes()

	return h
}

func repoNotFound() error {
	return infra.WrapRepoErr("not found", nil, infra.KindNotFound)
}

func repoKind(kind infra.RepositoryErrorKind) error {
	return infra.WrapRepoErr("repository failure", nil, kind)
}
