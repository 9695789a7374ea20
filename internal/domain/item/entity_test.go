//go:build unit

package item_test

import (
	"testing"

	"shareit/internal/domain/item"
	"shareit/internal/pkg/errs"
	"shareit/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItem(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		it, err := builder.NewItemBuilder().WithName("  Drill ").BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, "Drill", it.Name())
		assert.True(t, it.IsOwnedBy(1))
		assert.False(t, it.IsOwnedBy(2))
		assert.Nil(t, it.RequestID())
	})

	t.Run("blank fields are rejected", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*builder.ItemBuilder)
			errIs  error
		}{
			{name: "blank name", mutate: func(b *builder.ItemBuilder) { b.WithName(" ") }, errIs: item.ErrBlankName},
			{name: "blank description", mutate: func(b *builder.ItemBuilder) { b.WithDescription("") }, errIs: item.ErrBlankDescription},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				it, err := builder.NewItemBuilder().With(c.mutate).BuildDomain()
				require.Nil(t, it)
				require.ErrorIs(t, err, c.errIs)
				assert.True(t, errs.Is(err, errs.ErrValidation))
			})
		}
	})

	t.Run("unavailable item cannot be booked", func(t *testing.T) {
		it := builder.NewItemBuilder().Unavailable().BuildStored()

		err := it.EnsureBookable()
		require.ErrorIs(t, err, item.ErrUnavailable)
		assert.True(t, errs.Is(err, errs.ErrValidation))

		it.SetAvailable(true)
		assert.NoError(t, it.EnsureBookable())
	})

	t.Run("not owner maps to forbidden", func(t *testing.T) {
		assert.True(t, errs.Is(item.ErrNotOwner, errs.ErrForbidden))
	})
}
