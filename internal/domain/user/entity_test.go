//go:build unit

package user_test

import (
	"testing"

	"shareit/internal/domain/user"
	"shareit/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Zero(t, actual.ID(), "id is assigned by the store")
		assert.Equal(t, "Alice", actual.Name())
		assert.Equal(t, "alice@example.com", actual.Email().Value())
	})

	t.Run("email validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "valid email",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "empty email",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "missing at sign",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "missing domain",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("someone@") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("name validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "blank name",
				mutate: func(b *builder.UserBuilder) { b.WithName("   ") },
				errIs:  user.ErrBlankName,
			},
			{
				name:   "empty name",
				mutate: func(b *builder.UserBuilder) { b.WithName("") },
				errIs:  user.ErrBlankName,
			},
		})
	})

	t.Run("rename trims and rejects blank", func(t *testing.T) {
		u := builder.NewUserBuilder().BuildStored()

		require.NoError(t, u.Rename("  Carol  "))
		assert.Equal(t, "Carol", u.Name())

		require.ErrorIs(t, u.Rename(" "), user.ErrBlankName)
		assert.Equal(t, "Carol", u.Name(), "failed rename keeps the previous name")
	})

	t.Run("change email", func(t *testing.T) {
		u := builder.NewUserBuilder().BuildStored()
		email, err := user.NewEmail(" new@example.com ")
		require.NoError(t, err)

		u.ChangeEmail(email)

		if diff := cmp.Diff("new@example.com", u.Email().Value()); diff != "" {
			t.Errorf("email mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, int64(1), u.ID())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
