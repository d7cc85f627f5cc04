package pg

import (
	"context"
	"net/http"
	"testing"

	internal_errors "github.com/breadit-dev/breadit/shared/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser(t *testing.T) {
	ctx := context.Background()
	truncate(t)

	id := createUser(t, "alice", ptr("alice"))

	user, err := storage.User(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, user.Id)
	assert.Equal(t, "alice", user.Name)
	require.NotNil(t, user.Username)
	assert.Equal(t, "alice", *user.Username)

	_, err = storage.User(ctx, uuid.New())
	require.Error(t, err)
	assert.True(t, internal_errors.IsNotFound(err))
}

func TestUpdateUsername(t *testing.T) {
	ctx := context.Background()

	t.Run("sets username", func(t *testing.T) {
		truncate(t)
		id := createUser(t, "alice", nil)

		require.NoError(t, storage.UpdateUsername(ctx, id, "crusty_alice"))

		user, err := storage.User(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, user.Username)
		assert.Equal(t, "crusty_alice", *user.Username)
	})

	t.Run("keeping own username is not a conflict", func(t *testing.T) {
		truncate(t)
		id := createUser(t, "alice", ptr("alice"))

		assert.NoError(t, storage.UpdateUsername(ctx, id, "alice"))
	})

	t.Run("taken username conflicts regardless of case", func(t *testing.T) {
		truncate(t)
		createUser(t, "alice", ptr("alice"))
		bob := createUser(t, "bob", ptr("bob"))

		for _, name := range []string{"alice", "ALICE"} {
			err := storage.UpdateUsername(ctx, bob, name)
			require.Error(t, err)
			var e *internal_errors.ErrorWithStatusCode
			require.ErrorAs(t, err, &e)
			assert.Equal(t, http.StatusConflict, e.StatusCode)
		}

		user, err := storage.User(ctx, bob)
		require.NoError(t, err)
		assert.Equal(t, "bob", *user.Username, "failed update must not change the row")
	})

	t.Run("unknown user", func(t *testing.T) {
		truncate(t)

		err := storage.UpdateUsername(ctx, uuid.New(), "ghost")
		assert.True(t, internal_errors.IsNotFound(err))
	})
}

func TestPing(t *testing.T) {
	assert.NoError(t, storage.Ping(context.Background()))
}
