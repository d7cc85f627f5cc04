package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/breadit-dev/breadit/shared/domain"
	internal_errors "github.com/breadit-dev/breadit/shared/errors"
	"github.com/breadit-dev/breadit/shared/validation"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserMe(t *testing.T) {
	id := uuid.New()
	name := "alice"
	storage := &MockUserStorage{
		UserFunc: func(ctx context.Context, got domain.UserId) (domain.User, error) {
			assert.Equal(t, id, got)
			return domain.User{Id: id, Username: &name}, nil
		},
	}

	user, err := NewUser(storage, validation.NewUsernameValidator(3, 32), nil).Me(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, "alice", *user.Username)
}

func TestUserUpdateUsername(t *testing.T) {
	id := uuid.New()
	validator := validation.NewUsernameValidator(3, 32)

	tests := []struct {
		name            string
		input           string
		storageErr      error
		expectStorage   bool
		expectedStatus  int
		expectedOutcome string
	}{
		{
			name:            "success",
			input:           "crusty_alice",
			expectStorage:   true,
			expectedOutcome: "ok",
		},
		{
			name:            "invalid name never reaches storage",
			input:           "a",
			expectedStatus:  http.StatusBadRequest,
			expectedOutcome: "invalid",
		},
		{
			name:            "taken",
			input:           "bob",
			storageErr:      &internal_errors.ErrorWithStatusCode{Message: "Username already taken", StatusCode: http.StatusConflict},
			expectStorage:   true,
			expectedStatus:  http.StatusConflict,
			expectedOutcome: "conflict",
		},
		{
			name:            "storage failure",
			input:           "bob",
			storageErr:      errors.New("connection reset"),
			expectStorage:   true,
			expectedStatus:  http.StatusInternalServerError,
			expectedOutcome: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			storage := &MockUserStorage{
				UpdateUsernameFunc: func(ctx context.Context, got domain.UserId, username domain.Username) error {
					called = true
					assert.Equal(t, id, got)
					assert.Equal(t, tt.input, username)
					return tt.storageErr
				},
			}
			spy := &spyObserver{}

			err := NewUser(storage, validator, spy).UpdateUsername(context.Background(), id, tt.input)

			assert.Equal(t, tt.expectStorage, called)
			assert.Equal(t, []string{tt.expectedOutcome}, spy.outcomes)
			if tt.expectedStatus == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.expectedStatus, internal_errors.StatusCode(err))
		})
	}
}
