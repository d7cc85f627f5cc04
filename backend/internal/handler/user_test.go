package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/breadit-dev/breadit/shared/api"
	"github.com/breadit-dev/breadit/shared/domain"
	internal_errors "github.com/breadit-dev/breadit/shared/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMe(t *testing.T) {
	userId := uuid.New()
	username := "alice"

	t.Run("returns current user", func(t *testing.T) {
		h := &Handler{user: &MockUserService{
			MeFunc: func(ctx context.Context, id domain.UserId) (domain.User, error) {
				assert.Equal(t, userId, id)
				return domain.User{Id: id, Username: &username}, nil
			},
		}}
		rr := httptest.NewRecorder()

		h.Me(rr, withUser(createRequest(t, http.MethodGet, "/v1/users/me", nil), userId))

		require.Equal(t, http.StatusOK, rr.Code)
		var resp api.UserResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, userId, resp.User.Id)
		require.NotNil(t, resp.User.Username)
		assert.Equal(t, "alice", *resp.User.Username)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		h := &Handler{user: &MockUserService{}}
		rr := httptest.NewRecorder()

		h.Me(rr, createRequest(t, http.MethodGet, "/v1/users/me", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("user vanished", func(t *testing.T) {
		h := &Handler{user: &MockUserService{
			MeFunc: func(ctx context.Context, id domain.UserId) (domain.User, error) {
				return domain.User{}, &internal_errors.ErrorWithStatusCode{Message: "User not found", StatusCode: http.StatusNotFound}
			},
		}}
		rr := httptest.NewRecorder()

		h.Me(rr, withUser(createRequest(t, http.MethodGet, "/v1/users/me", nil), userId))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestUpdateUsername(t *testing.T) {
	userId := uuid.New()

	tests := []struct {
		name           string
		body           string
		authenticated  bool
		serviceErr     error
		expectCall     bool
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "success",
			body:           `{"name":"crusty_alice"}`,
			authenticated:  true,
			expectCall:     true,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"message":"OK"}`,
		},
		{
			name:           "unauthenticated",
			body:           `{"name":"crusty_alice"}`,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid json",
			body:           `{"name":`,
			authenticated:  true,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing name",
			body:           `{}`,
			authenticated:  true,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "validation failure",
			body:           `{"name":"a b"}`,
			authenticated:  true,
			serviceErr:     &internal_errors.ErrorWithStatusCode{Message: "Username can only contain letters, numbers and underscores", StatusCode: http.StatusBadRequest},
			expectCall:     true,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "username taken",
			body:           `{"name":"bob"}`,
			authenticated:  true,
			serviceErr:     &internal_errors.ErrorWithStatusCode{Message: "Username already taken", StatusCode: http.StatusConflict},
			expectCall:     true,
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "internal error",
			body:           `{"name":"bob"}`,
			authenticated:  true,
			serviceErr:     errors.New("tx aborted"),
			expectCall:     true,
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			h := &Handler{user: &MockUserService{
				UpdateUsernameFunc: func(ctx context.Context, id domain.UserId, name string) error {
					called = true
					assert.Equal(t, userId, id)
					return tt.serviceErr
				},
			}}
			req := createRequest(t, http.MethodPatch, "/v1/username", []byte(tt.body))
			if tt.authenticated {
				req = withUser(req, userId)
			}
			rr := httptest.NewRecorder()

			h.UpdateUsername(rr, req)

			assert.Equal(t, tt.expectCall, called)
			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			}
		})
	}
}
