package apiclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/breadit-dev/breadit/shared/api"
	"github.com/breadit-dev/breadit/shared/domain"
)

// GetMe fetches the authenticated user.
func (c *APIClient) GetMe(r *http.Request) (*domain.User, error) {
	resp, err := c.do(r.Context(), http.MethodGet, "/v1/users/me", nil, r.Cookies()...)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp, "load profile")
	}

	var me api.UserResponse
	if err := decodeJSON(resp, &me, "profile"); err != nil {
		return nil, err
	}
	return &me.User, nil
}

// UpdateUsername sends PATCH /v1/username with {"name": name}. A taken name
// comes back as an error with status 409.
func (c *APIClient) UpdateUsername(r *http.Request, name string) error {
	body, err := json.Marshal(api.UsernameRequest{Name: name})
	if err != nil {
		return fmt.Errorf("failed to encode username request: %w", err)
	}

	resp, err := c.do(r.Context(), http.MethodPatch, "/v1/username", bytes.NewReader(body), r.Cookies()...)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp, "change username")
	}
	// success body is not used
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
