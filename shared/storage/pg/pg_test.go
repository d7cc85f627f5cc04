package pg

import (
	"errors"
	"fmt"
	"testing"

	"github.com/breadit-dev/breadit/shared/config"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestConnString(t *testing.T) {
	got := ConnString(config.Pg{Host: "db", Port: 5432, User: "u", Password: "p", Dbname: "breadit"})
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=breadit sslmode=disable", got)
}

func TestIsUniqueViolation(t *testing.T) {
	dup := &pq.Error{Code: "23505", Constraint: "users_username_key"}

	assert.True(t, IsUniqueViolation(dup, ""))
	assert.True(t, IsUniqueViolation(fmt.Errorf("update: %w", dup), "users_username_key"))
	assert.False(t, IsUniqueViolation(dup, "users_email_key"))
	assert.False(t, IsUniqueViolation(&pq.Error{Code: "23503"}, ""))
	assert.False(t, IsUniqueViolation(errors.New("boom"), ""))
}
