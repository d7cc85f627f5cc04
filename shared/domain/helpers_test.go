package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostScore(t *testing.T) {
	alice, bob, carol := uuid.New(), uuid.New(), uuid.New()
	post := Post{Votes: []Vote{
		{UserId: alice, Type: VoteUp},
		{UserId: bob, Type: VoteUp},
		{UserId: carol, Type: VoteDown},
	}}

	assert.Equal(t, 1, post.Score())
	assert.Equal(t, 0, (&Post{}).Score())
}

func TestPostVoteOf(t *testing.T) {
	alice, bob := uuid.New(), uuid.New()
	post := Post{Votes: []Vote{{UserId: alice, Type: VoteDown}}}

	vote := post.VoteOf(alice)
	require.NotNil(t, vote)
	assert.Equal(t, VoteDown, *vote)
	assert.Nil(t, post.VoteOf(bob))
}

func TestUserDisplayName(t *testing.T) {
	name := "breadmaker"
	assert.Equal(t, "breadmaker", (&User{Name: "Bread Maker", Username: &name}).DisplayName())
	assert.Equal(t, "Bread Maker", (&User{Name: "Bread Maker"}).DisplayName())
}
