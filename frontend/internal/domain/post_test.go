package frontend_domain

import (
	"testing"

	"github.com/breadit-dev/breadit/shared/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPostVoteFlags(t *testing.T) {
	down := &Post{Post: domain.Post{Id: uuid.New()}, UserVote: domain.VoteDown}
	assert.True(t, down.Downvoted())
	assert.False(t, down.Upvoted())

	none := &Post{}
	assert.False(t, none.Upvoted())
	assert.False(t, none.Downvoted())
}

func TestFeedPageData_NextPage(t *testing.T) {
	assert.Equal(t, 3, FeedPageData{CurrentPage: 2}.NextPage())
}
