package domain

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type (
	UserId      = uuid.UUID
	PostId      = uuid.UUID
	CommentId   = uuid.UUID
	SubredditId = uuid.UUID

	Username      = string
	SubredditName = string
	PostTitle     = string

	// Ids are passed to postgres as text[] and cast to uuid[] in queries
	Ids = pq.StringArray
)

type VoteType string

const (
	VoteUp   VoteType = "UP"
	VoteDown VoteType = "DOWN"
)
