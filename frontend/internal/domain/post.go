package frontend_domain

import (
	"html/template"

	"github.com/breadit-dev/breadit/shared/domain"
)

// Post wraps a feed post with everything the template needs precomputed.
type Post struct {
	domain.Post
	Score        int
	UserVote     domain.VoteType // empty when the viewer has not voted
	CommentCount int
	Content      template.HTML
	Truncated    bool
}

func (p *Post) Upvoted() bool   { return p.UserVote == domain.VoteUp }
func (p *Post) Downvoted() bool { return p.UserVote == domain.VoteDown }
