package domain

import (
	"fmt"
	"time"
)

// DisplayName is the handle shown next to content: the username when set,
// the profile name otherwise.
func (u *User) DisplayName() string {
	if u.Username != nil && *u.Username != "" {
		return *u.Username
	}
	return u.Name
}

// Score sums votes, UP counts +1 and DOWN counts -1.
func (p *Post) Score() int {
	score := 0
	for _, v := range p.Votes {
		switch v.Type {
		case VoteUp:
			score++
		case VoteDown:
			score--
		}
	}
	return score
}

// VoteOf returns the vote cast by userId, or nil.
func (p *Post) VoteOf(userId UserId) *VoteType {
	for i := range p.Votes {
		if p.Votes[i].UserId == userId {
			return &p.Votes[i].Type
		}
	}
	return nil
}

// for debug
func (p *Post) String() string {
	return fmt.Sprintf("[id:%s, title:%s, r/%s, author:%s, created:%s, votes:%d, comments:%d]",
		p.Id, p.Title, p.Subreddit.Name, p.Author.DisplayName(), p.CreatedAt.Format(time.StampMilli), len(p.Votes), len(p.Comments))
}
