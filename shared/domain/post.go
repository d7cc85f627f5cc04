package domain

import "time"

type Subreddit struct {
	Id        SubredditId   `json:"id"`
	Name      SubredditName `json:"name"`
	CreatorId *UserId       `json:"creator_id,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

type Vote struct {
	UserId UserId   `json:"user_id"`
	PostId PostId   `json:"post_id"`
	Type   VoteType `json:"type"`
}

type Comment struct {
	Id        CommentId  `json:"id"`
	Text      string     `json:"text"`
	AuthorId  UserId     `json:"author_id"`
	PostId    PostId     `json:"post_id"`
	ReplyToId *CommentId `json:"reply_to_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// Post as shown in the feed. Author, Subreddit, Votes and Comments are
// populated by the feed query.
type Post struct {
	Id          PostId      `json:"id"`
	Title       PostTitle   `json:"title"`
	Content     string      `json:"content"` // markdown
	AuthorId    UserId      `json:"author_id"`
	SubredditId SubredditId `json:"subreddit_id"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`

	Author    User      `json:"author"`
	Subreddit Subreddit `json:"subreddit"`
	Votes     []Vote    `json:"votes"`
	Comments  []Comment `json:"comments"`
}
