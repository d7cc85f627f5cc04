package pg

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/breadit-dev/breadit/shared/domain"
	"github.com/google/uuid"
)

// RecentPosts returns at most limit posts, newest first, skipping offset.
// Posts are FULLY enriched (Author, Subreddit, Votes, Comments). All queries
// run against one snapshot.
func (s *Storage) RecentPosts(ctx context.Context, limit, offset int) ([]domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	var posts []domain.Post
	err := s.withSnapshot(ctx, func(tx *sql.Tx) error {
		var err error
		posts, err = s.recentPosts(tx, limit, offset)
		return err
	})
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *Storage) recentPosts(q Querier, limit, offset int) ([]domain.Post, error) {
	posts := []domain.Post{}
	if limit <= 0 {
		return posts, nil
	}

	// Step 1: posts with author and subreddit
	rows, err := q.Query(`
		SELECT
			p.id, p.title, p.content, p.author_id, p.subreddit_id, p.created_at, p.updated_at,
			u.id, u.name, u.username, u.image, u.created_at,
			s.id, s.name, s.creator_id, s.created_at, s.updated_at
		FROM posts p
		JOIN users u ON u.id = p.author_id
		JOIN subreddits s ON s.id = p.subreddit_id
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent posts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			post            domain.Post
			name, username  sql.NullString
			image           sql.NullString
			subredditAuthor uuid.NullUUID
		)
		err := rows.Scan(
			&post.Id, &post.Title, &post.Content, &post.AuthorId, &post.SubredditId, &post.CreatedAt, &post.UpdatedAt,
			&post.Author.Id, &name, &username, &image, &post.Author.CreatedAt,
			&post.Subreddit.Id, &post.Subreddit.Name, &subredditAuthor, &post.Subreddit.CreatedAt, &post.Subreddit.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		post.Author.Name = name.String
		post.Author.Image = image.String
		if username.Valid {
			post.Author.Username = &username.String
		}
		if subredditAuthor.Valid {
			post.Subreddit.CreatorId = &subredditAuthor.UUID
		}
		post.Votes = []domain.Vote{}
		post.Comments = []domain.Comment{}

		posts = append(posts, post)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}

	// Step 2: votes and comments in one query each.
	// posts no longer grows, so pointers into it are stable.
	idToPost := make(map[domain.PostId]*domain.Post, len(posts))
	ids := make(domain.Ids, 0, len(posts))
	for i := range posts {
		idToPost[posts[i].Id] = &posts[i]
		ids = append(ids, posts[i].Id.String())
	}

	if err := enrichPostsWithVotes(q, ids, idToPost); err != nil {
		return nil, err
	}
	if err := enrichPostsWithComments(q, ids, idToPost); err != nil {
		return nil, err
	}

	return posts, nil
}
