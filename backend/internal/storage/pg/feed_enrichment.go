package pg

import (
	"fmt"

	"github.com/breadit-dev/breadit/shared/domain"
	"github.com/google/uuid"
)

// enrichPostsWithVotes appends every vote cast on the given posts.
func enrichPostsWithVotes(q Querier, postIds domain.Ids, idToPost map[domain.PostId]*domain.Post) error {
	if len(postIds) == 0 {
		return nil
	}

	rows, err := q.Query(`
		SELECT user_id, post_id, type
		FROM votes
		WHERE post_id = ANY($1::uuid[])
	`, postIds)
	if err != nil {
		return fmt.Errorf("failed to fetch votes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			vote     domain.Vote
			voteType string
		)
		if err := rows.Scan(&vote.UserId, &vote.PostId, &voteType); err != nil {
			return fmt.Errorf("failed to scan vote: %w", err)
		}
		vote.Type = domain.VoteType(voteType)

		if post, ok := idToPost[vote.PostId]; ok {
			post.Votes = append(post.Votes, vote)
		}
	}

	return rows.Err()
}

// enrichPostsWithComments appends comments oldest first.
func enrichPostsWithComments(q Querier, postIds domain.Ids, idToPost map[domain.PostId]*domain.Post) error {
	if len(postIds) == 0 {
		return nil
	}

	rows, err := q.Query(`
		SELECT id, text, author_id, post_id, reply_to_id, created_at
		FROM comments
		WHERE post_id = ANY($1::uuid[])
		ORDER BY created_at, id
	`, postIds)
	if err != nil {
		return fmt.Errorf("failed to fetch comments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			comment domain.Comment
			replyTo uuid.NullUUID
		)
		if err := rows.Scan(&comment.Id, &comment.Text, &comment.AuthorId, &comment.PostId, &replyTo, &comment.CreatedAt); err != nil {
			return fmt.Errorf("failed to scan comment: %w", err)
		}
		if replyTo.Valid {
			comment.ReplyToId = &replyTo.UUID
		}

		if post, ok := idToPost[comment.PostId]; ok {
			post.Comments = append(post.Comments, comment)
		}
	}

	return rows.Err()
}
