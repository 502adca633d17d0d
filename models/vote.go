package models

// VoteValue is the direction of a single user's vote on a post.
type VoteValue int

const (
	// DownVote counts against the post.
	DownVote VoteValue = -1

	// UpVote counts in favour of the post.
	UpVote VoteValue = 1
)

// Vote is one user's vote on one post. A user holds at most one vote per
// post; voting again replaces the previous value.
type Vote struct {
	PostID int64
	UserID int64
	Value  VoteValue
}

// VoteResult reports the recounted totals after a vote was recorded.
type VoteResult struct {
	PostID    int64 `json:"post_id"`
	UpVotes   int64 `json:"up_votes"`
	DownVotes int64 `json:"down_votes"`
}
