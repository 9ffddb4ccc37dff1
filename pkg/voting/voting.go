// Package voting holds the types of the post voting contract and the
// derived views shown to users.
package voting

import (
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

const (
	// DefaultRecentCount is the number of recent posts listed when the
	// caller does not ask for a count.
	DefaultRecentCount = 10
	// MaxRecentCount caps a single recent posts read.
	MaxRecentCount = 100

	// RecentPattern matches every cached recent posts list.
	RecentPattern = "voting:recent:*"

	dateLayout = "2006-01-02 15:04:05 UTC"
)

// PostKey is the cache key of post id.
func PostKey(id uint64) string { return "voting:post:" + strconv.FormatUint(id, 10) }

// RecentKey is the cache key of the latest count posts.
func RecentKey(count int) string { return "voting:recent:" + strconv.Itoa(count) }

// VoteKey is the cache key of the vote of addr on post id.
func VoteKey(id uint64, addr common.Address) string {
	return "voting:vote:" + strconv.FormatUint(id, 10) + ":" + strings.ToLower(addr.Hex())
}

// ContractPost mirrors the post tuple returned by the contract.
type ContractPost struct {
	Id        *big.Int //nolint:revive // matches the ABI tuple field
	Content   string
	Author    string
	Timestamp *big.Int
	Likes     *big.Int
	Dislikes  *big.Int
	Exists    bool
}

// Post is a post with its derived vote figures.
type Post struct {
	ID             uint64 `json:"id"`
	Content        string `json:"content"`
	Author         string `json:"author"`
	Timestamp      int64  `json:"timestamp"`
	Likes          uint64 `json:"likes"`
	Dislikes       uint64 `json:"dislikes"`
	Exists         bool   `json:"exists"`
	TotalVotes     uint64 `json:"totalVotes"`
	LikePercentage int    `json:"likePercentage"`
	FormattedDate  string `json:"formattedDate"`
}

// UserVote is the vote of one account on one post.
type UserVote struct {
	PostID   uint64 `json:"postId"`
	Address  string `json:"address"`
	HasVoted bool   `json:"hasVoted"`
	IsLike   bool   `json:"isLike"`
}

// FormatPost derives the display view of p.
func FormatPost(p ContractPost) Post {
	post := Post{
		ID:        uint64Of(p.Id),
		Content:   p.Content,
		Author:    p.Author,
		Timestamp: int64(uint64Of(p.Timestamp)),
		Likes:     uint64Of(p.Likes),
		Dislikes:  uint64Of(p.Dislikes),
		Exists:    p.Exists,
	}
	post.TotalVotes = post.Likes + post.Dislikes
	post.LikePercentage = LikePercentage(post.Likes, post.Dislikes)
	post.FormattedDate = time.Unix(post.Timestamp, 0).UTC().Format(dateLayout)
	return post
}

// LikePercentage is the share of likes rounded half up, or 0 without votes.
func LikePercentage(likes, dislikes uint64) int {
	total := likes + dislikes
	if total == 0 {
		return 0
	}
	return int((likes*200 + total) / (2 * total))
}

// ClampRecentCount applies the default and the upper bound to count.
func ClampRecentCount(count int) int {
	switch {
	case count <= 0:
		return DefaultRecentCount
	case count > MaxRecentCount:
		return MaxRecentCount
	}
	return count
}

func uint64Of(v *big.Int) uint64 {
	if v == nil || v.Sign() < 0 || !v.IsUint64() {
		return 0
	}
	return v.Uint64()
}
