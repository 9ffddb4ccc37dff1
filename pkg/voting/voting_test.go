package voting

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
)

func TestLikePercentage(t *testing.T) {
	cases := []struct {
		likes, dislikes uint64
		want            int
	}{
		{0, 0, 0},
		{1, 0, 100},
		{0, 3, 0},
		{1, 1, 50},
		{2, 1, 67},
		{1, 2, 33},
		{1, 7, 13}, // 12.5 rounds up
	}
	for _, tc := range cases {
		if got := LikePercentage(tc.likes, tc.dislikes); got != tc.want {
			t.Fatalf("LikePercentage(%d, %d) = %d, want %d", tc.likes, tc.dislikes, got, tc.want)
		}
	}
}

func TestFormatPost(t *testing.T) {
	p := FormatPost(ContractPost{
		Id:        big.NewInt(5),
		Content:   "gm",
		Author:    "alice",
		Timestamp: big.NewInt(1700000000),
		Likes:     big.NewInt(3),
		Dislikes:  big.NewInt(1),
		Exists:    true,
	})
	if p.ID != 5 || p.TotalVotes != 4 || p.LikePercentage != 75 {
		t.Fatalf("unexpected post %+v", p)
	}
	if p.FormattedDate != "2023-11-14 22:13:20 UTC" {
		t.Fatalf("unexpected date %s", p.FormattedDate)
	}
}

func TestClampRecentCount(t *testing.T) {
	if ClampRecentCount(0) != DefaultRecentCount || ClampRecentCount(-4) != DefaultRecentCount {
		t.Fatal("expected default for non-positive counts")
	}
	if ClampRecentCount(1000) != MaxRecentCount {
		t.Fatal("expected cap")
	}
	if ClampRecentCount(25) != 25 {
		t.Fatal("expected passthrough")
	}
}

func TestVoteKey(t *testing.T) {
	addr := common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	if got := VoteKey(5, addr); got != "voting:vote:5:0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266" {
		t.Fatalf("unexpected key %s", got)
	}
}
