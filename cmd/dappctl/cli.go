package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/chainsafe/dapp-gateway/pkg/app/gateway"
	etherservice "github.com/chainsafe/dapp-gateway/pkg/ether/service"
	"github.com/chainsafe/dapp-gateway/pkg/interact"
	nftservice "github.com/chainsafe/dapp-gateway/pkg/nft/service"
	tokenservice "github.com/chainsafe/dapp-gateway/pkg/token/service"
	"github.com/chainsafe/dapp-gateway/pkg/txstore"
	"github.com/chainsafe/dapp-gateway/pkg/txtracker"
	"github.com/chainsafe/dapp-gateway/pkg/voting"
	votingservice "github.com/chainsafe/dapp-gateway/pkg/voting/service"
)

var errUsage = errors.New("invalid usage, run dappctl -h")

type txLookup interface {
	Transaction(ctx context.Context, hash string) (*txstore.Record, error)
}

type cli struct {
	token   tokenservice.Service
	nft     nftservice.Service
	voting  votingservice.Service
	ether   etherservice.Service
	txs     txLookup
	account func() (common.Address, bool)

	out  io.Writer
	json bool
}

func newCLI(gw *gateway.Gateway, out io.Writer) *cli {
	return &cli{
		token:   gw.Token,
		nft:     gw.NFT,
		voting:  gw.Voting,
		ether:   gw.Ether,
		txs:     gw,
		account: gw.Client.Account,
		out:     out,
	}
}

func (c *cli) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	rest := args[1:]
	switch args[0] {
	case "wallet":
		return c.wallet(ctx)
	case "token":
		return c.tokenCmd(ctx, rest)
	case "nft":
		return c.nftCmd(ctx, rest)
	case "vote":
		return c.voteCmd(ctx, rest)
	case "eth":
		return c.ethCmd(ctx, rest)
	case "tx":
		return c.txCmd(ctx, rest)
	default:
		return fmt.Errorf("unknown command %q: %w", args[0], errUsage)
	}
}

// print writes v as JSON in json mode and text otherwise.
func (c *cli) print(v any, text string, args ...any) {
	if c.json {
		enc := json.NewEncoder(c.out)
		enc.SetIndent("", "  ")
		_ = enc.Encode(v)
		return
	}
	fmt.Fprintf(c.out, text+"\n", args...)
}

// address returns the address at args[i], or the wallet account when absent.
func (c *cli) address(args []string, i int) (common.Address, error) {
	if len(args) > i {
		return interact.ParseAddress(args[i])
	}
	if addr, ok := c.account(); ok {
		return addr, nil
	}
	return common.Address{}, errors.New("no address given and no wallet configured")
}

// follow prints every status of handle until observation ends.
func (c *cli) follow(ctx context.Context, handle *txtracker.Handle, err error) error {
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "submitted %s (%s)\n", handle.Hash().Hex(), handle.Meta().Action)

	updates := handle.Subscribe()
	for {
		select {
		case <-ctx.Done():
			fmt.Fprintf(c.out, "stopped watching; the transaction may still be mined\n")
			return ctx.Err()
		case upd, ok := <-updates:
			if !ok {
				return settled(handle.Snapshot())
			}
			if upd.Status == txstore.StatusSubmitted {
				continue
			}
			if upd.BlockNumber != 0 {
				fmt.Fprintf(c.out, "%s in block %d (gas %d)\n", upd.Status, upd.BlockNumber, upd.GasUsed)
			} else {
				fmt.Fprintf(c.out, "%s\n", upd.Status)
			}
		}
	}
}

func settled(upd txtracker.Update) error {
	switch {
	case upd.Status == txstore.StatusFailed:
		return interact.ErrReverted
	case upd.Err != nil:
		return upd.Err
	}
	return nil
}

func (c *cli) wallet(ctx context.Context) error {
	conn, err := c.ether.Connection(ctx)
	if err != nil {
		return err
	}
	if !conn.Connected {
		c.print(conn, "network %s (chain %d), no wallet connected", conn.Network, conn.ChainID)
		return nil
	}
	balance := ""
	if conn.Balance != nil {
		balance = conn.Balance.Display
	}
	c.print(conn, "%s on %s (chain %d), balance %s", conn.Address, conn.Network, conn.ChainID, balance)
	return nil
}

func (c *cli) tokenCmd(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	switch args[0] {
	case "info":
		info, err := c.token.Info(ctx)
		if err != nil {
			return err
		}
		c.print(info, "%s (%s), %d decimals, supply %s at %s",
			info.Name, info.Symbol, info.Decimals, info.TotalSupply, info.ContractAddress)
		return nil

	case "balance":
		addr, err := c.address(args, 1)
		if err != nil {
			return err
		}
		bal, err := c.token.Balance(ctx, addr)
		if err != nil {
			return err
		}
		c.print(bal, "%s %s", bal.Display, bal.Symbol)
		return nil

	case "cooldown":
		fs := c.flags("token cooldown")
		watch := fs.Bool("watch", false, "Count down until minting is possible")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		addr, err := c.address(fs.Args(), 0)
		if err != nil {
			return err
		}
		if *watch {
			return c.watchCooldown(ctx, addr)
		}
		cd, err := c.token.Cooldown(ctx, addr)
		if err != nil {
			return err
		}
		if cd.CanMint {
			c.print(cd, "ready to mint")
		} else {
			c.print(cd, "next mint in %s", cd.Countdown)
		}
		return nil

	case "mint":
		handle, err := c.token.Mint(ctx)
		return c.follow(ctx, handle, err)

	case "transfer":
		if len(args) != 3 {
			return errUsage
		}
		handle, err := c.token.Transfer(ctx, args[1], args[2])
		return c.follow(ctx, handle, err)
	}
	return fmt.Errorf("unknown token command %q: %w", args[0], errUsage)
}

func (c *cli) watchCooldown(ctx context.Context, addr common.Address) error {
	updates, err := c.token.WatchCooldown(ctx, addr)
	if err != nil {
		return err
	}
	for cd := range updates {
		if cd.CanMint {
			c.print(cd, "ready to mint")
			return nil
		}
		c.print(cd, "next mint in %s", cd.Countdown)
	}
	return ctx.Err()
}

func (c *cli) nftCmd(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	switch args[0] {
	case "info":
		info, err := c.nft.Info(ctx)
		if err != nil {
			return err
		}
		c.print(info, "%s (%s), %s minted, price %s ETH", info.Name, info.Symbol, info.TotalSupply, info.MintPrice)
		return nil

	case "list":
		addr, err := c.address(args, 1)
		if err != nil {
			return err
		}
		holdings, err := c.nft.TokensOf(ctx, addr)
		if err != nil {
			return err
		}
		c.print(holdings, "%d tokens: %s", holdings.Count, strings.Join(holdings.TokenIDs, ", "))
		return nil

	case "show":
		if len(args) != 2 {
			return errUsage
		}
		id, ok := new(big.Int).SetString(args[1], 10)
		if !ok || id.Sign() < 0 {
			return interact.ValidationError("Invalid token id")
		}
		tok, err := c.nft.Token(ctx, id)
		if err != nil {
			return err
		}
		name := ""
		if tok.Metadata != nil {
			name = tok.Metadata.Name
		}
		c.print(tok, "#%s %q owned by %s", tok.ID, name, tok.Owner)
		return nil

	case "mint":
		fs := c.flags("nft mint")
		name := fs.String("name", "", "Token name")
		description := fs.String("description", "", "Token description")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		handle, err := c.nft.Mint(ctx, *name, *description)
		return c.follow(ctx, handle, err)
	}
	return fmt.Errorf("unknown nft command %q: %w", args[0], errUsage)
}

func (c *cli) voteCmd(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	switch args[0] {
	case "posts":
		fs := c.flags("vote posts")
		count := fs.Int("count", voting.DefaultRecentCount, "Number of posts")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		posts, err := c.voting.RecentPosts(ctx, *count)
		if err != nil {
			return err
		}
		if c.json {
			c.print(posts, "")
			return nil
		}
		for _, p := range posts {
			c.printPost(&p)
		}
		return nil

	case "show":
		id, err := postID(args)
		if err != nil {
			return err
		}
		post, err := c.voting.Post(ctx, id)
		if err != nil {
			return err
		}
		if c.json {
			c.print(post, "")
			return nil
		}
		c.printPost(post)
		return nil

	case "post":
		fs := c.flags("vote post")
		author := fs.String("author", "", "Author name")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		handle, err := c.voting.CreatePost(ctx, strings.Join(fs.Args(), " "), *author)
		return c.follow(ctx, handle, err)

	case "cast":
		if len(args) != 3 {
			return errUsage
		}
		id, err := postID(args)
		if err != nil {
			return err
		}
		var like bool
		switch args[2] {
		case "like":
			like = true
		case "dislike":
		default:
			return interact.ValidationError("Vote must be like or dislike")
		}
		handle, err := c.voting.Vote(ctx, id, like)
		return c.follow(ctx, handle, err)

	case "mine":
		id, err := postID(args)
		if err != nil {
			return err
		}
		addr, err := c.address(args, 2)
		if err != nil {
			return err
		}
		v, err := c.voting.UserVote(ctx, id, addr)
		if err != nil {
			return err
		}
		switch {
		case !v.HasVoted:
			c.print(v, "no vote on post %d", id)
		case v.IsLike:
			c.print(v, "liked post %d", id)
		default:
			c.print(v, "disliked post %d", id)
		}
		return nil
	}
	return fmt.Errorf("unknown vote command %q: %w", args[0], errUsage)
}

func (c *cli) printPost(p *voting.Post) {
	fmt.Fprintf(c.out, "#%d %s, %s\n  %s\n  %d likes, %d dislikes (%d%%)\n",
		p.ID, p.Author, p.FormattedDate, p.Content, p.Likes, p.Dislikes, p.LikePercentage)
}

func postID(args []string) (uint64, error) {
	if len(args) < 2 {
		return 0, errUsage
	}
	id, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		return 0, interact.ValidationError("Invalid post id")
	}
	return id, nil
}

func (c *cli) ethCmd(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	switch args[0] {
	case "balance":
		addr, err := c.address(args, 1)
		if err != nil {
			return err
		}
		bal, err := c.ether.Balance(ctx, addr)
		if err != nil {
			return err
		}
		c.print(bal, "%s %s", bal.Display, bal.Symbol)
		return nil

	case "send":
		if len(args) != 3 {
			return errUsage
		}
		handle, err := c.ether.Send(ctx, args[1], args[2])
		return c.follow(ctx, handle, err)
	}
	return fmt.Errorf("unknown eth command %q: %w", args[0], errUsage)
}

func (c *cli) txCmd(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	rec, err := c.txs.Transaction(ctx, args[0])
	if errors.Is(err, txstore.ErrNotFound) {
		return fmt.Errorf("transaction %s is unknown to this process", args[0])
	}
	if err != nil {
		return err
	}
	c.print(rec, "%s %s on %s: %s", rec.Action, rec.Hash, rec.Network, rec.Status)
	return nil
}

func (c *cli) flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.out)
	return fs
}
