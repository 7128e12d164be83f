package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/atelier/internal/common"
	pb "github.com/dmitrijs2005/atelier/internal/proto"
)

func (a *App) shareURL(token string) string {
	return strings.TrimRight(a.config.ShareBaseURL, "/") + "/share/" + token
}

func (a *App) Share(ctx context.Context) error {
	ctx, cancel := a.rpcContext(ctx)
	defer cancel()

	link, err := a.family.GetShareLink(ctx)
	if err != nil {
		return err
	}
	if link == nil {
		fmt.Fprintln(a.out, "No active share link, use 'rotate' to create one")
		return nil
	}
	a.printLink(link)
	return nil
}

// Rotate issues a new link; the previous one stops working.
func (a *App) Rotate(ctx context.Context) error {
	label, err := a.askDefault("Label", common.DefaultShareLabel)
	if err != nil {
		return err
	}

	ctx, cancel := a.rpcContext(ctx)
	defer cancel()

	link, err := a.family.RotateShareLink(ctx, label)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "New share link issued, the previous one no longer works")
	a.printLink(link)
	return nil
}

func (a *App) Revoke(ctx context.Context) error {
	ctx, cancel := a.rpcContext(ctx)
	defer cancel()

	n, err := a.family.RevokeShareLink(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		fmt.Fprintln(a.out, "There was no active share link")
		return nil
	}
	fmt.Fprintln(a.out, "Share link revoked")
	return nil
}

func (a *App) History(ctx context.Context) error {
	ctx, cancel := a.rpcContext(ctx)
	defer cancel()

	links, err := a.family.ListShareHistory(ctx)
	if err != nil {
		return err
	}
	if len(links) == 0 {
		fmt.Fprintln(a.out, "No share links yet")
		return nil
	}
	for _, l := range links {
		state := "inactive"
		if l.IsActive {
			state = "active"
		}
		fmt.Fprintf(a.out, "%s  %-8s  %s  %s...\n", l.CreatedAt.Local().Format(time.DateTime), state, l.Label, shortToken(l.Token))
	}
	return nil
}

func (a *App) printLink(l *pb.ShareLink) {
	fmt.Fprintf(a.out, "%s: %s\n", l.Label, a.shareURL(l.Token))
}

func shortToken(t string) string {
	if len(t) > 8 {
		return t[:8]
	}
	return t
}
