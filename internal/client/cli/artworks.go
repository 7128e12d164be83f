package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/atelier/internal/agecalc"
	"github.com/dmitrijs2005/atelier/internal/client/client"
	"github.com/dmitrijs2005/atelier/internal/filex"
	"github.com/dmitrijs2005/atelier/internal/netx"
	pb "github.com/dmitrijs2005/atelier/internal/proto"
)

// maxSourceBytes bounds the image file read from disk before compression.
const maxSourceBytes = 64 << 20

// Test seams.
var (
	readFile  = func(name string) ([]byte, error) { return filex.ReadLimited(name, maxSourceBytes) }
	writeFile = os.WriteFile
	fetch     = netx.Fetch
	today     = func() time.Time { return time.Now() }
)

// Upload sends one image file. Compression runs in the background while the
// metadata is being entered.
func (a *App) Upload(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError{usage: "upload <file>"}
	}

	raw, err := readFile(args[0])
	if err != nil {
		return err
	}

	prepCtx, cancelPrep := context.WithCancel(ctx)
	defer cancelPrep()
	prepared := a.artworks.Prepare(prepCtx, raw)

	meta, err := a.askArtworkMeta(ctx)
	if err != nil {
		return err
	}

	res := <-prepared
	if res.Fallback {
		fmt.Fprintf(a.out, "Compression failed (%v), sending the original %d KB\n", res.Err, len(res.Data)/1024)
	} else {
		fmt.Fprintf(a.out, "Compressed %d KB -> %d KB\n", len(raw)/1024, len(res.Data)/1024)
	}

	ctx, cancel := a.rpcContext(ctx)
	defer cancel()

	out, err := a.artworks.Upload(ctx, res, meta)
	if err != nil {
		return err
	}

	if out.Pending != nil {
		fmt.Fprintf(a.out, "The image was stored but its record was not saved. Journaled as #%d, use 'retry %d'\n",
			out.Pending.ID, out.Pending.ID)
		return nil
	}

	fmt.Fprintf(a.out, "Uploaded %s", out.Artwork.Id)
	if out.Artwork.AgeAtCreation != "" {
		fmt.Fprintf(a.out, " (%s)", out.Artwork.AgeAtCreation)
	}
	fmt.Fprintln(a.out)
	return nil
}

func (a *App) askArtworkMeta(ctx context.Context) (*pb.ArtworkMeta, error) {
	meta := &pb.ArtworkMeta{}

	shot, err := a.askDefault("Date drawn (YYYY-MM-DD)", today().Format(agecalc.DateLayout))
	if err != nil {
		return nil, err
	}
	if _, err := agecalc.ParseDate(shot); err != nil {
		return nil, err
	}
	meta.ShotAtDate = shot

	childID, err := a.pickChild(ctx)
	if err != nil {
		return nil, err
	}
	meta.ChildId = childID

	if meta.Memo, err = a.ask("Memo (optional)"); err != nil {
		return nil, err
	}

	tags, err := a.ask("Tags, comma separated (optional)")
	if err != nil {
		return nil, err
	}
	meta.Tags = splitTags(tags)

	return meta, nil
}

// pickChild offers the owner's children by number. An unreachable server or
// an empty answer files the artwork under no child.
func (a *App) pickChild(ctx context.Context) (string, error) {
	rctx, cancel := a.rpcContext(ctx)
	children, err := a.family.ListChildren(rctx)
	cancel()
	if err != nil || len(children) == 0 {
		return "", nil
	}

	for i, c := range children {
		fmt.Fprintf(a.out, "  %d) %s\n", i+1, c.Name)
	}
	answer, err := a.ask("Child number (empty for none)")
	if err != nil || answer == "" {
		return "", err
	}

	n, err := strconv.Atoi(answer)
	if err != nil || n < 1 || n > len(children) {
		return "", fmt.Errorf("no child number %q", answer)
	}
	return children[n-1].Id, nil
}

func (a *App) List(ctx context.Context, args []string) error {
	childID := ""
	if len(args) > 0 {
		childID = args[0]
	}

	ctx, cancel := a.rpcContext(ctx)
	defer cancel()

	items, err := a.artworks.List(ctx, childID)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No artworks")
		return nil
	}

	for _, it := range items {
		art := it.Artwork
		var b strings.Builder
		fmt.Fprintf(&b, "%s  %s", art.Id, orDash(art.ShotAtDate))
		if art.AgeAtCreation != "" {
			fmt.Fprintf(&b, "  %s", art.AgeAtCreation)
		}
		if it.ChildKnown {
			fmt.Fprintf(&b, "  [%s]", it.ChildName)
		}
		if art.Memo != "" {
			fmt.Fprintf(&b, "  %q", art.Memo)
		}
		if len(art.Tags) > 0 {
			fmt.Fprintf(&b, "  #%s", strings.Join(art.Tags, " #"))
		}
		fmt.Fprintln(a.out, b.String())

		if it.Available {
			fmt.Fprintln(a.out, "    "+it.Url)
		} else {
			fmt.Fprintln(a.out, "    (image unavailable)")
		}
	}
	return nil
}

func (a *App) Delete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError{usage: "delete <id>"}
	}

	ctx, cancel := a.rpcContext(ctx)
	defer cancel()

	if err := a.artworks.Delete(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Artwork deleted")
	return nil
}

// Save downloads the image of one artwork through its signed URL.
func (a *App) Save(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usageError{usage: "save <id> <file>"}
	}
	id, path := args[0], args[1]

	ctx, cancel := a.rpcContext(ctx)
	defer cancel()

	items, err := a.artworks.List(ctx, "")
	if err != nil {
		return err
	}

	for _, it := range items {
		if it.Artwork.Id != id {
			continue
		}
		if !it.Available {
			return errors.New("the image is currently unavailable")
		}
		data, err := fetch(ctx, it.Url, 0)
		if err != nil {
			return err
		}
		if err := writeFile(path, data, 0o600); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Saved %d KB to %s\n", len(data)/1024, path)
		return nil
	}
	return client.ErrNotFound
}

func (a *App) Pending(ctx context.Context) error {
	list, err := a.artworks.Pending(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "Nothing pending")
		return nil
	}
	for _, p := range list {
		fmt.Fprintf(a.out, "#%d  %s  %s  %s\n", p.ID, p.CreatedAt.Local().Format(time.DateTime), p.StoragePath, p.Reason)
	}
	return nil
}

func (a *App) Retry(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError{usage: "retry <n>"}
	}
	id, err := strconv.ParseInt(strings.TrimPrefix(args[0], "#"), 10, 64)
	if err != nil {
		return usageError{usage: "retry <n>"}
	}

	ctx, cancel := a.rpcContext(ctx)
	defer cancel()

	artwork, err := a.artworks.Retry(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Recorded as %s\n", artwork.Id)
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
