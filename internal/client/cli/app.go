package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/atelier/internal/client/client"
	"github.com/dmitrijs2005/atelier/internal/client/config"
	"github.com/dmitrijs2005/atelier/internal/client/services"
	"github.com/dmitrijs2005/atelier/internal/filex"
	"github.com/dmitrijs2005/atelier/internal/imagex"
	"github.com/dmitrijs2005/atelier/internal/logging"
	pb "github.com/dmitrijs2005/atelier/internal/proto"
)

// FamilyAPI is the part of the backend client the children and share link
// commands use directly.
type FamilyAPI interface {
	CreateChild(ctx context.Context, name, birthDate, color string) (*pb.Child, error)
	ListChildren(ctx context.Context) ([]*pb.Child, error)
	DeleteChild(ctx context.Context, id string) error

	GetShareLink(ctx context.Context) (*pb.ShareLink, error)
	RotateShareLink(ctx context.Context, label string) (*pb.ShareLink, error)
	RevokeShareLink(ctx context.Context) (int64, error)
	ListShareHistory(ctx context.Context) ([]*pb.ShareLink, error)
}

type App struct {
	config   *config.Config
	auth     services.AuthService
	artworks services.ArtworkService
	family   FamilyAPI
	db       *sql.DB
	reader   *bufio.Reader
	out      io.Writer
	email    string
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	// warnings only, so they do not interleave with the prompt
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	if _, err := filex.EnsureParentDir(c.JournalPath); err != nil {
		return nil, fmt.Errorf("error preparing journal directory: %w", err)
	}

	db, err := client.InitDatabase(ctx, c.JournalPath)
	if err != nil {
		return nil, fmt.Errorf("error initializing journal: %w", err)
	}

	api, err := client.NewAtelierClient(c.ServerEndpointAddr)
	if err != nil {
		db.Close()
		return nil, err
	}

	repos := client.NewRepositories(db)

	return &App{
		config:   c,
		auth:     services.NewAuthService(api, repos.Session),
		artworks: services.NewArtworkService(api, repos.Pending, imagex.NewDefaultCompressor(), logger),
		family:   api,
		db:       db,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

// Run resumes a stored session when possible and blocks in the REPL until
// the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()
	defer a.auth.Close(context.WithoutCancel(ctx))

	fmt.Fprintln(a.out, "Welcome to Atelier CLI (type 'help' for commands)")

	rctx, cancel := a.rpcContext(ctx)
	email, ok, err := a.auth.Resume(rctx)
	cancel()
	switch {
	case err != nil:
		fmt.Fprintln(a.out, "Could not resume the previous session:", describeError(err))
	case ok:
		a.email = email
		fmt.Fprintln(a.out, "Welcome back,", email)
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.email != ""
}

func (a *App) getStatus() string {
	if a.email == "" {
		return ""
	}
	return fmt.Sprintf(" (%s)", a.email)
}

func (a *App) rpcContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.config == nil || a.config.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}

func (a *App) ask(prompt string) (string, error) {
	return GetSimpleText(a.reader, prompt, a.out)
}

func (a *App) askDefault(prompt, def string) (string, error) {
	return GetTextOrDefault(a.reader, prompt, def, a.out)
}
