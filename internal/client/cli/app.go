package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/notesgraph/internal/client/client"
	"github.com/dmitrijs2005/notesgraph/internal/client/config"
	"github.com/dmitrijs2005/notesgraph/internal/logging"
)

// notesClient is the part of *client.Client the commands use.
type notesClient interface {
	Register(ctx context.Context, username, email, password string) (*client.User, error)
	Login(ctx context.Context, username, password string) error
	Logout()
	LoggedIn() bool
	FindUser(ctx context.Context, username string) (*client.User, error)
	Notes(ctx context.Context, userID string, first int, after string) (*client.NotesPage, error)
	Note(ctx context.Context, id int) (*client.Note, error)
	CreateNote(ctx context.Context, title, body string, userID int) (*client.Note, error)
	UpdateNote(ctx context.Context, id int, title, body *string) (*client.Note, error)
	DeleteNote(ctx context.Context, id int) (*client.Note, error)
}

type App struct {
	config *config.Config
	client notesClient
	logger logging.Logger
	reader *bufio.Reader
	out    io.Writer
	user   *client.User
}

// NewApp builds the CLI from configuration. Diagnostics go to stderr,
// user-facing output to stdout.
func NewApp(c *config.Config) (*App, error) {
	l, err := logging.New(os.Stderr, c.LogLevel, true)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	return &App{
		config: c,
		client: client.New(c.ServerEndpointAddr, c.RequestTimeout),
		logger: l.With("module", "cli"),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.user != nil && a.client.LoggedIn()
}

func (a *App) getStatus() string {
	if a.user == nil {
		return ""
	}
	return fmt.Sprintf(" (%s)", a.user.Username)
}

// Run starts the REPL and returns when the user exits, input ends or ctx is done.
func (a *App) Run(ctx context.Context) {
	a.logger.Info(ctx, "notes client started", "endpoint", a.config.ServerEndpointAddr)
	printlnFn("Welcome to the notes CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}
