package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/dkrastins/needmarket/internal/client/api"
	"github.com/dkrastins/needmarket/internal/client/config"
	"github.com/dkrastins/needmarket/internal/client/models"
	"github.com/dkrastins/needmarket/internal/client/session"
	"github.com/dkrastins/needmarket/internal/client/storage"
	"github.com/dkrastins/needmarket/internal/logging"

	_ "modernc.org/sqlite"
)

// sessionController is the slice of the session store the CLI needs.
type sessionController interface {
	Login(ctx context.Context, identifier, secret string) error
	Register(ctx context.Context, r api.Registration) error
	Logout(ctx context.Context) error
	IsAuthenticated() bool
	User() *models.User
	SetUser(ctx context.Context, user *models.User) error
	Token() (string, bool)
	LastError() string
	ClearError()
}

// market is the slice of the API client the command handlers use.
type market interface {
	ListNeeds(ctx context.Context) ([]models.Need, error)
	GetNeed(ctx context.Context, id string) (*models.Need, error)
	CreateNeed(ctx context.Context, r api.NeedRequest) (*models.Need, error)
	DeleteNeed(ctx context.Context, id string) error
	MyNeeds(ctx context.Context) ([]models.Need, error)
	NeedBids(ctx context.Context, needID string) ([]models.Bid, error)
	PlaceBid(ctx context.Context, needID string, r api.BidRequest) (*models.Bid, error)
	MyBids(ctx context.Context) ([]models.Bid, error)
	WithdrawBid(ctx context.Context, bidID string) error
	Conversations(ctx context.Context) ([]models.Conversation, error)
	Messages(ctx context.Context, conversationID string) ([]models.ChatMessage, error)
	SendMessage(ctx context.Context, conversationID, text string) (*models.ChatMessage, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	UpdateProfile(ctx context.Context, id string, r api.ProfileUpdate) (*models.User, error)
	CompletedNeeds(ctx context.Context, id string) ([]models.CompletedNeed, error)
	UserRating(ctx context.Context, id string) (*models.UserRating, error)
}

// App wires the session store, the API client and the REPL together.
type App struct {
	config *config.Config
	store  sessionController
	market market
	log    logging.Logger
	reader *bufio.Reader

	// set by the request pipeline's 401 handler; the REPL shows a notice
	// the next time the prompt is printed and then resets the flag.
	sessionExpired bool
}

// NewApp composes the client: local database, storage repository, HTTP
// client with its middleware pipeline, and the session store seeded from
// storage. The returned cleanup closes the database.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, func(), error) {
	if log == nil {
		log = logging.Nop{}
	}

	repo, db, err := storage.Open(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "failed to open local database", "path", cfg.DatabasePath, "error", err)
		return nil, nil, err
	}
	cleanup := func() { _ = db.Close() }

	client := api.NewClient(cfg.APIBaseURL, repo,
		api.WithLogger(log),
		api.WithTimeout(cfg.RequestTimeout),
	)

	store := session.NewStore(ctx, client, repo, log)
	client.SetTokenSource(store)

	a := &App{config: cfg, store: store, market: client, log: log, reader: bufio.NewReader(os.Stdin)}
	client.SetNavigator(a)

	return a, cleanup, nil
}

// ToLogin implements api.Navigator: the pipeline observed a 401, already
// cleared the persisted mirror, and is kicking the UI back to the login
// surface. Resetting the store is idempotent with what the pipeline did.
func (a *App) ToLogin() {
	_ = a.store.Logout(context.Background())
	a.sessionExpired = true
}

func (a *App) isLoggedIn() bool {
	return a.store.IsAuthenticated()
}

// status renders the prompt segment between the program name and '>'.
func (a *App) status() string {
	if a.sessionExpired {
		a.sessionExpired = false
		printlnFn("Session expired, please log in again.")
	}
	if u := a.store.User(); u != nil && a.store.IsAuthenticated() {
		return u.Username
	}
	return "not logged in"
}

// Run starts the REPL and blocks until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	fmt.Println("needmarket CLI (type 'help' for commands)")
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}
