package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/ideatrack/internal/client/api"
	"github.com/dmitrijs2005/ideatrack/internal/client/config"
	"github.com/dmitrijs2005/ideatrack/internal/client/ideas"
	"github.com/dmitrijs2005/ideatrack/internal/client/models"
	"github.com/dmitrijs2005/ideatrack/internal/client/services"
	"github.com/dmitrijs2005/ideatrack/internal/client/session"
	"github.com/dmitrijs2005/ideatrack/internal/client/storage"
	"github.com/dmitrijs2005/ideatrack/internal/logging"
)

// App wires the client together: durable storage, the session store, the HTTP
// client, the idea cache, and the services the REPL commands call.
type App struct {
	config *config.Config
	log    logging.Logger

	store   storage.Store
	session *session.Store
	cache   *ideas.Cache

	authService services.AuthService
	ideaService services.IdeaService
	api         *api.Client

	reader *bufio.Reader
}

// NewApp builds the object graph. Order matters: the invalidation handler and
// the cache binding must be registered before the session store restores,
// so a persisted session triggers exactly one idea load on startup.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	st, err := storage.Open(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open local storage: %w", err)
	}

	sess := session.NewStore(st, log)

	client := api.NewClient(c.APIBaseURL, c.RequestTimeout, sess, log)
	client.SetRetryWait(c.RetryWait)
	client.OnAuthenticationInvalidated(func(ctx context.Context) {
		sess.Invalidate(ctx)
	})

	cache := ideas.NewCache(client, log)
	services.BindIdeaLoader(sess, cache, log)

	return &App{
		config:      c,
		log:         log,
		store:       st,
		session:     sess,
		cache:       cache,
		authService: services.NewAuthService(client, sess),
		ideaService: services.NewIdeaService(client, cache),
		api:         client,
		reader:      bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores the persisted session and starts the REPL. Blocks until the
// user exits.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.store.Close(); err != nil {
			a.log.Error(ctx, "failed to close storage", "error", err)
		}
	}()

	a.session.Restore(ctx)

	printlnFn("Welcome to ideatrack (type 'help' for commands)")
	runREPL(ctx, a, a.statusLine, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) isAdmin() bool {
	u := a.session.User()
	return u != nil && (u.Role == models.RoleAdmin || u.Role == models.RoleReviewer)
}

func (a *App) statusLine() string {
	u := a.session.User()
	if u == nil {
		return ""
	}
	return fmt.Sprintf("(%s %s)", u.Name, u.Role)
}
