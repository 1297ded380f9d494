// Package client is the application-side SDK over the remote task store:
// session management, the task repository, the list controller, and form
// validation. A Client is constructed explicitly and handed its lifecycle by
// whatever owns the foreground/background signal; nothing here registers
// global state.
package client

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/taskmaster/taskmaster/api/transport"
	"github.com/taskmaster/taskmaster/domain"
)

// Config carries the backend endpoint/key surface plus client-side tuning.
type Config struct {
	BaseURL string
	APIKey  string

	RequestTimeout time.Duration
	// RefreshInterval is how often the background refresher wakes up;
	// RefreshMargin is how close to expiry a token must be before it acts.
	RefreshInterval time.Duration
	RefreshMargin   time.Duration

	// Dial overrides the transport dial, e.g. for in-memory listeners in
	// tests.
	Dial fasthttp.DialFunc
}

func (c Config) withDefaults() Config {
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = 10 * time.Second
	}
	if c.RefreshInterval <= 0 {
		c.RefreshInterval = 30 * time.Second
	}
	if c.RefreshMargin <= 0 {
		c.RefreshMargin = time.Minute
	}
	return c
}

// refreshSchedule renders the interval for the cron scheduler. Duration
// formatting keeps sub-second intervals intact.
func (c Config) refreshSchedule() string {
	return "@every " + c.RefreshInterval.String()
}

// SessionHandler observes session changes; it receives nil on sign-out.
type SessionHandler func(session *domain.Session)

// Client talks to the remote task store. All exported methods are safe for
// concurrent use, though the expected embedding is a single UI event loop.
type Client struct {
	cfg    Config
	http   *fasthttp.Client
	store  SessionStore
	logger *zap.Logger

	mu          sync.RWMutex
	session     *domain.Session
	handlers    map[int64]SessionHandler
	nextHandler int64

	tasks *Tasks

	cronMu    sync.Mutex
	refresher *cron.Cron
}

// New builds a Client. A nil store keeps the session in memory only.
func New(cfg Config, store SessionStore, logger *zap.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "base URL is required")
	}
	if store == nil {
		store = NewMemorySessionStore()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	cfg = cfg.withDefaults()
	c := &Client{
		cfg: cfg,
		http: &fasthttp.Client{
			Dial:         cfg.Dial,
			ReadTimeout:  cfg.RequestTimeout,
			WriteTimeout: cfg.RequestTimeout,
		},
		store:    store,
		logger:   logger,
		handlers: make(map[int64]SessionHandler),
	}
	c.tasks = &Tasks{client: c, logger: logger}
	return c, nil
}

// Tasks exposes the task repository bound to this client's session.
func (c *Client) Tasks() *Tasks {
	return c.tasks
}

// Start restores any persisted session and begins background token refresh.
// The owner of the foreground signal calls Start on foreground and Stop on
// background.
func (c *Client) Start(ctx context.Context) error {
	session, err := c.store.Load()
	if err != nil {
		return err
	}
	if session != nil {
		c.setSession(session, false)
		if session.ExpiresWithin(c.cfg.RefreshMargin, time.Now()) {
			if err := c.refreshSession(ctx); err != nil {
				c.logger.Warn("initial session refresh failed", zap.Error(err))
			}
		}
	}

	c.cronMu.Lock()
	defer c.cronMu.Unlock()
	if c.refresher != nil {
		return nil
	}
	c.refresher = cron.New(cron.WithSeconds())
	if _, err := c.refresher.AddFunc(c.cfg.refreshSchedule(), c.refreshTick); err != nil {
		c.refresher = nil
		return err
	}
	c.refresher.Start()
	return nil
}

// Stop halts background refresh. The session stays loaded and persisted.
func (c *Client) Stop() {
	c.cronMu.Lock()
	defer c.cronMu.Unlock()
	if c.refresher == nil {
		return
	}
	<-c.refresher.Stop().Done()
	c.refresher = nil
}

// CurrentSession returns the active session, or nil when signed out.
func (c *Client) CurrentSession() *domain.Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.session == nil {
		return nil
	}
	copied := *c.session
	return &copied
}

// OnSessionChange registers a handler fired on sign-in, sign-out and token
// refresh. The returned cancel func unregisters it; call it on teardown.
func (c *Client) OnSessionChange(fn SessionHandler) (cancel func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextHandler
	c.nextHandler++
	c.handlers[id] = fn

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.handlers, id)
	}
}

// SignIn authenticates with email and password. Blank fields fail before any
// network call. Success flows through the same notification path as
// background refresh.
func (c *Client) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	if email == "" || password == "" {
		return nil, domain.NewError(domain.ErrCodeAuth, "please fill in all fields")
	}

	var session domain.Session
	err := c.call(ctx, http.MethodPost, "/api/v1/auth/login",
		transport.CredentialsRequest{Email: email, Password: password}, &session, false)
	if err != nil {
		return nil, classify(err, domain.ErrCodeAuth)
	}

	c.setSession(&session, true)
	return c.CurrentSession(), nil
}

// SignOut revokes the refresh grant (best effort) and clears local state.
func (c *Client) SignOut(ctx context.Context) error {
	session := c.CurrentSession()
	if session == nil {
		return nil
	}

	err := c.call(ctx, http.MethodPost, "/api/v1/auth/logout",
		transport.RefreshRequest{RefreshToken: session.RefreshToken}, nil, false)
	if err != nil {
		c.logger.Warn("remote sign-out failed", zap.Error(err))
	}

	c.setSession(nil, true)
	return nil
}

func (c *Client) refreshTick() {
	session := c.CurrentSession()
	if session == nil || !session.ExpiresWithin(c.cfg.RefreshMargin, time.Now()) {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.cfg.RequestTimeout)
	defer cancel()

	if err := c.refreshSession(ctx); err != nil {
		c.logger.Warn("session refresh failed", zap.Error(err))
	}
}

func (c *Client) refreshSession(ctx context.Context) error {
	current := c.CurrentSession()
	if current == nil {
		return domain.ErrNoSession
	}

	var refreshed domain.Session
	err := c.call(ctx, http.MethodPost, "/api/v1/auth/refresh",
		transport.RefreshRequest{RefreshToken: current.RefreshToken}, &refreshed, false)
	if err != nil {
		// A rejected grant means the session is dead on the server; holding
		// on to it locally would only produce 401s.
		if domain.IsDomainError(err, domain.ErrCodeNotFound) || domain.IsDomainError(err, domain.ErrCodeAuth) {
			c.setSession(nil, true)
		}
		return err
	}

	c.setSession(&refreshed, true)
	return nil
}

func (c *Client) setSession(session *domain.Session, persist bool) {
	c.mu.Lock()
	c.session = session
	handlers := make([]SessionHandler, 0, len(c.handlers))
	for _, fn := range c.handlers {
		handlers = append(handlers, fn)
	}
	c.mu.Unlock()

	if persist {
		if err := c.store.Save(session); err != nil {
			c.logger.Error("failed to persist session", zap.Error(err))
		}
	}

	for _, fn := range handlers {
		fn(session)
	}
}
