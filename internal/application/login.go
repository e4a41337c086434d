package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/terabox-cookie-cli/internal/domain"
	"github.com/bnema/terabox-cookie-cli/internal/ports"
	"go.uber.org/zap"
)

const (
	pageSourceSnippetBytes = 500
	diagnosticsTimeout     = 10 * time.Second
)

type LoginConfig struct {
	LoginURL       string
	TargetURL      string
	ExpectedDomain string

	PageSettle      time.Duration
	EmailTimeout    time.Duration
	FieldSettle     time.Duration
	PasswordTimeout time.Duration
	SubmitSettle    time.Duration
	TargetSettle    time.Duration
	PollInterval    time.Duration

	CaptureLoginPage bool
	CookiePriority   []string
	Browser          ports.BrowserOptions
}

func (c LoginConfig) requestTemplate() domain.RequestTemplate {
	return domain.RequestTemplate{TargetURL: c.TargetURL, LoginURL: c.LoginURL}
}

// LoginFlow drives one browser session from launch to cookie capture.
type LoginFlow struct {
	launcher    ports.BrowserLauncher
	locator     *Locator
	diagnostics ports.DiagnosticsSink
	metrics     ports.Metrics
	logger      *zap.Logger
	cfg         LoginConfig
}

func NewLoginFlow(launcher ports.BrowserLauncher, diagnostics ports.DiagnosticsSink, metrics ports.Metrics, logger *zap.Logger, cfg LoginConfig) *LoginFlow {
	if logger == nil {
		logger = zap.NewNop()
	}
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}

	return &LoginFlow{
		launcher:    launcher,
		locator:     NewLocator(logger, cfg.PollInterval),
		diagnostics: diagnostics,
		metrics:     metrics,
		logger:      logger,
		cfg:         cfg,
	}
}

// Run performs a single login attempt. The browser session it opens is
// closed exactly once before Run returns, panics included.
func (f *LoginFlow) Run(ctx context.Context, creds domain.Credentials) (capture domain.Capture, err error) {
	logger := f.logger.With(zap.String("account", creds.Label))

	session, err := f.launcher.Open(ctx, f.cfg.Browser)
	if err != nil {
		if errors.Is(err, domain.ErrLaunch) {
			return domain.Capture{}, err
		}
		return domain.Capture{}, fmt.Errorf("%w: %w", domain.ErrLaunch, err)
	}

	a := &loginAttempt{
		flow:    f,
		session: session,
		creds:   creds,
		logger:  logger,
		state:   domain.LoginInit,
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Error("login flow panicked", zap.Any("panic", r), zap.String("state", string(a.state)))
			capture = domain.Capture{}
			err = fmt.Errorf("%w: %v", domain.ErrUnexpected, r)
			a.transition(domain.LoginFailed)
			a.saveScreenshot(ctx, string(domain.FailureError))
		}
		if closeErr := session.Close(); closeErr != nil {
			logger.Warn("close browser session", zap.Error(closeErr))
		}
	}()

	return a.run(ctx)
}

type loginAttempt struct {
	flow    *LoginFlow
	session ports.BrowserSession
	creds   domain.Credentials
	logger  *zap.Logger
	state   domain.LoginState
}

func (a *loginAttempt) run(ctx context.Context) (domain.Capture, error) {
	cfg := a.flow.cfg

	if err := a.navigateLogin(ctx); err != nil {
		return a.fail(ctx, domain.FailureError, err)
	}

	if err := a.submitCredentials(ctx); err != nil {
		kind := domain.FailureError
		if errors.Is(err, domain.ErrFieldNotFound) {
			kind = domain.FailureFieldNotFound
		}
		return a.fail(ctx, kind, err)
	}

	if err := a.navigateTarget(ctx); err != nil {
		return a.fail(ctx, domain.FailureError, err)
	}

	currentURL, err := a.session.CurrentURL(ctx)
	if err != nil {
		return a.fail(ctx, domain.FailureError, fmt.Errorf("read current url: %w", err))
	}
	a.logger.Info("post-login url", zap.String("url", currentURL))
	if !domain.HostMatches(currentURL, cfg.ExpectedDomain) {
		return a.fail(ctx, domain.FailureLoginRejected, fmt.Errorf("%w: landed on %s", domain.ErrLoginRejected, currentURL))
	}

	capture, err := CaptureCookies(ctx, a.session, cfg.requestTemplate(), cfg.CookiePriority)
	if err != nil {
		return a.fail(ctx, domain.FailureError, fmt.Errorf("capture cookies: %w", err))
	}

	a.transition(domain.LoginSuccess)
	a.logger.Info("cookies captured", zap.Int("count", len(capture.Cookies)))

	return capture, nil
}

func (a *loginAttempt) navigateLogin(ctx context.Context) error {
	cfg := a.flow.cfg

	a.logger.Info("navigating to login page", zap.String("url", cfg.LoginURL))
	if err := a.session.Navigate(ctx, cfg.LoginURL); err != nil {
		return fmt.Errorf("navigate to login page: %w", err)
	}

	settled, err := waitUntil(ctx, cfg.PollInterval, cfg.PageSettle, func(ctx context.Context) (bool, error) {
		state, err := a.session.ReadyState(ctx)
		if err != nil || state != "complete" {
			return false, err
		}
		inputs, err := a.session.Inputs(ctx)
		if err != nil {
			return false, err
		}
		return len(inputs) > 0, nil
	})
	if err != nil {
		return fmt.Errorf("wait for login page: %w", err)
	}
	if !settled {
		a.logger.Warn("login page did not settle", zap.Duration("timeout", cfg.PageSettle))
	}

	if cfg.CaptureLoginPage {
		a.saveScreenshot(ctx, "login_page")
	}

	a.transition(domain.LoginNavigated)
	return nil
}

func (a *loginAttempt) submitCredentials(ctx context.Context) error {
	cfg := a.flow.cfg

	email, err := a.flow.locator.FindField(ctx, a.session, domain.FieldEmail, cfg.EmailTimeout)
	if err != nil {
		a.logPageSnippet(ctx)
		return fmt.Errorf("locate email field: %w", err)
	}
	if err := email.Clear(ctx); err != nil {
		return fmt.Errorf("clear email field: %w", err)
	}
	if err := email.Type(ctx, a.creds.Email); err != nil {
		return fmt.Errorf("type email: %w", err)
	}

	if _, err := waitUntil(ctx, cfg.PollInterval, cfg.FieldSettle, func(ctx context.Context) (bool, error) {
		value, err := email.Value(ctx)
		return value == a.creds.Email, err
	}); err != nil {
		return fmt.Errorf("wait for email field: %w", err)
	}

	password, err := a.flow.locator.FindField(ctx, a.session, domain.FieldPassword, cfg.PasswordTimeout)
	if err != nil {
		return fmt.Errorf("locate password field: %w", err)
	}
	if err := password.Clear(ctx); err != nil {
		return fmt.Errorf("clear password field: %w", err)
	}
	if err := password.Type(ctx, a.creds.Password); err != nil {
		return fmt.Errorf("type password: %w", err)
	}
	if err := password.PressEnter(ctx); err != nil {
		return fmt.Errorf("submit credentials: %w", err)
	}

	a.transition(domain.LoginCredentialsSubmitted)
	a.logger.Info("credentials submitted")
	return nil
}

func (a *loginAttempt) navigateTarget(ctx context.Context) error {
	cfg := a.flow.cfg

	left, err := waitUntil(ctx, cfg.PollInterval, cfg.SubmitSettle, func(ctx context.Context) (bool, error) {
		currentURL, err := a.session.CurrentURL(ctx)
		if err != nil {
			return false, err
		}
		return currentURL != "" && currentURL != cfg.LoginURL, nil
	})
	if err != nil {
		return fmt.Errorf("wait for login redirect: %w", err)
	}
	if !left {
		a.logger.Warn("still on login page after submit", zap.Duration("timeout", cfg.SubmitSettle))
	}

	a.logger.Info("navigating to target page", zap.String("url", cfg.TargetURL))
	if err := a.session.Navigate(ctx, cfg.TargetURL); err != nil {
		return fmt.Errorf("navigate to target page: %w", err)
	}

	if _, err := waitUntil(ctx, cfg.PollInterval, cfg.TargetSettle, func(ctx context.Context) (bool, error) {
		state, err := a.session.ReadyState(ctx)
		return state == "complete", err
	}); err != nil {
		return fmt.Errorf("wait for target page: %w", err)
	}

	a.transition(domain.LoginPostNavigated)
	return nil
}

func (a *loginAttempt) transition(next domain.LoginState) {
	a.logger.Debug("login state", zap.String("from", string(a.state)), zap.String("to", string(next)))
	a.state = next
	a.flow.metrics.ObserveLoginState(next)
}

func (a *loginAttempt) fail(ctx context.Context, kind domain.FailureKind, err error) (domain.Capture, error) {
	a.logger.Error("login failed", zap.String("state", string(a.state)), zap.String("kind", string(kind)), zap.Error(err))
	a.transition(domain.LoginFailed)
	a.saveScreenshot(ctx, string(kind))

	return domain.Capture{}, err
}

// saveScreenshot never fails the attempt; diagnostics are best effort.
func (a *loginAttempt) saveScreenshot(ctx context.Context, suffix string) {
	if a.flow.diagnostics == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			a.logger.Warn("screenshot panicked", zap.Any("panic", r))
		}
	}()

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), diagnosticsTimeout)
	defer cancel()

	data, err := a.session.Screenshot(ctx)
	if err != nil {
		a.logger.Warn("capture screenshot", zap.Error(err))
		return
	}

	name := a.creds.Label + "_" + suffix + ".png"
	path, err := a.flow.diagnostics.Save(ctx, name, data)
	if err != nil {
		a.logger.Warn("save screenshot", zap.String("name", name), zap.Error(err))
		return
	}
	a.logger.Info("screenshot saved", zap.String("path", path))
}

func (a *loginAttempt) logPageSnippet(ctx context.Context) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), diagnosticsTimeout)
	defer cancel()

	source, err := a.session.PageSource(ctx)
	if err != nil {
		a.logger.Warn("read page source", zap.Error(err))
		return
	}
	if len(source) > pageSourceSnippetBytes {
		source = source[:pageSourceSnippetBytes]
	}
	a.logger.Info("page source snippet", zap.String("html", strings.ToValidUTF8(source, "")))
}
