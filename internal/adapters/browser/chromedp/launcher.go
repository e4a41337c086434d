package chromedp

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/bnema/terabox-cookie-cli/internal/domain"
	"github.com/bnema/terabox-cookie-cli/internal/ports"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

const (
	DefaultUserAgent    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/116.0.0.0 Safari/537.36"
	defaultWindowWidth  = 1920
	defaultWindowHeight = 1080

	hideWebdriverScript = `Object.defineProperty(navigator, 'webdriver', {get: () => undefined})`
)

var execCandidates = []string{"chromium", "chromium-browser", "google-chrome"}

// Launcher starts a fresh incognito Chromium for every Open call.
type Launcher struct {
	logger   *zap.Logger
	lookPath func(string) (string, error)
}

var _ ports.BrowserLauncher = (*Launcher)(nil)

func NewLauncher(logger *zap.Logger) *Launcher {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Launcher{logger: logger, lookPath: exec.LookPath}
}

func (l *Launcher) Open(ctx context.Context, opts ports.BrowserOptions) (ports.BrowserSession, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrLaunch, err)
	}

	opts = withDefaults(opts)
	opts.ExecPath = l.resolveExecPath(opts.ExecPath)

	allocOpts := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)
	for _, flag := range launchFlags(opts) {
		allocOpts = append(allocOpts, chromedp.Flag(flag.name, flag.value))
	}
	if opts.ExecPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(opts.ExecPath))
	}
	allocOpts = append(allocOpts,
		chromedp.UserAgent(opts.UserAgent),
		chromedp.WindowSize(opts.WindowWidth, opts.WindowHeight),
	)

	// The browser outlives the call that launched it; Close tears it down.
	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), allocOpts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	// The first Run allocates the browser and binds its lifetime to the
	// context it is given, so it must run on browserCtx itself.
	stop := context.AfterFunc(ctx, browserCancel)
	err := chromedp.Run(browserCtx)
	stop()
	if err != nil {
		// Nothing is running yet, so there is no browser for chromedp.Cancel
		// to wait on.
		browserCancel()
		allocCancel()
		return nil, fmt.Errorf("%w: start chromium: %w", domain.ErrLaunch, err)
	}

	s := &session{
		ctx:          browserCtx,
		cancel:       browserCancel,
		allocCancel:  allocCancel,
		started:      true,
		closeTimeout: defaultCloseTimeout,
	}

	err = s.run(ctx, chromedp.ActionFunc(func(ctx context.Context) error {
		if _, err := page.AddScriptToEvaluateOnNewDocument(hideWebdriverScript).Do(ctx); err != nil {
			return fmt.Errorf("install webdriver override: %w", err)
		}
		return chromedp.Evaluate(hideWebdriverScript, nil).Do(ctx)
	}))
	if err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("%w: %w", domain.ErrLaunch, err)
	}

	l.logger.Debug("browser launched",
		zap.Bool("headless", opts.Headless),
		zap.String("exec_path", opts.ExecPath),
		zap.Int("width", opts.WindowWidth),
		zap.Int("height", opts.WindowHeight),
	)

	return s, nil
}

// resolveExecPath keeps an explicit path and otherwise probes PATH for a
// known Chromium binary. An empty result leaves discovery to chromedp.
func (l *Launcher) resolveExecPath(configured string) string {
	if configured = strings.TrimSpace(configured); configured != "" {
		return configured
	}

	for _, name := range execCandidates {
		if path, err := l.lookPath(name); err == nil && path != "" {
			return path
		}
	}

	return ""
}

type launchFlag struct {
	name  string
	value any
}

func launchFlags(opts ports.BrowserOptions) []launchFlag {
	return []launchFlag{
		{name: "headless", value: opts.Headless},
		{name: "incognito", value: true},
		{name: "disable-blink-features", value: "AutomationControlled"},
		{name: "enable-automation", value: false},
		{name: "no-sandbox", value: true},
		{name: "disable-dev-shm-usage", value: true},
		{name: "disable-gpu", value: true},
		{name: "window-size", value: strconv.Itoa(opts.WindowWidth) + "," + strconv.Itoa(opts.WindowHeight)},
	}
}

func withDefaults(opts ports.BrowserOptions) ports.BrowserOptions {
	if strings.TrimSpace(opts.UserAgent) == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.WindowWidth <= 0 {
		opts.WindowWidth = defaultWindowWidth
	}
	if opts.WindowHeight <= 0 {
		opts.WindowHeight = defaultWindowHeight
	}

	return opts
}
