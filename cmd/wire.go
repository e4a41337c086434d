package cmd

import (
	"fmt"

	chromedpadapter "github.com/bnema/terabox-cookie-cli/internal/adapters/browser/chromedp"
	diagfile "github.com/bnema/terabox-cookie-cli/internal/adapters/diagnostics/file"
	"github.com/bnema/terabox-cookie-cli/internal/adapters/forward/collector"
	statusadapter "github.com/bnema/terabox-cookie-cli/internal/adapters/render/status"
	"github.com/bnema/terabox-cookie-cli/internal/adapters/repo/jsonstore"
	tomlrepo "github.com/bnema/terabox-cookie-cli/internal/adapters/repo/toml"
	chainstore "github.com/bnema/terabox-cookie-cli/internal/adapters/secrets/chain"
	"github.com/bnema/terabox-cookie-cli/internal/application"
	"github.com/bnema/terabox-cookie-cli/internal/config"
	"github.com/bnema/terabox-cookie-cli/internal/logging"
	"github.com/bnema/terabox-cookie-cli/internal/metrics"
	"github.com/bnema/terabox-cookie-cli/internal/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

// newBrowserLauncher is swapped in tests to avoid starting Chromium.
var newBrowserLauncher = func(logger *zap.Logger) ports.BrowserLauncher {
	return chromedpadapter.NewLauncher(logger)
}

type app struct {
	cfg            config.Config
	logger         *zap.Logger
	service        *application.Service
	cookies        ports.CookieStore
	launcher       ports.BrowserLauncher
	diagnostics    ports.DiagnosticsSink
	forwarder      ports.Forwarder
	registry       *prometheus.Registry
	recorder       *metrics.Recorder
	statusRenderer func([]application.AccountStatus, statusadapter.RenderOptions) (string, error)
}

func wireApp(configFile string) (*app, error) {
	v, cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(logging.Config{Level: cfg.Log.Level, Development: cfg.Log.Development})
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	repo, err := tomlrepo.NewRepository(v)
	if err != nil {
		return nil, fmt.Errorf("wire account repository: %w", err)
	}

	cookies, err := jsonstore.NewStore(v)
	if err != nil {
		return nil, fmt.Errorf("wire cookie store: %w", err)
	}

	secretStore, err := chainstore.NewPassWithFileFallback(cfg.Secrets.PassPrefix, cfg.Secrets.Dir)
	if err != nil {
		return nil, fmt.Errorf("wire secret store chain: %w", err)
	}

	diagnostics, err := diagfile.NewSink(cfg.Diagnostics.Dir)
	if err != nil {
		return nil, fmt.Errorf("wire diagnostics sink: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	a := &app{
		cfg:            cfg,
		logger:         logger,
		service:        application.NewService(repo, secretStore, cookies),
		cookies:        cookies,
		launcher:       newBrowserLauncher(logger.Named("browser")),
		diagnostics:    diagnostics,
		registry:       registry,
		recorder:       metrics.NewRecorder(registry),
		statusRenderer: statusadapter.Render,
	}

	// Leave the interface nil when no collector is configured.
	if cfg.Collector.URL != "" {
		forwarder, err := collector.NewForwarder(collector.Config{
			URL:       cfg.Collector.URL,
			Timeout:   cfg.Collector.Timeout,
			Retries:   cfg.Collector.Retries,
			RetryWait: cfg.Collector.RetryWait,
		}, logger.Named("collector"))
		if err != nil {
			return nil, fmt.Errorf("wire collector forwarder: %w", err)
		}
		a.forwarder = forwarder
	}

	return a, nil
}

func (a *app) loginConfig(headful bool) application.LoginConfig {
	browser := a.cfg.Browser

	return application.LoginConfig{
		LoginURL:         a.cfg.Login.URL,
		TargetURL:        a.cfg.Login.TargetURL,
		ExpectedDomain:   a.cfg.Login.ExpectedDomain,
		PageSettle:       a.cfg.Login.PageSettle,
		EmailTimeout:     a.cfg.Login.EmailTimeout,
		FieldSettle:      a.cfg.Login.FieldSettle,
		PasswordTimeout:  a.cfg.Login.PasswordTimeout,
		SubmitSettle:     a.cfg.Login.SubmitSettle,
		TargetSettle:     a.cfg.Login.TargetSettle,
		PollInterval:     a.cfg.Login.PollInterval,
		CaptureLoginPage: a.cfg.Diagnostics.CaptureLoginPage,
		CookiePriority:   a.cfg.Login.CookiePriority,
		Browser: ports.BrowserOptions{
			Headless:     browser.Headless && !headful,
			ExecPath:     browser.ExecPath,
			UserAgent:    browser.UserAgent,
			WindowWidth:  browser.WindowWidth,
			WindowHeight: browser.WindowHeight,
		},
	}
}

func (a *app) regenerator(headful bool) *application.Regenerator {
	loginFlow := application.NewLoginFlow(
		a.launcher,
		a.diagnostics,
		a.recorder,
		a.logger.Named("login"),
		a.loginConfig(headful),
	)

	return application.NewRegenerator(application.RegeneratorDeps{
		Accounts:  a.service,
		Login:     loginFlow,
		Cookies:   a.cookies,
		Forwarder: a.forwarder,
		Metrics:   a.recorder,
		Logger:    a.logger.Named("regenerator"),
	})
}

func (a *app) close() {
	if a == nil || a.logger == nil {
		return
	}
	_ = a.logger.Sync()
}
