// Package config loads tbc settings from ~/.tbc/config.toml, TBC_*
// environment variables and built-in defaults, in increasing order of
// precedence for env over file over defaults.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	EnvPrefix  = "TBC"
	configDir  = ".tbc"
	configName = "config"
	configType = "toml"
)

type Config struct {
	Log         LogConfig         `mapstructure:"log"`
	Accounts    PathConfig        `mapstructure:"accounts"`
	Cookies     PathConfig        `mapstructure:"cookies"`
	Secrets     SecretsConfig     `mapstructure:"secrets"`
	Diagnostics DiagnosticsConfig `mapstructure:"diagnostics"`
	Login       LoginConfig       `mapstructure:"login"`
	Browser     BrowserConfig     `mapstructure:"browser"`
	Collector   CollectorConfig   `mapstructure:"collector"`
	Server      ServerConfig      `mapstructure:"server"`
}

type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

type PathConfig struct {
	Path string `mapstructure:"path"`
}

type SecretsConfig struct {
	PassPrefix string `mapstructure:"pass_prefix"`
	Dir        string `mapstructure:"dir"`
}

type DiagnosticsConfig struct {
	Dir              string `mapstructure:"dir"`
	CaptureLoginPage bool   `mapstructure:"capture_login_page"`
}

type LoginConfig struct {
	URL             string        `mapstructure:"url"`
	TargetURL       string        `mapstructure:"target_url"`
	ExpectedDomain  string        `mapstructure:"expected_domain"`
	PageSettle      time.Duration `mapstructure:"page_settle"`
	EmailTimeout    time.Duration `mapstructure:"email_timeout"`
	FieldSettle     time.Duration `mapstructure:"field_settle"`
	PasswordTimeout time.Duration `mapstructure:"password_timeout"`
	SubmitSettle    time.Duration `mapstructure:"submit_settle"`
	TargetSettle    time.Duration `mapstructure:"target_settle"`
	PollInterval    time.Duration `mapstructure:"poll_interval"`
	CookiePriority  []string      `mapstructure:"cookie_priority"`
}

type BrowserConfig struct {
	Headless     bool   `mapstructure:"headless"`
	ExecPath     string `mapstructure:"exec_path"`
	UserAgent    string `mapstructure:"user_agent"`
	WindowWidth  int    `mapstructure:"window_width"`
	WindowHeight int    `mapstructure:"window_height"`
}

type CollectorConfig struct {
	URL       string        `mapstructure:"url"`
	Timeout   time.Duration `mapstructure:"timeout"`
	Retries   int           `mapstructure:"retries"`
	RetryWait time.Duration `mapstructure:"retry_wait"`
}

type ServerConfig struct {
	Addr              string        `mapstructure:"addr"`
	RegenerateTimeout time.Duration `mapstructure:"regenerate_timeout"`
	RateLimit         float64       `mapstructure:"rate_limit"`
	RateBurst         int           `mapstructure:"rate_burst"`
	CORSOrigins       []string      `mapstructure:"cors_origins"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"`
}

// Load reads configuration into a fresh viper instance. An explicit file
// must exist; the default ~/.tbc/config.toml is optional.
func Load(file string) (*viper.Viper, Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, Config{}, fmt.Errorf("resolve home directory: %w", err)
	}

	v := viper.New()
	SetDefaults(v, homeDir)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, Config{}, fmt.Errorf("read config file %s: %w", file, err)
		}
	} else {
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		v.AddConfigPath(filepath.Join(homeDir, configDir))
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, Config{}, err
	}

	return v, cfg, nil
}

func SetDefaults(v *viper.Viper, homeDir string) {
	base := filepath.Join(homeDir, configDir)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)

	v.SetDefault("accounts.path", filepath.Join(base, "accounts.toml"))
	v.SetDefault("cookies.path", filepath.Join(base, "cookies.json"))

	v.SetDefault("secrets.pass_prefix", "tbc")
	v.SetDefault("secrets.dir", filepath.Join(base, "secrets"))

	v.SetDefault("diagnostics.dir", filepath.Join(base, "diagnostics"))
	v.SetDefault("diagnostics.capture_login_page", false)

	v.SetDefault("login.url", "https://www.1024terabox.com/main?login")
	v.SetDefault("login.target_url", "https://dm.1024terabox.com/ai/index?clearCache=1")
	v.SetDefault("login.expected_domain", "1024terabox.com")
	v.SetDefault("login.page_settle", 8*time.Second)
	v.SetDefault("login.email_timeout", 10*time.Second)
	v.SetDefault("login.field_settle", 2*time.Second)
	v.SetDefault("login.password_timeout", 3*time.Second)
	v.SetDefault("login.submit_settle", 12*time.Second)
	v.SetDefault("login.target_settle", 8*time.Second)
	v.SetDefault("login.poll_interval", 250*time.Millisecond)
	v.SetDefault("login.cookie_priority", []string{})

	v.SetDefault("browser.headless", true)
	v.SetDefault("browser.exec_path", "")
	v.SetDefault("browser.user_agent", "")
	v.SetDefault("browser.window_width", 1920)
	v.SetDefault("browser.window_height", 1080)

	v.SetDefault("collector.url", "")
	v.SetDefault("collector.timeout", 10*time.Second)
	v.SetDefault("collector.retries", 2)
	v.SetDefault("collector.retry_wait", 500*time.Millisecond)

	v.SetDefault("server.addr", "0.0.0.0:5000")
	v.SetDefault("server.regenerate_timeout", 2*time.Minute)
	v.SetDefault("server.rate_limit", 0.5)
	v.SetDefault("server.rate_burst", 2)
	v.SetDefault("server.cors_origins", []string{"*"})
	v.SetDefault("server.shutdown_timeout", 15*time.Second)
}

func (c Config) Validate() error {
	var errs []error

	for key, raw := range map[string]string{"login.url": c.Login.URL, "login.target_url": c.Login.TargetURL} {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, fmt.Errorf("%s must be an absolute url, got %q", key, raw))
		}
	}
	if strings.TrimSpace(c.Login.ExpectedDomain) == "" {
		errs = append(errs, errors.New("login.expected_domain is empty"))
	}

	for key, d := range map[string]time.Duration{
		"login.page_settle":      c.Login.PageSettle,
		"login.email_timeout":    c.Login.EmailTimeout,
		"login.field_settle":     c.Login.FieldSettle,
		"login.password_timeout": c.Login.PasswordTimeout,
		"login.submit_settle":    c.Login.SubmitSettle,
		"login.target_settle":    c.Login.TargetSettle,
		"login.poll_interval":    c.Login.PollInterval,
	} {
		if d <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive", key))
		}
	}

	if c.Server.RateLimit < 0 || c.Server.RateBurst < 0 {
		errs = append(errs, errors.New("server rate limit must not be negative"))
	}

	return errors.Join(errs...)
}
