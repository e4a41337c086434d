package collector

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/terabox-cookie-cli/internal/domain"
	"github.com/bnema/terabox-cookie-cli/internal/ports"
	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
)

const (
	defaultTimeout   = 10 * time.Second
	defaultRetryWait = 500 * time.Millisecond
	maxRetryWait     = 5 * time.Second
	userAgent        = "tbc-forwarder/1.0"
)

type Config struct {
	URL       string
	Timeout   time.Duration
	Retries   int
	RetryWait time.Duration
}

// Forwarder publishes cookie strings to the collector with
// GET <url>?number=cookie-N&cookies=<escaped cookie>.
type Forwarder struct {
	client   *resty.Client
	endpoint *url.URL
}

var _ ports.Forwarder = (*Forwarder)(nil)

func NewForwarder(cfg Config, logger *zap.Logger) (*Forwarder, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	raw := strings.TrimSpace(cfg.URL)
	if raw == "" {
		return nil, errors.New("collector url is empty")
	}
	endpoint, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse collector url: %w", err)
	}
	if endpoint.Scheme != "http" && endpoint.Scheme != "https" {
		return nil, fmt.Errorf("collector url %q must be http or https", raw)
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.Retries < 0 {
		cfg.Retries = 0
	}
	if cfg.RetryWait <= 0 {
		cfg.RetryWait = defaultRetryWait
	}

	retryClient := retryablehttp.NewClient()
	retryClient.Logger = nil

	client := resty.New().
		SetTransport(retryClient.HTTPClient.Transport).
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.Retries).
		SetRetryWaitTime(cfg.RetryWait).
		SetRetryMaxWaitTime(maxRetryWait).
		AddRetryCondition(shouldRetry).
		SetHeader("User-Agent", userAgent).
		SetLogger(logger.Sugar())

	return &Forwarder{client: client, endpoint: endpoint}, nil
}

func (f *Forwarder) Forward(ctx context.Context, account domain.Account, cookie string) error {
	target := f.requestURL(account.CollectorNumber(), cookie)

	resp, err := f.client.R().SetContext(ctx).Get(target)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrForwarding, account.CollectorNumber(), err)
	}
	if resp.IsError() {
		return fmt.Errorf("%w: %s: collector returned status %d", domain.ErrForwarding, account.CollectorNumber(), resp.StatusCode())
	}

	return nil
}

// requestURL builds the query by hand so spaces are sent as %20.
func (f *Forwarder) requestURL(number string, cookie string) string {
	query := "number=" + escape(number) + "&cookies=" + escape(cookie)

	u := *f.endpoint
	if u.RawQuery != "" {
		u.RawQuery += "&" + query
	} else {
		u.RawQuery = query
	}

	return u.String()
}

func escape(value string) string {
	return strings.ReplaceAll(url.QueryEscape(value), "+", "%20")
}

func shouldRetry(resp *resty.Response, err error) bool {
	ctx := context.Background()
	var raw *http.Response
	if resp != nil {
		raw = resp.RawResponse
		if resp.Request != nil {
			ctx = resp.Request.Context()
		}
	}

	retry, _ := retryablehttp.DefaultRetryPolicy(ctx, raw, err)
	return retry
}
