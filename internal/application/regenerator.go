package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/terabox-cookie-cli/internal/domain"
	"github.com/bnema/terabox-cookie-cli/internal/ports"
	"go.uber.org/zap"
)

const (
	OutcomeSuccess  = "success"
	OutcomeNotFound = "not_found"
	OutcomeFailure  = "failure"
)

type LoginRunner interface {
	Run(ctx context.Context, creds domain.Credentials) (domain.Capture, error)
}

// Regenerator logs an account in, persists the resulting request text and
// forwards the bare cookie string.
type Regenerator struct {
	accounts  *Service
	login     LoginRunner
	cookies   ports.CookieStore
	forwarder ports.Forwarder
	metrics   ports.Metrics
	clock     ports.Clock
	logger    *zap.Logger
}

type RegeneratorDeps struct {
	Accounts  *Service
	Login     LoginRunner
	Cookies   ports.CookieStore
	Forwarder ports.Forwarder
	Metrics   ports.Metrics
	Clock     ports.Clock
	Logger    *zap.Logger
}

func NewRegenerator(deps RegeneratorDeps) *Regenerator {
	if deps.Metrics == nil {
		deps.Metrics = ports.NopMetrics{}
	}
	if deps.Clock == nil {
		deps.Clock = ports.SystemClock{}
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	return &Regenerator{
		accounts:  deps.Accounts,
		login:     deps.Login,
		cookies:   deps.Cookies,
		forwarder: deps.Forwarder,
		metrics:   deps.Metrics,
		clock:     deps.Clock,
		logger:    deps.Logger,
	}
}

func (r *Regenerator) Regenerate(ctx context.Context, number int) (result domain.Regeneration, err error) {
	started := r.clock.Now()
	defer func() {
		outcome := OutcomeSuccess
		switch {
		case errors.Is(err, domain.ErrAccountNotFound):
			outcome = OutcomeNotFound
		case err != nil:
			outcome = OutcomeFailure
		}
		r.metrics.ObserveRegeneration(outcome, r.clock.Now().Sub(started))
	}()

	account, err := r.accounts.GetAccount(ctx, number)
	if err != nil {
		return domain.Regeneration{}, err
	}
	logger := r.logger.With(zap.Int("number", account.Number), zap.String("account", account.DisplayName()))

	password, err := r.accounts.ResolvePassword(ctx, account)
	if err != nil {
		return domain.Regeneration{}, err
	}

	logger.Info("regenerating cookies")
	capture, err := r.login.Run(ctx, domain.Credentials{
		Label:    account.DisplayName(),
		Email:    account.Email,
		Password: password,
	})
	if err != nil {
		return domain.Regeneration{}, fmt.Errorf("login account %d: %w", account.Number, err)
	}

	if err := r.cookies.Put(ctx, account.DisplayName(), capture.RequestText); err != nil {
		return domain.Regeneration{}, fmt.Errorf("store cookies: %w", err)
	}

	cookie := capture.Cookies.String()
	result = domain.Regeneration{
		Number:      account.Number,
		Name:        account.DisplayName(),
		Cookie:      cookie,
		RequestText: capture.RequestText,
	}

	if r.forwarder != nil {
		if err := r.forwarder.Forward(ctx, account, cookie); err != nil {
			r.metrics.IncForwardFailure()
			logger.Warn("forward cookies", zap.Error(err))
		} else {
			result.Forwarded = true
			logger.Info("cookies forwarded")
		}
	}

	logger.Info("cookies regenerated", zap.Int("count", len(capture.Cookies)))
	return result, nil
}
