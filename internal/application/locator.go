package application

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/terabox-cookie-cli/internal/domain"
	"github.com/bnema/terabox-cookie-cli/internal/ports"
	"go.uber.org/zap"
)

// Locator finds login form fields on pages whose markup is not under our
// control.
type Locator struct {
	interval time.Duration
	logger   *zap.Logger
}

func NewLocator(logger *zap.Logger, interval time.Duration) *Locator {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Locator{
		interval: interval,
		logger:   logger,
	}
}

// FindField tries every strategy for role, each bounded by timeout, then
// falls back to scanning all inputs. Every failure is reported as
// domain.ErrFieldNotFound.
func (l *Locator) FindField(ctx context.Context, session ports.BrowserSession, role domain.FieldRole, timeout time.Duration) (ports.Element, error) {
	logger := l.logger.With(zap.String("role", string(role)))

	for _, locator := range domain.LocatorsFor(role) {
		if ctx.Err() != nil {
			break
		}

		logger.Debug("trying locator", zap.Stringer("locator", locator))
		element, err := l.tryLocator(ctx, session, locator, timeout)
		if err != nil {
			logger.Debug("locator failed", zap.Stringer("locator", locator), zap.Error(err))
			continue
		}
		if element != nil {
			return element, nil
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrFieldNotFound, role, err)
	}

	element, err := l.scanInputs(ctx, session, role)
	if err != nil {
		logger.Debug("input scan failed", zap.Error(err))
	}
	if element != nil {
		return element, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrFieldNotFound, role, err)
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrFieldNotFound, role)
}

func (l *Locator) tryLocator(ctx context.Context, session ports.BrowserSession, locator domain.Locator, timeout time.Duration) (ports.Element, error) {
	var found ports.Element
	ok, err := waitUntil(ctx, l.interval, timeout, func(ctx context.Context) (bool, error) {
		element, err := session.Find(ctx, locator)
		if err != nil {
			return false, err
		}
		found = element
		return element != nil, nil
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("no match within %s", timeout)
	}

	return found, nil
}

func (l *Locator) scanInputs(ctx context.Context, session ports.BrowserSession, role domain.FieldRole) (ports.Element, error) {
	inputs, err := session.Inputs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list inputs: %w", err)
	}
	l.logger.Debug("scanning inputs", zap.String("role", string(role)), zap.Int("count", len(inputs)))

	for _, input := range inputs {
		visible, err := input.Visible(ctx)
		if err != nil || !visible {
			continue
		}
		inputType, err := input.Attribute(ctx, "type")
		if err != nil {
			continue
		}
		placeholder, err := input.Attribute(ctx, "placeholder")
		if err != nil {
			placeholder = ""
		}
		if domain.MatchesRole(role, inputType, placeholder) {
			return input, nil
		}
	}

	return nil, nil
}
