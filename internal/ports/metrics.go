package ports

import (
	"time"

	"github.com/bnema/terabox-cookie-cli/internal/domain"
)

type Metrics interface {
	ObserveRegeneration(outcome string, elapsed time.Duration)
	ObserveLoginState(state domain.LoginState)
	IncForwardFailure()
}

type NopMetrics struct{}

func (NopMetrics) ObserveRegeneration(string, time.Duration) {}

func (NopMetrics) ObserveLoginState(domain.LoginState) {}

func (NopMetrics) IncForwardFailure() {}
