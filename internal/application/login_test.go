package application

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/terabox-cookie-cli/internal/domain"
	"github.com/bnema/terabox-cookie-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testCreds = domain.Credentials{Label: "alice", Email: "alice@example.com", Password: "hunter2"}

func TestLoginFlowSuccess(t *testing.T) {
	session := newLoginPageSession()
	launcher := &fakeLauncher{session: session}
	metrics := &recordingMetrics{}
	flow := NewLoginFlow(launcher, mocks.NewMockDiagnosticsSink(t), metrics, nil, testLoginConfig())

	capture, err := flow.Run(context.Background(), testCreds)
	require.NoError(t, err)

	assert.Equal(t, "browserid=B; ndus=A; foo=C", capture.Cookies.String())
	assert.Equal(t, "UA/1.0", capture.UserAgent)
	assert.Contains(t, capture.RequestText, "Cookie: browserid=B; ndus=A; foo=C")
	assert.Equal(t, []string{testLoginURL, testTargetURL}, session.navigations)
	assert.Equal(t, 1, session.cookieCalls)
	assert.Equal(t, 1, session.closeCalls)
	assert.Equal(t, "hunter2", session.inputs[1].value)
	assert.True(t, session.inputs[1].entered)
	assert.Equal(t, []domain.LoginState{
		domain.LoginNavigated,
		domain.LoginCredentialsSubmitted,
		domain.LoginPostNavigated,
		domain.LoginSuccess,
	}, metrics.states)
}

func TestLoginFlowEmailFieldNotFound(t *testing.T) {
	session := newLoginPageSession()
	session.found = map[domain.Locator]*fakeElement{}
	session.inputs = nil
	diagnostics := mocks.NewMockDiagnosticsSink(t)
	diagnostics.EXPECT().Save(mock.Anything, "alice_field_not_found.png", []byte("png")).Return("/tmp/alice_field_not_found.png", nil)
	flow := NewLoginFlow(&fakeLauncher{session: session}, diagnostics, nil, nil, testLoginConfig())

	_, err := flow.Run(context.Background(), testCreds)

	require.ErrorIs(t, err, domain.ErrFieldNotFound)
	assert.Equal(t, 0, session.cookieCalls)
	assert.Equal(t, 1, session.closeCalls)
}

func TestLoginFlowPasswordFieldNotFound(t *testing.T) {
	session := newLoginPageSession()
	delete(session.found, domain.LocatorsFor(domain.FieldPassword)[0])
	session.inputs = session.inputs[:1]
	diagnostics := mocks.NewMockDiagnosticsSink(t)
	diagnostics.EXPECT().Save(mock.Anything, "alice_field_not_found.png", mock.Anything).Return("", nil)
	flow := NewLoginFlow(&fakeLauncher{session: session}, diagnostics, nil, nil, testLoginConfig())

	_, err := flow.Run(context.Background(), testCreds)

	require.ErrorIs(t, err, domain.ErrFieldNotFound)
	assert.Equal(t, 1, session.closeCalls)
}

func TestLoginFlowRejectedWhenLandingOffDomain(t *testing.T) {
	session := newLoginPageSession()
	session.redirects[testTargetURL] = "https://accounts.example.com/denied"
	diagnostics := mocks.NewMockDiagnosticsSink(t)
	diagnostics.EXPECT().Save(mock.Anything, "alice_login_rejected.png", mock.Anything).Return("", nil)
	flow := NewLoginFlow(&fakeLauncher{session: session}, diagnostics, nil, nil, testLoginConfig())

	_, err := flow.Run(context.Background(), testCreds)

	require.ErrorIs(t, err, domain.ErrLoginRejected)
	assert.Equal(t, 0, session.cookieCalls)
	assert.Equal(t, 1, session.closeCalls)
}

func TestLoginFlowEmptyCookieJar(t *testing.T) {
	session := newLoginPageSession()
	session.cookies = nil
	diagnostics := mocks.NewMockDiagnosticsSink(t)
	diagnostics.EXPECT().Save(mock.Anything, "alice_error.png", mock.Anything).Return("", nil)
	flow := NewLoginFlow(&fakeLauncher{session: session}, diagnostics, nil, nil, testLoginConfig())

	_, err := flow.Run(context.Background(), testCreds)

	require.ErrorIs(t, err, domain.ErrEmptyCookieJar)
	assert.Equal(t, 1, session.closeCalls)
}

func TestLoginFlowLaunchFailure(t *testing.T) {
	launcher := &fakeLauncher{err: errors.New("chromium not found")}
	flow := NewLoginFlow(launcher, mocks.NewMockDiagnosticsSink(t), nil, nil, testLoginConfig())

	_, err := flow.Run(context.Background(), testCreds)

	require.ErrorIs(t, err, domain.ErrLaunch)
	assert.Equal(t, 1, launcher.opens)
}

func TestLoginFlowClosesSessionOnInjectedFaults(t *testing.T) {
	tests := []struct {
		name   string
		method string
	}{
		{name: "navigate", method: "Navigate"},
		{name: "clear", method: "Clear"},
		{name: "type", method: "Type"},
		{name: "press enter", method: "PressEnter"},
		{name: "current url", method: "CurrentURL"},
		{name: "cookies", method: "Cookies"},
		{name: "user agent", method: "UserAgent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := newLoginPageSession()
			injected := errors.New("injected " + tt.method)
			session.faults[tt.method] = injected
			diagnostics := mocks.NewMockDiagnosticsSink(t)
			diagnostics.EXPECT().Save(mock.Anything, mock.Anything, mock.Anything).Return("", nil).Maybe()
			flow := NewLoginFlow(&fakeLauncher{session: session}, diagnostics, nil, nil, testLoginConfig())

			_, err := flow.Run(context.Background(), testCreds)

			require.ErrorIs(t, err, injected)
			assert.Equal(t, 1, session.closeCalls)
		})
	}
}

func TestLoginFlowRecoversPanic(t *testing.T) {
	session := newLoginPageSession()
	session.panics["Cookies"] = true
	diagnostics := mocks.NewMockDiagnosticsSink(t)
	diagnostics.EXPECT().Save(mock.Anything, "alice_error.png", mock.Anything).Return("", nil)
	flow := NewLoginFlow(&fakeLauncher{session: session}, diagnostics, nil, nil, testLoginConfig())

	_, err := flow.Run(context.Background(), testCreds)

	require.ErrorIs(t, err, domain.ErrUnexpected)
	assert.Equal(t, 1, session.closeCalls)
}

func TestLoginFlowScreenshotFailureDoesNotMaskError(t *testing.T) {
	session := newLoginPageSession()
	session.redirects[testTargetURL] = "https://accounts.example.com/denied"
	session.faults["Screenshot"] = errors.New("screenshot failed")
	flow := NewLoginFlow(&fakeLauncher{session: session}, mocks.NewMockDiagnosticsSink(t), nil, nil, testLoginConfig())

	_, err := flow.Run(context.Background(), testCreds)

	require.ErrorIs(t, err, domain.ErrLoginRejected)
	assert.Equal(t, 1, session.closeCalls)
}

func TestLoginFlowCapturesLoginPageWhenEnabled(t *testing.T) {
	session := newLoginPageSession()
	cfg := testLoginConfig()
	cfg.CaptureLoginPage = true
	diagnostics := mocks.NewMockDiagnosticsSink(t)
	diagnostics.EXPECT().Save(mock.Anything, "alice_login_page.png", mock.Anything).Return("", nil)
	flow := NewLoginFlow(&fakeLauncher{session: session}, diagnostics, nil, nil, cfg)

	_, err := flow.Run(context.Background(), testCreds)

	require.NoError(t, err)
}

func TestLoginFlowCancelledContext(t *testing.T) {
	session := newLoginPageSession()
	diagnostics := mocks.NewMockDiagnosticsSink(t)
	diagnostics.EXPECT().Save(mock.Anything, mock.Anything, mock.Anything).Return("", nil).Maybe()
	flow := NewLoginFlow(&fakeLauncher{session: session}, diagnostics, nil, nil, testLoginConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := flow.Run(ctx, testCreds)

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, session.closeCalls)
}

func TestCaptureCookiesEmptyJar(t *testing.T) {
	session := newFakeSession()

	_, err := CaptureCookies(context.Background(), session, domain.RequestTemplate{TargetURL: testTargetURL, LoginURL: testLoginURL}, nil)

	require.ErrorIs(t, err, domain.ErrEmptyCookieJar)
}
