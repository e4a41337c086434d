package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bnema/terabox-cookie-cli/internal/application"
	"github.com/bnema/terabox-cookie-cli/internal/domain"
	"github.com/bnema/terabox-cookie-cli/internal/metrics"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeRegenerator struct {
	calls   atomic.Int32
	release chan struct{}
	result  domain.Regeneration
	err     error
}

func (f *fakeRegenerator) Regenerate(ctx context.Context, number int) (domain.Regeneration, error) {
	f.calls.Add(1)
	if f.release != nil {
		select {
		case <-f.release:
		case <-ctx.Done():
			return domain.Regeneration{}, ctx.Err()
		}
	}
	if f.err != nil {
		return domain.Regeneration{}, f.err
	}
	result := f.result
	result.Number = number
	return result, nil
}

type fakeAccounts struct {
	mu       sync.Mutex
	accounts []domain.Account
	cookies  map[string]string
	commands []application.AddAccountCommand
	listErr  error
}

func (f *fakeAccounts) AddAccount(_ context.Context, cmd application.AddAccountCommand) (domain.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if cmd.Email == "" || cmd.Password == "" {
		return domain.Account{}, application.ErrMissingCredentials
	}
	f.commands = append(f.commands, cmd)
	number := len(f.accounts) + 1
	name := cmd.Name
	if name == "" {
		name = "Account " + strconv.Itoa(number)
		if cmd.Naming == application.NamingNumber {
			name = strconv.Itoa(number)
		}
	}
	account := domain.Account{Number: number, Name: name, Email: cmd.Email, Password: cmd.Password}
	f.accounts = append(f.accounts, account)
	return account, nil
}

func (f *fakeAccounts) ListAccounts(context.Context) ([]domain.Account, error) {
	return f.accounts, f.listErr
}

func (f *fakeAccounts) Cookies(context.Context) (map[string]string, error) {
	if len(f.cookies) == 0 {
		return nil, domain.ErrNoCookiesStored
	}
	return f.cookies, nil
}

func newTestServer(accounts *fakeAccounts, regen *fakeRegenerator, opts Options) *Server {
	return NewServer(accounts, regen, opts)
}

func doRequest(t *testing.T, handler http.Handler, method, target string, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	decoded := map[string]any{}
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	}
	return rec, decoded
}

func TestRegenerateSuccess(t *testing.T) {
	t.Parallel()

	regen := &fakeRegenerator{result: domain.Regeneration{Name: "Primary", Cookie: "browserid=B; ndus=A", Forwarded: true}}
	server := newTestServer(&fakeAccounts{}, regen, Options{})

	rec, body := doRequest(t, server.Handler(), http.MethodGet, "/regenerate?number=1", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "Primary", body["account_name"])
	assert.Equal(t, "browserid=B; ndus=A", body["cookie"])
	assert.Equal(t, "Cookies regenerated", body["message"])
	assert.Equal(t, true, body["forwarded"])
}

func TestRegenerateRejectsBadNumbers(t *testing.T) {
	t.Parallel()

	regen := &fakeRegenerator{}
	server := newTestServer(&fakeAccounts{}, regen, Options{})

	for _, target := range []string{"/regenerate", "/regenerate?number=abc", "/regenerate?number=0", "/regenerate?number=-2"} {
		rec, body := doRequest(t, server.Handler(), http.MethodGet, target, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		assert.Equal(t, "error", body["status"], target)
	}
	assert.Equal(t, int32(0), regen.calls.Load())
}

func TestRegenerateErrorMapping(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{name: "unknown account", err: domain.ErrAccountNotFound, code: http.StatusNotFound, message: "account 4 not found"},
		{name: "login rejected", err: domain.ErrLoginRejected, code: http.StatusInternalServerError, message: "login rejected"},
		{name: "field missing", err: domain.ErrFieldNotFound, code: http.StatusInternalServerError, message: "field not found"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := newTestServer(&fakeAccounts{}, &fakeRegenerator{err: tc.err}, Options{})

			rec, body := doRequest(t, server.Handler(), http.MethodGet, "/regenerate?number=4", "")

			assert.Equal(t, tc.code, rec.Code)
			assert.Equal(t, "error", body["status"])
			assert.Contains(t, body["message"], tc.message)
		})
	}
}

func TestRegenerateRateLimited(t *testing.T) {
	t.Parallel()

	server := newTestServer(&fakeAccounts{}, &fakeRegenerator{}, Options{RateLimit: 0.001, RateBurst: 1})

	first, _ := doRequest(t, server.Handler(), http.MethodGet, "/regenerate?number=1", "")
	second, body := doRequest(t, server.Handler(), http.MethodGet, "/regenerate?number=1", "")

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "error", body["status"])

	health, _ := doRequest(t, server.Handler(), http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, health.Code)
}

func TestRegenerateCollapsesConcurrentRequests(t *testing.T) {
	t.Parallel()

	regen := &fakeRegenerator{release: make(chan struct{})}
	server := newTestServer(&fakeAccounts{}, regen, Options{})

	const callers = 4
	var wg sync.WaitGroup
	codes := make(chan int, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodGet, "/regenerate?number=2", nil)
			rec := httptest.NewRecorder()
			server.Handler().ServeHTTP(rec, req)
			codes <- rec.Code
		}()
	}

	require.Eventually(t, func() bool { return regen.calls.Load() == 1 }, time.Second, time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	close(regen.release)
	wg.Wait()
	close(codes)

	for code := range codes {
		assert.Equal(t, http.StatusOK, code)
	}
	assert.LessOrEqual(t, regen.calls.Load(), int32(callers))
	assert.GreaterOrEqual(t, regen.calls.Load(), int32(1))
}

func TestRegenerateSharedRunSurvivesLeaderDisconnect(t *testing.T) {
	t.Parallel()

	regen := &fakeRegenerator{release: make(chan struct{}), result: domain.Regeneration{Name: "Second"}}
	server := newTestServer(&fakeAccounts{}, regen, Options{})

	leaderCtx, disconnect := context.WithCancel(context.Background())
	leaderCode := make(chan int, 1)
	go func() {
		req := httptest.NewRequest(http.MethodGet, "/regenerate?number=2", nil).WithContext(leaderCtx)
		rec := httptest.NewRecorder()
		server.Handler().ServeHTTP(rec, req)
		leaderCode <- rec.Code
	}()
	require.Eventually(t, func() bool { return regen.calls.Load() == 1 }, time.Second, time.Millisecond)

	followerCode := make(chan int, 1)
	go func() {
		req := httptest.NewRequest(http.MethodGet, "/regenerate?number=2", nil)
		rec := httptest.NewRecorder()
		server.Handler().ServeHTTP(rec, req)
		followerCode <- rec.Code
	}()

	disconnect()
	time.Sleep(20 * time.Millisecond)
	close(regen.release)

	assert.Equal(t, http.StatusOK, <-leaderCode)
	assert.Equal(t, http.StatusOK, <-followerCode)
}

func TestAddAccountQueryNamesAfterNumber(t *testing.T) {
	t.Parallel()

	accounts := &fakeAccounts{accounts: []domain.Account{{Number: 1}, {Number: 2}}}
	server := newTestServer(accounts, &fakeRegenerator{}, Options{})

	rec, body := doRequest(t, server.Handler(), http.MethodGet, "/add_account?email=c%40example.com&password=pw", "")

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, float64(3), body["account_number"])
	assert.Equal(t, "3", body["name"])
	require.Len(t, accounts.commands, 1)
	assert.Equal(t, application.NamingNumber, accounts.commands[0].Naming)
	assert.Equal(t, "c@example.com", accounts.commands[0].Email)
}

func TestAddAccountRequiresCredentials(t *testing.T) {
	t.Parallel()

	server := newTestServer(&fakeAccounts{}, &fakeRegenerator{}, Options{})

	rec, body := doRequest(t, server.Handler(), http.MethodGet, "/add_account?email=a%40example.com", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "error", body["status"])

	rec, _ = doRequest(t, server.Handler(), http.MethodPost, "/accounts", `{"email":"a@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = doRequest(t, server.Handler(), http.MethodPost, "/accounts", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddAccountJSONUsesDefaultNaming(t *testing.T) {
	t.Parallel()

	accounts := &fakeAccounts{accounts: []domain.Account{{Number: 1}, {Number: 2}}}
	server := newTestServer(accounts, &fakeRegenerator{}, Options{})

	rec, body := doRequest(t, server.Handler(), http.MethodPost, "/accounts", `{"email":"c@example.com","password":"pw"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, float64(3), body["account_number"])
	assert.Equal(t, "Account 3", body["name"])
	assert.Equal(t, application.NamingDefault, accounts.commands[0].Naming)
}

func TestListAccounts(t *testing.T) {
	t.Parallel()

	accounts := &fakeAccounts{accounts: []domain.Account{
		{Number: 1, Name: "Primary", Email: "a@example.com", Password: "secret"},
		{Number: 2, Email: "b@example.com"},
	}}
	server := newTestServer(accounts, &fakeRegenerator{}, Options{})

	rec, body := doRequest(t, server.Handler(), http.MethodGet, "/accounts", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []any{
		map[string]any{"number": float64(1), "name": "Primary"},
		map[string]any{"number": float64(2), "name": "Account 2"},
	}, body["accounts"])
	assert.NotContains(t, rec.Body.String(), "secret")
}

func TestListAccountsFailure(t *testing.T) {
	t.Parallel()

	server := newTestServer(&fakeAccounts{listErr: errors.New("decode accounts file")}, &fakeRegenerator{}, Options{})

	rec, body := doRequest(t, server.Handler(), http.MethodGet, "/accounts", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, body["message"], "decode accounts file")
}

func TestCookies(t *testing.T) {
	t.Parallel()

	empty := newTestServer(&fakeAccounts{}, &fakeRegenerator{}, Options{})
	rec, body := doRequest(t, empty.Handler(), http.MethodGet, "/cookies", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "error", body["status"])

	stored := newTestServer(&fakeAccounts{cookies: map[string]string{"Primary": "GET / HTTP/1.1"}}, &fakeRegenerator{}, Options{})
	rec, body = doRequest(t, stored.Handler(), http.MethodGet, "/cookies", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"Primary": "GET / HTTP/1.1"}, body["cookies"])
}

func TestHealthAndRequestID(t *testing.T) {
	t.Parallel()

	server := newTestServer(&fakeAccounts{}, &fakeRegenerator{}, Options{})

	rec, body := doRequest(t, server.Handler(), http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", body["status"])
	assert.Len(t, rec.Header().Get(requestIDHeader), 36)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(requestIDHeader))
}

func TestMetricsEndpoint(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	recorder := metrics.NewRecorder(reg)
	server := newTestServer(&fakeAccounts{}, &fakeRegenerator{}, Options{Recorder: recorder, Gatherer: reg})

	doRequest(t, server.Handler(), http.MethodGet, "/health", "")
	rec, _ := doRequest(t, server.Handler(), http.MethodGet, "/metrics", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `tbc_http_requests_total{method="GET",route="/health",status="200"} 1`)
}

func TestCORSHeaders(t *testing.T) {
	t.Parallel()

	server := newTestServer(&fakeAccounts{}, &fakeRegenerator{}, Options{CORSOrigins: []string{"*"}})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://dashboard.example.com")
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestServeStopsOnContextCancel(t *testing.T) {
	t.Parallel()

	server := newTestServer(&fakeAccounts{}, &fakeRegenerator{}, Options{})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- server.Serve(ctx, "127.0.0.1:0", time.Second) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}
