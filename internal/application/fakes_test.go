package application

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/terabox-cookie-cli/internal/domain"
	"github.com/bnema/terabox-cookie-cli/internal/ports"
)

const (
	testLoginURL  = "https://www.1024terabox.com/main?login"
	testTargetURL = "https://dm.1024terabox.com/ai/index?clearCache=1"
)

func testLoginConfig() LoginConfig {
	return LoginConfig{
		LoginURL:        testLoginURL,
		TargetURL:       testTargetURL,
		ExpectedDomain:  "1024terabox.com",
		PageSettle:      20 * time.Millisecond,
		EmailTimeout:    5 * time.Millisecond,
		FieldSettle:     5 * time.Millisecond,
		PasswordTimeout: 5 * time.Millisecond,
		SubmitSettle:    20 * time.Millisecond,
		TargetSettle:    20 * time.Millisecond,
		PollInterval:    time.Millisecond,
	}
}

type fakeLauncher struct {
	session *fakeSession
	err     error
	opens   int
}

func (l *fakeLauncher) Open(context.Context, ports.BrowserOptions) (ports.BrowserSession, error) {
	l.opens++
	if l.err != nil {
		return nil, l.err
	}
	return l.session, nil
}

type fakeSession struct {
	mu sync.Mutex

	url         string
	readyState  string
	found       map[domain.Locator]*fakeElement
	inputs      []*fakeElement
	cookies     []domain.Cookie
	userAgent   string
	pageSource  string
	redirects   map[string]string
	afterSubmit string

	faults map[string]error
	panics map[string]bool

	navigations []string
	findCalls   []domain.Locator
	cookieCalls int
	closeCalls  int
}

func newFakeSession() *fakeSession {
	return &fakeSession{
		readyState: "loading",
		found:      map[domain.Locator]*fakeElement{},
		redirects:  map[string]string{},
		faults:     map[string]error{},
		panics:     map[string]bool{},
		userAgent:  "UA/1.0",
		pageSource: "<html><body>login</body></html>",
	}
}

// newLoginPageSession serves a login page whose fields match the first
// locator strategy and whose submit lands on the main page.
func newLoginPageSession() *fakeSession {
	s := newFakeSession()
	email := &fakeElement{session: s, attrs: map[string]string{"type": "email"}, visible: true}
	password := &fakeElement{session: s, attrs: map[string]string{"type": "password"}, visible: true, submits: true}
	s.found[domain.LocatorsFor(domain.FieldEmail)[0]] = email
	s.found[domain.LocatorsFor(domain.FieldPassword)[0]] = password
	s.inputs = []*fakeElement{email, password}
	s.afterSubmit = "https://www.1024terabox.com/main"
	s.cookies = []domain.Cookie{
		{Name: "ndus", Value: "A"},
		{Name: "browserid", Value: "B"},
		{Name: "foo", Value: "C"},
	}
	return s
}

func (s *fakeSession) check(method string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.panics[method] {
		panic("injected panic in " + method)
	}
	return s.faults[method]
}

func (s *fakeSession) Navigate(_ context.Context, url string) error {
	if err := s.check("Navigate"); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.navigations = append(s.navigations, url)
	if redirect, ok := s.redirects[url]; ok {
		url = redirect
	}
	s.url = url
	s.readyState = "complete"
	return nil
}

func (s *fakeSession) Find(_ context.Context, locator domain.Locator) (ports.Element, error) {
	if err := s.check("Find"); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.findCalls = append(s.findCalls, locator)
	if element, ok := s.found[locator]; ok {
		return element, nil
	}
	return nil, nil
}

func (s *fakeSession) Inputs(context.Context) ([]ports.Element, error) {
	if err := s.check("Inputs"); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	elements := make([]ports.Element, 0, len(s.inputs))
	for _, input := range s.inputs {
		elements = append(elements, input)
	}
	return elements, nil
}

func (s *fakeSession) ReadyState(context.Context) (string, error) {
	if err := s.check("ReadyState"); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readyState, nil
}

func (s *fakeSession) CurrentURL(context.Context) (string, error) {
	if err := s.check("CurrentURL"); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.url, nil
}

func (s *fakeSession) UserAgent(context.Context) (string, error) {
	if err := s.check("UserAgent"); err != nil {
		return "", err
	}
	return s.userAgent, nil
}

func (s *fakeSession) Cookies(context.Context) ([]domain.Cookie, error) {
	s.mu.Lock()
	s.cookieCalls++
	s.mu.Unlock()
	if err := s.check("Cookies"); err != nil {
		return nil, err
	}
	return s.cookies, nil
}

func (s *fakeSession) Screenshot(context.Context) ([]byte, error) {
	if err := s.check("Screenshot"); err != nil {
		return nil, err
	}
	return []byte("png"), nil
}

func (s *fakeSession) PageSource(context.Context) (string, error) {
	if err := s.check("PageSource"); err != nil {
		return "", err
	}
	return s.pageSource, nil
}

func (s *fakeSession) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closeCalls++
	return nil
}

type fakeElement struct {
	session *fakeSession
	attrs   map[string]string
	visible bool
	value   string
	submits bool
	entered bool
}

func (e *fakeElement) Attribute(_ context.Context, name string) (string, error) {
	if err := e.session.check("Attribute"); err != nil {
		return "", err
	}
	return e.attrs[name], nil
}

func (e *fakeElement) Visible(context.Context) (bool, error) {
	if err := e.session.check("Visible"); err != nil {
		return false, err
	}
	return e.visible, nil
}

func (e *fakeElement) Value(context.Context) (string, error) {
	if err := e.session.check("Value"); err != nil {
		return "", err
	}
	return e.value, nil
}

func (e *fakeElement) Clear(context.Context) error {
	if err := e.session.check("Clear"); err != nil {
		return err
	}
	e.value = ""
	return nil
}

func (e *fakeElement) Type(_ context.Context, text string) error {
	if err := e.session.check("Type"); err != nil {
		return err
	}
	e.value += text
	return nil
}

func (e *fakeElement) PressEnter(context.Context) error {
	if err := e.session.check("PressEnter"); err != nil {
		return err
	}
	e.entered = true
	if e.submits {
		e.session.mu.Lock()
		e.session.url = e.session.afterSubmit
		e.session.mu.Unlock()
	}
	return nil
}

type recordingMetrics struct {
	mu              sync.Mutex
	outcomes        []string
	durations       []time.Duration
	states          []domain.LoginState
	forwardFailures int
}

func (m *recordingMetrics) ObserveRegeneration(outcome string, elapsed time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outcomes = append(m.outcomes, outcome)
	m.durations = append(m.durations, elapsed)
}

func (m *recordingMetrics) ObserveLoginState(state domain.LoginState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.states = append(m.states, state)
}

func (m *recordingMetrics) IncForwardFailure() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.forwardFailures++
}
