package domain

import "strings"

// DefaultCookiePriority is the order downstream consumers expect the
// well-known cookies in.
var DefaultCookiePriority = []string{
	"browserid",
	"lang",
	"csrfToken",
	"__stripe_mid",
	"PANWEB",
	"shareRedirectDomain",
	"_fbp",
	"_clck",
	"__bid_n",
	"_clsk",
	"_uetsid",
	"_uetvid",
	"ndut_fmt",
	"g_state",
	"ndut_fmv",
	"ab_sr",
	"ndus",
}

type Cookie struct {
	Name   string
	Value  string
	Domain string
	Path   string
}

type CookiePair struct {
	Name  string
	Value string
}

func (p CookiePair) String() string {
	return p.Name + "=" + p.Value
}

// CookieSet maps cookie names to values and remembers the order in which
// names were first seen.
type CookieSet struct {
	names  []string
	values map[string]string
}

// NewCookieSet keeps the first position of a duplicated name and its last value.
func NewCookieSet(cookies []Cookie) CookieSet {
	set := CookieSet{
		names:  make([]string, 0, len(cookies)),
		values: make(map[string]string, len(cookies)),
	}
	for _, cookie := range cookies {
		if cookie.Name == "" {
			continue
		}
		if _, ok := set.values[cookie.Name]; !ok {
			set.names = append(set.names, cookie.Name)
		}
		set.values[cookie.Name] = cookie.Value
	}

	return set
}

func (s CookieSet) Len() int {
	return len(s.names)
}

func (s CookieSet) Value(name string) (string, bool) {
	value, ok := s.values[name]
	return value, ok
}

// Names returns the cookie names in discovery order.
func (s CookieSet) Names() []string {
	return append([]string(nil), s.names...)
}

type OrderedCookies []CookiePair

func (o OrderedCookies) String() string {
	parts := make([]string, 0, len(o))
	for _, pair := range o {
		parts = append(parts, pair.String())
	}
	return strings.Join(parts, "; ")
}

// OrderCookies emits the priority names present in set, in priority order,
// followed by every other name in discovery order.
func OrderCookies(set CookieSet, priority []string) OrderedCookies {
	ordered := make(OrderedCookies, 0, set.Len())
	listed := make(map[string]struct{}, len(priority))

	for _, name := range priority {
		if _, seen := listed[name]; seen {
			continue
		}
		listed[name] = struct{}{}
		if value, ok := set.Value(name); ok {
			ordered = append(ordered, CookiePair{Name: name, Value: value})
		}
	}

	for _, name := range set.names {
		if _, ok := listed[name]; ok {
			continue
		}
		ordered = append(ordered, CookiePair{Name: name, Value: set.values[name]})
	}

	return ordered
}

// ParseCookieString is the inverse of OrderedCookies.String.
func ParseCookieString(raw string) OrderedCookies {
	var ordered OrderedCookies
	for _, part := range strings.Split(raw, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, value, _ := strings.Cut(part, "=")
		ordered = append(ordered, CookiePair{Name: name, Value: value})
	}
	return ordered
}

// Capture is the result of reading a logged-in browser session.
type Capture struct {
	Cookies     OrderedCookies
	UserAgent   string
	RequestText string
}
