package domain

import "strings"

type FieldRole string

const (
	FieldEmail    FieldRole = "email"
	FieldPassword FieldRole = "password"
)

type LocatorKind string

const (
	LocatorCSS   LocatorKind = "css"
	LocatorXPath LocatorKind = "xpath"
	LocatorID    LocatorKind = "id"
)

// Locator describes one way of finding an element on the page.
type Locator struct {
	Kind LocatorKind
	Expr string
}

func (l Locator) String() string {
	return string(l.Kind) + ":" + l.Expr
}

// LocatorsFor returns the strategies for role, most specific first.
func LocatorsFor(role FieldRole) []Locator {
	switch role {
	case FieldEmail:
		return []Locator{
			{Kind: LocatorCSS, Expr: "input[type='email']"},
			{Kind: LocatorCSS, Expr: "input[name='email']"},
			{Kind: LocatorXPath, Expr: "//input[@type='email']"},
			{Kind: LocatorXPath, Expr: "//input[contains(@placeholder, 'Email')]"},
			{Kind: LocatorID, Expr: "email"},
		}
	case FieldPassword:
		return []Locator{
			{Kind: LocatorCSS, Expr: "input[type='password']"},
			{Kind: LocatorCSS, Expr: "input[name='password']"},
			{Kind: LocatorXPath, Expr: "//input[@type='password']"},
			{Kind: LocatorXPath, Expr: "//input[contains(@placeholder, 'assword')]"},
			{Kind: LocatorID, Expr: "password"},
		}
	default:
		return nil
	}
}

// MatchesRole is the fallback check applied to arbitrary inputs when no
// locator strategy matched.
func MatchesRole(role FieldRole, inputType, placeholder string) bool {
	inputType = strings.ToLower(strings.TrimSpace(inputType))
	if inputType == "" {
		inputType = "text"
	}
	switch role {
	case FieldEmail:
		return inputType == "text" || inputType == "email"
	case FieldPassword:
		return inputType == "password" || strings.Contains(strings.ToLower(placeholder), "password")
	default:
		return false
	}
}
