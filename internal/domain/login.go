package domain

type LoginState string

const (
	LoginInit                 LoginState = "init"
	LoginNavigated            LoginState = "navigated_login"
	LoginCredentialsSubmitted LoginState = "credentials_submitted"
	LoginPostNavigated        LoginState = "post_login_navigated"
	LoginSuccess              LoginState = "success"
	LoginFailed               LoginState = "failed"
)

// FailureKind names the screenshot written when a login attempt fails.
type FailureKind string

const (
	FailureFieldNotFound FailureKind = "field_not_found"
	FailureLoginRejected FailureKind = "login_rejected"
	FailureError         FailureKind = "error"
)

// Credentials are what the login flow types into the page.
type Credentials struct {
	Label    string
	Email    string
	Password string
}

// Regeneration is the outcome of a successful regeneration.
type Regeneration struct {
	Number      int    `json:"number"`
	Name        string `json:"account_name"`
	Cookie      string `json:"cookie"`
	RequestText string `json:"request_text"`
	Forwarded   bool   `json:"forwarded"`
}
