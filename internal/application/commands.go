package application

type AccountNaming string

const (
	// NamingDefault names an unnamed account "Account N".
	NamingDefault AccountNaming = "default"
	// NamingNumber names an unnamed account after its number.
	NamingNumber AccountNaming = "number"
)

type AddAccountCommand struct {
	Email    string
	Password string
	Name     string
	Naming   AccountNaming
}

type SetPasswordCommand struct {
	Number int
	Value  string
}
