package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version  int             `toml:"version"`
	Accounts []accountSchema `toml:"accounts"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported accounts schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

// accountSchema has no number field: an account's number is its position.
type accountSchema struct {
	Name        string `toml:"name"`
	Email       string `toml:"email"`
	Password    string `toml:"password,omitempty"`
	PasswordRef string `toml:"password_ref,omitempty"`
}
