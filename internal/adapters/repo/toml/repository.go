package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bnema/terabox-cookie-cli/internal/adapters/repo/fsutil"
	"github.com/bnema/terabox-cookie-cli/internal/domain"
	"github.com/bnema/terabox-cookie-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	accountsPathKey    = "accounts.path"
	accountsFileMode   = 0o600
	accountsDirMode    = 0o700
	accountsConfigDir  = ".tbc"
	accountsConfigFile = "accounts.toml"
	tempFilePattern    = ".accounts-*.toml.tmp"
)

// Repository stores accounts as an ordered TOML array. The 1-based position
// of an entry is the account number.
type Repository struct {
	accountsPath string
	mu           *sync.RWMutex
}

var _ ports.AccountRepository = (*Repository)(nil)

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	if !cfg.IsSet(accountsPathKey) {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		cfg.SetDefault(accountsPathKey, filepath.Join(homeDir, accountsConfigDir, accountsConfigFile))
	}

	accountsPath := cfg.GetString(accountsPathKey)
	if accountsPath == "" {
		return nil, errors.New("accounts path is empty")
	}
	accountsPath, err := fsutil.NormalizePath(accountsPath)
	if err != nil {
		return nil, fmt.Errorf("normalize accounts path: %w", err)
	}

	return &Repository{accountsPath: accountsPath, mu: fsutil.LockForPath(accountsPath)}, nil
}

func (r *Repository) Path() string {
	return r.accountsPath
}

func (r *Repository) Add(ctx context.Context, account domain.Account) (domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return domain.Account{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.Account{}, err
	}

	file.Accounts = append(file.Accounts, toSchema(account))
	account.Number = len(file.Accounts)

	if err := ctx.Err(); err != nil {
		return domain.Account{}, err
	}

	if err := r.writeSchema(file); err != nil {
		return domain.Account{}, err
	}

	return account, nil
}

func (r *Repository) Save(ctx context.Context, account domain.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	index := account.Number - 1
	if index < 0 || index >= len(file.Accounts) {
		return fmt.Errorf("account %d: %w", account.Number, domain.ErrAccountNotFound)
	}
	file.Accounts[index] = toSchema(account)

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(file)
}

func (r *Repository) GetByNumber(ctx context.Context, number int) (domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return domain.Account{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.Account{}, err
	}

	index := number - 1
	if index < 0 || index >= len(file.Accounts) {
		return domain.Account{}, fmt.Errorf("account %d: %w", number, domain.ErrAccountNotFound)
	}

	return fromSchema(number, file.Accounts[index]), nil
}

func (r *Repository) List(ctx context.Context) ([]domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	accounts := make([]domain.Account, 0, len(file.Accounts))
	for i, entry := range file.Accounts {
		accounts = append(accounts, fromSchema(i+1, entry))
	}

	return accounts, nil
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.accountsPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{Version: currentSchemaVersion}, nil
		}
		return fileSchema{}, fmt.Errorf("read accounts file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode accounts file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode accounts file: %w", err)
	}

	if err := fsutil.WriteFileAtomic(r.accountsPath, data, accountsDirMode, accountsFileMode, tempFilePattern); err != nil {
		return fmt.Errorf("write accounts file: %w", err)
	}

	return nil
}

func toSchema(account domain.Account) accountSchema {
	return accountSchema{
		Name:        account.Name,
		Email:       account.Email,
		Password:    account.Password,
		PasswordRef: account.PasswordRef,
	}
}

func fromSchema(number int, account accountSchema) domain.Account {
	return domain.Account{
		Number:      number,
		Name:        account.Name,
		Email:       account.Email,
		Password:    account.Password,
		PasswordRef: account.PasswordRef,
	}
}
