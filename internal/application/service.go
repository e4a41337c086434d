package application

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/bnema/terabox-cookie-cli/internal/domain"
	"github.com/bnema/terabox-cookie-cli/internal/ports"
)

var ErrMissingCredentials = errors.New("email and password are required")

// Service manages the account registry, account secrets and stored cookies.
type Service struct {
	repo    ports.AccountRepository
	store   ports.SecretStore
	cookies ports.CookieStore

	// addMu keeps number-derived names consistent with assigned numbers.
	addMu sync.Mutex
}

func NewService(repo ports.AccountRepository, store ports.SecretStore, cookies ports.CookieStore) *Service {
	return &Service{
		repo:    repo,
		store:   store,
		cookies: cookies,
	}
}

func PasswordSecretKey(number int) string {
	return "terabox/account-" + strconv.Itoa(number) + "/password"
}

func (s *Service) GetAccount(ctx context.Context, number int) (domain.Account, error) {
	account, err := s.repo.GetByNumber(ctx, number)
	if err != nil {
		return domain.Account{}, fmt.Errorf("get account by number: %w", err)
	}

	return account, nil
}

func (s *Service) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}

	return accounts, nil
}

func (s *Service) AddAccount(ctx context.Context, cmd AddAccountCommand) (domain.Account, error) {
	if strings.TrimSpace(cmd.Email) == "" || cmd.Password == "" {
		return domain.Account{}, ErrMissingCredentials
	}

	s.addMu.Lock()
	defer s.addMu.Unlock()

	existing, err := s.repo.List(ctx)
	if err != nil {
		return domain.Account{}, fmt.Errorf("list accounts: %w", err)
	}
	next := len(existing) + 1

	account := domain.Account{
		Name:     strings.TrimSpace(cmd.Name),
		Email:    strings.TrimSpace(cmd.Email),
		Password: cmd.Password,
	}
	if account.Name == "" {
		switch cmd.Naming {
		case NamingNumber:
			account.Name = strconv.Itoa(next)
		default:
			account.Name = fmt.Sprintf("Account %d", next)
		}
	}

	added, err := s.repo.Add(ctx, account)
	if err != nil {
		return domain.Account{}, fmt.Errorf("add account: %w", err)
	}

	return added, nil
}

// SetPassword moves the account password into the secret store and records
// the reference in the registry.
func (s *Service) SetPassword(ctx context.Context, cmd SetPasswordCommand) error {
	if cmd.Value == "" {
		return ErrMissingCredentials
	}

	account, err := s.repo.GetByNumber(ctx, cmd.Number)
	if err != nil {
		return fmt.Errorf("get account by number: %w", err)
	}
	originalAccount := account
	previousRef := account.PasswordRef
	secretKey := PasswordSecretKey(account.Number)

	if err := s.store.Put(ctx, secretKey, cmd.Value); err != nil {
		return fmt.Errorf("store account password: %w", err)
	}

	account.PasswordRef = secretKey
	account.Password = ""

	if err := s.repo.Save(ctx, account); err != nil {
		if previousRef != secretKey {
			if rollbackErr := s.store.Delete(ctx, secretKey); rollbackErr != nil {
				return fmt.Errorf("save account password and rollback stored secret: %w", errors.Join(err, rollbackErr))
			}
		}

		return fmt.Errorf("save account password: %w", err)
	}

	if previousRef == "" || previousRef == secretKey {
		return nil
	}

	if err := s.store.Delete(ctx, previousRef); err != nil {
		var rollbackErr error
		if restoreErr := s.repo.Save(ctx, originalAccount); restoreErr != nil {
			rollbackErr = errors.Join(rollbackErr, restoreErr)
		}
		if newSecretDeleteErr := s.store.Delete(ctx, secretKey); newSecretDeleteErr != nil {
			rollbackErr = errors.Join(rollbackErr, newSecretDeleteErr)
		}
		if rollbackErr != nil {
			return fmt.Errorf("delete previous password secret and rollback password update: %w", errors.Join(err, rollbackErr))
		}
		return fmt.Errorf("delete previous password secret: %w", err)
	}

	return nil
}

func (s *Service) ResolvePassword(ctx context.Context, account domain.Account) (string, error) {
	if account.PasswordRef == "" {
		if account.Password == "" {
			return "", fmt.Errorf("account %d: %w", account.Number, ErrMissingCredentials)
		}
		return account.Password, nil
	}

	password, err := s.store.Get(ctx, account.PasswordRef)
	if err != nil {
		return "", fmt.Errorf("resolve password for account %d: %w", account.Number, err)
	}
	if password == "" {
		return "", fmt.Errorf("resolve password for account %d: %w", account.Number, domain.ErrSecretNotFound)
	}

	return password, nil
}

// Cookies returns every stored request text keyed by display name.
func (s *Service) Cookies(ctx context.Context) (map[string]string, error) {
	all, err := s.cookies.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("read stored cookies: %w", err)
	}
	if len(all) == 0 {
		return nil, domain.ErrNoCookiesStored
	}

	return all, nil
}

func (s *Service) StatusAll(ctx context.Context) ([]AccountStatus, error) {
	accounts, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}

	stored, err := s.cookies.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("read stored cookies: %w", err)
	}

	statuses := make([]AccountStatus, 0, len(accounts))
	for _, account := range accounts {
		status := AccountStatus{
			Account:        account,
			PasswordSource: PasswordInline,
		}
		if account.PasswordRef != "" {
			status.PasswordSource = PasswordSecret
		}
		if requestText, ok := stored[account.DisplayName()]; ok {
			status.HasCookies = true
			status.Cookie, _ = domain.CookieLine(requestText)
		}
		statuses = append(statuses, status)
	}

	sort.SliceStable(statuses, func(i, j int) bool {
		return statuses[i].Account.Number < statuses[j].Account.Number
	})

	return statuses, nil
}
