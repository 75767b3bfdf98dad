// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package account

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/AccelByte/extend-word-groups/pkg/auth"
	"github.com/AccelByte/extend-word-groups/pkg/pipeline"
	"github.com/AccelByte/extend-word-groups/pkg/service"
	signalBuiltin "github.com/AccelByte/extend-word-groups/pkg/signal/builtin"
	"github.com/AccelByte/extend-word-groups/pkg/state"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	MinPasswordLength = 6
	walletNameLength  = 8
)

type RegisterRequest struct {
	Username      string
	Email         string
	Password      string
	WalletAddress string
}

// Service owns accounts: sign-up, sign-in and the XP and points ledger.
type Service struct {
	accounts service.AccountStore
	tokens   *auth.TokenIssuer
	wallets  service.WalletVerifier
	events   pipeline.Publisher
	now      func() time.Time
}

// NewService creates the account service. events may be nil.
func NewService(accounts service.AccountStore, tokens *auth.TokenIssuer, wallets service.WalletVerifier, events pipeline.Publisher) *Service {
	return &Service{
		accounts: accounts,
		tokens:   tokens,
		wallets:  wallets,
		events:   events,
		now:      time.Now,
	}
}

func newAccount(id, username string, authType state.AuthType, now time.Time) *state.Account {
	return &state.Account{
		ID:           id,
		Username:     username,
		AuthType:     authType,
		Level:        1,
		Inventory:    map[string]int{},
		Achievements: []string{},
		Claims:       map[string]string{},
		CreatedAt:    now,
		LastLoginAt:  now,
	}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)

	if username == "" {
		return nil, service.NewError(service.ErrValidation, "username is required")
	}
	if _, err := mail.ParseAddress(email); err != nil || !strings.Contains(email, "@") {
		return nil, service.NewError(service.ErrValidation, "a valid email is required")
	}
	if len(req.Password) < MinPasswordLength {
		return nil, service.NewError(service.ErrValidation, "password must be at least %d characters", MinPasswordLength)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	account := newAccount(uuid.NewString(), username, state.AuthTypePassword, s.now())
	account.Email = email
	account.PasswordHash = hash
	account.WalletAddress = strings.TrimSpace(req.WalletAddress)

	if err := s.accounts.Create(ctx, account); err != nil {
		if errors.Is(err, service.ErrConflict) {
			return nil, service.NewError(service.ErrConflict, "user already exists with this email, username, or wallet address")
		}
		return nil, err
	}

	return s.authResult(account)
}

// Login checks an email and password. Unknown emails and wrong passwords are indistinguishable.
func (s *Service) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	account, err := s.accounts.FindByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, service.ErrNotFound) {
		return nil, service.NewError(service.ErrUnauthorized, "invalid credentials")
	}
	if err != nil {
		return nil, err
	}
	if account.PasswordHash == "" || !auth.CheckPassword(account.PasswordHash, password) {
		return nil, service.NewError(service.ErrUnauthorized, "invalid credentials")
	}

	s.touch(ctx, account)
	return s.authResult(account)
}

// ConnectWallet signs in with a wallet signature, creating the account on first use.
func (s *Service) ConnectWallet(ctx context.Context, address, signature, message string) (*AuthResult, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, service.NewError(service.ErrValidation, "wallet address is required")
	}

	ok, err := s.wallets.Verify(ctx, address, signature, message)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, service.NewError(service.ErrUnauthorized, "invalid signature")
	}

	account, err := s.accounts.FindByWallet(ctx, address)
	switch {
	case err == nil:
		s.touch(ctx, account)
	case errors.Is(err, service.ErrNotFound):
		account, err = s.createWalletAccount(ctx, address)
		if err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	return s.authResult(account)
}

// createWalletAccount names the account after the address prefix. Addresses
// share their leading characters, so a taken name falls back to the full address.
func (s *Service) createWalletAccount(ctx context.Context, address string) (*state.Account, error) {
	short := address
	if len(short) > walletNameLength {
		short = short[:walletNameLength]
	}

	var lastErr error
	for _, name := range []string{"user_" + short, "user_" + address} {
		account := newAccount(uuid.NewString(), name, state.AuthTypeWallet, s.now())
		account.WalletAddress = address

		lastErr = s.accounts.Create(ctx, account)
		if lastErr == nil {
			return account, nil
		}
		if !errors.Is(lastErr, service.ErrConflict) {
			return nil, lastErr
		}
		// a concurrent connect with the same wallet may have won
		if existing, err := s.accounts.FindByWallet(ctx, address); err == nil {
			return existing, nil
		}
	}
	return nil, lastErr
}

func (s *Service) Profile(ctx context.Context, accountID string) (*Profile, error) {
	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return NewProfile(account), nil
}

// Progression looks a player up by account id, username or wallet address.
// A stored level that drifted from the XP total is corrected.
func (s *Service) Progression(ctx context.Context, identifier string) (*Progression, error) {
	account, err := s.lookup(ctx, identifier)
	if errors.Is(err, service.ErrNotFound) {
		return &Progression{
			LevelInfo:    state.LevelFor(0),
			Inventory:    map[string]int{},
			Achievements: []string{},
		}, nil
	}
	if err != nil {
		return nil, err
	}

	info := state.LevelFor(account.XP)
	if info.Level != account.Level {
		account.Level = info.Level
		if err := s.accounts.Save(ctx, account); err != nil {
			logrus.Warnf("failed to persist corrected level for %s: %v", account.ID, err)
		}
	}

	return &Progression{
		LevelInfo:    info,
		XP:           account.XP,
		TotalPoints:  account.TotalPoints,
		Inventory:    nonNilInventory(account.Inventory),
		Achievements: nonNilStrings(account.Achievements),
	}, nil
}

func (s *Service) lookup(ctx context.Context, identifier string) (*state.Account, error) {
	if identifier == "" || identifier == auth.AnonymousPlayer {
		return nil, service.NewError(service.ErrNotFound, "no account for anonymous player")
	}
	lookups := []func(context.Context, string) (*state.Account, error){
		s.accounts.FindByID,
		s.accounts.FindByUsername,
		s.accounts.FindByWallet,
	}
	for _, find := range lookups {
		account, err := find(ctx, identifier)
		if err == nil {
			return account, nil
		}
		if !errors.Is(err, service.ErrNotFound) {
			return nil, err
		}
	}
	return nil, service.NewError(service.ErrNotFound, "account %s not found", identifier)
}

// AwardXP adds XP, levels the account up and publishes a level_up event when the level changed.
func (s *Service) AwardXP(ctx context.Context, accountID string, amount int) (*XPResult, error) {
	if amount <= 0 {
		return nil, service.NewError(service.ErrValidation, "xp amount must be positive")
	}
	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	info, leveledUp := state.ApplyXP(account, amount)
	if err := s.accounts.Save(ctx, account); err != nil {
		return nil, err
	}

	result := &XPResult{
		XPAwarded: amount,
		LeveledUp: leveledUp,
		NewXP:     account.XP,
		NewLevel:  account.Level,
	}
	if leveledUp {
		logrus.Infof("account %s reached level %d", account.ID, info.Level)
		result.Achievements = pipeline.Publish(ctx, s.events, signalBuiltin.TypeLevelUp, &signalBuiltin.LevelUpEvent{
			UserID:     account.ID,
			Level:      info.Level,
			OccurredAt: s.now(),
		})
	}
	return result, nil
}

// AwardPoints credits spendable points to the account.
func (s *Service) AwardPoints(ctx context.Context, accountID string, amount int) (int, error) {
	if amount < 0 {
		return 0, service.NewError(service.ErrValidation, "points amount must not be negative")
	}
	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		return 0, err
	}
	account.TotalPoints += amount
	if err := s.accounts.Save(ctx, account); err != nil {
		return 0, err
	}
	return account.TotalPoints, nil
}

func (s *Service) touch(ctx context.Context, account *state.Account) {
	account.LastLoginAt = s.now()
	if err := s.accounts.Save(ctx, account); err != nil {
		logrus.Warnf("failed to record login for %s: %v", account.ID, err)
	}
}

func (s *Service) authResult(account *state.Account) (*AuthResult, error) {
	token, err := s.tokens.Issue(account.ID, account.WalletAddress)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: NewProfile(account)}, nil
}
