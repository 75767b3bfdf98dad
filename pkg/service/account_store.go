// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/AccelByte/extend-word-groups/pkg/state"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

// RedisAccountStore stores accounts and keeps unique lookup keys for
// username, email and wallet address.
type RedisAccountStore struct {
	client redis.UniversalClient
	docs   *RedisCollection[state.Account]
}

// NewRedisAccountStore creates an account store.
func NewRedisAccountStore(client redis.UniversalClient) *RedisAccountStore {
	return &RedisAccountStore{
		client: client,
		docs:   NewRedisCollection[state.Account](client, "accounts", 0),
	}
}

func lookupKey(field, value string) string {
	return fmt.Sprintf("%saccounts:by_%s:%s", KeyPrefix, field, strings.ToLower(value))
}

func (s *RedisAccountStore) FindByID(ctx context.Context, id string) (*state.Account, error) {
	return s.docs.FindByID(ctx, id)
}

func (s *RedisAccountStore) FindByEmail(ctx context.Context, email string) (*state.Account, error) {
	return s.findByLookup(ctx, "email", email)
}

func (s *RedisAccountStore) FindByUsername(ctx context.Context, username string) (*state.Account, error) {
	return s.findByLookup(ctx, "username", username)
}

func (s *RedisAccountStore) FindByWallet(ctx context.Context, address string) (*state.Account, error) {
	return s.findByLookup(ctx, "wallet", address)
}

func (s *RedisAccountStore) findByLookup(ctx context.Context, field, value string) (*state.Account, error) {
	id, err := s.client.Get(ctx, lookupKey(field, value)).Result()
	if err == redis.Nil {
		return nil, NewError(ErrNotFound, "account with %s %s not found", field, value)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up account by %s: %w", field, err)
	}
	return s.docs.FindByID(ctx, id)
}

// Create reserves the account's unique fields and stores it. If any field is
// taken nothing is written and ErrConflict names the field.
func (s *RedisAccountStore) Create(ctx context.Context, account *state.Account) error {
	lookups := map[string]string{"username": account.Username}
	if account.Email != "" {
		lookups["email"] = account.Email
	}
	if account.WalletAddress != "" {
		lookups["wallet"] = account.WalletAddress
	}

	var reserved []string
	release := func() {
		if len(reserved) == 0 {
			return
		}
		if err := s.client.Del(ctx, reserved...).Err(); err != nil {
			logrus.Errorf("failed to release account lookups %v: %v", reserved, err)
		}
	}

	for _, field := range []string{"username", "email", "wallet"} {
		value, ok := lookups[field]
		if !ok {
			continue
		}
		key := lookupKey(field, value)
		ok, err := s.client.SetNX(ctx, key, account.ID, 0).Result()
		if err != nil {
			release()
			return fmt.Errorf("failed to reserve %s: %w", field, err)
		}
		if !ok {
			release()
			return NewError(ErrConflict, "%s already registered", field)
		}
		reserved = append(reserved, key)
	}

	if err := s.docs.Create(ctx, account.ID, account); err != nil {
		release()
		return err
	}

	logrus.Infof("created account %s (%s)", account.ID, account.Username)
	return nil
}

func (s *RedisAccountStore) Save(ctx context.Context, account *state.Account) error {
	return s.docs.Save(ctx, account.ID, account)
}
