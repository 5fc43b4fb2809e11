// Copyright 2023 Board of Trustees of the University of Illinois.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package auth

import (
	"membership-building-block/core/interfaces"
	"membership-building-block/core/model"
	"membership-building-block/utils"
	"strings"
	"testing"
	"time"

	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logs"
	"golang.org/x/crypto/bcrypt"
)

// memoryStorage keeps the documents in insertion order. Token lookups ignore the case,
// as a store with a case insensitive collation would.
type memoryStorage struct {
	accounts []model.Account
	roles    []model.Role
	tokens   []model.OAuthToken

	saves int
}

func (s *memoryStorage) PerformTransaction(transaction func(adapter interfaces.Storage) error) error {
	return transaction(s)
}

func (s *memoryStorage) FindAccounts() ([]model.Account, error) {
	res := make([]model.Account, len(s.accounts))
	for i, account := range s.accounts {
		res[i] = copyAccount(account)
	}
	return res, nil
}

func (s *memoryStorage) FindAccountByID(id string) (*model.Account, error) {
	for _, account := range s.accounts {
		if account.UserID == id {
			found := copyAccount(account)
			return &found, nil
		}
	}
	return nil, nil
}

func (s *memoryStorage) FindAccountByUsername(username string) (*model.Account, error) {
	for _, account := range s.accounts {
		if account.UserName == username {
			found := copyAccount(account)
			return &found, nil
		}
	}
	return nil, nil
}

func (s *memoryStorage) FindUserIDByUsername(username string) (string, error) {
	account, _ := s.FindAccountByUsername(username)
	if account == nil {
		return "", nil
	}
	return account.UserID, nil
}

func (s *memoryStorage) FindAccountsByConfirmationToken(token string) ([]model.Account, error) {
	return s.findByToken(token, confirmationToken), nil
}

func (s *memoryStorage) FindAccountsByPasswordVerificationToken(token string) ([]model.Account, error) {
	return s.findByToken(token, passwordVerificationToken), nil
}

func (s *memoryStorage) findByToken(token string, accountToken func(account model.Account) string) []model.Account {
	res := []model.Account{}
	for _, account := range s.accounts {
		if strings.EqualFold(accountToken(account), token) {
			res = append(res, copyAccount(account))
		}
	}
	return res
}

func (s *memoryStorage) InsertAccount(account model.Account) error {
	for _, existing := range s.accounts {
		if existing.UserName == account.UserName || existing.UserID == account.UserID {
			return errors.ErrorData(statusDuplicate, model.TypeAccount, nil).SetStatus(utils.ErrorStatusAlreadyExists)
		}
	}
	s.accounts = append(s.accounts, copyAccount(account))
	return nil
}

func (s *memoryStorage) SaveAccount(account *model.Account) error {
	s.saves++
	for i, existing := range s.accounts {
		if existing.UserID == account.UserID {
			s.accounts[i] = copyAccount(*account)
			return nil
		}
	}
	s.accounts = append(s.accounts, copyAccount(*account))
	return nil
}

func (s *memoryStorage) DeleteAccount(id string) error {
	for i, existing := range s.accounts {
		if existing.UserID == id {
			s.accounts = append(s.accounts[:i], s.accounts[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *memoryStorage) FindRoles() ([]model.Role, error) {
	return append([]model.Role{}, s.roles...), nil
}

func (s *memoryStorage) FindRole(name string) (*model.Role, error) {
	for _, role := range s.roles {
		if role.Name == name {
			found := role
			return &found, nil
		}
	}
	return nil, nil
}

func (s *memoryStorage) InsertRole(role model.Role) error {
	s.roles = append(s.roles, role)
	return nil
}

func (s *memoryStorage) DeleteRole(id string) error {
	for i, role := range s.roles {
		if role.ID == id {
			s.roles = append(s.roles[:i], s.roles[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *memoryStorage) FindOAuthToken(provider string, providerUserID string) (*model.OAuthToken, error) {
	for _, token := range s.tokens {
		if token.Provider == provider && token.ProviderUserID == providerUserID {
			found := token
			return &found, nil
		}
	}
	return nil, nil
}

func (s *memoryStorage) FindOAuthTokensByUserID(userID string) ([]model.OAuthToken, error) {
	res := []model.OAuthToken{}
	for _, token := range s.tokens {
		if token.UserID == userID {
			res = append(res, token)
		}
	}
	return res, nil
}

func (s *memoryStorage) InsertOAuthToken(token model.OAuthToken) error {
	existing, _ := s.FindOAuthToken(token.Provider, token.ProviderUserID)
	if existing != nil {
		return errors.ErrorData(statusDuplicate, model.TypeOAuthToken, nil).SetStatus(utils.ErrorStatusAlreadyExists)
	}
	s.tokens = append(s.tokens, token)
	return nil
}

func (s *memoryStorage) DeleteOAuthToken(provider string, providerUserID string) error {
	for i, token := range s.tokens {
		if token.Provider == provider && token.ProviderUserID == providerUserID {
			s.tokens = append(s.tokens[:i], s.tokens[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *memoryStorage) account(username string) model.Account {
	account, _ := s.FindAccountByUsername(username)
	if account == nil {
		return model.Account{}
	}
	return *account
}

func copyAccount(account model.Account) model.Account {
	account.Roles = append([]string{}, account.Roles...)
	account.OAuthData = append([]model.OAuthData{}, account.OAuthData...)
	return account
}

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time {
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func testConfig() Config {
	config := DefaultConfig()
	config.BcryptCost = bcrypt.MinCost
	return config
}

// newTestAuth creates a new test auth instance with a fixed clock
func newTestAuth(t *testing.T, storage interfaces.Storage, config Config) (*Auth, *testClock) {
	logger := logs.NewLogger("auth_test", nil)

	auth, err := NewAuth(storage, config, logger)
	if err != nil {
		t.Fatalf("error creating auth: %s", err)
	}

	clock := &testClock{now: time.Date(2023, time.March, 1, 12, 0, 0, 0, time.UTC)}
	auth.now = clock.Now
	return auth, clock
}

// createTestAccount creates a confirmed account with a password
func createTestAccount(t *testing.T, auth *Auth, username string, password string) model.Account {
	_, err := auth.CreateAccount(username, password, false, nil)
	if err != nil {
		t.Fatalf("error creating account %s: %s", username, err)
	}

	account, err := auth.storage.FindAccountByUsername(username)
	if err != nil || account == nil {
		t.Fatalf("error finding account %s: %v", username, err)
	}
	return *account
}
