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
	"membership-building-block/utils"
	"time"

	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logs"
	"github.com/rokwire/logging-library-go/v2/logutils"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/go-playground/validator.v9"
)

const (
	//HashAlgorithmBcrypt bcrypt password hashing
	HashAlgorithmBcrypt string = "bcrypt"
	//HashAlgorithmArgon2id argon2id password hashing
	HashAlgorithmArgon2id string = "argon2id"

	maxPasswordLength int = 128
	maxTokenAttempts  int = 3

	typeAuthConfig logutils.MessageDataType = "auth config"

	statusDuplicate logutils.MessageDataStatus = "duplicate"
)

// Config represents the account policy
type Config struct {
	//accounts created with confirmation must be confirmed before a password login succeeds
	RequireConfirmation bool
	//clear the confirmation token once the account is confirmed
	ClearConfirmationToken bool

	MaxInvalidPasswordAttempts int           `validate:"min=1"`
	LockoutWindow              time.Duration `validate:"gt=0"`

	//random bytes in the confirmation and password reset tokens
	TokenLength int `validate:"min=16,max=64"`

	HashAlgorithm string `validate:"oneof=bcrypt argon2id"`
	BcryptCost    int    `validate:"min=4,max=31"`
}

// DefaultConfig returns the default account policy
func DefaultConfig() Config {
	return Config{
		RequireConfirmation:        true,
		ClearConfirmationToken:     true,
		MaxInvalidPasswordAttempts: 5,
		LockoutWindow:              10 * time.Minute,
		TokenLength:                16,
		HashAlgorithm:              HashAlgorithmBcrypt,
		BcryptCost:                 bcrypt.DefaultCost,
	}
}

// Auth represents the account identity state machine
type Auth struct {
	storage interfaces.Storage
	hasher  PasswordHasher

	config Config

	logger *logs.Logger

	now func() time.Time
}

// NewAuth creates a new auth instance
func NewAuth(storage interfaces.Storage, config Config, logger *logs.Logger) (*Auth, error) {
	if storage == nil {
		return nil, errors.ErrorData(logutils.StatusMissing, "storage", nil)
	}

	err := ValidateConfig(config)
	if err != nil {
		return nil, err
	}

	hasher, err := NewPasswordHasher(config.HashAlgorithm, config.BcryptCost)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionInitialize, typePasswordHasher, nil, err)
	}

	return &Auth{storage: storage, hasher: hasher, config: config, logger: logger, now: time.Now}, nil
}

// ValidateConfig checks the account policy
func ValidateConfig(config Config) error {
	validate := validator.New()
	err := validate.Struct(config)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionValidate, typeAuthConfig, nil, err).SetStatus(utils.ErrorStatusInvalid)
	}
	return nil
}

// GetConfig returns the account policy used by the auth instance
func (a *Auth) GetConfig() Config {
	return a.config
}

func (a *Auth) currentTime() time.Time {
	return a.now().UTC()
}
