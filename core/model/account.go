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

package model

import (
	"time"

	"github.com/rokwire/logging-library-go/v2/logutils"
)

const (
	//TypeAccount account type
	TypeAccount logutils.MessageDataType = "account"
	//TypeUserID user id type
	TypeUserID logutils.MessageDataType = "user id"
	//TypeUsername username type
	TypeUsername logutils.MessageDataType = "username"
	//TypePassword password type
	TypePassword logutils.MessageDataType = "password"
	//TypeConfirmationToken confirmation token type
	TypeConfirmationToken logutils.MessageDataType = "confirmation token"
	//TypePasswordVerificationToken password verification token type
	TypePasswordVerificationToken logutils.MessageDataType = "password verification token"
)

// Account represents the stored identity of a user
//
//	One account per user name. The account carries the local credential, the confirmation
//	and lockout state, the reset token, the role membership and the linked external logins.
type Account struct {
	UserID   string `validate:"required"`
	UserName string `validate:"required,max=256"`

	Password     string //empty for accounts which authenticate only externally
	PasswordSalt string

	PasswordChangedDate *time.Time
	CreateDate          time.Time
	LastLoginDate       *time.Time

	IsConfirmed       bool
	ConfirmationToken string

	PasswordFailuresSinceLastSuccess int
	LastPasswordFailureDate          *time.Time

	PasswordVerificationToken               string
	PasswordVerificationTokenExpirationDate *time.Time

	Roles     []string
	OAuthData []OAuthData

	//fields not known by the model, kept as they are on every replace
	CatchAll map[string]interface{}
}

// HasLocalPassword checks if the account has a local credential
func (a Account) HasLocalPassword() bool {
	return len(a.Password) > 0 && len(a.PasswordSalt) > 0
}

// HasRole checks if the account is a member of the role
func (a Account) HasRole(roleName string) bool {
	for _, role := range a.Roles {
		if role == roleName {
			return true
		}
	}
	return false
}

// FindOAuthData finds the linked external login data for the provider and provider user id
func (a Account) FindOAuthData(provider string, providerUserID string) *OAuthData {
	for i := range a.OAuthData {
		if a.OAuthData[i].Provider == provider && a.OAuthData[i].ProviderUserID == providerUserID {
			return &a.OAuthData[i]
		}
	}
	return nil
}

// OAuthData represents an external login bound to an account
type OAuthData struct {
	Provider       string
	ProviderUserID string
}

// reservedAccountFields are the stored field names owned by the account model
var reservedAccountFields = []string{"_id", "username", "password", "password_salt", "password_changed_date",
	"create_date", "last_login_date", "is_confirmed", "confirmation_token", "password_failures_since_last_success",
	"last_password_failure_date", "password_verification_token", "password_verification_token_expiration_date",
	"roles", "oauth_data"}

// IsReservedAccountField checks if the name of an extra account field collides with a field owned by the model
func IsReservedAccountField(name string) bool {
	for _, field := range reservedAccountFields {
		if field == name {
			return true
		}
	}
	return false
}
