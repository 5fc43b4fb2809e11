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

package storage

import (
	"time"

	"github.com/google/uuid"
)

type account struct {
	ID       uuid.UUID `bson:"_id"`
	UserName string    `bson:"username"`

	Password     string `bson:"password,omitempty"`
	PasswordSalt string `bson:"password_salt,omitempty"`

	PasswordChangedDate *time.Time `bson:"password_changed_date"`
	CreateDate          time.Time  `bson:"create_date"`
	LastLoginDate       *time.Time `bson:"last_login_date"`

	IsConfirmed       bool   `bson:"is_confirmed"`
	ConfirmationToken string `bson:"confirmation_token,omitempty"`

	PasswordFailuresSinceLastSuccess int        `bson:"password_failures_since_last_success"`
	LastPasswordFailureDate          *time.Time `bson:"last_password_failure_date"`

	PasswordVerificationToken               string     `bson:"password_verification_token,omitempty"`
	PasswordVerificationTokenExpirationDate *time.Time `bson:"password_verification_token_expiration_date"`

	Roles     []string    `bson:"roles"`
	OAuthData []oauthData `bson:"oauth_data"`

	CatchAll map[string]interface{} `bson:",inline"`
}

type oauthData struct {
	Provider       string `bson:"provider"`
	ProviderUserID string `bson:"provider_user_id"`
}

type role struct {
	ID   uuid.UUID `bson:"_id"`
	Name string    `bson:"name"`

	DateCreated time.Time `bson:"date_created"`
}

type oauthToken struct {
	ID             uuid.UUID `bson:"_id"`
	Provider       string    `bson:"provider"`
	ProviderUserID string    `bson:"provider_user_id"`
	UserID         string    `bson:"user_id"`

	DateCreated time.Time `bson:"date_created"`
}
