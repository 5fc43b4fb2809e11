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

package interfaces

import (
	"membership-building-block/core/model"
)

// Storage interface to communicate with the storage
//
//	There is no partial update. Every mutation reads the whole account, changes it in memory
//	and replaces it with SaveAccount - the last writer wins.
type Storage interface {
	PerformTransaction(func(adapter Storage) error) error

	//Accounts
	FindAccounts() ([]model.Account, error)
	FindAccountByID(id string) (*model.Account, error)
	FindAccountByUsername(username string) (*model.Account, error)
	FindUserIDByUsername(username string) (string, error)
	FindAccountsByConfirmationToken(token string) ([]model.Account, error)
	FindAccountsByPasswordVerificationToken(token string) ([]model.Account, error)
	InsertAccount(account model.Account) error
	SaveAccount(account *model.Account) error
	DeleteAccount(id string) error

	//Roles
	FindRoles() ([]model.Role, error)
	FindRole(name string) (*model.Role, error)
	InsertRole(role model.Role) error
	DeleteRole(id string) error

	//OAuthTokens
	FindOAuthToken(provider string, providerUserID string) (*model.OAuthToken, error)
	FindOAuthTokensByUserID(userID string) ([]model.OAuthToken, error)
	InsertOAuthToken(token model.OAuthToken) error
	DeleteOAuthToken(provider string, providerUserID string) error
}

// Session is an acquired storage session which has to be released once it is not needed anymore
type Session interface {
	Storage

	Stop() error
}
