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
	"membership-building-block/core/model"
	"time"

	"github.com/google/uuid"
	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logutils"
)

// Account
func accountFromStorage(item account) model.Account {
	linked := make([]model.OAuthData, len(item.OAuthData))
	for i, data := range item.OAuthData {
		linked[i] = model.OAuthData{Provider: data.Provider, ProviderUserID: data.ProviderUserID}
	}
	roles := item.Roles
	if roles == nil {
		roles = []string{}
	}

	return model.Account{UserID: item.ID.String(), UserName: item.UserName, Password: item.Password, PasswordSalt: item.PasswordSalt,
		PasswordChangedDate: utcTime(item.PasswordChangedDate), CreateDate: item.CreateDate.UTC(), LastLoginDate: utcTime(item.LastLoginDate),
		IsConfirmed: item.IsConfirmed, ConfirmationToken: item.ConfirmationToken,
		PasswordFailuresSinceLastSuccess: item.PasswordFailuresSinceLastSuccess, LastPasswordFailureDate: utcTime(item.LastPasswordFailureDate),
		PasswordVerificationToken: item.PasswordVerificationToken, PasswordVerificationTokenExpirationDate: utcTime(item.PasswordVerificationTokenExpirationDate),
		Roles: roles, OAuthData: linked, CatchAll: item.CatchAll}
}

func accountsFromStorage(items []account) []model.Account {
	res := make([]model.Account, len(items))
	for i, item := range items {
		res[i] = accountFromStorage(item)
	}
	return res
}

func accountToStorage(item *model.Account) (*account, error) {
	id, err := uuid.Parse(item.UserID)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionParse, model.TypeUserID, logutils.StringArgs(item.UserID), err)
	}

	linked := make([]oauthData, len(item.OAuthData))
	for i, data := range item.OAuthData {
		linked[i] = oauthDataToStorage(data)
	}
	roles := item.Roles
	if roles == nil {
		roles = []string{}
	}

	//extra fields never shadow the model fields
	var catchAll map[string]interface{}
	if len(item.CatchAll) > 0 {
		catchAll = make(map[string]interface{}, len(item.CatchAll))
		for key, value := range item.CatchAll {
			if !model.IsReservedAccountField(key) {
				catchAll[key] = value
			}
		}
	}

	return &account{ID: id, UserName: item.UserName, Password: item.Password, PasswordSalt: item.PasswordSalt,
		PasswordChangedDate: item.PasswordChangedDate, CreateDate: item.CreateDate, LastLoginDate: item.LastLoginDate,
		IsConfirmed: item.IsConfirmed, ConfirmationToken: item.ConfirmationToken,
		PasswordFailuresSinceLastSuccess: item.PasswordFailuresSinceLastSuccess, LastPasswordFailureDate: item.LastPasswordFailureDate,
		PasswordVerificationToken: item.PasswordVerificationToken, PasswordVerificationTokenExpirationDate: item.PasswordVerificationTokenExpirationDate,
		Roles: roles, OAuthData: linked, CatchAll: catchAll}, nil
}

func utcTime(value *time.Time) *time.Time {
	if value == nil {
		return nil
	}
	utc := value.UTC()
	return &utc
}

func oauthDataToStorage(item model.OAuthData) oauthData {
	return oauthData{Provider: item.Provider, ProviderUserID: item.ProviderUserID}
}

// Role
func roleFromStorage(item role) model.Role {
	return model.Role{ID: item.ID.String(), Name: item.Name, DateCreated: item.DateCreated.UTC()}
}

func rolesFromStorage(items []role) []model.Role {
	res := make([]model.Role, len(items))
	for i, item := range items {
		res[i] = roleFromStorage(item)
	}
	return res
}

func roleToStorage(item model.Role) (*role, error) {
	id, err := uuid.Parse(item.ID)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionParse, model.TypeRole, logutils.StringArgs(item.ID), err)
	}
	return &role{ID: id, Name: item.Name, DateCreated: item.DateCreated}, nil
}

// OAuthToken
func oauthTokenFromStorage(item oauthToken) model.OAuthToken {
	return model.OAuthToken{ID: item.ID.String(), Provider: item.Provider, ProviderUserID: item.ProviderUserID,
		UserID: item.UserID, DateCreated: item.DateCreated.UTC()}
}

func oauthTokensFromStorage(items []oauthToken) []model.OAuthToken {
	res := make([]model.OAuthToken, len(items))
	for i, item := range items {
		res[i] = oauthTokenFromStorage(item)
	}
	return res
}

func oauthTokenToStorage(item model.OAuthToken) (*oauthToken, error) {
	id, err := uuid.Parse(item.ID)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionParse, model.TypeOAuthToken, logutils.StringArgs(item.ID), err)
	}
	return &oauthToken{ID: id, Provider: item.Provider, ProviderUserID: item.ProviderUserID, UserID: item.UserID,
		DateCreated: item.DateCreated}, nil
}
