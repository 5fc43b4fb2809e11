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

package core

import (
	"membership-building-block/core/model"
	"time"
)

func (app *application) serGetVersion() string {
	return app.version
}

func (app *application) serCreateAccount(username string, password string, requireConfirmation bool, values map[string]interface{}) (string, error) {
	authImpl, err := app.getAuth()
	if err != nil {
		return "", err
	}
	return authImpl.CreateAccount(username, password, requireConfirmation, values)
}

func (app *application) serConfirmAccount(token string) (bool, error) {
	authImpl, err := app.getAuth()
	if err != nil {
		return false, err
	}
	return authImpl.ConfirmAccount(token)
}

func (app *application) serConfirmAccountForUser(username string, token string) (bool, error) {
	authImpl, err := app.getAuth()
	if err != nil {
		return false, err
	}
	return authImpl.ConfirmAccountForUser(username, token)
}

func (app *application) serValidateLogin(username string, password string) (bool, error) {
	authImpl, err := app.getAuth()
	if err != nil {
		return false, err
	}
	return authImpl.ValidateLogin(username, password)
}

func (app *application) serChangePassword(username string, oldPassword string, newPassword string) (bool, error) {
	authImpl, err := app.getAuth()
	if err != nil {
		return false, err
	}
	return authImpl.ChangePassword(username, oldPassword, newPassword)
}

func (app *application) serGeneratePasswordResetToken(username string, expirationMinutes int) (string, error) {
	authImpl, err := app.getAuth()
	if err != nil {
		return "", err
	}
	return authImpl.GeneratePasswordResetToken(username, expirationMinutes)
}

func (app *application) serResetPassword(token string, newPassword string) (bool, error) {
	authImpl, err := app.getAuth()
	if err != nil {
		return false, err
	}
	return authImpl.ResetPassword(token, newPassword)
}

func (app *application) serGetUserIDFromPasswordResetToken(token string) (string, error) {
	authImpl, err := app.getAuth()
	if err != nil {
		return "", err
	}
	return authImpl.GetUserIDFromPasswordResetToken(token)
}

func (app *application) serGetUserID(username string) (string, error) {
	authImpl, err := app.getAuth()
	if err != nil {
		return "", err
	}
	return authImpl.GetUserID(username)
}

func (app *application) serIsConfirmed(username string) (bool, error) {
	account, err := app.getAccount(username)
	if err != nil || account == nil {
		return false, err
	}
	return account.IsConfirmed, nil
}

func (app *application) serHasLocalAccount(userID string) (bool, error) {
	authImpl, err := app.getAuth()
	if err != nil {
		return false, err
	}
	return authImpl.HasLocalAccount(userID)
}

func (app *application) serGetCreateDate(username string) (*time.Time, error) {
	account, err := app.getAccount(username)
	if err != nil || account == nil {
		return nil, err
	}
	createDate := account.CreateDate
	return &createDate, nil
}

func (app *application) serGetPasswordChangedDate(username string) (*time.Time, error) {
	account, err := app.getAccount(username)
	if err != nil || account == nil {
		return nil, err
	}
	return account.PasswordChangedDate, nil
}

func (app *application) serIsUserInRole(username string, roleName string) (bool, error) {
	authImpl, err := app.getAuth()
	if err != nil {
		return false, err
	}
	return authImpl.IsUserInRole(username, roleName)
}

func (app *application) serGetRolesForUser(username string) ([]string, error) {
	authImpl, err := app.getAuth()
	if err != nil {
		return nil, err
	}
	return authImpl.GetRolesForUser(username)
}

func (app *application) serLinkExternalLogin(userID string, provider string, providerUserID string) (bool, error) {
	authImpl, err := app.getAuth()
	if err != nil {
		return false, err
	}
	return authImpl.LinkExternalLogin(userID, provider, providerUserID)
}

func (app *application) serUnlinkExternalLogin(userID string, provider string, providerUserID string) (bool, error) {
	authImpl, err := app.getAuth()
	if err != nil {
		return false, err
	}
	return authImpl.UnlinkExternalLogin(userID, provider, providerUserID)
}

func (app *application) serGetUserIDByExternalLogin(provider string, providerUserID string) (string, error) {
	authImpl, err := app.getAuth()
	if err != nil {
		return "", err
	}
	return authImpl.GetUserIDByExternalLogin(provider, providerUserID)
}

func (app *application) serGetExternalLogins(username string) ([]model.ExternalLogin, error) {
	authImpl, err := app.getAuth()
	if err != nil {
		return nil, err
	}
	return authImpl.GetExternalLogins(username)
}

func (app *application) getAccount(username string) (*model.Account, error) {
	authImpl, err := app.getAuth()
	if err != nil {
		return nil, err
	}
	return authImpl.GetAccount(username)
}
