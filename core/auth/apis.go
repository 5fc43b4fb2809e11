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
	"time"

	"github.com/google/uuid"
	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logutils"
	"gopkg.in/go-playground/validator.v9"
)

// CreateAccount creates a new account
//
//	Input:
//		username (string): The unique user name
//		password (string): The initial password. Empty for accounts which log in only externally
//		requireConfirmation (bool): Whether the account has to be confirmed with the returned token
//		values (map[string]interface{}): Extra fields stored with the account
//	Returns:
//		confirmationToken (string): The token the host delivers to the user. Empty if no confirmation is required
//		err (error): "already-exists" status for a taken user name, "invalid" status for bad input
func (a *Auth) CreateAccount(username string, password string, requireConfirmation bool, values map[string]interface{}) (string, error) {
	err := validatePassword(password, true)
	if err != nil {
		return "", err
	}
	for key := range values {
		if model.IsReservedAccountField(key) {
			return "", errors.ErrorData(logutils.StatusInvalid, "account field", logutils.StringArgs(key)).SetStatus(utils.ErrorStatusInvalid)
		}
	}

	id, err := uuid.NewUUID()
	if err != nil {
		return "", errors.WrapErrorAction(logutils.ActionGenerate, model.TypeUserID, nil, err)
	}

	now := a.currentTime()
	account := model.Account{UserID: id.String(), UserName: username, CreateDate: now, IsConfirmed: !requireConfirmation,
		Roles: []string{}, OAuthData: []model.OAuthData{}, CatchAll: values}

	validate := validator.New()
	err = validate.Struct(account)
	if err != nil {
		return "", errors.WrapErrorAction(logutils.ActionValidate, model.TypeAccount, logutils.StringArgs(username), err).SetStatus(utils.ErrorStatusInvalid)
	}

	existingID, err := a.storage.FindUserIDByUsername(username)
	if err != nil {
		return "", errors.WrapErrorAction(logutils.ActionFind, model.TypeUserID, logutils.StringArgs(username), err)
	}
	if existingID != "" {
		return "", errors.ErrorData(statusDuplicate, model.TypeUsername, logutils.StringArgs(username)).SetStatus(utils.ErrorStatusAlreadyExists)
	}

	if password != "" {
		account.Password, account.PasswordSalt, err = a.hasher.Hash(password)
		if err != nil {
			return "", errors.WrapErrorAction(logutils.ActionCompute, model.TypePassword, nil, err)
		}
		account.PasswordChangedDate = &now
	}

	if requireConfirmation {
		account.ConfirmationToken, err = a.generateUniqueToken(a.storage.FindAccountsByConfirmationToken, confirmationToken, model.TypeConfirmationToken)
		if err != nil {
			return "", err
		}
	}

	err = a.storage.InsertAccount(account)
	if err != nil {
		if utils.GetErrorStatus(err) == utils.ErrorStatusAlreadyExists {
			return "", errors.ErrorData(statusDuplicate, model.TypeUsername, logutils.StringArgs(username)).SetStatus(utils.ErrorStatusAlreadyExists)
		}
		return "", errors.WrapErrorAction(logutils.ActionInsert, model.TypeAccount, logutils.StringArgs(username), err)
	}

	a.logger.Infof("created account %s (confirmation required: %t)", account.UserID, requireConfirmation)
	return account.ConfirmationToken, nil
}

// ConfirmAccount confirms the account which holds the confirmation token
//
//	The match is exact and case-sensitive. When more than one account holds the token only the first one in
//	storage order is confirmed.
func (a *Auth) ConfirmAccount(token string) (bool, error) {
	if len(token) == 0 {
		return false, nil
	}

	accounts, err := a.storage.FindAccountsByConfirmationToken(token)
	if err != nil {
		return false, errors.WrapErrorAction(logutils.ActionFind, model.TypeAccount, nil, err)
	}
	account := firstTokenMatch(accounts, token, confirmationToken)
	if account == nil {
		return false, nil
	}

	err = a.confirm(account)
	if err != nil {
		return false, err
	}
	return true, nil
}

// ConfirmAccountForUser confirms the account of the user if it holds the confirmation token
func (a *Auth) ConfirmAccountForUser(username string, token string) (bool, error) {
	if len(token) == 0 {
		return false, nil
	}

	account, err := a.storage.FindAccountByUsername(username)
	if err != nil {
		return false, errors.WrapErrorAction(logutils.ActionFind, model.TypeAccount, logutils.StringArgs(username), err)
	}
	if account == nil || account.IsConfirmed || !tokensEqual(account.ConfirmationToken, token) {
		return false, nil
	}

	err = a.confirm(account)
	if err != nil {
		return false, err
	}
	return true, nil
}

func (a *Auth) confirm(account *model.Account) error {
	account.IsConfirmed = true
	if a.config.ClearConfirmationToken {
		account.ConfirmationToken = ""
	}

	err := a.storage.SaveAccount(account)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionSave, model.TypeAccount, &logutils.FieldArgs{"user_id": account.UserID}, err)
	}

	a.logger.Infof("account %s confirmed", account.UserID)
	return nil
}

// ValidateLogin checks the user name and password
//
//	A successful login clears the failed attempts. A failed one is counted toward the lockout.
//	Unconfirmed and locked out accounts never log in.
func (a *Auth) ValidateLogin(username string, password string) (bool, error) {
	account, valid, err := a.authenticate(username, password)
	if err != nil || !valid {
		return false, err
	}

	now := a.currentTime()
	clearLockout(account)
	account.LastLoginDate = &now
	err = a.storage.SaveAccount(account)
	if err != nil {
		return false, errors.WrapErrorAction(logutils.ActionSave, model.TypeAccount, logutils.StringArgs(username), err)
	}
	return true, nil
}

// ChangePassword replaces the password after the current one is verified
func (a *Auth) ChangePassword(username string, oldPassword string, newPassword string) (bool, error) {
	err := validatePassword(newPassword, false)
	if err != nil {
		return false, err
	}

	account, valid, err := a.authenticate(username, oldPassword)
	if err != nil || !valid {
		return false, err
	}

	err = a.setPassword(account, newPassword)
	if err != nil {
		return false, err
	}

	a.logger.Infof("password changed for account %s", account.UserID)
	return true, nil
}

// authenticate verifies the password of the account. Failed verifications are recorded.
//
//	The password is always verified, against a dummy hash when there is nothing to compare against,
//	so that every outcome takes comparable time.
func (a *Auth) authenticate(username string, password string) (*model.Account, bool, error) {
	account, err := a.storage.FindAccountByUsername(username)
	if err != nil {
		return nil, false, errors.WrapErrorAction(logutils.ActionFind, model.TypeAccount, logutils.StringArgs(username), err)
	}
	if account == nil || !account.HasLocalPassword() {
		a.hasher.DummyVerify(password)
		return nil, false, nil
	}

	verified := a.hasher.Verify(password, account.Password, account.PasswordSalt)

	if a.config.RequireConfirmation && !account.IsConfirmed {
		return account, false, nil
	}

	now := a.currentTime()
	if a.isLockedOut(*account, now) {
		return account, false, nil
	}

	if !verified {
		err = a.recordLoginFailure(a.storage, account, now)
		if err != nil {
			return nil, false, err
		}
		return account, false, nil
	}
	return account, true, nil
}

// setPassword hashes and stores the new password. The lockout and any pending reset are cleared.
func (a *Auth) setPassword(account *model.Account, password string) error {
	hash, salt, err := a.hasher.Hash(password)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionCompute, model.TypePassword, nil, err)
	}

	now := a.currentTime()
	account.Password = hash
	account.PasswordSalt = salt
	account.PasswordChangedDate = &now
	account.PasswordVerificationToken = ""
	account.PasswordVerificationTokenExpirationDate = nil
	clearLockout(account)

	err = a.storage.SaveAccount(account)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionSave, model.TypeAccount, &logutils.FieldArgs{"user_id": account.UserID}, err)
	}
	return nil
}

// GeneratePasswordResetToken generates the token which allows resetting the password
//
//	Input:
//		username (string): The user name of the account
//		expirationMinutes (int): Validity of the token
//	Returns:
//		token (string): The reset token. Empty if there is no such confirmed account
//		err (error): "invalid" status for a non positive expiration
func (a *Auth) GeneratePasswordResetToken(username string, expirationMinutes int) (string, error) {
	if expirationMinutes <= 0 {
		return "", errors.ErrorData(logutils.StatusInvalid, "expiration minutes", &logutils.FieldArgs{"minutes": expirationMinutes}).SetStatus(utils.ErrorStatusInvalid)
	}

	account, err := a.storage.FindAccountByUsername(username)
	if err != nil {
		return "", errors.WrapErrorAction(logutils.ActionFind, model.TypeAccount, logutils.StringArgs(username), err)
	}
	if account == nil || !account.IsConfirmed {
		return "", nil
	}

	now := a.currentTime()
	expiration := now.Add(time.Duration(expirationMinutes) * time.Minute)
	if !hasValidResetToken(*account, now) {
		account.PasswordVerificationToken, err = a.generateUniqueToken(a.storage.FindAccountsByPasswordVerificationToken,
			passwordVerificationToken, model.TypePasswordVerificationToken)
		if err != nil {
			return "", err
		}
	}
	account.PasswordVerificationTokenExpirationDate = &expiration

	err = a.storage.SaveAccount(account)
	if err != nil {
		return "", errors.WrapErrorAction(logutils.ActionSave, model.TypeAccount, logutils.StringArgs(username), err)
	}
	return account.PasswordVerificationToken, nil
}

// ResetPassword sets a new password for the account which holds the unexpired reset token
//
//	An expired token and an unknown token give the same result.
func (a *Auth) ResetPassword(token string, newPassword string) (bool, error) {
	err := validatePassword(newPassword, false)
	if err != nil {
		return false, err
	}

	account, err := a.findByResetToken(token)
	if err != nil || account == nil {
		return false, err
	}

	err = a.setPassword(account, newPassword)
	if err != nil {
		return false, err
	}

	a.logger.Infof("password reset for account %s", account.UserID)
	return true, nil
}

// GetUserIDFromPasswordResetToken gives the id of the user who holds the unexpired reset token
func (a *Auth) GetUserIDFromPasswordResetToken(token string) (string, error) {
	account, err := a.findByResetToken(token)
	if err != nil || account == nil {
		return "", err
	}
	return account.UserID, nil
}

func (a *Auth) findByResetToken(token string) (*model.Account, error) {
	if len(token) == 0 {
		return nil, nil
	}

	accounts, err := a.storage.FindAccountsByPasswordVerificationToken(token)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeAccount, nil, err)
	}

	now := a.currentTime()
	for i := range accounts {
		if tokensEqual(accounts[i].PasswordVerificationToken, token) && hasValidResetToken(accounts[i], now) {
			return &accounts[i], nil
		}
	}
	return nil, nil
}

func hasValidResetToken(account model.Account, now time.Time) bool {
	if len(account.PasswordVerificationToken) == 0 || account.PasswordVerificationTokenExpirationDate == nil {
		return false
	}
	return account.PasswordVerificationTokenExpirationDate.After(now)
}

// IsUserInRole checks if the user is a member of the role
func (a *Auth) IsUserInRole(username string, roleName string) (bool, error) {
	account, err := a.storage.FindAccountByUsername(username)
	if err != nil {
		return false, errors.WrapErrorAction(logutils.ActionFind, model.TypeAccount, logutils.StringArgs(username), err)
	}
	if account == nil {
		return false, nil
	}
	return account.HasRole(roleName), nil
}

// DeleteAccount deletes the account together with its external logins
func (a *Auth) DeleteAccount(username string) (bool, error) {
	account, err := a.storage.FindAccountByUsername(username)
	if err != nil {
		return false, errors.WrapErrorAction(logutils.ActionFind, model.TypeAccount, logutils.StringArgs(username), err)
	}
	if account == nil {
		return false, nil
	}

	err = a.storage.PerformTransaction(func(storage interfaces.Storage) error {
		tokens, err := storage.FindOAuthTokensByUserID(account.UserID)
		if err != nil {
			return errors.WrapErrorAction(logutils.ActionFind, model.TypeOAuthToken, &logutils.FieldArgs{"user_id": account.UserID}, err)
		}
		for _, token := range tokens {
			err = storage.DeleteOAuthToken(token.Provider, token.ProviderUserID)
			if err != nil {
				return errors.WrapErrorAction(logutils.ActionDelete, model.TypeOAuthToken, &logutils.FieldArgs{"provider": token.Provider}, err)
			}
		}

		err = storage.DeleteAccount(account.UserID)
		if err != nil {
			return errors.WrapErrorAction(logutils.ActionDelete, model.TypeAccount, &logutils.FieldArgs{"user_id": account.UserID}, err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	a.logger.Infof("account %s deleted", account.UserID)
	return true, nil
}

// GetAccount finds the account by user name. Nil if there is no such account.
func (a *Auth) GetAccount(username string) (*model.Account, error) {
	account, err := a.storage.FindAccountByUsername(username)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeAccount, logutils.StringArgs(username), err)
	}
	return account, nil
}

// GetUserID gives the id of the user. Empty if there is no such user.
func (a *Auth) GetUserID(username string) (string, error) {
	userID, err := a.storage.FindUserIDByUsername(username)
	if err != nil {
		return "", errors.WrapErrorAction(logutils.ActionFind, model.TypeUserID, logutils.StringArgs(username), err)
	}
	return userID, nil
}

// HasLocalAccount checks if the user has a local password
func (a *Auth) HasLocalAccount(userID string) (bool, error) {
	account, err := a.storage.FindAccountByID(userID)
	if err != nil {
		return false, errors.WrapErrorAction(logutils.ActionFind, model.TypeAccount, &logutils.FieldArgs{"user_id": userID}, err)
	}
	if account == nil {
		return false, nil
	}
	return account.HasLocalPassword(), nil
}

func validatePassword(password string, allowEmpty bool) error {
	if len(password) == 0 && !allowEmpty {
		return errors.ErrorData(logutils.StatusMissing, model.TypePassword, nil).SetStatus(utils.ErrorStatusInvalid)
	}
	if len(password) > maxPasswordLength {
		return errors.ErrorData(logutils.StatusInvalid, model.TypePassword, &logutils.FieldArgs{"max_length": maxPasswordLength}).SetStatus(utils.ErrorStatusInvalid)
	}
	return nil
}
