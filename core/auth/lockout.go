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
	"membership-building-block/core/model"
	"time"

	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logutils"
)

// currentFailures gives the failures which still count toward the lockout at the moment now.
// A failure series older than the lockout window counts as reset.
func (a *Auth) currentFailures(account model.Account, now time.Time) int {
	if account.LastPasswordFailureDate == nil {
		return 0
	}
	if now.Sub(*account.LastPasswordFailureDate) >= a.config.LockoutWindow {
		return 0
	}
	return account.PasswordFailuresSinceLastSuccess
}

func (a *Auth) isLockedOut(account model.Account, now time.Time) bool {
	return a.currentFailures(account, now) >= a.config.MaxInvalidPasswordAttempts
}

// recordLoginFailure counts a failed password verification and saves the account
func (a *Auth) recordLoginFailure(storage accountSaver, account *model.Account, now time.Time) error {
	failures := a.currentFailures(*account, now) + 1

	account.PasswordFailuresSinceLastSuccess = failures
	account.LastPasswordFailureDate = &now
	err := storage.SaveAccount(account)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionSave, model.TypeAccount, &logutils.FieldArgs{"user_id": account.UserID}, err)
	}

	if failures == a.config.MaxInvalidPasswordAttempts {
		a.logger.Infof("account %s locked out after %d failed password attempts", account.UserID, failures)
	}
	return nil
}

func clearLockout(account *model.Account) {
	account.PasswordFailuresSinceLastSuccess = 0
	account.LastPasswordFailureDate = nil
}

type accountSaver interface {
	SaveAccount(account *model.Account) error
}

// UnlockAccount resets the failed password attempts of an account
//
//	Input:
//		username (string): The user name of the account
//	Returns:
//		unlocked (bool): false if there is no such account
//		err (error): storage error
func (a *Auth) UnlockAccount(username string) (bool, error) {
	account, err := a.storage.FindAccountByUsername(username)
	if err != nil {
		return false, errors.WrapErrorAction(logutils.ActionFind, model.TypeAccount, logutils.StringArgs(username), err)
	}
	if account == nil {
		return false, nil
	}

	clearLockout(account)
	err = a.storage.SaveAccount(account)
	if err != nil {
		return false, errors.WrapErrorAction(logutils.ActionSave, model.TypeAccount, logutils.StringArgs(username), err)
	}

	a.logger.Infof("account %s unlocked", account.UserID)
	return true, nil
}

// IsAccountLockedOut checks if the account is locked out at the moment
func (a *Auth) IsAccountLockedOut(username string) (bool, error) {
	account, err := a.storage.FindAccountByUsername(username)
	if err != nil {
		return false, errors.WrapErrorAction(logutils.ActionFind, model.TypeAccount, logutils.StringArgs(username), err)
	}
	if account == nil {
		return false, nil
	}
	return a.isLockedOut(*account, a.currentTime()), nil
}

// GetPasswordFailuresSinceLastSuccess gives the failed password attempts which still count toward the lockout
func (a *Auth) GetPasswordFailuresSinceLastSuccess(username string) (int, error) {
	account, err := a.storage.FindAccountByUsername(username)
	if err != nil {
		return 0, errors.WrapErrorAction(logutils.ActionFind, model.TypeAccount, logutils.StringArgs(username), err)
	}
	if account == nil {
		return 0, nil
	}
	return a.currentFailures(*account, a.currentTime()), nil
}

// GetLastPasswordFailureDate gives the date of the last failed password attempt
func (a *Auth) GetLastPasswordFailureDate(username string) (*time.Time, error) {
	account, err := a.storage.FindAccountByUsername(username)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeAccount, logutils.StringArgs(username), err)
	}
	if account == nil {
		return nil, nil
	}
	return account.LastPasswordFailureDate, nil
}
