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

	"github.com/google/uuid"
	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logutils"
)

// LinkExternalLogin binds an external login to the account of the user
//
//	The external login record and the account's embedded data are written together. If the account cannot be
//	saved the external login record is removed again. When that also fails the error has the "inconsistent" status.
//
//	Input:
//		userID (string): The id of the user
//		provider (string): The external login provider
//		providerUserID (string): The id of the user given by the provider
//	Returns:
//		linked (bool): false if there is no such user
//		err (error): "already-exists" status if the external login is bound to another user
func (a *Auth) LinkExternalLogin(userID string, provider string, providerUserID string) (bool, error) {
	if len(provider) == 0 || len(providerUserID) == 0 {
		return false, errors.ErrorData(logutils.StatusMissing, model.TypeExternalLogin, &logutils.FieldArgs{"provider": provider}).SetStatus(utils.ErrorStatusInvalid)
	}

	linked := false
	err := a.storage.PerformTransaction(func(storage interfaces.Storage) error {
		account, err := storage.FindAccountByID(userID)
		if err != nil {
			return errors.WrapErrorAction(logutils.ActionFind, model.TypeAccount, &logutils.FieldArgs{"user_id": userID}, err)
		}
		if account == nil {
			return nil
		}

		existing, err := storage.FindOAuthToken(provider, providerUserID)
		if err != nil {
			return errors.WrapErrorAction(logutils.ActionFind, model.TypeOAuthToken, &logutils.FieldArgs{"provider": provider}, err)
		}
		if existing != nil && existing.UserID != userID {
			return errors.ErrorData(statusDuplicate, model.TypeExternalLogin, &logutils.FieldArgs{"provider": provider}).SetStatus(utils.ErrorStatusAlreadyExists)
		}

		if existing == nil {
			err = a.insertOAuthToken(storage, userID, provider, providerUserID)
			if err != nil {
				return err
			}
		}

		if account.FindOAuthData(provider, providerUserID) == nil {
			account.OAuthData = append(account.OAuthData, model.OAuthData{Provider: provider, ProviderUserID: providerUserID})
			err = storage.SaveAccount(account)
			if err != nil {
				saveErr := errors.WrapErrorAction(logutils.ActionSave, model.TypeAccount, &logutils.FieldArgs{"user_id": userID}, err)
				if existing != nil {
					return saveErr
				}
				return a.compensateLink(storage, provider, providerUserID, saveErr)
			}
		}

		//verify the side record is still bound to this user
		verified, err := storage.FindOAuthToken(provider, providerUserID)
		if err != nil {
			return errors.WrapErrorAction(logutils.ActionFind, model.TypeOAuthToken, &logutils.FieldArgs{"provider": provider}, err)
		}
		if verified == nil || verified.UserID != userID {
			a.logger.Errorf("external login %s for account %s is not bound after linking", provider, userID)
			return errors.ErrorData(logutils.StatusInvalid, model.TypeOAuthToken, &logutils.FieldArgs{"provider": provider}).SetStatus(utils.ErrorStatusInconsistent)
		}

		linked = true
		return nil
	})
	if err != nil {
		return false, err
	}

	if linked {
		a.logger.Infof("external login %s linked to account %s", provider, userID)
	}
	return linked, nil
}

func (a *Auth) insertOAuthToken(storage interfaces.Storage, userID string, provider string, providerUserID string) error {
	id, err := uuid.NewUUID()
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionGenerate, model.TypeOAuthToken, nil, err)
	}

	token := model.OAuthToken{ID: id.String(), Provider: provider, ProviderUserID: providerUserID, UserID: userID, DateCreated: a.currentTime()}
	err = storage.InsertOAuthToken(token)
	if err != nil {
		if utils.GetErrorStatus(err) == utils.ErrorStatusAlreadyExists {
			return errors.ErrorData(statusDuplicate, model.TypeExternalLogin, &logutils.FieldArgs{"provider": provider}).SetStatus(utils.ErrorStatusAlreadyExists)
		}
		return errors.WrapErrorAction(logutils.ActionInsert, model.TypeOAuthToken, &logutils.FieldArgs{"provider": provider}, err)
	}
	return nil
}

func (a *Auth) compensateLink(storage interfaces.Storage, provider string, providerUserID string, cause error) error {
	a.logger.Warnf("removing external login %s after failed account save: %s", provider, cause)

	err := storage.DeleteOAuthToken(provider, providerUserID)
	if err != nil {
		a.logger.Errorf("error removing external login %s: %s", provider, err)
		return errors.WrapErrorAction(logutils.ActionDelete, model.TypeOAuthToken, &logutils.FieldArgs{"provider": provider}, err).SetStatus(utils.ErrorStatusInconsistent)
	}
	return cause
}

// UnlinkExternalLogin removes an external login from the account of the user
//
//	The last login of an account without a local password cannot be removed.
func (a *Auth) UnlinkExternalLogin(userID string, provider string, providerUserID string) (bool, error) {
	unlinked := false
	err := a.storage.PerformTransaction(func(storage interfaces.Storage) error {
		account, err := storage.FindAccountByID(userID)
		if err != nil {
			return errors.WrapErrorAction(logutils.ActionFind, model.TypeAccount, &logutils.FieldArgs{"user_id": userID}, err)
		}
		if account == nil {
			return nil
		}

		existing, err := storage.FindOAuthToken(provider, providerUserID)
		if err != nil {
			return errors.WrapErrorAction(logutils.ActionFind, model.TypeOAuthToken, &logutils.FieldArgs{"provider": provider}, err)
		}
		embedded := account.FindOAuthData(provider, providerUserID)
		bound := existing != nil && existing.UserID == userID
		if embedded == nil && !bound {
			return nil
		}

		if !account.HasLocalPassword() && len(account.OAuthData) <= 1 {
			return errors.ErrorData(logutils.StatusInvalid, model.TypeExternalLogin, &logutils.FieldArgs{"reason": "last login"}).SetStatus(utils.ErrorStatusInvalid)
		}

		if embedded != nil {
			account.OAuthData = removeOAuthData(account.OAuthData, provider, providerUserID)
			err = storage.SaveAccount(account)
			if err != nil {
				return errors.WrapErrorAction(logutils.ActionSave, model.TypeAccount, &logutils.FieldArgs{"user_id": userID}, err)
			}
		}

		if bound {
			err = storage.DeleteOAuthToken(provider, providerUserID)
			if err != nil {
				deleteErr := errors.WrapErrorAction(logutils.ActionDelete, model.TypeOAuthToken, &logutils.FieldArgs{"provider": provider}, err)
				if embedded == nil {
					return deleteErr
				}
				return a.compensateUnlink(storage, account, provider, providerUserID, deleteErr)
			}
		}

		unlinked = true
		return nil
	})
	if err != nil {
		return false, err
	}

	if unlinked {
		a.logger.Infof("external login %s unlinked from account %s", provider, userID)
	}
	return unlinked, nil
}

func (a *Auth) compensateUnlink(storage interfaces.Storage, account *model.Account, provider string, providerUserID string, cause error) error {
	a.logger.Warnf("restoring external login %s on account %s after failed removal: %s", provider, account.UserID, cause)

	account.OAuthData = append(account.OAuthData, model.OAuthData{Provider: provider, ProviderUserID: providerUserID})
	err := storage.SaveAccount(account)
	if err != nil {
		a.logger.Errorf("error restoring external login %s on account %s: %s", provider, account.UserID, err)
		return errors.WrapErrorAction(logutils.ActionSave, model.TypeAccount, &logutils.FieldArgs{"user_id": account.UserID}, err).SetStatus(utils.ErrorStatusInconsistent)
	}
	return cause
}

func removeOAuthData(list []model.OAuthData, provider string, providerUserID string) []model.OAuthData {
	res := make([]model.OAuthData, 0, len(list))
	for _, item := range list {
		if item.Provider != provider || item.ProviderUserID != providerUserID {
			res = append(res, item)
		}
	}
	return res
}

// GetUserIDByExternalLogin gives the id of the user bound to the external login. Empty if there is none.
func (a *Auth) GetUserIDByExternalLogin(provider string, providerUserID string) (string, error) {
	token, err := a.storage.FindOAuthToken(provider, providerUserID)
	if err != nil {
		return "", errors.WrapErrorAction(logutils.ActionFind, model.TypeOAuthToken, &logutils.FieldArgs{"provider": provider}, err)
	}
	if token == nil {
		return "", nil
	}
	return token.UserID, nil
}

// GetExternalLogins gives the external logins linked to the account of the user
func (a *Auth) GetExternalLogins(username string) ([]model.ExternalLogin, error) {
	account, err := a.storage.FindAccountByUsername(username)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeAccount, logutils.StringArgs(username), err)
	}
	if account == nil {
		return []model.ExternalLogin{}, nil
	}

	logins := make([]model.ExternalLogin, len(account.OAuthData))
	for i, data := range account.OAuthData {
		logins[i] = model.ExternalLogin{Provider: data.Provider, ProviderUserID: data.ProviderUserID}
	}
	return logins, nil
}
