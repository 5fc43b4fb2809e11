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

// Services exposes the membership operations used by the host
type Services interface {
	SerGetVersion() string

	SerCreateAccount(username string, password string, requireConfirmation bool, values map[string]interface{}) (string, error)
	SerConfirmAccount(token string) (bool, error)
	SerConfirmAccountForUser(username string, token string) (bool, error)
	SerValidateLogin(username string, password string) (bool, error)
	SerChangePassword(username string, oldPassword string, newPassword string) (bool, error)
	SerGeneratePasswordResetToken(username string, expirationMinutes int) (string, error)
	SerResetPassword(token string, newPassword string) (bool, error)
	SerGetUserIDFromPasswordResetToken(token string) (string, error)

	SerGetUserID(username string) (string, error)
	SerIsConfirmed(username string) (bool, error)
	SerHasLocalAccount(userID string) (bool, error)
	SerGetCreateDate(username string) (*time.Time, error)
	SerGetPasswordChangedDate(username string) (*time.Time, error)

	SerIsUserInRole(username string, roleName string) (bool, error)
	SerGetRolesForUser(username string) ([]string, error)

	SerLinkExternalLogin(userID string, provider string, providerUserID string) (bool, error)
	SerUnlinkExternalLogin(userID string, provider string, providerUserID string) (bool, error)
	SerGetUserIDByExternalLogin(provider string, providerUserID string) (string, error)
	SerGetExternalLogins(username string) ([]model.ExternalLogin, error)
}

// Administration exposes the administrative operations used by the host
type Administration interface {
	AdmUnlockAccount(username string) (bool, error)
	AdmIsAccountLockedOut(username string) (bool, error)
	AdmGetPasswordFailuresSinceLastSuccess(username string) (int, error)
	AdmGetLastPasswordFailureDate(username string) (*time.Time, error)
	AdmDeleteAccount(username string) (bool, error)

	AdmCreateRole(name string) error
	AdmDeleteRole(name string, throwOnPopulated bool) (bool, error)
	AdmRoleExists(name string) (bool, error)
	AdmGetAllRoles() ([]string, error)
	AdmAddUsersToRoles(usernames []string, roleNames []string) error
	AdmRemoveUsersFromRoles(usernames []string, roleNames []string) error
	AdmGetUsersInRole(roleName string) ([]string, error)
}
