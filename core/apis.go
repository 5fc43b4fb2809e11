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
	"membership-building-block/core/auth"
	"membership-building-block/core/interfaces"
	"membership-building-block/core/model"
	"time"

	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logs"
	"github.com/rokwire/logging-library-go/v2/logutils"
)

// APIs exposes to the host access to the core functionality
type APIs struct {
	Services       Services       //expose to the host
	Administration Administration //expose to the host

	app *application
}

// GetVersion gives the service version
func (c *APIs) GetVersion() string {
	return c.app.version
}

// GetBuild gives the service build
func (c *APIs) GetBuild() string {
	return c.app.build
}

// Start acquires the storage session ahead of the first call
func (c *APIs) Start() error {
	_, err := c.app.getAuth()
	return err
}

// Stop releases the storage session
func (c *APIs) Stop() error {
	return c.app.stop()
}

// NewCoreAPIs creates new CoreAPIs
//
//	The storage session is created by sessionFactory on first use.
func NewCoreAPIs(version string, build string, sessionFactory SessionFactory, authConfig auth.Config, logger *logs.Logger) (*APIs, error) {
	if sessionFactory == nil {
		return nil, errors.ErrorData(logutils.StatusMissing, typeSessionFactory, nil)
	}
	err := auth.ValidateConfig(authConfig)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionValidate, "auth config", nil, err)
	}

	//add application instance
	application := application{version: version, build: build, sessionFactory: sessionFactory, authConfig: authConfig, logger: logger}

	//add coreAPIs instance
	servicesImpl := &servicesImpl{app: &application}
	administrationImpl := &administrationImpl{app: &application}

	coreAPIs := APIs{Services: servicesImpl, Administration: administrationImpl, app: &application}

	return &coreAPIs, nil
}

// SessionFactory acquires the storage session
type SessionFactory func() (interfaces.Session, error)

///

//servicesImpl

type servicesImpl struct {
	app *application
}

func (s *servicesImpl) SerGetVersion() string {
	return s.app.serGetVersion()
}

func (s *servicesImpl) SerCreateAccount(username string, password string, requireConfirmation bool, values map[string]interface{}) (string, error) {
	return s.app.serCreateAccount(username, password, requireConfirmation, values)
}

func (s *servicesImpl) SerConfirmAccount(token string) (bool, error) {
	return s.app.serConfirmAccount(token)
}

func (s *servicesImpl) SerConfirmAccountForUser(username string, token string) (bool, error) {
	return s.app.serConfirmAccountForUser(username, token)
}

func (s *servicesImpl) SerValidateLogin(username string, password string) (bool, error) {
	return s.app.serValidateLogin(username, password)
}

func (s *servicesImpl) SerChangePassword(username string, oldPassword string, newPassword string) (bool, error) {
	return s.app.serChangePassword(username, oldPassword, newPassword)
}

func (s *servicesImpl) SerGeneratePasswordResetToken(username string, expirationMinutes int) (string, error) {
	return s.app.serGeneratePasswordResetToken(username, expirationMinutes)
}

func (s *servicesImpl) SerResetPassword(token string, newPassword string) (bool, error) {
	return s.app.serResetPassword(token, newPassword)
}

func (s *servicesImpl) SerGetUserIDFromPasswordResetToken(token string) (string, error) {
	return s.app.serGetUserIDFromPasswordResetToken(token)
}

func (s *servicesImpl) SerGetUserID(username string) (string, error) {
	return s.app.serGetUserID(username)
}

func (s *servicesImpl) SerIsConfirmed(username string) (bool, error) {
	return s.app.serIsConfirmed(username)
}

func (s *servicesImpl) SerHasLocalAccount(userID string) (bool, error) {
	return s.app.serHasLocalAccount(userID)
}

func (s *servicesImpl) SerGetCreateDate(username string) (*time.Time, error) {
	return s.app.serGetCreateDate(username)
}

func (s *servicesImpl) SerGetPasswordChangedDate(username string) (*time.Time, error) {
	return s.app.serGetPasswordChangedDate(username)
}

func (s *servicesImpl) SerIsUserInRole(username string, roleName string) (bool, error) {
	return s.app.serIsUserInRole(username, roleName)
}

func (s *servicesImpl) SerGetRolesForUser(username string) ([]string, error) {
	return s.app.serGetRolesForUser(username)
}

func (s *servicesImpl) SerLinkExternalLogin(userID string, provider string, providerUserID string) (bool, error) {
	return s.app.serLinkExternalLogin(userID, provider, providerUserID)
}

func (s *servicesImpl) SerUnlinkExternalLogin(userID string, provider string, providerUserID string) (bool, error) {
	return s.app.serUnlinkExternalLogin(userID, provider, providerUserID)
}

func (s *servicesImpl) SerGetUserIDByExternalLogin(provider string, providerUserID string) (string, error) {
	return s.app.serGetUserIDByExternalLogin(provider, providerUserID)
}

func (s *servicesImpl) SerGetExternalLogins(username string) ([]model.ExternalLogin, error) {
	return s.app.serGetExternalLogins(username)
}

///

//administrationImpl

type administrationImpl struct {
	app *application
}

func (s *administrationImpl) AdmUnlockAccount(username string) (bool, error) {
	return s.app.admUnlockAccount(username)
}

func (s *administrationImpl) AdmIsAccountLockedOut(username string) (bool, error) {
	return s.app.admIsAccountLockedOut(username)
}

func (s *administrationImpl) AdmGetPasswordFailuresSinceLastSuccess(username string) (int, error) {
	return s.app.admGetPasswordFailuresSinceLastSuccess(username)
}

func (s *administrationImpl) AdmGetLastPasswordFailureDate(username string) (*time.Time, error) {
	return s.app.admGetLastPasswordFailureDate(username)
}

func (s *administrationImpl) AdmDeleteAccount(username string) (bool, error) {
	return s.app.admDeleteAccount(username)
}

func (s *administrationImpl) AdmCreateRole(name string) error {
	return s.app.admCreateRole(name)
}

func (s *administrationImpl) AdmDeleteRole(name string, throwOnPopulated bool) (bool, error) {
	return s.app.admDeleteRole(name, throwOnPopulated)
}

func (s *administrationImpl) AdmRoleExists(name string) (bool, error) {
	return s.app.admRoleExists(name)
}

func (s *administrationImpl) AdmGetAllRoles() ([]string, error) {
	return s.app.admGetAllRoles()
}

func (s *administrationImpl) AdmAddUsersToRoles(usernames []string, roleNames []string) error {
	return s.app.admAddUsersToRoles(usernames, roleNames)
}

func (s *administrationImpl) AdmRemoveUsersFromRoles(usernames []string, roleNames []string) error {
	return s.app.admRemoveUsersFromRoles(usernames, roleNames)
}

func (s *administrationImpl) AdmGetUsersInRole(roleName string) ([]string, error) {
	return s.app.admGetUsersInRole(roleName)
}
