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
	"time"
)

func (app *application) admUnlockAccount(username string) (bool, error) {
	authImpl, err := app.getAuth()
	if err != nil {
		return false, err
	}
	return authImpl.UnlockAccount(username)
}

func (app *application) admIsAccountLockedOut(username string) (bool, error) {
	authImpl, err := app.getAuth()
	if err != nil {
		return false, err
	}
	return authImpl.IsAccountLockedOut(username)
}

func (app *application) admGetPasswordFailuresSinceLastSuccess(username string) (int, error) {
	authImpl, err := app.getAuth()
	if err != nil {
		return 0, err
	}
	return authImpl.GetPasswordFailuresSinceLastSuccess(username)
}

func (app *application) admGetLastPasswordFailureDate(username string) (*time.Time, error) {
	authImpl, err := app.getAuth()
	if err != nil {
		return nil, err
	}
	return authImpl.GetLastPasswordFailureDate(username)
}

func (app *application) admDeleteAccount(username string) (bool, error) {
	authImpl, err := app.getAuth()
	if err != nil {
		return false, err
	}
	return authImpl.DeleteAccount(username)
}

func (app *application) admCreateRole(name string) error {
	authImpl, err := app.getAuth()
	if err != nil {
		return err
	}
	return authImpl.CreateRole(name)
}

func (app *application) admDeleteRole(name string, throwOnPopulated bool) (bool, error) {
	authImpl, err := app.getAuth()
	if err != nil {
		return false, err
	}
	return authImpl.DeleteRole(name, throwOnPopulated)
}

func (app *application) admRoleExists(name string) (bool, error) {
	authImpl, err := app.getAuth()
	if err != nil {
		return false, err
	}
	return authImpl.RoleExists(name)
}

func (app *application) admGetAllRoles() ([]string, error) {
	authImpl, err := app.getAuth()
	if err != nil {
		return nil, err
	}
	return authImpl.GetAllRoles()
}

func (app *application) admAddUsersToRoles(usernames []string, roleNames []string) error {
	authImpl, err := app.getAuth()
	if err != nil {
		return err
	}
	return authImpl.AddUsersToRoles(usernames, roleNames)
}

func (app *application) admRemoveUsersFromRoles(usernames []string, roleNames []string) error {
	authImpl, err := app.getAuth()
	if err != nil {
		return err
	}
	return authImpl.RemoveUsersFromRoles(usernames, roleNames)
}

func (app *application) admGetUsersInRole(roleName string) ([]string, error) {
	authImpl, err := app.getAuth()
	if err != nil {
		return nil, err
	}
	return authImpl.GetUsersInRole(roleName)
}
