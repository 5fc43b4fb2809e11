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
	"gopkg.in/go-playground/validator.v9"
)

// CreateRole creates a new role
func (a *Auth) CreateRole(name string) error {
	id, err := uuid.NewUUID()
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionGenerate, model.TypeRole, nil, err)
	}
	role := model.Role{ID: id.String(), Name: name, DateCreated: a.currentTime()}

	validate := validator.New()
	err = validate.Struct(role)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionValidate, model.TypeRole, logutils.StringArgs(name), err).SetStatus(utils.ErrorStatusInvalid)
	}

	existing, err := a.storage.FindRole(name)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionFind, model.TypeRole, logutils.StringArgs(name), err)
	}
	if existing != nil {
		return errors.ErrorData(statusDuplicate, model.TypeRole, logutils.StringArgs(name)).SetStatus(utils.ErrorStatusAlreadyExists)
	}

	err = a.storage.InsertRole(role)
	if err != nil {
		if utils.GetErrorStatus(err) == utils.ErrorStatusAlreadyExists {
			return errors.ErrorData(statusDuplicate, model.TypeRole, logutils.StringArgs(name)).SetStatus(utils.ErrorStatusAlreadyExists)
		}
		return errors.WrapErrorAction(logutils.ActionInsert, model.TypeRole, logutils.StringArgs(name), err)
	}
	return nil
}

// DeleteRole deletes the role
//
//	Input:
//		name (string): The role name
//		throwOnPopulated (bool): Refuse to delete a role which still has members. Otherwise the members lose the role.
//	Returns:
//		deleted (bool): false if there is no such role
//		err (error): "invalid" status for a populated role
func (a *Auth) DeleteRole(name string, throwOnPopulated bool) (bool, error) {
	role, err := a.storage.FindRole(name)
	if err != nil {
		return false, errors.WrapErrorAction(logutils.ActionFind, model.TypeRole, logutils.StringArgs(name), err)
	}
	if role == nil {
		return false, nil
	}

	members, err := a.findMembers(name)
	if err != nil {
		return false, err
	}
	if throwOnPopulated && len(members) > 0 {
		return false, errors.ErrorData(logutils.StatusInvalid, model.TypeRole, &logutils.FieldArgs{"name": name, "members": len(members)}).SetStatus(utils.ErrorStatusInvalid)
	}

	err = a.storage.PerformTransaction(func(storage interfaces.Storage) error {
		for i := range members {
			members[i].Roles = utils.Remove(members[i].Roles, name)
			err := storage.SaveAccount(&members[i])
			if err != nil {
				return errors.WrapErrorAction(logutils.ActionSave, model.TypeAccount, &logutils.FieldArgs{"user_id": members[i].UserID}, err)
			}
		}

		err := storage.DeleteRole(role.ID)
		if err != nil {
			return errors.WrapErrorAction(logutils.ActionDelete, model.TypeRole, logutils.StringArgs(name), err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	a.logger.Infof("role %s deleted, %d members removed", name, len(members))
	return true, nil
}

// RoleExists checks if the role exists
func (a *Auth) RoleExists(name string) (bool, error) {
	role, err := a.storage.FindRole(name)
	if err != nil {
		return false, errors.WrapErrorAction(logutils.ActionFind, model.TypeRole, logutils.StringArgs(name), err)
	}
	return role != nil, nil
}

// GetAllRoles gives the names of all roles
func (a *Auth) GetAllRoles() ([]string, error) {
	roles, err := a.storage.FindRoles()
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeRole, nil, err)
	}

	names := make([]string, len(roles))
	for i, role := range roles {
		names[i] = role.Name
	}
	return names, nil
}

// AddUsersToRoles adds every user to every role. Memberships which already exist are kept.
func (a *Auth) AddUsersToRoles(usernames []string, roleNames []string) error {
	return a.updateMemberships(usernames, roleNames, func(account *model.Account, roleName string) bool {
		if account.HasRole(roleName) {
			return false
		}
		account.Roles = append(account.Roles, roleName)
		return true
	})
}

// RemoveUsersFromRoles removes every user from every role
func (a *Auth) RemoveUsersFromRoles(usernames []string, roleNames []string) error {
	return a.updateMemberships(usernames, roleNames, func(account *model.Account, roleName string) bool {
		if !account.HasRole(roleName) {
			return false
		}
		account.Roles = utils.Remove(account.Roles, roleName)
		return true
	})
}

func (a *Auth) updateMemberships(usernames []string, roleNames []string, apply func(account *model.Account, roleName string) bool) error {
	for _, roleName := range roleNames {
		role, err := a.storage.FindRole(roleName)
		if err != nil {
			return errors.WrapErrorAction(logutils.ActionFind, model.TypeRole, logutils.StringArgs(roleName), err)
		}
		if role == nil {
			return errors.ErrorData(logutils.StatusMissing, model.TypeRole, logutils.StringArgs(roleName)).SetStatus(utils.ErrorStatusNotFound)
		}
	}

	return a.storage.PerformTransaction(func(storage interfaces.Storage) error {
		accounts := make([]*model.Account, len(usernames))
		for i, username := range usernames {
			account, err := storage.FindAccountByUsername(username)
			if err != nil {
				return errors.WrapErrorAction(logutils.ActionFind, model.TypeAccount, logutils.StringArgs(username), err)
			}
			if account == nil {
				return errors.ErrorData(logutils.StatusMissing, model.TypeAccount, logutils.StringArgs(username)).SetStatus(utils.ErrorStatusNotFound)
			}
			accounts[i] = account
		}

		for _, account := range accounts {
			changed := false
			for _, roleName := range roleNames {
				if apply(account, roleName) {
					changed = true
				}
			}
			if !changed {
				continue
			}

			err := storage.SaveAccount(account)
			if err != nil {
				return errors.WrapErrorAction(logutils.ActionSave, model.TypeAccount, &logutils.FieldArgs{"user_id": account.UserID}, err)
			}
		}
		return nil
	})
}

// GetRolesForUser gives the roles of the user. Empty if there is no such user.
func (a *Auth) GetRolesForUser(username string) ([]string, error) {
	account, err := a.storage.FindAccountByUsername(username)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeAccount, logutils.StringArgs(username), err)
	}
	if account == nil {
		return []string{}, nil
	}
	return append([]string{}, account.Roles...), nil
}

// GetUsersInRole gives the user names of the members of the role
func (a *Auth) GetUsersInRole(roleName string) ([]string, error) {
	role, err := a.storage.FindRole(roleName)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeRole, logutils.StringArgs(roleName), err)
	}
	if role == nil {
		return nil, errors.ErrorData(logutils.StatusMissing, model.TypeRole, logutils.StringArgs(roleName)).SetStatus(utils.ErrorStatusNotFound)
	}

	members, err := a.findMembers(roleName)
	if err != nil {
		return nil, err
	}

	usernames := make([]string, len(members))
	for i, member := range members {
		usernames[i] = member.UserName
	}
	return usernames, nil
}

// findMembers scans all accounts for the members of the role
func (a *Auth) findMembers(roleName string) ([]model.Account, error) {
	accounts, err := a.storage.FindAccounts()
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeAccount, nil, err)
	}

	members := []model.Account{}
	for _, account := range accounts {
		if account.HasRole(roleName) {
			members = append(members, account)
		}
	}
	return members, nil
}
