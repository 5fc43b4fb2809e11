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
	"membership-building-block/utils"
	"testing"

	"gotest.tools/assert"
)

func TestCreateRole(t *testing.T) {
	storage := &memoryStorage{}
	auth, _ := newTestAuth(t, storage, testConfig())

	err := auth.CreateRole("admin")
	assert.NilError(t, err)

	exists, err := auth.RoleExists("admin")
	assert.NilError(t, err)
	assert.Assert(t, exists, "role not created")

	err = auth.CreateRole("admin")
	assert.Equal(t, utils.GetErrorStatus(err), utils.ErrorStatusAlreadyExists)

	err = auth.CreateRole("")
	assert.Equal(t, utils.GetErrorStatus(err), utils.ErrorStatusInvalid)

	roles, err := auth.GetAllRoles()
	assert.NilError(t, err)
	assert.DeepEqual(t, roles, []string{"admin"})
}

func TestRoleMemberships(t *testing.T) {
	storage := &memoryStorage{}
	auth, _ := newTestAuth(t, storage, testConfig())
	createTestAccount(t, auth, "u1", "sample_password")
	createTestAccount(t, auth, "u2", "sample_password")
	assert.NilError(t, auth.CreateRole("admin"))
	assert.NilError(t, auth.CreateRole("editor"))

	err := auth.AddUsersToRoles([]string{"u1", "u2"}, []string{"admin"})
	assert.NilError(t, err)
	err = auth.AddUsersToRoles([]string{"u1"}, []string{"admin", "editor"})
	assert.NilError(t, err)

	roles, err := auth.GetRolesForUser("u1")
	assert.NilError(t, err)
	assert.DeepEqual(t, roles, []string{"admin", "editor"})

	users, err := auth.GetUsersInRole("admin")
	assert.NilError(t, err)
	assert.DeepEqual(t, users, []string{"u1", "u2"})

	err = auth.RemoveUsersFromRoles([]string{"u1"}, []string{"admin"})
	assert.NilError(t, err)
	roles, err = auth.GetRolesForUser("u1")
	assert.NilError(t, err)
	assert.DeepEqual(t, roles, []string{"editor"})

	roles, err = auth.GetRolesForUser("missing")
	assert.NilError(t, err)
	assert.Equal(t, len(roles), 0)

	tests := []struct {
		name      string
		usernames []string
		roles     []string
	}{
		{name: "unknown role", usernames: []string{"u1"}, roles: []string{"viewer"}},
		{name: "unknown user", usernames: []string{"u1", "missing"}, roles: []string{"admin"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := auth.AddUsersToRoles(tt.usernames, tt.roles)
			assert.Equal(t, utils.GetErrorStatus(err), utils.ErrorStatusNotFound)
			err = auth.RemoveUsersFromRoles(tt.usernames, tt.roles)
			assert.Equal(t, utils.GetErrorStatus(err), utils.ErrorStatusNotFound)
		})
	}

	//nothing changed by the failed calls
	roles, err = auth.GetRolesForUser("u1")
	assert.NilError(t, err)
	assert.DeepEqual(t, roles, []string{"editor"})

	_, err = auth.GetUsersInRole("viewer")
	assert.Equal(t, utils.GetErrorStatus(err), utils.ErrorStatusNotFound)
}

func TestDeleteRole(t *testing.T) {
	storage := &memoryStorage{}
	auth, _ := newTestAuth(t, storage, testConfig())
	createTestAccount(t, auth, "u1", "sample_password")
	assert.NilError(t, auth.CreateRole("admin"))
	assert.NilError(t, auth.CreateRole("editor"))
	assert.NilError(t, auth.AddUsersToRoles([]string{"u1"}, []string{"admin", "editor"}))

	deleted, err := auth.DeleteRole("admin", true)
	assert.Equal(t, utils.GetErrorStatus(err), utils.ErrorStatusInvalid)
	assert.Assert(t, !deleted, "populated role deleted")

	deleted, err = auth.DeleteRole("admin", false)
	assert.NilError(t, err)
	assert.Assert(t, deleted, "role not deleted")

	exists, err := auth.RoleExists("admin")
	assert.NilError(t, err)
	assert.Assert(t, !exists, "role still exists")

	roles, err := auth.GetRolesForUser("u1")
	assert.NilError(t, err)
	assert.DeepEqual(t, roles, []string{"editor"})

	deleted, err = auth.DeleteRole("admin", false)
	assert.NilError(t, err)
	assert.Assert(t, !deleted, "role deleted twice")
}
