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

package rolesfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rokwire/logging-library-go/v2/logs"
	"gotest.tools/assert"
)

func TestParseRoles(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    []string
		wantErr bool
	}{
		{name: "roles", data: "roles:\n  - name: admin\n  - name: member\n", want: []string{"admin", "member"}},
		{name: "repeated", data: "roles:\n  - name: admin\n  - name: admin\n", want: []string{"admin"}},
		{name: "empty", data: "", want: []string{}},
		{name: "missing name", data: "roles:\n  - name: \"\"\n", wantErr: true},
		{name: "unknown field", data: "roles:\n  - name: admin\n    color: red\n", wantErr: true},
		{name: "malformed", data: "roles: [", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRoles([]byte(tt.data))
			if tt.wantErr {
				assert.Assert(t, err != nil, "expected error")
				return
			}
			assert.NilError(t, err)
			assert.DeepEqual(t, got, tt.want)
		})
	}
}

func TestLoadRoles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roles.yaml")
	err := os.WriteFile(path, []byte("roles:\n  - name: admin\n"), 0600)
	assert.NilError(t, err)

	logger := logs.NewLogger("rolesfile_test", nil)
	roles, err := NewRolesFileAdapter(path, logger).LoadRoles()
	assert.NilError(t, err)
	assert.DeepEqual(t, roles, []string{"admin"})

	_, err = NewRolesFileAdapter(filepath.Join(t.TempDir(), "missing.yaml"), logger).LoadRoles()
	assert.Assert(t, err != nil, "expected error for missing file")
}
