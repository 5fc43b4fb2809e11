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

	"membership-building-block/core/model"
	"membership-building-block/utils"

	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logs"
	"github.com/rokwire/logging-library-go/v2/logutils"
	"gopkg.in/yaml.v2"
)

const typeRolesFile logutils.MessageDataType = "roles file"

type rolesFile struct {
	Roles []roleEntry `yaml:"roles"`
}

type roleEntry struct {
	Name string `yaml:"name"`
}

// Adapter loads the roles which have to exist from a YAML file
//
//	roles:
//	  - name: admin
//	  - name: member
type Adapter struct {
	path string

	logger *logs.Logger
}

// LoadRoles gives the role names defined in the file
func (a *Adapter) LoadRoles() ([]string, error) {
	data, err := os.ReadFile(a.path)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionRead, typeRolesFile, logutils.StringArgs(a.path), err)
	}

	names, err := ParseRoles(data)
	if err != nil {
		return nil, err
	}

	a.logger.Infof("loaded %d roles from %s", len(names), a.path)
	return names, nil
}

// ParseRoles parses the role names from the YAML content. Repeated names are kept once.
func ParseRoles(data []byte) ([]string, error) {
	var file rolesFile
	err := yaml.UnmarshalStrict(data, &file)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionUnmarshal, typeRolesFile, nil, err)
	}

	names := []string{}
	for _, entry := range file.Roles {
		if len(entry.Name) == 0 {
			return nil, errors.ErrorData(logutils.StatusMissing, model.TypeRole, nil)
		}
		if !utils.Contains(names, entry.Name) {
			names = append(names, entry.Name)
		}
	}
	return names, nil
}

// NewRolesFileAdapter creates a new roles file adapter instance
func NewRolesFileAdapter(path string, logger *logs.Logger) *Adapter {
	return &Adapter{path: path, logger: logger}
}
