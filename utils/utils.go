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

package utils

import (
	"github.com/rokwire/logging-library-go/v2/errors"
)

const (
	//ErrorStatusAlreadyExists the item (username, role, external login) already exists
	ErrorStatusAlreadyExists string = "already-exists"
	//ErrorStatusNotFound the referenced item does not exist
	ErrorStatusNotFound string = "not-found"
	//ErrorStatusInvalid the input is invalid
	ErrorStatusInvalid string = "invalid"
	//ErrorStatusInconsistent a dual write left the stored data inconsistent
	ErrorStatusInconsistent string = "inconsistent"
)

// GetErrorStatus returns the status set on a logging library error, or "" for any other error
func GetErrorStatus(err error) string {
	if err == nil {
		return ""
	}
	loggingErr, ok := err.(*errors.Error)
	if !ok {
		return ""
	}
	return loggingErr.Status()
}

// Contains checks if a list contains the value
func Contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}

// Remove returns a copy of the list without any occurrence of the value
func Remove(list []string, value string) []string {
	res := make([]string, 0, len(list))
	for _, item := range list {
		if item != value {
			res = append(res, item)
		}
	}
	return res
}
