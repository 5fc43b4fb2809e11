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

package model

import (
	"time"

	"github.com/rokwire/logging-library-go/v2/logutils"
)

const (
	//TypeOAuthToken oauth token type
	TypeOAuthToken logutils.MessageDataType = "oauth token"
	//TypeExternalLogin external login type
	TypeExternalLogin logutils.MessageDataType = "external login"
)

// OAuthToken maps an external login (provider + provider user id) to a user
//
//	It is kept in its own collection for reverse lookups and must agree with the
//	OAuthData of the account it points to.
type OAuthToken struct {
	ID string

	Provider       string
	ProviderUserID string
	UserID         string

	DateCreated time.Time
}

// ExternalLogin represents an external login as seen by the host
type ExternalLogin struct {
	Provider       string
	ProviderUserID string
}
