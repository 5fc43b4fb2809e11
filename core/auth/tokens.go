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
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"membership-building-block/core/model"

	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logutils"
)

// GenerateToken returns byteLength cryptographically secure random bytes encoded as unpadded base64url
func GenerateToken(byteLength int) (string, error) {
	if byteLength <= 0 {
		return "", errors.ErrorData(logutils.StatusInvalid, "token length", &logutils.FieldArgs{"length": byteLength})
	}

	bytes := make([]byte, byteLength)
	_, err := rand.Read(bytes)
	if err != nil {
		return "", errors.WrapErrorAction(logutils.ActionGenerate, logutils.TypeToken, nil, err)
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}

// tokensEqual compares two tokens exactly. An empty token never matches.
func tokensEqual(stored string, supplied string) bool {
	if len(stored) == 0 || len(supplied) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}

// firstTokenMatch returns the first account in storage order whose token equals the supplied one
func firstTokenMatch(accounts []model.Account, token string, accountToken func(account model.Account) string) *model.Account {
	for i := range accounts {
		if tokensEqual(accountToken(accounts[i]), token) {
			return &accounts[i]
		}
	}
	return nil
}

func confirmationToken(account model.Account) string {
	return account.ConfirmationToken
}

func passwordVerificationToken(account model.Account) string {
	return account.PasswordVerificationToken
}

// generateUniqueToken generates a token which no stored account holds yet
func (a *Auth) generateUniqueToken(find func(token string) ([]model.Account, error), accountToken func(account model.Account) string,
	dataType logutils.MessageDataType) (string, error) {
	for i := 0; i < maxTokenAttempts; i++ {
		token, err := GenerateToken(a.config.TokenLength)
		if err != nil {
			a.logger.Errorf("error generating %s: %s", dataType, err)
			return "", errors.WrapErrorAction(logutils.ActionGenerate, dataType, nil, err)
		}

		accounts, err := find(token)
		if err != nil {
			return "", errors.WrapErrorAction(logutils.ActionFind, model.TypeAccount, nil, err)
		}
		if firstTokenMatch(accounts, token, accountToken) == nil {
			return token, nil
		}
		a.logger.Warnf("generated %s collides with an outstanding one, retrying", dataType)
	}
	return "", errors.ErrorAction(logutils.ActionGenerate, dataType, &logutils.FieldArgs{"attempts": maxTokenAttempts})
}
