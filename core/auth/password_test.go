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
	"regexp"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
	"gotest.tools/assert"
)

func TestPasswordHasher(t *testing.T) {
	longPassword := strings.Repeat("a", 100)

	tests := []struct {
		name      string
		algorithm string
	}{
		{name: "bcrypt", algorithm: HashAlgorithmBcrypt},
		{name: "argon2id", algorithm: HashAlgorithmArgon2id},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher, err := NewPasswordHasher(tt.algorithm, bcrypt.MinCost)
			assert.NilError(t, err)

			hash, salt, err := hasher.Hash("sample_password")
			assert.NilError(t, err)
			assert.Assert(t, hash != "sample_password", "hash equals the plaintext")
			assert.Assert(t, salt != "sample_password", "salt equals the plaintext")
			assert.Assert(t, len(salt) > 0, "missing salt")

			assert.Assert(t, hasher.Verify("sample_password", hash, salt), "correct password not verified")
			assert.Assert(t, !hasher.Verify("Sample_password", hash, salt), "wrong password verified")
			assert.Assert(t, !hasher.Verify("sample_password", hash, salt+"x"), "wrong salt verified")
			assert.Assert(t, !hasher.Verify("sample_password", "", ""), "empty hash verified")

			otherHash, otherSalt, err := hasher.Hash("sample_password")
			assert.NilError(t, err)
			assert.Assert(t, otherSalt != salt, "salt reused")
			assert.Assert(t, otherHash != hash, "hash reused")

			//passwords which differ past the 72nd byte
			longHash, longSalt, err := hasher.Hash(longPassword + "1")
			assert.NilError(t, err)
			assert.Assert(t, hasher.Verify(longPassword+"1", longHash, longSalt), "long password not verified")
			assert.Assert(t, !hasher.Verify(longPassword+"2", longHash, longSalt), "long password prefix verified")

			hasher.DummyVerify("sample_password")
		})
	}
}

func TestNewPasswordHasher(t *testing.T) {
	tests := []struct {
		name       string
		algorithm  string
		bcryptCost int
		wantErr    bool
	}{
		{name: "bcrypt", algorithm: HashAlgorithmBcrypt, bcryptCost: bcrypt.MinCost, wantErr: false},
		{name: "argon2id ignores cost", algorithm: HashAlgorithmArgon2id, bcryptCost: 0, wantErr: false},
		{name: "bcrypt cost too low", algorithm: HashAlgorithmBcrypt, bcryptCost: 2, wantErr: true},
		{name: "unknown algorithm", algorithm: "md5", bcryptCost: bcrypt.MinCost, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher, err := NewPasswordHasher(tt.algorithm, tt.bcryptCost)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewPasswordHasher() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && hasher == nil {
				t.Error("NewPasswordHasher() hasher is nil")
			}
		})
	}
}

func TestGenerateToken(t *testing.T) {
	urlSafe := regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

	token, err := GenerateToken(16)
	assert.NilError(t, err)
	assert.Equal(t, len(token), 22)
	assert.Assert(t, urlSafe.MatchString(token), "token %s is not url safe", token)

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		token, err := GenerateToken(16)
		assert.NilError(t, err)
		assert.Assert(t, !seen[token], "token %s repeated", token)
		seen[token] = true
	}

	_, err = GenerateToken(0)
	assert.Assert(t, err != nil, "expected error for zero length")
}

func TestTokensEqual(t *testing.T) {
	tests := []struct {
		name     string
		stored   string
		supplied string
		want     bool
	}{
		{name: "equal", stored: "foo", supplied: "foo", want: true},
		{name: "different case", stored: "Foo", supplied: "foo", want: false},
		{name: "prefix", stored: "foo", supplied: "fo", want: false},
		{name: "empty stored", stored: "", supplied: "foo", want: false},
		{name: "empty supplied", stored: "foo", supplied: "", want: false},
		{name: "both empty", stored: "", supplied: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tokensEqual(tt.stored, tt.supplied), tt.want)
		})
	}
}
