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
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"

	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logutils"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

const (
	typePasswordHasher logutils.MessageDataType = "password hasher"
	typePasswordHash   logutils.MessageDataType = "password hash"
	typePasswordSalt   logutils.MessageDataType = "password salt"

	saltLength int = 16

	argon2Time    uint32 = 1
	argon2Memory  uint32 = 64 * 1024
	argon2Threads uint8  = 4
	argon2KeyLen  uint32 = 32
)

// PasswordHasher computes and verifies salted password hashes
type PasswordHasher interface {
	//Hash returns the hash and the salt for the plaintext password
	Hash(password string) (string, string, error)
	//Verify checks the plaintext password against the stored hash and salt in constant time
	Verify(password string, hash string, salt string) bool
	//DummyVerify performs a verification that always fails but costs the same as Verify
	DummyVerify(password string)
}

// NewPasswordHasher creates the hasher for the algorithm
func NewPasswordHasher(algorithm string, bcryptCost int) (PasswordHasher, error) {
	var hasher saltedHasher
	switch algorithm {
	case HashAlgorithmBcrypt:
		if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
			return nil, errors.ErrorData(logutils.StatusInvalid, "bcrypt cost", &logutils.FieldArgs{"cost": bcryptCost})
		}
		hasher = &bcryptHasher{cost: bcryptCost}
	case HashAlgorithmArgon2id:
		hasher = &argon2Hasher{}
	default:
		return nil, errors.ErrorData(logutils.StatusInvalid, typePasswordHasher, logutils.StringArgs(algorithm))
	}

	//the dummy credential is used when there is no stored one to compare against
	dummyPassword, err := GenerateToken(saltLength)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionGenerate, "dummy password", nil, err)
	}
	dummySalt, err := GenerateToken(saltLength)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionGenerate, typePasswordSalt, nil, err)
	}
	dummyHash, err := hasher.derive(dummyPassword, dummySalt)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionCompute, typePasswordHash, nil, err)
	}

	return &passwordHasher{hasher: hasher, dummyHash: dummyHash, dummySalt: dummySalt}, nil
}

type saltedHasher interface {
	derive(password string, salt string) (string, error)
	compare(password string, hash string, salt string) bool
}

type passwordHasher struct {
	hasher saltedHasher

	dummyHash string
	dummySalt string
}

func (h *passwordHasher) Hash(password string) (string, string, error) {
	salt, err := GenerateToken(saltLength)
	if err != nil {
		return "", "", errors.WrapErrorAction(logutils.ActionGenerate, typePasswordSalt, nil, err)
	}

	hash, err := h.hasher.derive(password, salt)
	if err != nil {
		return "", "", errors.WrapErrorAction(logutils.ActionCompute, typePasswordHash, nil, err)
	}
	return hash, salt, nil
}

func (h *passwordHasher) Verify(password string, hash string, salt string) bool {
	if len(hash) == 0 || len(salt) == 0 {
		h.DummyVerify(password)
		return false
	}
	return h.hasher.compare(password, hash, salt)
}

func (h *passwordHasher) DummyVerify(password string) {
	h.hasher.compare(password, h.dummyHash, h.dummySalt)
}

// bcrypt over HMAC-SHA256(salt, password)
//
//	The keyed digest binds the explicit salt and keeps the input under the 72 bytes bcrypt accepts.
type bcryptHasher struct {
	cost int
}

func (h *bcryptHasher) derive(password string, salt string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(h.prehash(password, salt), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (h *bcryptHasher) compare(password string, hash string, salt string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), h.prehash(password, salt)) == nil
}

func (h *bcryptHasher) prehash(password string, salt string) []byte {
	mac := hmac.New(sha256.New, []byte(salt))
	mac.Write([]byte(password))
	return []byte(base64.RawStdEncoding.EncodeToString(mac.Sum(nil)))
}

type argon2Hasher struct{}

func (h *argon2Hasher) derive(password string, salt string) (string, error) {
	key := argon2.IDKey([]byte(password), []byte(salt), argon2Time, argon2Memory, argon2Threads, argon2KeyLen)
	return base64.RawStdEncoding.EncodeToString(key), nil
}

func (h *argon2Hasher) compare(password string, hash string, salt string) bool {
	stored, err := base64.RawStdEncoding.DecodeString(hash)
	if err != nil {
		stored = nil
	}
	computed := argon2.IDKey([]byte(password), []byte(salt), argon2Time, argon2Memory, argon2Threads, argon2KeyLen)
	return subtle.ConstantTimeCompare(computed, stored) == 1
}
