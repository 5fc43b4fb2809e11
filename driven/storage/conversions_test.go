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

package storage

import (
	"membership-building-block/core/model"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"gotest.tools/assert"
)

const testUserID = "5f0c8a3e-3b9a-4c1e-9d0e-2b8c7a6f1e42"

func TestAccountToStorage(t *testing.T) {
	created := time.Date(2023, time.March, 1, 12, 0, 0, 0, time.UTC)
	item := model.Account{UserID: testUserID, UserName: "john", Password: "hash", PasswordSalt: "salt", CreateDate: created,
		IsConfirmed: true, Roles: []string{"admin"}, OAuthData: []model.OAuthData{{Provider: "google", ProviderUserID: "g1"}},
		CatchAll: map[string]interface{}{"nickname": "Jo", "username": "other", "_id": "other"}}

	stored, err := accountToStorage(&item)
	assert.NilError(t, err)
	assert.Equal(t, stored.ID.String(), testUserID)
	assert.DeepEqual(t, stored.CatchAll, map[string]interface{}{"nickname": "Jo"})

	back := accountFromStorage(*stored)
	assert.Equal(t, back.UserID, testUserID)
	assert.Equal(t, back.UserName, "john")
	assert.Equal(t, back.CreateDate, created)
	assert.DeepEqual(t, back.Roles, []string{"admin"})
	assert.DeepEqual(t, back.OAuthData, item.OAuthData)

	_, err = accountToStorage(&model.Account{UserID: "not-a-uuid", UserName: "john"})
	assert.Assert(t, err != nil, "expected error for invalid user id")
}

func TestAccountBSON(t *testing.T) {
	created := time.Date(2023, time.March, 1, 12, 0, 0, 0, time.UTC)
	stored, err := accountToStorage(&model.Account{UserID: testUserID, UserName: "john", CreateDate: created,
		CatchAll: map[string]interface{}{"nickname": "Jo"}})
	assert.NilError(t, err)

	data, err := bson.MarshalWithRegistry(getRegistry(), stored)
	assert.NilError(t, err)

	raw := bson.Raw(data)
	id := raw.Lookup("_id")
	assert.Equal(t, id.Type, bsontype.Binary)
	subtype, _ := id.Binary()
	assert.Equal(t, subtype, bsontype.BinaryUUID)
	assert.Equal(t, raw.Lookup("nickname").StringValue(), "Jo")

	//an external account has no password fields at all
	_, err = raw.LookupErr("password")
	assert.Assert(t, err != nil, "empty password stored")

	var decoded account
	err = bson.UnmarshalWithRegistry(getRegistry(), data, &decoded)
	assert.NilError(t, err)

	back := accountFromStorage(decoded)
	assert.Equal(t, back.UserID, testUserID)
	assert.Equal(t, back.UserName, "john")
	assert.Equal(t, back.CreateDate, created)
	assert.Equal(t, back.CatchAll["nickname"], "Jo")
	assert.Equal(t, len(back.Roles), 0)
	assert.Assert(t, back.Roles != nil, "roles are nil")
}

func TestUUIDDecode(t *testing.T) {
	id := uuid.MustParse(testUserID)

	tests := []struct {
		name    string
		value   interface{}
		want    uuid.UUID
		wantErr bool
	}{
		{name: "subtype 4", value: bson.M{"_id": primitive.Binary{Subtype: bsontype.BinaryUUID, Data: id[:]}}, want: id},
		{name: "legacy subtype 3", value: bson.M{"_id": primitive.Binary{Subtype: bsontype.BinaryUUIDOld, Data: id[:]}}, want: id},
		{name: "null", value: bson.M{"_id": nil}, want: uuid.Nil},
		{name: "generic binary", value: bson.M{"_id": primitive.Binary{Subtype: bsontype.BinaryGeneric, Data: id[:]}}, wantErr: true},
		{name: "string", value: bson.M{"_id": testUserID}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := bson.Marshal(tt.value)
			assert.NilError(t, err)

			var decoded role
			err = bson.UnmarshalWithRegistry(getRegistry(), data, &decoded)
			if tt.wantErr {
				assert.Assert(t, err != nil, "expected decode error")
				return
			}
			assert.NilError(t, err)
			assert.Equal(t, decoded.ID, tt.want)
		})
	}
}

func TestOAuthTokenToStorage(t *testing.T) {
	created := time.Date(2023, time.March, 1, 12, 0, 0, 0, time.UTC)
	item := model.OAuthToken{ID: uuid.NewString(), Provider: "google", ProviderUserID: "g1", UserID: testUserID, DateCreated: created}

	stored, err := oauthTokenToStorage(item)
	assert.NilError(t, err)
	assert.DeepEqual(t, oauthTokenFromStorage(*stored), item)

	_, err = roleToStorage(model.Role{ID: "bad", Name: "admin"})
	assert.Assert(t, err != nil, "expected error for invalid role id")
}
