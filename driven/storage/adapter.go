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
	"context"
	"membership-building-block/core/interfaces"
	"membership-building-block/core/model"
	"membership-building-block/utils"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logs"
	"github.com/rokwire/logging-library-go/v2/logutils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	typeTransaction    logutils.MessageDataType = "transaction"
	typeStorageAdapter logutils.MessageDataType = "storage adapter"

	defaultMongoTimeout int = 500
)

// Adapter implements the Storage interface
type Adapter struct {
	db *database

	//set while the adapter runs inside a transaction
	context mongo.SessionContext

	logger *logs.Logger
}

// Start starts the storage
func (sa *Adapter) Start() error {
	err := sa.db.start()
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionInitialize, typeStorageAdapter, nil, err)
	}

	return nil
}

// Stop releases the storage session
func (sa *Adapter) Stop() error {
	err := sa.db.stop()
	if err != nil {
		return errors.WrapErrorAction("disconnecting", typeStorageAdapter, nil, err)
	}

	return nil
}

// PerformTransaction performs a transaction
//
//	Without transactions enabled the operations run one after another on the same adapter.
func (sa *Adapter) PerformTransaction(transaction func(adapter interfaces.Storage) error) error {
	if !sa.db.transactions || sa.context != nil {
		return transaction(sa)
	}

	// transaction
	callback := func(sessionContext mongo.SessionContext) (interface{}, error) {
		adapter := sa.withContext(sessionContext)

		err := transaction(adapter)
		if err != nil {
			return nil, err
		}
		return nil, nil
	}

	session, err := sa.db.dbClient.StartSession()
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionStart, typeTransaction, nil, err)
	}
	defer session.EndSession(context.Background())

	_, err = session.WithTransaction(context.Background(), callback)
	if err != nil {
		if _, ok := err.(*errors.Error); ok {
			return err
		}
		return errors.WrapErrorAction("performing", typeTransaction, nil, err)
	}
	return nil
}

func (sa *Adapter) withContext(sessionContext mongo.SessionContext) *Adapter {
	return &Adapter{db: sa.db, context: sessionContext, logger: sa.logger}
}

func (sa *Adapter) ctx() context.Context {
	if sa.context == nil {
		return context.Background()
	}
	return sa.context
}

// FindAccounts finds all accounts
func (sa *Adapter) FindAccounts() ([]model.Account, error) {
	var result []account
	err := sa.db.users.Find(sa.ctx(), bson.D{}, &result, nil)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeAccount, nil, err)
	}

	return accountsFromStorage(result), nil
}

// FindAccountByID finds an account by id
func (sa *Adapter) FindAccountByID(id string) (*model.Account, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		//not a stored id
		return nil, nil
	}

	return sa.findAccount(bson.D{primitive.E{Key: "_id", Value: userID}})
}

// FindAccountByUsername finds an account by user name
func (sa *Adapter) FindAccountByUsername(username string) (*model.Account, error) {
	return sa.findAccount(bson.D{primitive.E{Key: "username", Value: username}})
}

func (sa *Adapter) findAccount(filter bson.D) (*model.Account, error) {
	var result account
	found, err := sa.db.users.FindOne(sa.ctx(), filter, &result, nil)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeAccount, nil, err)
	}
	if !found {
		return nil, nil
	}

	account := accountFromStorage(result)
	return &account, nil
}

// FindUserIDByUsername finds the id of the user. Empty if there is no such user.
func (sa *Adapter) FindUserIDByUsername(username string) (string, error) {
	filter := bson.D{primitive.E{Key: "username", Value: username}}
	findOptions := options.FindOne().SetProjection(bson.D{primitive.E{Key: "_id", Value: 1}})

	var result struct {
		ID uuid.UUID `bson:"_id"`
	}
	found, err := sa.db.users.FindOne(sa.ctx(), filter, &result, findOptions)
	if err != nil {
		return "", errors.WrapErrorAction(logutils.ActionFind, model.TypeUserID, logutils.StringArgs(username), err)
	}
	if !found {
		return "", nil
	}

	return result.ID.String(), nil
}

// FindAccountsByConfirmationToken finds the accounts which hold the confirmation token
func (sa *Adapter) FindAccountsByConfirmationToken(token string) ([]model.Account, error) {
	return sa.findAccountsByToken("confirmation_token", token)
}

// FindAccountsByPasswordVerificationToken finds the accounts which hold the password verification token
func (sa *Adapter) FindAccountsByPasswordVerificationToken(token string) ([]model.Account, error) {
	return sa.findAccountsByToken("password_verification_token", token)
}

func (sa *Adapter) findAccountsByToken(key string, token string) ([]model.Account, error) {
	if len(token) == 0 {
		return []model.Account{}, nil
	}

	//the default collation compares strings binary - the match is exact
	filter := bson.D{primitive.E{Key: key, Value: token}}
	var result []account
	err := sa.db.users.Find(sa.ctx(), filter, &result, nil)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeAccount, &logutils.FieldArgs{"key": key}, err)
	}

	return accountsFromStorage(result), nil
}

// InsertAccount inserts a new account
func (sa *Adapter) InsertAccount(item model.Account) error {
	storageAccount, err := accountToStorage(&item)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionCast, model.TypeAccount, nil, err)
	}

	_, err = sa.db.users.InsertOne(sa.ctx(), storageAccount)
	if err != nil {
		return writeError(logutils.ActionInsert, model.TypeAccount, logutils.StringArgs(item.UserName), err)
	}

	return nil
}

// SaveAccount replaces the whole account - the last writer wins
func (sa *Adapter) SaveAccount(item *model.Account) error {
	if item == nil {
		return errors.ErrorData(logutils.StatusInvalid, logutils.TypeArg, logutils.StringArgs(model.TypeAccount))
	}

	storageAccount, err := accountToStorage(item)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionCast, model.TypeAccount, nil, err)
	}

	filter := bson.D{primitive.E{Key: "_id", Value: storageAccount.ID}}
	err = sa.db.users.ReplaceOne(sa.ctx(), filter, storageAccount, options.Replace().SetUpsert(true))
	if err != nil {
		return writeError(logutils.ActionSave, model.TypeAccount, &logutils.FieldArgs{"user_id": item.UserID}, err)
	}

	return nil
}

// DeleteAccount deletes an account
func (sa *Adapter) DeleteAccount(id string) error {
	userID, err := uuid.Parse(id)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionParse, model.TypeUserID, logutils.StringArgs(id), err).SetStatus(utils.ErrorStatusInvalid)
	}

	filter := bson.D{primitive.E{Key: "_id", Value: userID}}
	result, err := sa.db.users.DeleteOne(sa.ctx(), filter, nil)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionDelete, model.TypeAccount, logutils.StringArgs(id), err)
	}
	if result.DeletedCount == 0 {
		sa.logger.Warnf("no account deleted for id %s", id)
	}

	return nil
}

// FindRoles finds all roles
func (sa *Adapter) FindRoles() ([]model.Role, error) {
	var result []role
	findOptions := options.Find().SetSort(bson.D{primitive.E{Key: "name", Value: 1}})
	err := sa.db.roles.Find(sa.ctx(), bson.D{}, &result, findOptions)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeRole, nil, err)
	}

	return rolesFromStorage(result), nil
}

// FindRole finds a role by name
func (sa *Adapter) FindRole(name string) (*model.Role, error) {
	filter := bson.D{primitive.E{Key: "name", Value: name}}
	var result role
	found, err := sa.db.roles.FindOne(sa.ctx(), filter, &result, nil)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeRole, logutils.StringArgs(name), err)
	}
	if !found {
		return nil, nil
	}

	role := roleFromStorage(result)
	return &role, nil
}

// InsertRole inserts a new role
func (sa *Adapter) InsertRole(item model.Role) error {
	storageRole, err := roleToStorage(item)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionCast, model.TypeRole, nil, err)
	}

	_, err = sa.db.roles.InsertOne(sa.ctx(), storageRole)
	if err != nil {
		return writeError(logutils.ActionInsert, model.TypeRole, logutils.StringArgs(item.Name), err)
	}

	return nil
}

// DeleteRole deletes a role
func (sa *Adapter) DeleteRole(id string) error {
	roleID, err := uuid.Parse(id)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionParse, model.TypeRole, logutils.StringArgs(id), err).SetStatus(utils.ErrorStatusInvalid)
	}

	filter := bson.D{primitive.E{Key: "_id", Value: roleID}}
	_, err = sa.db.roles.DeleteOne(sa.ctx(), filter, nil)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionDelete, model.TypeRole, logutils.StringArgs(id), err)
	}

	return nil
}

// FindOAuthToken finds the external login record
func (sa *Adapter) FindOAuthToken(provider string, providerUserID string) (*model.OAuthToken, error) {
	filter := bson.D{primitive.E{Key: "provider", Value: provider}, primitive.E{Key: "provider_user_id", Value: providerUserID}}
	var result oauthToken
	found, err := sa.db.oauthTokens.FindOne(sa.ctx(), filter, &result, nil)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeOAuthToken, &logutils.FieldArgs{"provider": provider}, err)
	}
	if !found {
		return nil, nil
	}

	token := oauthTokenFromStorage(result)
	return &token, nil
}

// FindOAuthTokensByUserID finds the external login records of the user
func (sa *Adapter) FindOAuthTokensByUserID(userID string) ([]model.OAuthToken, error) {
	filter := bson.D{primitive.E{Key: "user_id", Value: userID}}
	var result []oauthToken
	err := sa.db.oauthTokens.Find(sa.ctx(), filter, &result, nil)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeOAuthToken, &logutils.FieldArgs{"user_id": userID}, err)
	}

	return oauthTokensFromStorage(result), nil
}

// InsertOAuthToken inserts a new external login record
func (sa *Adapter) InsertOAuthToken(item model.OAuthToken) error {
	storageToken, err := oauthTokenToStorage(item)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionCast, model.TypeOAuthToken, nil, err)
	}

	_, err = sa.db.oauthTokens.InsertOne(sa.ctx(), storageToken)
	if err != nil {
		return writeError(logutils.ActionInsert, model.TypeOAuthToken, &logutils.FieldArgs{"provider": item.Provider}, err)
	}

	return nil
}

// DeleteOAuthToken deletes the external login record
func (sa *Adapter) DeleteOAuthToken(provider string, providerUserID string) error {
	filter := bson.D{primitive.E{Key: "provider", Value: provider}, primitive.E{Key: "provider_user_id", Value: providerUserID}}
	_, err := sa.db.oauthTokens.DeleteOne(sa.ctx(), filter, nil)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionDelete, model.TypeOAuthToken, &logutils.FieldArgs{"provider": provider}, err)
	}

	return nil
}

// writeError wraps a write error. A unique index violation gets the "already-exists" status.
func writeError(action logutils.MessageActionType, dataType logutils.MessageDataType, args logutils.MessageArgs, err error) error {
	wrapped := errors.WrapErrorAction(action, dataType, args, err)
	if mongo.IsDuplicateKeyError(err) {
		return wrapped.SetStatus(utils.ErrorStatusAlreadyExists)
	}
	return wrapped
}

// NewStorageAdapter creates a new storage adapter instance
func NewStorageAdapter(mongoDBAuth string, mongoDBName string, mongoTimeout string, transactions bool, logger *logs.Logger) *Adapter {
	timeoutInt, err := strconv.Atoi(mongoTimeout)
	if err != nil {
		logger.Warnf("Setting default Mongo timeout - %d", defaultMongoTimeout)
		timeoutInt = defaultMongoTimeout
	}
	timeout := time.Millisecond * time.Duration(timeoutInt)

	db := &database{mongoDBAuth: mongoDBAuth, mongoDBName: mongoDBName, mongoTimeout: timeout, transactions: transactions, logger: logger}
	return &Adapter{db: db, logger: logger}
}
