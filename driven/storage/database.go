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
	"time"

	"github.com/rokwire/logging-library-go/v2/logs"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type database struct {
	mongoDBAuth  string
	mongoDBName  string
	mongoTimeout time.Duration
	transactions bool

	logger *logs.Logger

	db       *mongo.Database
	dbClient *mongo.Client

	users       *collectionWrapper
	roles       *collectionWrapper
	oauthTokens *collectionWrapper
}

func (m *database) start() error {
	m.logger.Info("database -> start")

	//connect to the database
	clientOptions := options.Client().ApplyURI(m.mongoDBAuth).SetRegistry(getRegistry())
	connectContext, cancel := context.WithTimeout(context.Background(), m.mongoTimeout)
	client, err := mongo.Connect(connectContext, clientOptions)
	cancel()
	if err != nil {
		return err
	}

	//ping the database
	pingContext, cancel := context.WithTimeout(context.Background(), m.mongoTimeout)
	err = client.Ping(pingContext, nil)
	cancel()
	if err != nil {
		return err
	}

	//apply checks
	db := client.Database(m.mongoDBName)

	users := &collectionWrapper{database: m, coll: db.Collection("users")}
	err = m.applyUsersChecks(users)
	if err != nil {
		return err
	}

	roles := &collectionWrapper{database: m, coll: db.Collection("roles")}
	err = m.applyRolesChecks(roles)
	if err != nil {
		return err
	}

	oauthTokens := &collectionWrapper{database: m, coll: db.Collection("oauth_tokens")}
	err = m.applyOAuthTokensChecks(oauthTokens)
	if err != nil {
		return err
	}

	//asign the db, db client and the collections
	m.db = db
	m.dbClient = client
	m.users = users
	m.roles = roles
	m.oauthTokens = oauthTokens

	return nil
}

func (m *database) stop() error {
	if m.dbClient == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), m.mongoTimeout)
	defer cancel()

	err := m.dbClient.Disconnect(ctx)
	m.dbClient = nil
	return err
}

func (m *database) applyUsersChecks(users *collectionWrapper) error {
	m.logger.Info("apply users checks.....")

	//add username index - unique
	err := users.AddIndex(bson.D{primitive.E{Key: "username", Value: 1}}, true)
	if err != nil {
		return err
	}

	//add confirmation_token index
	err = users.AddIndex(bson.D{primitive.E{Key: "confirmation_token", Value: 1}}, false)
	if err != nil {
		return err
	}

	//add password_verification_token index
	err = users.AddIndex(bson.D{primitive.E{Key: "password_verification_token", Value: 1}}, false)
	if err != nil {
		return err
	}

	//add roles index
	err = users.AddIndex(bson.D{primitive.E{Key: "roles", Value: 1}}, false)
	if err != nil {
		return err
	}

	indexes, err := users.ListIndexes(m.logger)
	if err != nil {
		return err
	}

	m.logger.Infof("users checks passed - %d indexes", len(indexes))
	return nil
}

func (m *database) applyRolesChecks(roles *collectionWrapper) error {
	m.logger.Info("apply roles checks.....")

	//add name index - unique
	err := roles.AddIndex(bson.D{primitive.E{Key: "name", Value: 1}}, true)
	if err != nil {
		return err
	}

	m.logger.Info("roles checks passed")
	return nil
}

func (m *database) applyOAuthTokensChecks(oauthTokens *collectionWrapper) error {
	m.logger.Info("apply oauth tokens checks.....")

	//add provider and provider user id index - unique
	err := oauthTokens.AddIndex(bson.D{primitive.E{Key: "provider", Value: 1}, primitive.E{Key: "provider_user_id", Value: 1}}, true)
	if err != nil {
		return err
	}

	//add user_id index
	err = oauthTokens.AddIndex(bson.D{primitive.E{Key: "user_id", Value: 1}}, false)
	if err != nil {
		return err
	}

	m.logger.Info("oauth tokens checks passed")
	return nil
}
