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

package core

import (
	"membership-building-block/core/auth"
	"membership-building-block/core/interfaces"
	"sync"

	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logs"
	"github.com/rokwire/logging-library-go/v2/logutils"
)

const (
	typeSessionFactory logutils.MessageDataType = "session factory"
	typeStorageSession logutils.MessageDataType = "storage session"
)

// application represents the core application code based on hexagonal architecture
type application struct {
	version string
	build   string

	sessionFactory SessionFactory
	authConfig     auth.Config
	logger         *logs.Logger

	//guards the lazily acquired session
	lock    sync.Mutex
	session interfaces.Session
	auth    *auth.Auth
}

// getAuth gives the state machine bound to the storage session. The session is acquired on the first call;
// a failed acquisition is retried by the next one.
func (app *application) getAuth() (*auth.Auth, error) {
	app.lock.Lock()
	defer app.lock.Unlock()

	if app.auth != nil {
		return app.auth, nil
	}

	session, err := app.sessionFactory()
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionStart, typeStorageSession, nil, err)
	}
	if session == nil {
		return nil, errors.ErrorData(logutils.StatusMissing, typeStorageSession, nil)
	}

	authImpl, err := auth.NewAuth(session, app.authConfig, app.logger)
	if err != nil {
		stopErr := session.Stop()
		if stopErr != nil {
			app.logger.Errorf("error releasing the storage session: %s", stopErr)
		}
		return nil, errors.WrapErrorAction(logutils.ActionInitialize, "auth", nil, err)
	}

	app.session = session
	app.auth = authImpl
	app.logger.Info("storage session acquired")
	return app.auth, nil
}

func (app *application) stop() error {
	app.lock.Lock()
	defer app.lock.Unlock()

	if app.session == nil {
		return nil
	}

	err := app.session.Stop()
	app.session = nil
	app.auth = nil
	if err != nil {
		return errors.WrapErrorAction("releasing", typeStorageSession, nil, err)
	}

	app.logger.Info("storage session released")
	return nil
}
