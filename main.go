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

package main

import (
	"membership-building-block/core"
	"membership-building-block/core/auth"
	"membership-building-block/core/interfaces"
	"membership-building-block/driven/rolesfile"
	"membership-building-block/driven/storage"
	"membership-building-block/utils"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/rokwire/core-auth-library-go/v3/envloader"
	"github.com/rokwire/logging-library-go/v2/logs"
)

var (
	// Version : version of this executable
	Version string
	// Build : build date of this executable
	Build string
)

func main() {
	if len(Version) == 0 {
		Version = "dev"
	}

	serviceID := "membership"

	logger := logs.NewLogger(serviceID, &logs.LoggerOpts{})
	envLoader := envloader.NewEnvLoader(Version, logger)

	level := envLoader.GetAndLogEnvVar("MEMBERSHIP_LOG_LEVEL", false, false)
	logLevel := logs.LogLevelFromString(level)
	if logLevel != nil {
		logger.SetLevel(*logLevel)
	}

	// mongoDB adapter
	mongoDBAuth := envLoader.GetAndLogEnvVar("MEMBERSHIP_MONGO_AUTH", true, true)
	mongoDBName := envLoader.GetAndLogEnvVar("MEMBERSHIP_MONGO_DATABASE", true, false)
	mongoTimeout := envLoader.GetAndLogEnvVar("MEMBERSHIP_MONGO_TIMEOUT", false, false)
	mongoTransactions := parseBool(envLoader.GetAndLogEnvVar("MEMBERSHIP_MONGO_TRANSACTIONS", false, false), false, logger)

	sessionFactory := func() (interfaces.Session, error) {
		storageAdapter := storage.NewStorageAdapter(mongoDBAuth, mongoDBName, mongoTimeout, mongoTransactions, logger)
		err := storageAdapter.Start()
		if err != nil {
			return nil, err
		}
		return storageAdapter, nil
	}

	//auth
	authConfig := auth.DefaultConfig()
	authConfig.RequireConfirmation = parseBool(envLoader.GetAndLogEnvVar("MEMBERSHIP_REQUIRE_CONFIRMATION", false, false),
		authConfig.RequireConfirmation, logger)
	authConfig.ClearConfirmationToken = parseBool(envLoader.GetAndLogEnvVar("MEMBERSHIP_CLEAR_CONFIRMATION_TOKEN", false, false),
		authConfig.ClearConfirmationToken, logger)
	authConfig.MaxInvalidPasswordAttempts = parseInt(envLoader.GetAndLogEnvVar("MEMBERSHIP_MAX_INVALID_PASSWORD_ATTEMPTS", false, false),
		authConfig.MaxInvalidPasswordAttempts, logger)
	lockoutWindowSeconds := parseInt(envLoader.GetAndLogEnvVar("MEMBERSHIP_LOCKOUT_WINDOW_SECONDS", false, false),
		int(authConfig.LockoutWindow/time.Second), logger)
	authConfig.LockoutWindow = time.Duration(lockoutWindowSeconds) * time.Second
	hashAlgorithm := envLoader.GetAndLogEnvVar("MEMBERSHIP_HASH_ALGORITHM", false, false)
	if hashAlgorithm != "" {
		authConfig.HashAlgorithm = hashAlgorithm
	}

	//core
	coreAPIs, err := core.NewCoreAPIs(Version, Build, sessionFactory, authConfig, logger)
	if err != nil {
		logger.Fatalf("Cannot create the core APIs: %v", err)
	}
	err = coreAPIs.Start()
	if err != nil {
		logger.Fatalf("Cannot start the mongoDB adapter: %v", err)
	}

	//roles
	rolesFilePath := envLoader.GetAndLogEnvVar("MEMBERSHIP_ROLES_FILE", false, false)
	if rolesFilePath != "" {
		rolesAdapter := rolesfile.NewRolesFileAdapter(rolesFilePath, logger)
		roles, err := rolesAdapter.LoadRoles()
		if err != nil {
			logger.Fatalf("Cannot load the roles file: %v", err)
		}
		err = seedRoles(coreAPIs.Administration, roles, logger)
		if err != nil {
			logger.Fatalf("Cannot seed the roles: %v", err)
		}
	}

	logger.Infof("membership %s (%s) started", Version, Build)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	<-signals

	err = coreAPIs.Stop()
	if err != nil {
		logger.Errorf("Error stopping the core APIs: %v", err)
	}
}

// seedRoles creates the roles which do not exist yet
func seedRoles(administration core.Administration, roles []string, logger *logs.Logger) error {
	for _, name := range roles {
		err := administration.AdmCreateRole(name)
		if err != nil {
			if utils.GetErrorStatus(err) == utils.ErrorStatusAlreadyExists {
				continue
			}
			return err
		}
		logger.Infof("created role %s", name)
	}
	return nil
}

func parseBool(value string, defaultValue bool, logger *logs.Logger) bool {
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		logger.Infof("Error parsing %s, applying defaults: %v", value, err)
		return defaultValue
	}
	return parsed
}

func parseInt(value string, defaultValue int, logger *logs.Logger) int {
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		logger.Infof("Error parsing %s, applying defaults: %v", value, err)
		return defaultValue
	}
	return parsed
}
