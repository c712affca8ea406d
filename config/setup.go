package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

var log = NamedLogger("config")

func getDefaultConfig() *Config {
	return &Config{
		BackendPublicURL: "localhost:3002",
		BackendPort:      3002,
		DbURL:            "localhost:27017",
		DbName:           "lego_architect",
		LoggingLevel:     "info",
	}
}

// SetupConfig read and check config from environment variables.
// Missing values fall back to defaults with a logged warning.
func SetupConfig() *Config {
	conf := getDefaultConfig()

	if publicURL := os.Getenv("ARCHITECT_BACKEND_PUBLIC_URL"); publicURL != "" {
		conf.BackendPublicURL = publicURL
	} else {
		log.Warn("[config] Public url is not defined. Using default localhost:3002")
	}

	if port := os.Getenv("ARCHITECT_BACKEND_PORT"); port != "" {
		portNumber, numberErr := strconv.ParseInt(port, 10, 64)
		if numberErr != nil {
			log.Errorf("[config] Port is not a number. %s", numberErr.Error())
		} else {
			conf.BackendPort = portNumber
		}
	} else {
		log.Warn("[config] Backend port is not defined. Using default 3002")
	}

	if dbURL := os.Getenv("MONGODB_URI"); dbURL != "" {
		conf.DbURL = dbURL
	} else {
		log.Warn("[config] MONGODB_URI is not defined. Using default localhost:27017")
	}

	if dbName := os.Getenv("MONGODB_DATABASE"); dbName != "" {
		conf.DbName = dbName
	}

	if level := os.Getenv("ARCHITECT_LOGGING_LEVEL"); level != "" {
		level = strings.ToLower(level)
		if !validateLoggingLevel(level) {
			log.Errorf("[config] Invalid logging level \"%s\". Using %s", level, conf.LoggingLevel)
		} else {
			conf.LoggingLevel = level
		}
	}

	if parsed, parseErr := logrus.ParseLevel(conf.LoggingLevel); parseErr == nil {
		logrus.SetLevel(parsed)
	}

	return conf
}

var availableLoggingLevels = []string{"panic", "fatal", "error", "warn", "info", "debug"}

func validateLoggingLevel(loggingLevel string) bool {
	for _, l := range availableLoggingLevels {
		if l == loggingLevel {
			return true
		}
	}
	return false
}
