package config

// Config contains basic server configuration.
type Config struct {
	BackendPublicURL string
	BackendPort      int64

	DbURL  string
	DbName string

	LoggingLevel string
}
