package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/kacper-wojtaszczyk/jackfruit/remotefile-go/internal/prefix"
)

const defaultUploadConcurrency = 4

// Config holds application configuration.
type Config struct {
	MinIOEndpoint  string
	MinIOAccessKey string
	MinIOSecretKey string
	MinIOBucket    string
	MinIOUseSSL    bool

	// Exactly one of the two formatter sources is set.
	PrefixFormatter     string
	PrefixFormatterFile string

	Region string
	Stack  string

	UploadConcurrency int
}

type ErrMissingRequiredEnvVar struct {
	Name string
}

func (e *ErrMissingRequiredEnvVar) Error() string {
	return fmt.Sprintf("required environment variable %q is not set", e.Name)
}

type ErrInvalidEnvVar struct {
	Name   string
	Value  string
	Reason string
}

func (e *ErrInvalidEnvVar) Error() string {
	return fmt.Sprintf("environment variable %q has invalid value %q: %s", e.Name, e.Value, e.Reason)
}

// Load reads configuration from environment variables.
// Returns an error if required variables are missing or malformed.
func Load() (*Config, error) {
	config := Config{}

	required := []struct {
		name string
		dst  *string
	}{
		{"MINIO_ENDPOINT", &config.MinIOEndpoint},
		{"MINIO_ACCESS_KEY", &config.MinIOAccessKey},
		{"MINIO_SECRET_KEY", &config.MinIOSecretKey},
		{"MINIO_BUCKET", &config.MinIOBucket},
	}
	for _, v := range required {
		*v.dst = os.Getenv(v.name)
		if *v.dst == "" {
			return nil, &ErrMissingRequiredEnvVar{Name: v.name}
		}
	}

	if v := os.Getenv("MINIO_USE_SSL"); v != "" {
		useSSL, err := strconv.ParseBool(v)
		if err != nil {
			return nil, &ErrInvalidEnvVar{Name: "MINIO_USE_SSL", Value: v, Reason: "expected a boolean"}
		}
		config.MinIOUseSSL = useSSL
	}

	config.PrefixFormatter = os.Getenv("REMOTE_PREFIX_FORMATTER")
	config.PrefixFormatterFile = os.Getenv("REMOTE_PREFIX_FORMATTER_FILE")
	switch {
	case config.PrefixFormatter == "" && config.PrefixFormatterFile == "":
		return nil, &ErrMissingRequiredEnvVar{Name: "REMOTE_PREFIX_FORMATTER"}
	case config.PrefixFormatter != "" && config.PrefixFormatterFile != "":
		return nil, &ErrInvalidEnvVar{
			Name:   "REMOTE_PREFIX_FORMATTER_FILE",
			Value:  config.PrefixFormatterFile,
			Reason: "REMOTE_PREFIX_FORMATTER is already set",
		}
	}

	config.Region = os.Getenv("REGION")
	config.Stack = os.Getenv("STACK")

	config.UploadConcurrency = defaultUploadConcurrency
	if v := os.Getenv("UPLOAD_CONCURRENCY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return nil, &ErrInvalidEnvVar{Name: "UPLOAD_CONCURRENCY", Value: v, Reason: "expected a positive integer"}
		}
		config.UploadConcurrency = n
	}

	return &config, nil
}

// FormatterDocument returns the prefix formatter JSON, reading the file when
// REMOTE_PREFIX_FORMATTER_FILE was used.
func (c *Config) FormatterDocument() ([]byte, error) {
	if c.PrefixFormatter != "" {
		return []byte(c.PrefixFormatter), nil
	}
	doc, err := os.ReadFile(c.PrefixFormatterFile)
	if err != nil {
		return nil, fmt.Errorf("read prefix formatter: %w", err)
	}
	return doc, nil
}

// Injectables exposes REGION and STACK, when set, as injected formatter fields.
func (c *Config) Injectables() prefix.MapSource {
	values := prefix.MapSource{}
	if c.Region != "" {
		values["region"] = c.Region
	}
	if c.Stack != "" {
		values["stack"] = c.Stack
	}
	return values
}
