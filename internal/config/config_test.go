package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

var configVars = []string{"MINIO_ENDPOINT", "MINIO_ACCESS_KEY", "MINIO_SECRET_KEY", "MINIO_BUCKET", "REMOTE_PREFIX_FORMATTER"}

var optionalVars = []string{"MINIO_USE_SSL", "REMOTE_PREFIX_FORMATTER_FILE", "REGION", "STACK", "UPLOAD_CONCURRENCY"}

func setValidEnv(t *testing.T, value string) {
	t.Helper()
	for _, configVar := range configVars {
		t.Setenv(configVar, value)
	}
	for _, optionalVar := range optionalVars {
		t.Setenv(optionalVar, "")
	}
}

func TestLoad_RequiredVarsMissing(t *testing.T) {
	for _, configVar := range configVars {
		t.Run(configVar, func(t *testing.T) {
			setValidEnv(t, "test-value")
			os.Unsetenv(configVar)

			_, err := Load()
			if err == nil {
				t.Fatal("expected error")
			}
			if y, ok := err.(*ErrMissingRequiredEnvVar); !ok {
				t.Fatalf("expected ErrMissingRequiredEnvVar, got %s", y)
			}
			var varName string
			c, _ := fmt.Sscanf(
				err.Error(),
				"required environment variable %q is not set",
				&varName,
			)
			if c != 1 || varName != configVar {
				t.Fatalf("expected ErrMissingRequiredEnvVar to be set to %q, got %q", configVar, varName)
			}
		})
	}
}

func TestLoad_ValidConfig(t *testing.T) {
	testValue := "test-value"
	setValidEnv(t, testValue)

	config, err := Load()

	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if config.MinIOEndpoint != testValue {
		t.Fatal()
	}
	if config.MinIOAccessKey != testValue {
		t.Fatal()
	}
	if config.MinIOSecretKey != testValue {
		t.Fatal()
	}
	if config.MinIOBucket != testValue {
		t.Fatal()
	}
	if config.PrefixFormatter != testValue {
		t.Fatal()
	}
	if config.MinIOUseSSL {
		t.Fatal("expected MinIOUseSSL to be false by default")
	}
	if config.UploadConcurrency != defaultUploadConcurrency {
		t.Fatalf("expected default upload concurrency, got %d", config.UploadConcurrency)
	}
	if len(config.Injectables()) != 0 {
		t.Fatalf("expected no injectables, got %v", config.Injectables())
	}
}

func TestLoad_SSL(t *testing.T) {
	setValidEnv(t, "test-value")
	t.Setenv("MINIO_USE_SSL", "true")

	config, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if !config.MinIOUseSSL {
		t.Fatal("expected MinIOUseSSL to be true")
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{name: "MINIO_USE_SSL", value: "yes please"},
		{name: "UPLOAD_CONCURRENCY", value: "0"},
		{name: "UPLOAD_CONCURRENCY", value: "many"},
		{name: "REMOTE_PREFIX_FORMATTER_FILE", value: "/etc/formatter.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name+"="+tt.value, func(t *testing.T) {
			setValidEnv(t, "test-value")
			t.Setenv(tt.name, tt.value)

			_, err := Load()
			var invalid *ErrInvalidEnvVar
			if !errors.As(err, &invalid) {
				t.Fatalf("expected ErrInvalidEnvVar, got %v", err)
			}
			if invalid.Name != tt.name {
				t.Fatalf("expected %s to be reported, got %s", tt.name, invalid.Name)
			}
		})
	}
}

func TestConfig_Injectables(t *testing.T) {
	setValidEnv(t, "test-value")
	t.Setenv("REGION", "eu-west-1")
	t.Setenv("STACK", "gps")

	config, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	inj := config.Injectables()
	if v, ok := inj.Find("region"); !ok || v != "eu-west-1" {
		t.Fatalf("region = %q, %v", v, ok)
	}
	if v, ok := inj.Find("stack"); !ok || v != "gps" {
		t.Fatalf("stack = %q, %v", v, ok)
	}
}

func TestConfig_FormatterDocument(t *testing.T) {
	inline := &Config{PrefixFormatter: `{"type": "static", "prefix": "p"}`}
	doc, err := inline.FormatterDocument()
	if err != nil || string(doc) != inline.PrefixFormatter {
		t.Fatalf("inline document = %s, %v", doc, err)
	}

	path := filepath.Join(t.TempDir(), "formatter.json")
	content := `{"type": "DateRegionStack", "date": "YYYYMMDD"}`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	fromFile := &Config{PrefixFormatterFile: path}
	doc, err = fromFile.FormatterDocument()
	if err != nil || string(doc) != content {
		t.Fatalf("file document = %s, %v", doc, err)
	}

	missing := &Config{PrefixFormatterFile: filepath.Join(t.TempDir(), "missing.json")}
	if _, err := missing.FormatterDocument(); err == nil {
		t.Fatal("expected error for missing file")
	}
}
