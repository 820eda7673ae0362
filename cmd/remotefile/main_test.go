package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/kacper-wojtaszczyk/jackfruit/remotefile-go/internal/config"
	"github.com/kacper-wojtaszczyk/jackfruit/remotefile-go/internal/datepattern"
	"github.com/kacper-wojtaszczyk/jackfruit/remotefile-go/internal/exitcode"
	"github.com/kacper-wojtaszczyk/jackfruit/remotefile-go/internal/prefix"
)

func TestResolveFormatter_InjectsRegionAndStack(t *testing.T) {
	cfg := &config.Config{
		PrefixFormatter: `{"type": "DateRegionStack", "date": "YYYYMMDD"}`,
		Region:          "eu-west-1",
		Stack:           "gps",
	}

	formatter, err := resolveFormatter(cfg)
	if err != nil {
		t.Fatalf("resolveFormatter() error = %v", err)
	}

	want := datepattern.MustCompile("YYYYMMDD").Format(time.Now()) + "/eu-west-1/gps/"
	if got := formatter.Format(); got != want {
		t.Fatalf("Format() = %q, want %q", got, want)
	}
}

func TestResolveFormatter_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "formatter.json")
	if err := os.WriteFile(path, []byte(`{"type": "static", "prefix": "archive/"}`), 0o600); err != nil {
		t.Fatal(err)
	}

	formatter, err := resolveFormatter(&config.Config{PrefixFormatterFile: path, Region: "ignored"})
	if err != nil {
		t.Fatalf("resolveFormatter() error = %v", err)
	}
	if got := formatter.Format(); got != "archive/" {
		t.Fatalf("Format() = %q, want %q", got, "archive/")
	}
}

func TestResolveFormatter_UnknownKind(t *testing.T) {
	_, err := resolveFormatter(&config.Config{PrefixFormatter: `{"type": "hourly"}`})

	var kindErr *prefix.ErrUnknownFormatterKind
	if !errors.As(err, &kindErr) {
		t.Fatalf("expected ErrUnknownFormatterKind, got %v", err)
	}
}

func TestResolveFormatter_MissingDate(t *testing.T) {
	_, err := resolveFormatter(&config.Config{PrefixFormatter: `{"type": "DateRegionStack", "region": "us-east-1"}`})
	if err == nil || !strings.Contains(err.Error(), `"date"`) {
		t.Fatalf("expected missing date error, got %v", err)
	}
}

func TestExitCodeFor(t *testing.T) {
	_, openErr := os.Open(filepath.Join(t.TempDir(), "missing.log"))

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "missing file", err: fmt.Errorf("open: %w", openErr), want: exitcode.InputError},
		{name: "storage", err: fmt.Errorf("store: %w", errors.New("connection refused")), want: exitcode.StorageError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Fatalf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
