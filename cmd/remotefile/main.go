package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/kacper-wojtaszczyk/jackfruit/remotefile-go/internal/config"
	"github.com/kacper-wojtaszczyk/jackfruit/remotefile-go/internal/exitcode"
	"github.com/kacper-wojtaszczyk/jackfruit/remotefile-go/internal/prefix"
	"github.com/kacper-wojtaszczyk/jackfruit/remotefile-go/internal/storage"
	"github.com/kacper-wojtaszczyk/jackfruit/remotefile-go/internal/upload"
)

func main() {
	// Configure the global logger
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})))

	// Parse CLI flags
	printOnly := flag.Bool("print", false, "Print the current prefix and exit")
	timeout := flag.Duration("timeout", 10*time.Minute, "Upper bound for the whole upload run")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [-print] [-timeout d] file...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if !*printOnly && flag.NArg() == 0 {
		slog.Error("no files to upload")
		flag.Usage()
		os.Exit(exitcode.ConfigError)
	}

	// Ensure environment variables are loaded
	if err := godotenv.Load(); err != nil {
		slog.Warn("failed to load env vars", "error", err)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(exitcode.ConfigError)
	}

	formatter, err := resolveFormatter(cfg)
	if err != nil {
		slog.Error("invalid prefix formatter", "error", err)
		os.Exit(exitcode.ConfigError)
	}
	slog.Info("prefix formatter resolved", "formatter", formatter)

	if *printOnly {
		fmt.Println(formatter.Format())
		return
	}

	// Create a cancellable context (for graceful shutdown)
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	ctx, cancelTimeout := context.WithTimeout(ctx, *timeout)
	defer cancelTimeout()

	minioClient, err := storage.NewMinIOClient(ctx, storage.MinIOConfig{
		Endpoint:  cfg.MinIOEndpoint,
		AccessKey: cfg.MinIOAccessKey,
		SecretKey: cfg.MinIOSecretKey,
		Bucket:    cfg.MinIOBucket,
		Region:    cfg.Region,
		UseSSL:    cfg.MinIOUseSSL,
	})
	if err != nil {
		slog.Error("failed to initialize minio client", "error", err)
		os.Exit(exitcode.StorageError)
	}

	svc := upload.NewService(formatter, minioClient)
	svc.SetConcurrency(cfg.UploadConcurrency)

	keys, err := svc.UploadFiles(ctx, flag.Args())
	if err != nil {
		slog.Error("upload failed", "error", err)
		os.Exit(exitCodeFor(err))
	}

	slog.Info("shutdown complete", "bucket", minioClient.Bucket(), "uploaded", len(keys))
}

// resolveFormatter reads the configured formatter document and resolves it,
// filling region and stack from the environment when the document omits them.
func resolveFormatter(cfg *config.Config) (prefix.Formatter, error) {
	doc, err := cfg.FormatterDocument()
	if err != nil {
		return nil, err
	}
	return prefix.ResolveJSON(doc, cfg.Injectables())
}

func exitCodeFor(err error) int {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return exitcode.InputError
	}
	return exitcode.StorageError
}
