package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/internal/adapter/repository"
	"github.com/johnquangdev/meeting-notes/internal/cli"
	"github.com/johnquangdev/meeting-notes/internal/usecase/credential"
	"github.com/johnquangdev/meeting-notes/internal/usecase/summary"
	pkgai "github.com/johnquangdev/meeting-notes/pkg/ai"
	"github.com/johnquangdev/meeting-notes/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// only warnings and errors reach stderr so stdout stays machine readable
	logCfg := zap.NewDevelopmentConfig()
	logCfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	logger, err := logCfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	repo, closeStore, err := repository.NewCredentialRepositoryFromConfig(ctx, cfg)
	cancel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing credential store: %v\n", err)
		os.Exit(1)
	}
	defer closeStore()

	cli.Credentials = credential.NewService(repo, &cfg.Credential, logger)
	cli.Summarizer = summary.NewSummaryService(pkgai.NewChatClient(&cfg.OpenAI), &cfg.Summary, logger)
	cli.EnvAPIKey = cfg.OpenAI.APIKey
	cli.Persistent = cfg.Redis.Enabled

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeStore()
		logger.Sync()
		os.Exit(1)
	}
}
