package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dmitrymomot/i18next/internal/config"
	"github.com/dmitrymomot/i18next/internal/server"
	"github.com/dmitrymomot/i18next/pkg/i18next"
	"github.com/dmitrymomot/i18next/pkg/loader"
	"github.com/dmitrymomot/i18next/pkg/logger"
)

// app holds what PersistentPreRunE builds for subcommands.
type app struct {
	v      *viper.Viper
	cfg    *config.Config
	log    *slog.Logger
	i18n   *i18next.I18n
	output string
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	var configFile string

	root := &cobra.Command{
		Use:           "i18next",
		Short:         "Resolve i18next-style translations",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.Context(), configFile)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&configFile, "config", "c", "", "config file (yaml, json or toml)")
	flags.StringP("language", "l", "", "current language")
	flags.String("fallback", "", "fallback language")
	flags.StringP("source", "s", "", `translation source pattern, e.g. "./locales/__lng__/__ns__.json" or "s3://bucket/__lng__.json"`)
	flags.Int("recursion-limit", 0, "maximum nested $t() expansions per translation")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.StringVarP(&a.output, "output", "o", formatText, "output format: text, json, yaml")

	for key, flag := range map[string]string{
		"language":        "language",
		"fallback":        "fallback",
		"source":          "source",
		"recursion_limit": "recursion-limit",
		"log.level":       "log-level",
	} {
		_ = a.v.BindPFlag(key, flags.Lookup(flag))
	}

	root.AddCommand(
		newGetCmd(a),
		newExistsCmd(a),
		newMissingCmd(a),
		newServeCmd(a),
	)
	return root
}

func (a *app) setup(ctx context.Context, configFile string) error {
	if err := validateFormat(a.output); err != nil {
		return err
	}

	cfg, err := config.Load(a.v, configFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.log, err = logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Sentry: logger.SentryConfig{
			DSN:         cfg.Log.SentryDSN,
			Environment: cfg.Log.SentryEnvironment,
		},
	}, logger.LanguageExtractor, server.RequestIDExtractor)
	if err != nil {
		return err
	}

	src, err := openSource(cfg, a.log)
	if err != nil {
		return err
	}

	a.i18n, err = i18next.Init(ctx, cfg.Language, src,
		i18next.WithFallbackLanguage(cfg.Fallback),
		i18next.WithRecursionLimit(cfg.RecursionLimit),
		i18next.WithLogger(a.log),
	)
	if err != nil {
		return fmt.Errorf("loading translations from %q: %w", cfg.Source, err)
	}
	return nil
}

func openSource(cfg *config.Config, log *slog.Logger) (i18next.Source, error) {
	bucket, pattern, isS3, err := cfg.S3Source()
	if err != nil {
		return nil, err
	}
	if !isS3 {
		return loader.Open(cfg.Source, loader.WithLogger(log))
	}

	client, err := loader.NewS3Client(loader.S3Config{
		Bucket:    bucket,
		AccessKey: cfg.S3.AccessKey,
		SecretKey: cfg.S3.SecretKey,
		Endpoint:  cfg.S3.Endpoint,
		Region:    cfg.S3.Region,
		PathStyle: cfg.S3.PathStyle,
	})
	if err != nil {
		return nil, err
	}
	return loader.NewS3(client, bucket, pattern,
		loader.WithLogger(log),
		loader.WithConcurrency(cfg.S3.Concurrency),
	)
}
