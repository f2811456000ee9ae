package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/xishang0128/xliff-dumper/common/file"
	"github.com/xishang0128/xliff-dumper/common/i18n"
	"github.com/xishang0128/xliff-dumper/config"
)

var (
	rootCmd    *cobra.Command
	userAgent  string
	configPath string
	logLevel   string
)

func init() {
	i18n.InitLanguage()

	rootCmd = &cobra.Command{
		Use:          i18n.I18nMsg.Run.Use,
		Short:        i18n.I18nMsg.App.AppDescription,
		Long:         i18n.I18nMsg.App.AppLongDescription,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level, err := log.ParseLevel(logLevel)
			if err != nil {
				log.Fatalf(i18n.I18nMsg.Common.ErrorInvalidLogLevel, logLevel, err)
			}
			log.SetLevel(level)
			log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
		},
		Run: runDump,
	}

	rootCmd.PersistentFlags().StringVar(&userAgent, "user-agent", "", i18n.I18nMsg.Common.FlagUserAgent)
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", i18n.I18nMsg.Common.FlagConfig)
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", i18n.I18nMsg.Common.FlagLogLevel)

	initDumpFlags()
	initListCmd()
	initVersionCmd()
}

// loadConfig resolves defaults < config file < flags and applies the HTTP settings.
func loadConfig(cmd *cobra.Command) config.Config {
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf(i18n.I18nMsg.Common.ErrorFailedToLoadConfig, err)
	}
	applyDumpFlags(cmd, &cfg)

	if userAgent != "" {
		cfg.UserAgent = userAgent
	}
	file.SetUserAgent(cfg.UserAgent)
	file.SetHTTPClientTimeout(cfg.HTTPTimeout)
	return cfg
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	cancel()
	if err != nil {
		os.Exit(1)
	}
}
