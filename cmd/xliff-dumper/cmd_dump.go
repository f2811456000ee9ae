package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/xishang0128/xliff-dumper/common/i18n"
	"github.com/xishang0128/xliff-dumper/config"
	"github.com/xishang0128/xliff-dumper/pipeline"
	"github.com/xishang0128/xliff-dumper/workspace"
)

var (
	dumpAppVersion  string
	dumpCountry     string
	dumpBaseURL     string
	dumpWorkDir     string
	dumpOut         string
	dumpYes         bool
	dumpNoCleanup   bool
	dumpKeepArchive bool
	dumpNoProgress  bool
)

func initDumpFlags() {
	flags := rootCmd.Flags()
	flags.StringVar(&dumpAppVersion, "app-version", "", i18n.I18nMsg.Run.FlagAppVersion)
	flags.StringVar(&dumpCountry, "country", "", i18n.I18nMsg.Run.FlagCountry)
	flags.StringVar(&dumpBaseURL, "base-url", "", i18n.I18nMsg.Run.FlagBaseURL)
	flags.StringVarP(&dumpWorkDir, "work-dir", "w", "", i18n.I18nMsg.Run.FlagWorkDir)
	flags.StringVarP(&dumpOut, "out", "o", "", i18n.I18nMsg.Run.FlagOut)
	flags.BoolVarP(&dumpYes, "yes", "y", false, i18n.I18nMsg.Run.FlagYes)
	flags.BoolVarP(&dumpNoCleanup, "no-cleanup", "n", false, i18n.I18nMsg.Run.FlagNoCleanup)
	flags.BoolVar(&dumpKeepArchive, "keep-archive", false, i18n.I18nMsg.Run.FlagKeepArchive)
	flags.BoolVar(&dumpNoProgress, "no-progress", false, i18n.I18nMsg.Run.FlagNoProgress)

	rootCmd.MarkFlagsMutuallyExclusive("yes", "no-cleanup")
}

// applyDumpFlags overrides cfg with the dump flags given on the command line.
func applyDumpFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	for _, f := range []struct {
		name string
		val  string
		dst  *string
	}{
		{"app-version", dumpAppVersion, &cfg.AppVersion},
		{"country", dumpCountry, &cfg.Country},
		{"base-url", dumpBaseURL, &cfg.ArtifactsBaseURL},
		{"work-dir", dumpWorkDir, &cfg.WorkDir},
		{"out", dumpOut, &cfg.OutputDir},
	} {
		if flags.Changed(f.name) {
			*f.dst = f.val
		}
	}
}

func runDump(cmd *cobra.Command, args []string) {
	start := time.Now()
	defer func() {
		fmt.Printf(i18n.I18nMsg.Common.ElapsedTime+"\n", time.Since(start))
	}()

	cfg := loadConfig(cmd)

	var localArchive string
	if len(args) > 0 {
		localArchive = args[0]
	}

	opts := []pipeline.Option{pipeline.WithKeepArchive(dumpKeepArchive)}
	var bars *progressBars
	if !dumpNoProgress {
		bars = newProgressBars()
		opts = append(opts,
			pipeline.WithDownloadProgress(bars.download),
			pipeline.WithExtractProgress(bars.extract),
		)
	}

	runner, err := pipeline.New(cfg, opts...)
	if err != nil {
		log.Fatalf(i18n.I18nMsg.Common.ErrorFailedToLoadConfig, err)
	}

	res, err := runner.Run(cmd.Context(), localArchive)
	if bars != nil {
		bars.wait()
	}
	if err != nil {
		log.Fatalf(i18n.I18nMsg.Run.ErrorFailedToRun, err)
	}

	printSummary(res)

	var confirmer workspace.Confirmer = workspace.SurveyConfirmer{}
	switch {
	case dumpYes:
		confirmer = workspace.Answer(true)
	case dumpNoCleanup:
		confirmer = workspace.Answer(false)
	}
	cleanup, err := confirmer.Confirm(i18n.I18nMsg.Run.CleanupPrompt)
	if err != nil {
		log.Fatalf(i18n.I18nMsg.Run.ErrorFailedToConfirm, err)
	}

	if err := runner.Finish(res, cleanup); err != nil {
		log.Fatalf(i18n.I18nMsg.Run.ErrorFailedToCleanUp, err)
	}
	if cleanup {
		fmt.Println(i18n.I18nMsg.Run.CleanupCompleted)
	} else {
		fmt.Printf(i18n.I18nMsg.Run.CleanupSkipped+"\n", runner.Workspace().Root)
	}
}

func printSummary(res *pipeline.Result) {
	color.New(color.FgGreen, color.Bold).Printf(i18n.I18nMsg.Run.Completed+"\n", len(res.Outputs))
	warn := color.New(color.FgYellow)
	for _, o := range res.Outputs {
		fmt.Printf(i18n.I18nMsg.Run.DictionaryLine+"\n", o.Language, o.Keys, o.Path)
		if !o.Known {
			warn.Printf(i18n.I18nMsg.Run.NewLanguage+"\n", o.Language)
		}
	}
	for _, p := range res.Exported {
		fmt.Printf(i18n.I18nMsg.Run.Exported+"\n", p)
	}
}
