package main

import (
	"encoding/json"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/xishang0128/xliff-dumper/common/file"
	"github.com/xishang0128/xliff-dumper/common/i18n"
	"github.com/xishang0128/xliff-dumper/locator"
)

var listJSON bool

func initListCmd() {
	listCmd := &cobra.Command{
		Use:   i18n.I18nMsg.List.Use,
		Short: i18n.I18nMsg.List.Short,
		Long:  i18n.I18nMsg.List.Long,
		Args:  cobra.MaximumNArgs(1),
		Run:   runList,
	}

	listCmd.Flags().BoolVarP(&listJSON, "json", "j", false, i18n.I18nMsg.Common.FlagJSON)

	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) {
	start := time.Now()
	defer func() {
		if !listJSON {
			fmt.Printf(i18n.I18nMsg.Common.ElapsedTime+"\n", time.Since(start))
		}
	}()

	cfg := loadConfig(cmd)
	target := cfg.ArtifactURL()
	if len(args) > 0 {
		target = args[0]
	}

	patterns, err := cfg.Compile()
	if err != nil {
		log.Fatalf(i18n.I18nMsg.Common.ErrorFailedToLoadConfig, err)
	}

	r, err := file.Open(target)
	if err != nil {
		log.Fatalf(i18n.I18nMsg.Common.ErrorFailedToOpen, err)
	}
	defer r.Close()

	members, err := locator.New(patterns).ListSourcePackages(r)
	if err != nil {
		log.Fatalf(i18n.I18nMsg.List.ErrorFailedToList, err)
	}

	if listJSON {
		data, err := json.MarshalIndent(members, "", "    ")
		if err != nil {
			log.Fatalf(i18n.I18nMsg.Common.ErrorFailedToMarshalJSON, err)
		}
		fmt.Println(string(data))
		return
	}

	fmt.Printf(i18n.I18nMsg.List.TotalPackages+"\n", len(members))
	for _, m := range members {
		fmt.Printf("%s (%s)\n", m.Name, m.SizeReadable)
	}
}
