package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/xishang0128/xliff-dumper/common/i18n"
	"github.com/xishang0128/xliff-dumper/constant"
)

func initVersionCmd() {
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: i18n.I18nMsg.App.VersionCmdShort,
		Long:  i18n.I18nMsg.App.VersionCmdLong,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s\n", i18n.I18nMsg.App.VersionTitle)
			fmt.Printf("%s: %s(%s)\n", i18n.I18nMsg.App.VersionLabel, constant.Version, constant.BuildTime)
			fmt.Printf("%s: %s\n", i18n.I18nMsg.App.GoVersionLabel, runtime.Version())
			fmt.Printf("%s: %s/%s\n", i18n.I18nMsg.App.PlatformLabel, runtime.GOOS, runtime.GOARCH)
		},
	}

	rootCmd.AddCommand(versionCmd)
}
