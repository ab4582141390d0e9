package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd 表示CLI工具的根命令
var rootCmd = &cobra.Command{
	Use:   "ivcli",
	Short: "A CLI tool for working with interval sets",
	Long: `Interval CLI (ivcli) is a command line interface for the interval set library.
It evaluates set-algebra expressions over compact interval representations like "1-3,7,9-12",
inspects their structure, and runs randomized differential checks against a plain hash set.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 没有子命令被调用时显示帮助信息
		cmd.Help()
	},
}

// Execute 运行根命令并处理任何错误
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
