// ABOUTME: CLI command printing the build version.
// ABOUTME: Version is overridable at build time via ldflags.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is set at build time:
//
//	go build -ldflags "-X main.version=v1.2.3"
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tsumiage %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
