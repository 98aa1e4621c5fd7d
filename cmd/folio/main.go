package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via ldflags.
var version = "dev"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "A single-page personal portfolio built with Go, Echo, and templ",
	Long: `folio serves a six-page portfolio: home, about, skills, projects,
experience and contact. An optional resume and portrait are read from
the asset directory on every render.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "folio.yml", "config file path")
	rootCmd.AddCommand(serveCmd, renderCmd, initCmd, versionCmd)
}
