// Package main is the portfolio command: the web server plus a static
// renderer and a content checker.
package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

const siteTitle = "Zach | Portfolio"

var rootCmd = &cobra.Command{
	Use:           "portfolio",
	Short:         "Portfolio web server",
	Long:          "Serves the portfolio's skills, projects and experience sections, renders them to a static page, or checks a content file.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
