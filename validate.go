package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/filter"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a content file",
	Long:  "Loads and validates the content library, then prints the record counts and the filter tabs each section will show.",
	RunE:  runValidate,
}

var validateContent string

func init() {
	validateCmd.Flags().StringVarP(&validateContent, "content", "c", "", "Path to a content YAML file (defaults to the built-in records)")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	lib, err := content.Load(validateContent)
	if err != nil {
		return err
	}
	summarize(cmd.OutOrStdout(), lib)
	return nil
}

func summarize(w io.Writer, lib *content.Library) {
	fmt.Fprintf(w, "skills:     %d records, tabs: %s\n", len(lib.Skills),
		tabs(filter.New(lib.Skills, content.SkillCategory).Categories()))
	fmt.Fprintf(w, "projects:   %d records, tabs: %s\n", len(lib.Projects),
		tabs(filter.New(lib.Projects, content.ProjectCategory).Categories()))
	fmt.Fprintf(w, "experience: %d records, tabs: %s\n", len(lib.Experience),
		tabs(filter.New(lib.Experience, content.ExperienceVariant).Categories()))
}

func tabs(categories []string) string {
	return strings.Join(categories, ", ")
}
