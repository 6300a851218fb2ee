package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/sections"
	"github.com/Zachkp/portfolio/internal/server"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Write the portfolio as a static page",
	Long:  "Renders every section in its visible state, with a native dialog per project, to DIR/index.html. The page needs no server.",
	RunE:  runRender,
}

var (
	renderOut     string
	renderContent string
)

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "Output directory (required)")
	renderCmd.Flags().StringVarP(&renderContent, "content", "c", "", "Path to a content YAML file (defaults to the built-in records)")
	if err := renderCmd.MarkFlagRequired("out"); err != nil {
		panic(err)
	}
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	path, err := renderPage(renderOut, renderContent)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

// renderPage writes index.html under dir and returns its path.
func renderPage(dir, contentFile string) (string, error) {
	lib, err := content.Load(contentFile)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrapf(err, "create %s", dir)
	}
	path := filepath.Join(dir, "index.html")
	f, err := os.Create(path)
	if err != nil {
		return "", errors.Wrapf(err, "create %s", path)
	}
	defer f.Close()

	page := sections.NewPage(lib)
	defer page.Close()

	if err := server.RenderStatic(f, page, siteTitle); err != nil {
		return "", errors.Wrap(err, "render page")
	}
	return path, f.Close()
}
