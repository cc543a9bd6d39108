package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/GameraCC/gym/internal/infrastructure/config"
)

const dirPerm = 0o755

var (
	genDocsOutputDir string
	genDocsFormat    string
)

var genDocsCmd = &cobra.Command{
	Use:   "gen-docs",
	Short: "Write man pages or markdown for every gym command",
	Long: `Write man pages (the default) or markdown for every gym command.

Man pages go to $XDG_DATA_HOME/man/man1 unless --output is set; markdown
goes to ./docs.`,
	RunE: runGenDocs,
}

func init() {
	rootCmd.AddCommand(genDocsCmd)
	genDocsCmd.Flags().StringVarP(&genDocsOutputDir, "output", "o", "", "output directory")
	genDocsCmd.Flags().StringVarP(&genDocsFormat, "format", "f", "man", "man or markdown")
}

func runGenDocs(_ *cobra.Command, _ []string) error {
	dir := genDocsOutputDir
	switch {
	case genDocsFormat != "man" && genDocsFormat != "markdown":
		return fmt.Errorf("unsupported format %q (use: man, markdown)", genDocsFormat)
	case dir != "":
	case genDocsFormat == "man":
		manDir, err := config.GetManDir()
		if err != nil {
			return fmt.Errorf("resolve man directory: %w", err)
		}
		dir = manDir
	default:
		dir = "./docs"
	}

	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	rootCmd.DisableAutoGenTag = true
	if genDocsFormat == "markdown" {
		if err := doc.GenMarkdownTree(rootCmd, dir); err != nil {
			return fmt.Errorf("generate markdown docs: %w", err)
		}
	} else {
		now := time.Now()
		header := &doc.GenManHeader{
			Title:   "GYM",
			Section: "1",
			Source:  "gym " + buildInfo.Version,
			Manual:  "Gym Manual",
			Date:    &now,
		}
		if err := doc.GenManTree(rootCmd, header, dir); err != nil {
			return fmt.Errorf("generate man pages: %w", err)
		}
	}

	fmt.Printf("Wrote %s docs to %s\n", genDocsFormat, dir)
	return nil
}
