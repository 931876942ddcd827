package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/oakwood-commons/termfolio/internal/console"
	"github.com/oakwood-commons/termfolio/internal/content"
	"github.com/oakwood-commons/termfolio/pkg/logger"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export [content-file]",
	Short: "Write the page as a static HTML file",
	Long: `export renders the same content the console shows as a standalone HTML
page. Each section keeps the id the console navigates to, so links such as
page.html#section-projects work.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) (err error) {
	path := ""
	if len(args) > 0 {
		path = args[0]
	}
	doc, err := content.LoadOrSample(path)
	if err != nil {
		return usageError(err)
	}

	var w io.Writer = cmd.OutOrStdout()
	if exportOutput != "" {
		f, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("create %s: %w", exportOutput, err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("close %s: %w", exportOutput, cerr)
			}
		}()
		w = f
	}

	if err := content.WriteHTML(w, doc, content.ExportOptions{
		Commands: console.DefaultCommands(),
		Describe: console.Describe,
	}); err != nil {
		return err
	}
	logger.FromContext(cmd.Context()).V(1).Info("page exported", "sections", len(doc.Sections), "output", exportOutput)
	return nil
}
