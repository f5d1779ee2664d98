package cli

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/davitran/audioscribe/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export [audio file]",
	Short: "Write the transcript and summary of a recording to a .docx file",
	Long: `export runs the non-interactive part of the pipeline (reusing cached
artifacts when present) and writes the transcript and summary into one
styled .docx document.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

var flagExportOut string

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&flagExportOut, "output", "o", "", "Output .docx path (default: <audio name>.docx)")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadApp()
	if err != nil {
		return err
	}

	audioPath := args[0]
	ctx := context.Background()

	p, err := buildPipeline(cfg, log)
	if err != nil {
		return err
	}

	transcript, summary, err := p.Prepare(ctx, audioPath)
	if err != nil {
		return err
	}

	title := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))
	out := flagExportOut
	if out == "" {
		out = title + ".docx"
	}

	if err := export.WriteDocx(title, transcript, summary, out); err != nil {
		return err
	}

	log.Info(ctx, "Exported %s", out)
	return nil
}
