package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/interview-transcript/internal/processor"
	"github.com/nguyentantai21042004/interview-transcript/internal/writer"
)

func newFormatCmd(a *app) *cobra.Command {
	var (
		outputDir    string
		interviewer  string
		outputFormat string
	)

	cmd := &cobra.Command{
		Use:   "format FILE...",
		Short: "Format one or more .vtt transcripts",
		Long: `Format one or more .vtt files downloaded from Microsoft Teams/Stream.
Each FILE is written to <output>/<name>_formatted.txt. Existing outputs are
never overwritten. A failing file is reported and the rest continue.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("output") {
				a.cfg.Paths.Output = outputDir
			}
			if interviewer != "" {
				a.cfg.Interviewer = interviewer
			}
			if outputFormat != "" {
				a.cfg.Output.Format = outputFormat
			}

			if _, err := a.cfg.RequireInterviewer(); err != nil {
				return err
			}
			w, err := writer.New(a.cfg.Output.Format)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return processor.New(a.cfg, w, a.log, a.progress(cmd)).ProcessAll(ctx, args)
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", ".", "directory in which to save the formatted files")
	cmd.Flags().StringVar(&interviewer, "interviewer", "", "interviewer name as it appears in the transcript (overrides INTERVIEWER)")
	cmd.Flags().StringVar(&outputFormat, "format", "", "output format: txt or docx (default from config, txt)")
	return cmd
}
