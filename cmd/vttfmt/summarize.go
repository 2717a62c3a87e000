package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/interview-transcript/internal/summarizer"
)

func newSummarizeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "summarize SRC DEST",
		Short: "Summarize formatted transcripts in SRC with Gemini into DEST",
		Long: `Summarize every formatted .txt transcript in SRC with Gemini and write
<name>.md and <name>.docx into DEST. API keys are read from GEMINI_API_KEYS
(comma separated) in .env or the environment; rate-limited keys are rotated.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			s := summarizer.New(a.cfg.Gemini.APIKeys, a.cfg.Gemini.Model, a.log)
			return s.SummarizeAll(ctx, args[0], args[1])
		},
	}
}
