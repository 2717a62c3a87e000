package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/interview-transcript/internal/config"
	"github.com/nguyentantai21042004/interview-transcript/internal/logger"
)

// app holds what every subcommand needs once flags are parsed.
type app struct {
	configPath string
	envFile    string
	verbose    bool
	quiet      bool

	cfg *config.Config
	log logger.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "vttfmt",
		Short: "Make Microsoft Teams/Stream interview transcripts human-readable",
		Long: `vttfmt turns .vtt transcripts downloaded from Microsoft Teams/Stream into
plain text where consecutive captions are merged per speaker and the two
speakers are relabeled Interviewer and Student.

The interviewer is read from INTERVIEWER in .env or the environment, or from
the "interviewer" key of the YAML config.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML config file")
	root.PersistentFlags().StringVar(&a.envFile, "env-file", "", "dotenv file with INTERVIEWER and GEMINI_API_KEYS (default from config, .env)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose logging")
	root.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "suppress non-error output")

	root.AddCommand(
		newFormatCmd(a),
		newWatchCmd(a),
		newSummarizeCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("env-file") {
		cfg.EnvFile = a.envFile
	}
	if err := cfg.LoadEnv(); err != nil {
		return err
	}

	level := cfg.Logging.Level
	if a.verbose {
		level = "debug"
	}
	if a.quiet {
		level = "error"
	}

	a.cfg = cfg
	a.log = logger.New(level, cfg.Logging.Format)
	return nil
}

// progress is where "in -> out" lines go; nil when --quiet is set.
func (a *app) progress(cmd *cobra.Command) io.Writer {
	if a.quiet {
		return nil
	}
	return cmd.OutOrStdout()
}
