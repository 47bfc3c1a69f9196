package main

// Must be first import - fixes Warp terminal delay before lipgloss loads
import _ "github.com/wahlandcase/attuned.commitprompt/internal/termfix"

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/wahlandcase/attuned.commitprompt/internal/config"
	"github.com/wahlandcase/attuned.commitprompt/internal/editor"
	"github.com/wahlandcase/attuned.commitprompt/internal/git"
	"github.com/wahlandcase/attuned.commitprompt/internal/inputs"
	"github.com/wahlandcase/attuned.commitprompt/internal/logger"
	"github.com/wahlandcase/attuned.commitprompt/internal/prompt"

	"github.com/spf13/cobra"
)

var (
	configPath string
	outputPath string
	logPath    string
	debug      bool
)

// Swapped in tests
var (
	newPrompter = func() inputs.Prompter { return prompt.NewTerminal() }
	newEditor   = func(command string) inputs.Editor { return editor.New(command) }
	newBranches = func() inputs.BranchSource { return git.NewRepo() }
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		// A canceled menu exits quietly
		if errors.Is(err, inputs.ErrAborted) {
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "attcm",
		Short:         "Write a conventional commit message interactively",
		Args:          cobra.NoArgs,
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: .attcm.toml upwards, then user config dir)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Write debug records to the log file")
	rootCmd.PersistentFlags().StringVar(&logPath, "log-file", "", "Log file path (default: user cache dir)")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the message to a file instead of stdout")

	rootCmd.AddCommand(newConfigCmd())
	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	log, closer := logger.Init(logPath, debug)
	defer closer.Close()
	ctx := logger.WithContext(cmd.Context(), log)

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	log.Debug("config loaded", "source", cfg.Source())

	collected, err := inputs.Collect(ctx, cfg, newPrompter(), newEditor(cfg.Editor.Command), newBranches())
	if err != nil {
		if errors.Is(err, inputs.ErrAborted) {
			log.Info("aborted by user")
		} else {
			log.Error("collecting inputs failed", "err", err)
		}
		return err
	}

	message := collected.Message()
	if outputPath != "" {
		if err := os.WriteFile(outputPath, []byte(message), 0644); err != nil {
			return fmt.Errorf("failed to write message: %w", err)
		}
		log.Info("message written", "path", outputPath)
		return nil
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), message)
	return err
}
