package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/wahlandcase/attuned.commitprompt/internal/config"

	"github.com/spf13/cobra"
)

var forceInit bool

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the attcm config file",
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigInit,
	}
	initCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing file")

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the config file in effect",
		Args:  cobra.NoArgs,
		RunE:  runConfigPath,
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective config as TOML",
		Args:  cobra.NoArgs,
		RunE:  runConfigShow,
	}

	configCmd.AddCommand(initCmd, pathCmd, showCmd)
	return configCmd
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		p, err := config.Path()
		if err != nil {
			return fmt.Errorf("failed to locate config dir: %w", err)
		}
		path = p
	}

	if _, err := os.Stat(path); err == nil && !forceInit {
		return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if err := config.DefaultConfig().SaveTo(path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.Source() == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "(built-in defaults)")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), cfg.Source())
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
