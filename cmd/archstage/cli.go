package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Config holds the configuration determined from CLI flags.
type Config struct {
	Arch string
	Root string // invocation root; all manifest paths are relative to it
}

// newRootCmd builds the archstage command. The returned command stages into
// root and logs through logger.
func newRootCmd(root string, logger zerolog.Logger) *cobra.Command {
	cfg := &Config{Root: root}

	cmd := &cobra.Command{
		Use:           AppName + " --arch <id>",
		Short:         HelpShort,
		Long:          HelpShort + ".\n\n" + HelpDescription,
		Example:       HelpExample,
		Version:       AppVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return argumentError("", ErrorUnexpectedArgs, args)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("arch") {
				return argumentError("", ErrorMissingArch)
			}
			return runStage(cmd, cfg, logger)
		},
	}

	cmd.SetVersionTemplate(VersionFormat)
	cmd.Flags().StringVar(&cfg.Arch, "arch", "", FlagArchUsage)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return argumentError("", "%v", err)
	})
	return cmd
}

func runStage(cmd *cobra.Command, cfg *Config, logger zerolog.Logger) error {
	manifest, err := LoadDefaultManifest()
	if err != nil {
		return &StageError{Kind: KindIO, Arch: cfg.Arch, Detail: "loading built-in manifest", Err: err}
	}

	engine := NewEngine(manifest, cfg.Root, logger)
	if err := engine.Stage(cfg.Arch); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), StatusStagingSucceeded+"\n", cfg.Arch)
	return nil
}
