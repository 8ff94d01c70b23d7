// Package benv assembles the command tree: the bare command opens the
// interactive profile editor, subcommands cover scripted use (export, list,
// show, dump/restore) and documentation.
package benv

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"benv/internal/version"
	"benv/pkg/cobrax/topics"
	"benv/pkg/config"
	"benv/pkg/errors"
	"benv/pkg/export"
	"benv/pkg/logging"
	"benv/pkg/store"
	"benv/pkg/tui"
	"benv/pkg/ui"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		noColor   bool
	)

	rootCmd := &cobra.Command{
		Use:     "benv",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// The bare command takes over the terminal with the editor, so
			// its log lines go to the state-dir file instead of stderr.
			if cmd.HasParent() {
				logging.SetupLogger(verbosity)
			} else {
				logging.SetupFileLogger(verbosity)
			}
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				log.Warn().Err(err).Msg("Using default configuration")
			}

			st, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			return tui.Run(st, cfg)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, MsgFlagNoColor)

	// Disable automatic help command; the topic-aware one replaces it below
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Add all commands
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newDumpCmd())
	rootCmd.AddCommand(newRestoreCmd())
	rootCmd.AddCommand(newDocsCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	// Topic-based help over the embedded docs
	_ = topics.Initialize(rootCmd, docsFS(), topics.Options{
		Renderer: topics.NewGlamourRenderer(),
	})

	return rootCmd
}

// openStore opens the profile database at the standard location, seeding a
// brand-new database with the default profile.
func openStore() (*store.Store, error) {
	st, err := store.OpenDefault()
	if err != nil {
		return nil, err
	}
	if err := st.EnsureSeed(); err != nil {
		_ = st.Close()
		return nil, err
	}
	return st, nil
}

// outputFormat resolves the effective stdout format for styled commands.
func outputFormat(cmd *cobra.Command) ui.Format {
	noColor, _ := cmd.Root().PersistentFlags().GetBool("no-color")
	return ui.DetectFormat(os.Stdout, noColor)
}

// profileNamesCompletion provides shell completion for profile names
func profileNamesCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	st, err := openStore()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	defer func() { _ = st.Close() }()

	names, err := st.ProfileNames()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "export [profile]",
		Short:             MsgExportShort,
		Long:              MsgExportLong,
		Example:           MsgExportExample,
		GroupID:           "core",
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: profileNamesCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			modeStr, _ := cmd.Flags().GetString("mode")
			mode := export.ParseMode(modeStr)

			st, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			out := cmd.OutOrStdout()

			if len(args) == 1 {
				p, err := st.Profile(args[0])
				if err != nil {
					return err
				}
				log.Info().Str("profile", p.Name).Str("mode", mode.String()).Msg("Exporting profile")
				for _, stmt := range export.Statements(p, mode) {
					fmt.Fprintln(out, stmt)
				}
				return nil
			}

			profiles, err := st.Profiles()
			if err != nil {
				return err
			}
			log.Info().Int("profiles", len(profiles)).Str("mode", mode.String()).Msg("Exporting all profiles")
			for _, p := range profiles {
				fmt.Fprintf(out, MsgProfileComment+"\n", p.Name)
				for _, stmt := range export.Statements(p, mode) {
					fmt.Fprintln(out, stmt)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringP("mode", "m", "prepend", MsgFlagMode)

	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		Long:    MsgListLong,
		Example: MsgListExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			profiles, err := st.Profiles()
			if err != nil {
				return err
			}

			log.Info().Int("profiles", len(profiles)).Msg("Listing profiles")
			fmt.Fprint(cmd.OutOrStdout(), renderProfileList(profiles, outputFormat(cmd)))
			return nil
		},
	}
}

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "show <profile>",
		Short:             MsgShowShort,
		Long:              MsgShowLong,
		Example:           MsgShowExample,
		GroupID:           "core",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: profileNamesCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			modeStr, _ := cmd.Flags().GetString("mode")
			mode := export.ParseMode(modeStr)

			st, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			p, err := st.Profile(args[0])
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), renderShow(p, mode, outputFormat(cmd)))
			return nil
		},
	}

	cmd.Flags().StringP("mode", "m", "prepend", MsgFlagMode)

	return cmd
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "dump",
		Short:   MsgDumpShort,
		Long:    MsgDumpLong,
		Example: MsgDumpExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")

			st, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			snap, err := st.Snapshot()
			if err != nil {
				return err
			}

			if output == "" {
				return store.WriteSnapshot(cmd.OutOrStdout(), snap)
			}

			f, err := os.Create(output)
			if err != nil {
				return errors.Wrapf(err, errors.ErrSnapshotWrite, "failed to create %s", output)
			}
			if err := store.WriteSnapshot(f, snap); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return errors.Wrapf(err, errors.ErrSnapshotWrite, "failed to write %s", output)
			}

			log.Info().Str("path", output).Msg("Store dump written")
			fmt.Fprintf(cmd.OutOrStdout(), MsgDumpWrittenFormat, output)
			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "", MsgFlagOutput)

	return cmd
}

func newRestoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "restore <file>",
		Short:   MsgRestoreShort,
		Long:    MsgRestoreLong,
		Example: MsgRestoreExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := store.ReadSnapshotFile(args[0])
			if err != nil {
				return err
			}

			st, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			if err := st.Restore(snap); err != nil {
				return err
			}

			log.Info().
				Int("profiles", len(snap.Profiles)).
				Int("custom_vars", len(snap.CustomVars)).
				Int("items", len(snap.Items)).
				Msg("Snapshot restored")
			fmt.Fprintf(cmd.OutOrStdout(), MsgRestoredFormat,
				len(snap.Profiles), len(snap.CustomVars), len(snap.Items))
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Long:    MsgVersionLong,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("benv version %s\n", version.Version)
			fmt.Printf("Commit: %s\n", version.Commit)
			fmt.Printf("Built:  %s\n", version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}
}
