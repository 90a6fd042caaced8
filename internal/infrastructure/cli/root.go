// Package cli wires the cobra command tree and the interactive terminal
// loop. Persistent flags live on the root and feed the commands.Runtime,
// which defers container construction until a command actually needs it.
package cli

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/doeshing/uniterm/internal/infrastructure/cli/commands"
)

// NewRootCmd wires the cobra root command. Running uniterm with no
// subcommand starts the interactive terminal; bare arguments are treated as
// one line to translate and print.
func NewRootCmd() *cobra.Command {
	rt := &commands.Runtime{}

	root := &cobra.Command{
		Use:   "uniterm [command line]",
		Short: "Universal terminal with dialect translation",
		Long: "uniterm is an interactive terminal that accepts Windows CMD or Linux bash\n" +
			"command lines and translates them to the host shell before running them.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				// A detached instance: executing an attached subcommand
				// would restart dispatch from the root.
				translateCmd := commands.NewTranslateCommand(rt)
				translateCmd.SetArgs(args)
				translateCmd.SetOut(cmd.OutOrStdout())
				translateCmd.SetErr(cmd.ErrOrStderr())
				return translateCmd.ExecuteContext(cmd.Context())
			}

			container, err := rt.Container(cmd.Context())
			if err != nil {
				return err
			}
			applyColorMode(container.Config.ColorMode(), rt.NoColor)
			return RunTerminal(cmd.Context(), container, rt.Verbose)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&rt.ConfigPath, "config", "", "Config file path (default ~/.uniterm/config.yaml)")
	root.PersistentFlags().StringVarP(&rt.Dialect, "dialect", "d", "", "Source dialect override (windows|posix)")
	root.PersistentFlags().BoolVarP(&rt.Verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().BoolVar(&rt.NoColor, "no-color", false, "Disable colored output")

	root.AddCommand(commands.NewTranslateCommand(rt))
	root.AddCommand(commands.NewHistoryCommand(rt))
	root.AddCommand(commands.NewConfigCommand(rt))
	root.AddCommand(commands.NewDoctorCommand(rt))
	root.AddCommand(commands.NewVersionCommand())

	return root
}

// applyColorMode resolves terminal.color (auto|always|never) plus the
// --no-color flag into the global fatih/color switch.
func applyColorMode(mode string, noColorFlag bool) {
	switch {
	case noColorFlag || mode == "never":
		color.NoColor = true
	case mode == "always":
		color.NoColor = false
	default:
		fd := os.Stdout.Fd()
		color.NoColor = !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
	}
}
