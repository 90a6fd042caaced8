package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doeshing/uniterm/internal/app"
	"github.com/doeshing/uniterm/internal/domain"
	"github.com/doeshing/uniterm/internal/infrastructure/clipboard"
	"github.com/doeshing/uniterm/internal/ports"
)

// NewTranslateCommand creates the translate command
func NewTranslateCommand(rt *Runtime) *cobra.Command {
	var from, to string
	var copyResult bool

	cmd := &cobra.Command{
		Use:   "translate <command line>",
		Short: "Translate one command line without executing it",
		Long: `Translate renders a source-dialect command line in the host dialect and
prints the result without running anything. Pipelines are split on '|',
translated stage by stage, and rejoined. Builtins are not intercepted, so
'clear' translates to its host spelling instead of clearing the screen.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := rt.Container(cmd.Context())
			if err != nil {
				return err
			}

			translator, err := resolveTranslator(container, from, to)
			if err != nil {
				return err
			}

			line := strings.Join(args, " ")
			translation := translator.Translate(cmd.Context(), line)
			if err := displayTranslation(cmd.OutOrStdout(), translation); err != nil {
				return err
			}

			if copyResult && translation.HasCommand() {
				clip := clipboard.New()
				if clip.Enabled() {
					if err := clip.Copy(translation.Command); err != nil {
						container.Logger.Warn("clipboard copy failed", map[string]interface{}{"error": err.Error()})
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Source dialect (windows|posix, default from config)")
	cmd.Flags().StringVar(&to, "to", "", "Target dialect (windows|posix, default host)")
	cmd.Flags().BoolVarP(&copyResult, "copy", "c", false, "Copy the translated command to the clipboard")
	return cmd
}

// resolveTranslator picks the configured translator, or builds one for an
// explicit --from/--to direction.
func resolveTranslator(container *app.Container, from, to string) (ports.LineTranslator, error) {
	if from == "" && to == "" {
		return container.Translator, nil
	}

	source, host := container.Source, container.Host
	var err error
	if from != "" {
		source, err = domain.ParseDialect(from)
		if err != nil {
			return nil, err
		}
	}
	if to != "" {
		host, err = domain.ParseDialect(to)
		if err != nil {
			return nil, err
		}
	}
	return container.TranslatorFor(source, host), nil
}

// displayTranslation prints translation notes followed by the host command
func displayTranslation(out io.Writer, translation domain.Translation) error {
	for _, note := range translation.Notes {
		fmt.Fprintf(out, "[Translated note] %s\n", note)
	}

	if translation.HasCommand() {
		fmt.Fprintln(out, translation.Command)
	}

	return nil
}
