package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kimushu/json5pp"
)

func newFmtCmd(logger *zap.Logger, opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "fmt [file]",
		Short:   "parse a document and print its stringified form",
		Example: `json5pp fmt --json5 --indent 2 config.json5`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stop := opts.startWatchdog(logger)
			defer stop()

			rules, err := opts.rules()
			if err != nil {
				return err
			}

			var value *json5pp.Value
			if len(args) == 1 {
				value, err = json5pp.ParseFile(args[0], rules)
			} else {
				value, err = json5pp.Parse(cmd.InOrStdin(), rules)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if err := json5pp.StringifyTo(out, value, rules); err != nil {
				return err
			}
			if rules.Indent().Enabled() {
				_, _ = out.Write([]byte(rules.Newline()))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&opts.indent, "indent", 0, "indent units per nesting level (0 = single line)")
	cmd.Flags().BoolVar(&opts.tab, "tab", false, "indent with tabs instead of spaces")
	cmd.Flags().BoolVar(&opts.crlf, "crlf", false, "use CRLF newlines in indented output")
	return cmd
}
