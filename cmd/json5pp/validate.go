package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kimushu/json5pp"
)

func newValidateCmd(logger *zap.Logger, opts *options) *cobra.Command {
	var expectFail bool
	cmd := &cobra.Command{
		Use:     "validate <file>",
		Short:   "parse a document and report pass/fail",
		Example: `json5pp validate --json5 --expect-fail broken.json5`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stop := opts.startWatchdog(logger)
			defer stop()

			rules, err := opts.rules()
			if err != nil {
				return err
			}

			_, parseErr := json5pp.ParseFile(args[0], rules)
			out := cmd.OutOrStdout()
			switch {
			case expectFail && parseErr == nil:
				fmt.Fprintln(out, color.RedString("[FAIL] unexpected success."))
				return errors.New("expected a syntax error")
			case expectFail && !errors.Is(parseErr, json5pp.ErrSyntax):
				fmt.Fprintln(out, color.RedString("[FAIL] unexpected error: %v", parseErr))
				return parseErr
			case expectFail:
				fmt.Fprintln(out, color.GreenString("[PASS] parse failed expectedly."))
				return nil
			case parseErr != nil:
				fmt.Fprintln(out, color.RedString("[FAIL] %v", parseErr))
				return parseErr
			default:
				fmt.Fprintln(out, color.GreenString("[PASS] parse succeeded."))
				return nil
			}
		},
	}
	cmd.Flags().BoolVar(&expectFail, "expect-fail", false, "succeed only when parsing fails with a syntax error")
	return cmd
}
