package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kimushu/json5pp"
)

// options holds the flag state shared by all subcommands.
type options struct {
	json5   bool
	enable  []string
	disable []string
	indent  int
	tab     bool
	crlf    bool
	timeout time.Duration
}

// toggleByName maps flag names to the manipulator catalogue.
var toggleByName = map[string]func(bool) json5pp.Manipulator{
	"single-line-comment":    json5pp.SingleLineComment,
	"multi-line-comment":     json5pp.MultiLineComment,
	"explicit-plus-sign":     json5pp.ExplicitPlusSign,
	"leading-decimal-point":  json5pp.LeadingDecimalPoint,
	"trailing-decimal-point": json5pp.TrailingDecimalPoint,
	"infinity":               json5pp.Infinity,
	"nan":                    json5pp.NaN,
	"hexadecimal":            json5pp.Hexadecimal,
	"single-quote":           json5pp.SingleQuote,
	"multi-line-string":      json5pp.MultiLineString,
	"trailing-comma":         json5pp.TrailingComma,
	"unquoted-key":           json5pp.UnquotedKey,
}

// rules builds the effective RuleSet: preset first, then the per-toggle
// overrides, then formatting.
func (o *options) rules() (json5pp.RuleSet, error) {
	base := json5pp.ECMA404()
	if o.json5 {
		base = json5pp.JSON5()
	}
	var ms []json5pp.Manipulator
	for _, name := range o.enable {
		toggle, ok := toggleByName[name]
		if !ok {
			return json5pp.RuleSet{}, fmt.Errorf("unknown grammar toggle %q", name)
		}
		ms = append(ms, toggle(true))
	}
	for _, name := range o.disable {
		toggle, ok := toggleByName[name]
		if !ok {
			return json5pp.RuleSet{}, fmt.Errorf("unknown grammar toggle %q", name)
		}
		ms = append(ms, toggle(false))
	}
	if o.indent > 0 {
		if o.tab {
			ms = append(ms, json5pp.TabIndent(o.indent))
		} else {
			ms = append(ms, json5pp.SpaceIndent(o.indent))
		}
	}
	if o.crlf {
		ms = append(ms, json5pp.CRLFNewline())
	}
	return base.Apply(ms...), nil
}

// startWatchdog terminates the process when the deadline passes, the same
// way the suite's original harness did. The returned stop function cancels
// it.
func (o *options) startWatchdog(logger *zap.Logger) func() {
	if o.timeout <= 0 {
		return func() {}
	}
	timer := time.AfterFunc(o.timeout, func() {
		fmt.Println(color.RedString("[FAIL] timed out."))
		logger.Error("watchdog expired", zap.Duration("timeout", o.timeout))
		os.Exit(3)
	})
	return func() { timer.Stop() }
}

func newRootCmd(logger *zap.Logger) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "json5pp",
		Short: "parse, validate and reformat JSON/JSON5 documents",
	}
	cmd.PersistentFlags().BoolVar(&opts.json5, "json5", false, "start from the json5 preset instead of ecma404")
	cmd.PersistentFlags().StringSliceVar(&opts.enable, "enable", nil, "grammar toggles to enable on top of the preset")
	cmd.PersistentFlags().StringSliceVar(&opts.disable, "disable", nil, "grammar toggles to disable on top of the preset")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "watchdog timeout for the whole invocation (0 disables)")

	cmd.AddCommand(newFmtCmd(logger, opts))
	cmd.AddCommand(newValidateCmd(logger, opts))
	cmd.AddCommand(newRunCmd(logger, opts))
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	return cmd
}
