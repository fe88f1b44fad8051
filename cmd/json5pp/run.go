package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kimushu/json5pp"
)

// caseResult is the outcome of one suite input file.
type caseResult struct {
	name   string
	pass   bool
	detail string
}

// caseExpectation derives the ruleset and the expected outcome from the
// file name: pass/fail choose the outcome, a 5 suffix on the prefix
// chooses the json5 preset over ecma404.
func caseExpectation(name string) (rules json5pp.RuleSet, wantErr, ok bool) {
	base := filepath.Base(name)
	switch {
	case strings.HasPrefix(base, "pass5"):
		return json5pp.JSON5(), false, true
	case strings.HasPrefix(base, "fail5"):
		return json5pp.JSON5(), true, true
	case strings.HasPrefix(base, "pass"):
		return json5pp.ECMA404(), false, true
	case strings.HasPrefix(base, "fail"):
		return json5pp.ECMA404(), true, true
	default:
		return json5pp.RuleSet{}, false, false
	}
}

// runCase parses one suite file and classifies the outcome against its
// expectation.
func runCase(path string) caseResult {
	name := filepath.Base(path)
	rules, wantErr, ok := caseExpectation(path)
	if !ok {
		return caseResult{name: name, pass: false, detail: "unrecognized case name"}
	}
	_, err := json5pp.ParseFile(path, rules)
	switch {
	case wantErr && err == nil:
		return caseResult{name: name, pass: false, detail: "unexpected success"}
	case wantErr && !errors.Is(err, json5pp.ErrSyntax):
		return caseResult{name: name, pass: false, detail: fmt.Sprintf("unexpected error: %v", err)}
	case wantErr:
		return caseResult{name: name, pass: true, detail: "parse failed expectedly"}
	case err != nil:
		return caseResult{name: name, pass: false, detail: err.Error()}
	default:
		return caseResult{name: name, pass: true, detail: "parse succeeded"}
	}
}

// collectCases lists the suite input files of dir in name order.
func collectCases(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var cases []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if _, _, ok := caseExpectation(e.Name()); ok {
			cases = append(cases, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(cases)
	return cases, nil
}

func newRunCmd(logger *zap.Logger, opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "run <dir>",
		Short:   "run a conformance suite directory",
		Long:    "Runs every pass*/pass5*/fail*/fail5* file in the directory: pass files must parse, fail files must raise a syntax error. The 5 variants use the json5 preset.",
		Example: `json5pp run --timeout 5s testdata/suite`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stop := opts.startWatchdog(logger)
			defer stop()

			cases, err := collectCases(args[0])
			if err != nil {
				return err
			}
			if len(cases) == 0 {
				return fmt.Errorf("no suite cases found in %s", args[0])
			}

			out := cmd.OutOrStdout()
			failed := 0
			table := tablewriter.NewWriter(out)
			table.SetHeader([]string{"Case", "Result", "Detail"})
			table.SetAutoWrapText(false)
			for _, path := range cases {
				result := runCase(path)
				verdict := color.GreenString("PASS")
				if !result.pass {
					failed++
					verdict = color.RedString("FAIL")
					logger.Warn("suite case failed",
						zap.String("case", result.name),
						zap.String("detail", result.detail))
				}
				table.Append([]string{result.name, verdict, result.detail})
			}
			table.Render()
			fmt.Fprintf(out, "%d cases, %d failed\n", len(cases), failed)
			if failed > 0 {
				return fmt.Errorf("%d of %d cases failed", failed, len(cases))
			}
			return nil
		},
	}
	return cmd
}
