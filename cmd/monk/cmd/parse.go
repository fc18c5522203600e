package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	monkerror "github.com/msto63/monk/foundation/core/error"
	"github.com/msto63/monk/foundation/lang"
	monkast "github.com/msto63/monk/foundation/lang/ast"
)

func newParseCmd(opts *rootOptions) *cobra.Command {
	var (
		output  string
		collect bool
	)

	cmd := &cobra.Command{
		Use:   "parse PATH...",
		Short: "Print the syntax tree of one or more files",
		Long: `Parse each file and print its syntax tree.

Output formats:
  text - one parenthesized line per statement (default)
  yaml - the exported tree as YAML, one document per file
  json - the exported tree as JSON, one object per file

Directories are searched recursively for *.monk files. "-" reads standard
input.

With --recover a failing statement is reported and parsing continues at the
next statement; the statements that parsed are still printed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			write, err := programWriter(output, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			engine, err := opts.engine(collect)
			if err != nil {
				return err
			}

			paths, err := lang.ExpandPaths(args)
			if err != nil {
				return err
			}

			stderr := cmd.ErrOrStderr()
			failed := 0
			for _, path := range paths {
				unit, err := readUnit(cmd, path)
				if err != nil {
					printError(stderr, err)
					failed++
					continue
				}

				result, err := engine.Parse(unit)
				if err != nil {
					printError(stderr, err)
					failed++
					continue
				}
				for _, perr := range result.Errors {
					printError(stderr, perr)
				}
				if !result.OK() {
					failed++
				}

				if err := write(result.Program, len(paths) > 1); err != nil {
					return err
				}
			}

			if failed > 0 {
				return monkerror.Newf("%d of %d files failed to parse", failed, len(paths)).
					WithCode(monkerror.CodeSyntax).
					WithOperation("monk.parse")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format: text, yaml or json")
	cmd.Flags().BoolVar(&collect, "recover", false, "Report every failing statement instead of stopping at the first")
	return cmd
}

// programWriter returns the printer for an output format
func programWriter(format string, out io.Writer) (func(prog *monkast.Program, many bool) error, error) {
	switch format {
	case "text", "":
		st := newStyles(out)
		return func(prog *monkast.Program, many bool) error {
			if many {
				fmt.Fprintln(out, st.title.Render("==> "+programLabel(prog)+" <=="))
			}
			if len(prog.Stmts) > 0 {
				fmt.Fprintln(out, prog.String())
			}
			return nil
		}, nil
	case "yaml":
		return func(prog *monkast.Program, many bool) error {
			data, err := yaml.Marshal(monkast.Export(prog))
			if err != nil {
				return monkerror.Wrap(err, "cannot encode YAML").WithCode(monkerror.CodeInternal)
			}
			if many {
				fmt.Fprintln(out, "---")
			}
			_, err = out.Write(data)
			return err
		}, nil
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return func(prog *monkast.Program, _ bool) error {
			if err := enc.Encode(monkast.Export(prog)); err != nil {
				return monkerror.Wrap(err, "cannot encode JSON").WithCode(monkerror.CodeInternal)
			}
			return nil
		}, nil
	default:
		return nil, monkerror.Newf("unknown output format %q (want text, yaml or json)", format).
			WithCode(monkerror.CodeInvalidInput).
			WithOperation("monk.parse")
	}
}

func programLabel(prog *monkast.Program) string {
	return lang.Unit{Name: prog.Name, Path: prog.Path}.Label()
}
