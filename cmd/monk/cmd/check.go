package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	monkerror "github.com/msto63/monk/foundation/core/error"
	"github.com/msto63/monk/foundation/lang"
)

func newCheckCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check PATH...",
		Short: "Report syntax errors for a set of files",
		Long: `Parse all files concurrently and report one status line per file,
followed by every failing statement of that file. Directories are searched
recursively for *.monk files. "-" reads standard input.

The number of files parsed at once is frontend.concurrency.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := opts.engine(true)
			if err != nil {
				return err
			}

			paths, err := lang.ExpandPaths(args)
			if err != nil {
				return err
			}
			if len(paths) == 0 {
				return monkerror.New("no source files found").
					WithCode(monkerror.CodeNotFound).
					WithOperation("monk.check")
			}

			results, err := engine.ParsePaths(cmd.Context(), paths, func(path string) (lang.Unit, error) {
				return readUnit(cmd, path)
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			st := newStyles(out)
			failed := 0
			for i, result := range results {
				if result.OK() {
					fmt.Fprintf(out, "%s %s %s\n",
						st.ok.Render("ok  "),
						st.path.Render(paths[i]),
						st.muted.Render(fmt.Sprintf("(%d statements, %s)", len(result.Program.Stmts), result.Duration.Round(time.Microsecond))))
					continue
				}

				failed++
				fmt.Fprintf(out, "%s %s\n", st.fail.Render("FAIL"), st.path.Render(paths[i]))
				for _, perr := range result.Errors {
					fmt.Fprintf(out, "     %s\n", perr)
				}
			}

			summary := fmt.Sprintf("%d files, %d failed", len(results), failed)
			if failed > 0 {
				fmt.Fprintln(out, st.fail.Render(summary))
				return monkerror.Newf("%d of %d files failed the check", failed, len(results)).
					WithCode(monkerror.CodeSyntax).
					WithOperation("monk.check")
			}
			fmt.Fprintln(out, st.ok.Render(summary))
			return nil
		},
	}
}
