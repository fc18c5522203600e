package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTokenizeCmd(opts *rootOptions) *cobra.Command {
	var offsets bool

	cmd := &cobra.Command{
		Use:   "tokenize FILE|-",
		Short: "Print the token stream of a file",
		Long: `Print one token per line as KIND "text".

Use - to read from standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			unit, err := readUnit(cmd, args[0])
			if err != nil {
				return err
			}

			engine, err := opts.engine(false)
			if err != nil {
				return err
			}

			tokens, err := engine.TokenizeUnit(unit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			st := newStyles(out)
			for _, tok := range tokens {
				if offsets {
					fmt.Fprintf(out, "%s ", st.muted.Render(fmt.Sprintf("%5d", tok.Offset)))
				}
				fmt.Fprintf(out, "%s %q\n", st.kind.Render(tok.Kind.String()), tok.Text)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&offsets, "offsets", false, "Prefix each token with its rune offset")
	return cmd
}
