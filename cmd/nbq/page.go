package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"nb-query/internal/query"
)

func newPageCmd(uc *query.UseCase) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "page <file|->",
		Short: "Render every data-query placeholder of an HTML page",
		Example: `  nbq page home.html > rendered.html
  cat home.html | nbq page -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				raw []byte
				err error
			)
			if args[0] == "-" {
				raw, err = io.ReadAll(cmd.InOrStdin())
			} else {
				raw, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("reading page: %w", err)
			}

			out, err := (*uc).RenderPage(cmd.Context(), string(raw))
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), out.HTML)
			for _, f := range out.Failures {
				fmt.Fprintf(cmd.ErrOrStderr(), "query %d (%q) failed: %v\n", f.Index, f.Query, f.Err)
			}
			if strict && len(out.Failures) > 0 {
				return fmt.Errorf("%d of %d queries failed", len(out.Failures), out.Queries)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "exit with an error when any query fails")
	return cmd
}
