package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"nb-query/internal/query"
)

func newQueryCmd(uc *query.UseCase) *cobra.Command {
	var (
		spec        query.Spec
		format      string
		showIcon    bool
		showDueDate bool
		showTags    bool
	)

	cmd := &cobra.Command{
		Use:   "query [text...]",
		Short: "Run one query and print the rendered result",
		Example: `  nbq query todo --type todo --include-tags important --due today
  nbq query --tags work,urgent --format json
  nbq query --due "next week" --show-tags=false`,
		RunE: func(cmd *cobra.Command, args []string) error {
			spec.Query = strings.Join(args, " ")
			spec.Format = query.ParseFormat(format)
			spec.Display = query.Display{Icon: showIcon, DueDate: showDueDate, Tags: showTags}

			out, err := (*uc).Execute(cmd.Context(), spec)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out.Body)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringSliceVar(&spec.Tags, "tags", nil, "tags searched when no text is given")
	f.StringSliceVar(&spec.Types, "type", nil, "keep these item types (note, folder, doc, bookmark, todo)")
	f.StringSliceVar(&spec.IncludeTags, "include-tags", nil, "keep items with any of these tags")
	f.StringSliceVar(&spec.ExcludeTags, "exclude-tags", nil, "drop items with any of these tags")
	f.StringVar(&spec.Due, "due", "", "today, this week, overdue, unscheduled or a date phrase")
	f.StringVar(&spec.DueBefore, "due-before", "", "keep items due at or before this date phrase")
	f.StringVar(&spec.DueAfter, "due-after", "", "keep items due at or after this date phrase")
	f.IntVar(&spec.Limit, "limit", 0, "keep the first N items")
	f.StringVar(&format, "format", string(query.FormatList), "output format (list|json)")
	f.BoolVar(&showIcon, "show-icon", true, "show item icons")
	f.BoolVar(&showDueDate, "show-due-date", true, "show due dates")
	f.BoolVar(&showTags, "show-tags", true, "show tag links")
	return cmd
}
