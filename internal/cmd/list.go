package cmd

import (
	"fmt"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dendrascience/sorts/util"
)

// NewListCmd creates and returns the list subcommand for the sorts CLI.
// It catalogs the datasets stored under a directory.
func NewListCmd(e *env) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "list [PATH]",
		Short: "List datasets in a directory tree",
		Long: `List the dataset files (.json, .json.gz) in a directory tree, oldest
first, followed by totals per kind. Files that cannot be read, and
content-addressed files whose values no longer match their name, are
reported after the listing and make the command fail.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				path = args[0]
			}
			c, scanErr := util.ScanCatalog(path)
			if c.Len() == 0 && scanErr != nil {
				return scanErr
			}

			out := cmd.OutOrStdout()
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tKIND\tCOUNT\tCREATED\tPATH")
			c.Iterate(func(entry util.CatalogEntry) bool {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n",
					entry.ID, entry.Kind, entry.Count, entry.Created.Format(time.RFC3339), entry.Path)
				return true
			})
			if err := tw.Flush(); err != nil {
				return err
			}

			kinds := c.Kinds()
			names := make([]string, 0, len(kinds))
			for k := range kinds {
				names = append(names, k)
			}
			sort.Strings(names)
			fmt.Fprintf(out, "\nDatasets: %d, values: %d\n", c.Len(), c.TotalValues())
			for _, k := range names {
				fmt.Fprintf(out, "  %s: %d\n", k, kinds[k])
			}

			if scanErr != nil {
				e.logger.Warn("unreadable datasets", zap.String("path", path), zap.Error(scanErr))
				return scanErr
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", "./", "Directory to scan for datasets")

	return cmd
}
