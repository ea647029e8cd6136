package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/dendrascience/sorts/util"
)

// NewInspectCmd creates and returns the inspect subcommand for the sorts CLI.
func NewInspectCmd(e *env) *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Summarize a dataset file",
		Long: `Print a JSON summary of a dataset: its identity, value count, minimum,
maximum, whether the values are in ascending order and the SHA-256 of the
file. --output also writes the summary to a file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := util.SummarizeFile(args[0])
			if err != nil {
				return err
			}
			if outputPath != "" {
				if err := s.Save(outputPath); err != nil {
					return err
				}
			}
			je := json.NewEncoder(cmd.OutOrStdout())
			je.SetIndent("", "  ")
			return je.Encode(s)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Also write the summary to this file")

	return cmd
}
