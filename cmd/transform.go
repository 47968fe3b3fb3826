package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/promptlens/promptlens/logging"
	"github.com/promptlens/promptlens/transform"
)

var transformCmd = &cobra.Command{
	Use:   "transform <input.jsonl> <output.jsonl>",
	Short: "Convert legacy export files to the canonical record format",
	Long: `Convert a legacy JSONL export into the canonical record schema:
user ids are normalized to usr_NNN, categories and model names are mapped
to their canonical values, and sequential session ids are assigned.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		logging.InitLogger(logLevel, "")

		t := transform.NewTransformer()
		result, err := t.TransformFile(args[0], args[1])
		if err != nil {
			return err
		}

		fmt.Printf("Processed:   %d\n", result.RecordsProcessed)
		fmt.Printf("Transformed: %d\n", result.RecordsTransformed)
		if len(result.Errors) > 0 {
			fmt.Printf("Errors:      %d\n", len(result.Errors))
			for _, e := range result.Errors {
				fmt.Printf("  %s\n", e)
			}
			return fmt.Errorf("%d records failed to transform", len(result.Errors))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(transformCmd)
}
