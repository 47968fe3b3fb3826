package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/promptlens/promptlens/logging"
	"github.com/promptlens/promptlens/models"
)

var validateMaxErrors int

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Validate record files against the canonical schema",
	Long: `Check every line of the given JSONL files against the canonical
record schema and report the lines that do not conform.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logging.InitLogger(logLevel, "")

		totalBad := 0
		for _, path := range args {
			bad, err := validateFile(path)
			if err != nil {
				return err
			}
			totalBad += bad
		}

		if totalBad > 0 {
			return fmt.Errorf("%d invalid records", totalBad)
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().IntVar(&validateMaxErrors, "max-errors", 10, "maximum schema errors to print per file")
	rootCmd.AddCommand(validateCmd)
}

func validateFile(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	lineNo := 0
	total := 0
	bad := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		total++
		if err := models.ValidateSchema([]byte(line)); err != nil {
			bad++
			if bad <= validateMaxErrors {
				fmt.Printf("%s:%d: %v\n", path, lineNo, err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return bad, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if bad > validateMaxErrors {
		fmt.Printf("%s: %d more errors not shown\n", path, bad-validateMaxErrors)
	}
	fmt.Printf("%s: %d/%d records valid\n", path, total-bad, total)
	return bad, nil
}
