// Package main provides the CLI entry point for excel2json.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"excel2json/pkg/excel2json"
	"excel2json/pkg/excel2json/output"
	"excel2json/pkg/excel2json/parser"
)

var (
	outputPath string
	columnSpec string
	pretty     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "excel2json [input.xlsx] [sheet]",
		Short: "Convert an Excel sheet to JSON records",
		Long: `excel2json converts one sheet of an Excel workbook into a JSON array
of objects, one object per data row, with keys derived from the header
row. Columns with an empty header are skipped and do not count toward
--columns numbering.`,
		Args: cobra.ExactArgs(2),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output JSON file path (required)")
	rootCmd.Flags().StringVarP(&columnSpec, "columns", "c", "", "Visible column numbers to include (comma-separated, e.g. 1,2,3); counts only columns with a non-empty header, defaults to all")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.MarkFlagRequired("output")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	sheetName := args[1]

	opts := excel2json.DefaultOptions()
	if columnSpec != "" {
		ordinals, err := parser.ParseColumnSpec(columnSpec)
		if err != nil {
			return err
		}
		opts.Columns = ordinals
	}

	table, err := excel2json.Convert(inputPath, sheetName, opts)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	jsonData, err := output.ToJSON(table.Records, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if err := output.WriteFile(outputPath, jsonData); err != nil {
		return err
	}

	fmt.Println("Successfully converted Excel to JSON")
	fmt.Printf("Input: %s\n", inputPath)
	fmt.Printf("Sheet: %s\n", sheetName)
	fmt.Printf("Output: %s\n", outputPath)
	fmt.Printf("Visible columns: %d\n", len(table.Columns))
	fmt.Printf("Total records: %d\n", len(table.Records))

	return nil
}
