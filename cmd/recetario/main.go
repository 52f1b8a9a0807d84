// Package main provides the CLI entry point for recetario.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/recetario/recetario/pkg/recetario/config"
	"github.com/recetario/recetario/pkg/recetario/logger"
	"github.com/recetario/recetario/pkg/recetario/lookup"
	"github.com/recetario/recetario/pkg/recetario/models"
	"github.com/recetario/recetario/pkg/recetario/pipeline"
	"github.com/recetario/recetario/pkg/recetario/scrape"
	"github.com/recetario/recetario/pkg/recetario/snapshot"
	"github.com/recetario/recetario/pkg/recetario/xlsx"
)

var (
	verbose bool
	logJSON bool

	exportInput    string
	exportSnapshot string
	exportTemplate string
	exportOutput   string
	exportConfig   string

	snapshotOutput string

	modesOutput string

	scrapeHTML     string
	scrapeSnapshot string
	scrapeRecipeNo int
	scrapeOutput   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "recetario",
		Short: "Validate recipe batches and fill the provider Excel template",
		Long: `recetario gates recipe batches through schema, lookup, and working-mode
validation, and writes batches that pass every check into a copy of the
provider's Excel template.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logger.Initialize(verbose, logJSON)
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Log JSON lines instead of console output")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Validate a recipe batch and write the provider workbook",
		RunE:  runExport,
	}
	exportCmd.Flags().StringVar(&exportInput, "input", "recipes.json", "Recipe batch document")
	exportCmd.Flags().StringVar(&exportSnapshot, "snapshot", "schema_snapshot.json", "Template schema snapshot")
	exportCmd.Flags().StringVar(&exportTemplate, "template", "template.xlsx", "Provider template workbook")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "recipes_out.xlsx", "Output workbook path")
	exportCmd.Flags().StringVar(&exportConfig, "config", "", "Config file (default: recetario.yaml if present)")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot TEMPLATE.xlsx",
		Short: "Capture a template's sheet headers and reference lists",
		Args:  cobra.ExactArgs(1),
		RunE:  runSnapshot,
	}
	snapshotCmd.Flags().StringVarP(&snapshotOutput, "output", "o", "schema_snapshot.json", "Output JSON path")

	modesCmd := &cobra.Command{
		Use:   "modes WORKBOOK.xlsx",
		Short: "Summarize working mode usage in a workbook's steps sheet",
		Args:  cobra.ExactArgs(1),
		RunE:  runModes,
	}
	modesCmd.Flags().StringVarP(&modesOutput, "output", "o", "working_mode_summary.json", "Output JSON path")

	scrapeCmd := &cobra.Command{
		Use:   "scrape",
		Short: "Convert a saved Cookidoo recipe page into a batch document",
		RunE:  runScrape,
	}
	scrapeCmd.Flags().StringVar(&scrapeHTML, "html", "", "Saved recipe page (required)")
	scrapeCmd.Flags().StringVar(&scrapeSnapshot, "snapshot", "schema_snapshot.json", "Template schema snapshot")
	scrapeCmd.Flags().IntVar(&scrapeRecipeNo, "recipe-no", 1, "Recipe number to assign")
	scrapeCmd.Flags().StringVarP(&scrapeOutput, "output", "o", "recipes.json", "Batch document path")

	rootCmd.AddCommand(exportCmd, snapshotCmd, modesCmd, scrapeCmd)

	err := rootCmd.Execute()
	logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(exportConfig)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	recipes, err := pipeline.LoadRecipes(exportInput)
	if err != nil {
		return err
	}
	logger.Logger.Infow("batch loaded", "recipes", len(recipes), "input", exportInput)

	runner := pipeline.New(xlsx.NewWriter(cfg.Export), logger.Logger)
	if err := runner.Run(recipes, exportSnapshot, exportTemplate, exportOutput); err != nil {
		return stageFailure(err)
	}

	fmt.Printf("Wrote %s\n", exportOutput)
	return nil
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	snap, err := snapshot.Capture(args[0])
	if err != nil {
		return fmt.Errorf("capture template: %w", err)
	}
	logger.Logger.Infow("template captured", "template", snap.Template, "sheets", len(snap.Sheets))

	if err := snapshot.Write(snap, snapshotOutput); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", snapshotOutput)
	return nil
}

func runModes(cmd *cobra.Command, args []string) error {
	usage, err := xlsx.InspectWorkingModes(args[0])
	if err != nil {
		return fmt.Errorf("inspect workbook: %w", err)
	}
	logger.Logger.Infow("steps inspected", "modes", len(usage.Counts))

	if err := xlsx.WriteUsage(usage, modesOutput); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", modesOutput)
	return nil
}

func runScrape(cmd *cobra.Command, args []string) error {
	if scrapeHTML == "" {
		return errors.New("--html is required")
	}

	lookups, err := lookup.LoadFile(scrapeSnapshot)
	if err != nil {
		return fmt.Errorf("load lookups: %w", err)
	}

	f, err := os.Open(scrapeHTML)
	if err != nil {
		return fmt.Errorf("open page: %w", err)
	}
	defer f.Close()

	recipe, err := scrape.FromHTML(f, scrape.Options{RecipeNo: scrapeRecipeNo, Units: lookups.Units})
	if err != nil {
		return fmt.Errorf("scrape page: %w", err)
	}
	logger.Logger.Infow("recipe scraped",
		"name", recipe.Meta.Name,
		"ingredients", len(recipe.Ingredients),
		"steps", len(recipe.Steps),
	)

	batch := []models.Recipe{*recipe}
	if err := pipeline.Validate(batch, lookups, nil); err != nil {
		return stageFailure(err)
	}

	if err := pipeline.WriteBatch(batch, scrapeOutput); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", scrapeOutput)
	return nil
}

// stageFailure reformats a StageError so every accumulated message lands on
// its own line in the command output. Other errors pass through.
func stageFailure(err error) error {
	var se *pipeline.StageError
	if !errors.As(err, &se) {
		return err
	}
	return fmt.Errorf("recipe %d rejected by %s validation:\n  %s",
		se.RecipeNo, se.Stage, strings.Join(se.Issues, "\n  "))
}
