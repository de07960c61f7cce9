package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"pfimport/pkg/archive"
	"pfimport/pkg/categorize"
	"pfimport/pkg/classify"
	"pfimport/pkg/config"
	"pfimport/pkg/csv"
	"pfimport/pkg/extractor"
	"pfimport/pkg/models"
	"pfimport/pkg/parser"
	"pfimport/pkg/service"
	"pfimport/pkg/store"
)

var (
	cfgFile string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "pfimport",
	Short: "Import PDF financial statements into a local database",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

var importCmd = &cobra.Command{
	Use:   "import [flags] <input_dir>",
	Short: "Classify, parse, and persist every PDF statement under a directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		cfg, err := config.Build(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}

		st, err := store.Open(cfg.DBPath)
		if err != nil {
			return err
		}
		defer st.Close()

		categorizer, err := buildCategorizer(cfg)
		if err != nil {
			return err
		}

		mover := archive.NewMover(cfg.ArchiveDir, cfg.UnclassifiedDir)
		imp := service.NewImporter(cfg, logger, extractor.New(), st, mover, categorizer)

		res, err := imp.Run(args[0])
		if err != nil {
			return err
		}
		logger.Info("batch finished",
			"imported", res.Imported,
			"skipped", res.Skipped,
			"duplicates", res.Duplicates,
			"low_confidence", res.LowConfidence,
			"failed", res.Failed,
			"move_failures", res.MoveFailures,
		)
		fmt.Printf("Imported: %d, Skipped: %d\n", res.Imported, res.Skipped)
		return nil
	},
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.pdf>",
	Short: "Dry-run one statement: show classification, period, and parsed transactions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		cfg, err := config.Build(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}
		categorizer, err := buildCategorizer(cfg)
		if err != nil {
			return err
		}

		text, pages, err := extractor.New().Text(args[0])
		if err != nil {
			return err
		}

		type inspected struct {
			Classification models.Classification
			Institution    models.InstitutionInfo
			Period         models.Period
			Transactions   []models.Transaction
			Categories     []models.CategoryAssignment
		}

		out := inspected{
			Classification: classify.Classify(text),
			Institution:    classify.ExtractInstitution(text),
			Period:         classify.InferPeriod(text, time.Now().UTC()),
			Transactions:   parser.New(logger).Extract(pages, time.Now().UTC()),
		}
		for _, txn := range out.Transactions {
			out.Categories = append(out.Categories, categorizer.Categorize(txn))
		}

		pp.Println(out)
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write persisted transactions as CSV to stdout",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Build(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}
		st, err := store.Open(cfg.DBPath)
		if err != nil {
			return err
		}
		defer st.Close()

		accountID, _ := cmd.Flags().GetInt64("account")
		rows, err := st.ListTransactions(accountID)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(csv.Create(rows, nil))
		return err
	},
}

func newLogger() *log.Logger {
	opts := log.Options{
		ReportTimestamp: true,
		Prefix:          "pfimport",
	}
	if debug {
		opts.Level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, opts)
}

func buildCategorizer(cfg *config.Config) (*categorize.Categorizer, error) {
	if cfg.RulesFile != "" {
		return categorize.NewFromFile(cfg.RulesFile)
	}
	return categorize.New(), nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Config file (default is config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("data-dir", "data", "Base data directory")
	rootCmd.PersistentFlags().String("rules-file", "", "YAML category rules file")

	importCmd.Flags().Float64("min-confidence", 0.5, "Classification confidence below which documents are routed to the unclassified area")

	exportCmd.Flags().Int64("account", 0, "Restrict export to one account id")

	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(exportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
