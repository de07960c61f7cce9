package service

import (
	"crypto/sha256"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"pfimport/pkg/categorize"
	"pfimport/pkg/classify"
	"pfimport/pkg/config"
	"pfimport/pkg/models"
	"pfimport/pkg/parser"
)

// TextExtractor reads a statement document and returns its combined text
// plus the ordered per-page strings.
type TextExtractor interface {
	Text(filePath string) (string, []string, error)
}

// Statements is the persistence collaborator. The store owns the schema;
// the importer only needs these operations.
type Statements interface {
	StatementExistsByHash(hash string) (bool, error)
	EnsureAccount(accountType models.StatementType, name, institution string) (int64, error)
	InsertStatement(accountID int64, period models.Period, sourcePath, sourceHash string) (int64, error)
	InsertTransaction(accountID, statementID int64, txn models.Transaction, currency string, categoryID *int64, assignment models.CategoryAssignment) error
	GetOrCreateCategory(name string, kind models.CategoryKind) (int64, error)
}

// Mover relocates processed files. Failures are reported back as errors and
// counted, never fatal.
type Mover interface {
	Archive(srcPath string, periodEnd time.Time) (string, error)
	Unclassified(srcPath string) (string, error)
}

// Result is the batch outcome with per-reason skip counters.
type Result struct {
	Imported      int
	Skipped       int
	Duplicates    int
	LowConfidence int
	Failed        int
	MoveFailures  int
}

// Importer runs the single-writer batch: one document is fully classified,
// period-inferred, and transaction-extracted before the next begins.
type Importer struct {
	cfg         *config.Config
	logger      *log.Logger
	extractor   TextExtractor
	store       Statements
	mover       Mover
	parser      *parser.Parser
	categorizer *categorize.Categorizer
}

func NewImporter(cfg *config.Config, logger *log.Logger, extractor TextExtractor, store Statements, mover Mover, categorizer *categorize.Categorizer) *Importer {
	return &Importer{
		cfg:         cfg,
		logger:      logger,
		extractor:   extractor,
		store:       store,
		mover:       mover,
		parser:      parser.New(logger),
		categorizer: categorizer,
	}
}

// Run discovers PDF files under inputDir recursively and imports each in
// turn. A failure on one document is logged and counted; the batch always
// continues.
func (i *Importer) Run(inputDir string) (Result, error) {
	paths, err := findPDFs(inputDir)
	if err != nil {
		return Result{}, fmt.Errorf("scanning input directory: %w", err)
	}
	if len(paths) == 0 {
		i.logger.Info("no pdf files found", "dir", inputDir)
		return Result{}, nil
	}

	var res Result
	for _, path := range paths {
		if err := i.importOne(path, &res); err != nil {
			i.logger.Error("failed to import document", "file", path, "error", err)
			res.Failed++
			res.Skipped++
		}
	}
	return res, nil
}

func (i *Importer) importOne(path string, res *Result) error {
	fileBytes, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}
	hash := fmt.Sprintf("%x", sha256.Sum256(fileBytes))

	exists, err := i.store.StatementExistsByHash(hash)
	if err != nil {
		return err
	}
	if exists {
		i.logger.Info("skipping already imported document", "file", path)
		res.Duplicates++
		res.Skipped++
		return nil
	}

	text, pages, err := i.extractor.Text(path)
	if err != nil {
		return err
	}

	classification := classify.Classify(text)
	info := classify.ExtractInstitution(text)
	i.logger.Info("classified document",
		"file", path,
		"type", classification.Type,
		"confidence", classification.Confidence,
		"institution", info.Institution,
	)

	if classification.Confidence < i.cfg.MinConfidence {
		if _, err := i.mover.Unclassified(path); err != nil {
			i.logger.Warn("failed to move unclassified document", "file", path, "error", err)
			res.MoveFailures++
		}
		res.LowConfidence++
		res.Skipped++
		return nil
	}

	institution := info.Institution
	if institution == "" {
		institution = "Unknown"
	}
	accountName := strings.TrimSpace(institution + " " + info.MaskedAccount)
	accountID, err := i.store.EnsureAccount(classification.Type, accountName, institution)
	if err != nil {
		return err
	}

	period := classify.InferPeriod(text, time.Now().UTC())
	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}
	statementID, err := i.store.InsertStatement(accountID, period, absPath, hash)
	if err != nil {
		return err
	}

	txns := i.parser.Extract(pages, time.Now().UTC())
	for _, txn := range txns {
		assignment := i.categorizer.Categorize(txn)

		// Category resolution is non-fatal: the transaction keeps an
		// absent category id when the lookup fails.
		var categoryID *int64
		if id, err := i.store.GetOrCreateCategory(assignment.Name, assignment.Kind); err != nil {
			i.logger.Warn("failed to resolve category", "category", assignment.Name, "error", err)
		} else {
			categoryID = &id
		}

		if err := i.store.InsertTransaction(accountID, statementID, txn, i.cfg.Currency, categoryID, assignment); err != nil {
			return err
		}
	}

	res.Imported++
	i.logger.Info("imported document", "file", path, "transactions", len(txns),
		"period_start", period.Start.Format("2006-01-02"),
		"period_end", period.End.Format("2006-01-02"),
	)

	if _, err := i.mover.Archive(path, period.End); err != nil {
		i.logger.Warn("failed to archive document", "file", path, "error", err)
		res.MoveFailures++
	}
	return nil
}

// findPDFs walks root recursively and returns every .pdf file, sorted so
// batch runs are deterministic.
func findPDFs(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(strings.ToLower(d.Name()), ".pdf") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}
