package fabric

import (
	"fmt"
	"io"

	"fabric-index/core/match"
	"fabric-index/core/spreadsheet"

	"go.uber.org/zap"
)

// Service runs the reconciliation pipeline for uploaded sheets.
type Service struct {
	cfg    match.Config
	logger *zap.Logger
}

// NewService creates a new fabric service.
func NewService(cfg match.Config, logger *zap.Logger) *Service {
	return &Service{cfg: cfg, logger: logger}
}

// Run reads the main and index sheets, builds the reference index and
// reconciles the main table against it. When numeric coercion is enabled the
// configured numeric column of the result is rewritten as float64 before the
// result is returned. Each call builds a fresh index and operates on fresh
// tables, so runs are independent.
func (s *Service) Run(mainFile, indexFile io.Reader) (*match.Result, error) {
	mainTable, err := spreadsheet.ReadTable(mainFile)
	if err != nil {
		return nil, fmt.Errorf("main sheet: %w", err)
	}

	indexTable, err := spreadsheet.ReadTable(indexFile)
	if err != nil {
		return nil, fmt.Errorf("index sheet: %w", err)
	}

	idx, err := match.BuildIndex(indexTable)
	if err != nil {
		return nil, err
	}

	result := match.Reconcile(mainTable, idx, s.cfg.Options())

	if s.cfg.CoerceNumeric {
		match.CoerceNumericColumn(result.Table, s.cfg.NumericCol)
	}

	s.logger.Info("Reconciliation completed",
		zap.Int("rows", result.Summary.Total),
		zap.Int("matched", result.Summary.Matched),
		zap.Int("unmatched", result.Summary.Unmatched),
	)

	return result, nil
}

// Export serializes a reconciliation result as the annotated xlsx artifact.
func (s *Service) Export(w io.Writer, result *match.Result) error {
	numericCol := -1
	if s.cfg.CoerceNumeric {
		numericCol = s.cfg.NumericCol
	}
	return spreadsheet.WriteAnnotated(w, result.Table, result.Mask, spreadsheet.ExportOptions{
		SheetName:    s.cfg.SheetName,
		HighlightCol: s.cfg.OutputCol,
		NumericCol:   numericCol,
	})
}

// Report shapes a result into the JSON preview payload, capping the number
// of preview rows at the configured limit.
func (s *Service) Report(result *match.Result) *MatchReport {
	limit := s.cfg.PreviewRows
	if limit <= 0 || limit > result.Table.Len() {
		limit = result.Table.Len()
	}
	return &MatchReport{
		Summary:   result.Summary,
		Mask:      result.Mask,
		Header:    result.Table.Header,
		Preview:   result.Table.Rows[:limit],
		Truncated: limit < result.Table.Len(),
	}
}
