package imports

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"pdp-backend/internal/aggregate"
	"pdp-backend/internal/ingest"
	"pdp-backend/internal/models"
	"pdp-backend/internal/snapshots"

	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

// ErrUnreadableFile means the report could not be opened or parsed as a
// workbook at all.
var ErrUnreadableFile = errors.New("could not read report file")

// Service turns a raw report into a persisted snapshot: resolve columns,
// normalize rows, fold aggregates, write atomically through the store.
type Service struct {
	Store *snapshots.Service
	// Matchers overrides the column keyword tables; nil uses the defaults.
	Matchers []ingest.Matcher
	// SheetNames overrides the sheet priority list; nil uses the defaults.
	SheetNames []string
}

// ImportResult summarizes one successful import.
type ImportResult struct {
	BaselineID     uint    `json:"baseline_id"`
	Sheet          string  `json:"sheet"`
	Agents         int     `json:"agents"`
	Offices        int     `json:"offices"`
	SkippedRows    int     `json:"skipped_rows"`
	CurrentTotal   float64 `json:"current_total"`
	FollowingTotal float64 `json:"following_total"`
	GrandTotal     float64 `json:"grand_total"`
}

// ImportFile imports the report at path. A nil baselineID auto-creates a
// baseline named after the import time.
func (s *Service) ImportFile(ctx context.Context, path string, baselineID *uint) (*ImportResult, error) {
	table, err := ingest.OpenTable(path, s.sheetNames())
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("Could not read report file")
		return nil, ErrUnreadableFile
	}
	return s.importTable(ctx, table, baseName(path), baselineID)
}

// ImportReader imports a report from a stream (e.g. an uploaded file).
func (s *Service) ImportReader(ctx context.Context, r io.Reader, filename string, baselineID *uint) (*ImportResult, error) {
	table, err := ingest.ReadTable(r, s.sheetNames())
	if err != nil {
		log.Error().Err(err).Str("file", filename).Msg("Could not read report file")
		return nil, ErrUnreadableFile
	}
	return s.importTable(ctx, table, filename, baselineID)
}

func (s *Service) importTable(ctx context.Context, table *ingest.Table, filename string, baselineID *uint) (*ImportResult, error) {
	cols, err := ingest.ResolveColumns(table.Headers, s.matchers())
	if err != nil {
		return nil, err
	}

	importDate := time.Now()
	records := make([]models.AgentRecord, 0, len(table.Rows))
	skipped := 0
	for _, row := range table.Rows {
		rec, ok := ingest.NormalizeRow(row, cols, importDate)
		if !ok {
			skipped++
			continue
		}
		records = append(records, rec)
	}

	offices, company := aggregate.Fold(records, importDate)

	var id uint
	if baselineID != nil {
		id = *baselineID
	} else {
		name := fmt.Sprintf("Import_%s", importDate.Format("20060102_150405"))
		baseline, err := s.Store.CreateBaseline(ctx, name, "Auto-imported from "+filename)
		if err != nil {
			return nil, err
		}
		id = baseline.ID
	}

	source, _ := json.Marshal(map[string]interface{}{
		"file":         filename,
		"sheet":        table.Sheet,
		"rows":         len(table.Rows),
		"skipped_rows": skipped,
	})

	if err := s.Store.ImportSnapshot(ctx, id, records, offices, company, datatypes.JSON(source)); err != nil {
		return nil, err
	}

	log.Info().
		Uint("baseline_id", id).
		Str("file", filename).
		Str("sheet", table.Sheet).
		Int("agents", len(records)).
		Int("offices", len(offices)).
		Float64("grand_total", company.GrandTotal).
		Msg("Imported report")

	return &ImportResult{
		BaselineID:     id,
		Sheet:          table.Sheet,
		Agents:         len(records),
		Offices:        len(offices),
		SkippedRows:    skipped,
		CurrentTotal:   company.TotalCurrentMonth,
		FollowingTotal: company.TotalFollowingMonth,
		GrandTotal:     company.GrandTotal,
	}, nil
}

func (s *Service) matchers() []ingest.Matcher {
	if len(s.Matchers) > 0 {
		return s.Matchers
	}
	return ingest.DefaultMatchers()
}

func (s *Service) sheetNames() []string {
	if len(s.SheetNames) > 0 {
		return s.SheetNames
	}
	return ingest.DefaultSheetNames()
}

func baseName(path string) string {
	return filepath.Base(path)
}
