package odatnote

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/heartmarshall/srs-review-backend/internal/domain"
	"github.com/heartmarshall/srs-review-backend/internal/service/study/ladder"
)

// exportSheet is the default sheet of a new workbook.
const exportSheet = "Sheet1"

var exportHeader = []any{
	"Item", "Type", "Mistakes", "Last mistake", "Stage", "Label",
	"Review from", "Review until", "Attempts", "Correct", "Incorrect",
}

// Export writes the notes of one item type as an xlsx workbook to w. The
// rows are read from one snapshot.
func (s *Service) Export(ctx context.Context, itemType domain.ItemType, w io.Writer) error {
	var entries []domain.WrongAnswerEntry
	err := s.tx.RunReadOnly(ctx, func(ctx context.Context) error {
		var err error
		entries, err = s.List(ctx, itemType)
		return err
	})
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetRow(exportSheet, "A1", &exportHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	now := s.clock.Now()
	for i, e := range entries {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		row := exportRow(e, now)
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}

	s.log.InfoContext(ctx, "wrong answers exported",
		slog.String("type", string(itemType)),
		slog.Int("rows", len(entries)),
	)
	return nil
}

func exportRow(e domain.WrongAnswerEntry, now time.Time) []any {
	row := []any{
		e.ItemID, string(e.ItemType), e.TotalWrongAttempts, formatTime(&e.WrongAt),
		"", "", formatTime(e.ReviewWindowStart), formatTime(e.ReviewWindowEnd), 0, 0, 0,
	}
	if e.Card != nil {
		row[4] = e.Card.Stage
		row[5] = string(ladder.Classify(e.Card, now))
	}
	if e.Stats != nil {
		row[8] = e.Stats.TotalAttempts
		row[9] = e.Stats.CorrectCount
		row[10] = e.Stats.IncorrectCount
	}
	return row
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
