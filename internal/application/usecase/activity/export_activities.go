package activity

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/dimasadrian/portfolio/internal/domain/activity"
	"github.com/dimasadrian/portfolio/pkg/apperror"
	"github.com/dimasadrian/portfolio/pkg/logger"
)

const exportSheet = "Activities"

var exportHeaders = []string{"Title", "Type", "Organization", "Role", "Start Date", "End Date", "Period", "Description", "Image URL"}

type ExportActivitiesUseCase struct {
	activityRepo activity.Repository
	logger       logger.Logger
}

func NewExportActivitiesUseCase(repo activity.Repository, log logger.Logger) *ExportActivitiesUseCase {
	return &ExportActivitiesUseCase{activityRepo: repo, logger: log}
}

// Execute renders every activity into an XLSX workbook.
func (uc *ExportActivitiesUseCase) Execute(ctx context.Context) (*bytes.Buffer, error) {
	activities, err := uc.activityRepo.List(ctx, activity.Filter{})
	if err != nil {
		return nil, fmt.Errorf("list activities failed: %w", err)
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			uc.logger.Error("Failed to close workbook", err)
		}
	}()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, apperror.NewInternal("failed to prepare sheet", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, apperror.NewInternal("failed to create style", err)
	}

	for i, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(exportSheet, cell, h)
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(exportHeaders), 1)
	f.SetCellStyle(exportSheet, "A1", lastHeader, headerStyle)

	for r, a := range activities {
		row := []any{
			a.Title,
			string(a.Type),
			deref(a.Organization),
			deref(a.Role),
			a.StartDate.Format(activity.DateLayout),
			"",
			a.Period(),
			deref(a.Description),
			deref(a.ImageURL),
		}
		if a.EndDate != nil {
			row[5] = a.EndDate.Format(activity.DateLayout)
		}
		cell, _ := excelize.CoordinatesToCellName(1, r+2)
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, apperror.NewInternal("failed to write row", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, apperror.NewInternal("failed to render workbook", err)
	}
	return buf, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
