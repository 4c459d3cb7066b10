// Package export renders compliance responses as spreadsheets for the
// agronomy office, which still audits on paper printouts.
package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/kibe0711-png/farm-erp-demo-sub001/pkg/compliance/service"
	"github.com/kibe0711-png/farm-erp-demo-sub001/pkg/week"
)

const sheet = "Compliance"

var headers = []string{"Type", "Farm", "Phase", "Crop", "Task", "Day", "Status"}

// Workbook builds an .xlsx with one row per compliance entry and a summary
// block underneath. Caller owns closing the file.
func Workbook(resp *service.Response, weekStart time.Time) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("export: rename sheet: %w", err)
	}

	if err := setRow(f, 1, toAny(headers)); err != nil {
		return nil, err
	}
	for i, e := range resp.Entries {
		vals := []any{e.Type, e.Farm, e.PhaseID, e.CropCode, e.Task, week.DayName(e.DayOfWeek), e.Status}
		if err := setRow(f, i+2, vals); err != nil {
			return nil, err
		}
	}

	base := len(resp.Entries) + 3
	sum := resp.Summary
	rate := "n/a"
	if sum.ComplianceRate != nil {
		rate = fmt.Sprintf("%d%%", *sum.ComplianceRate)
	}
	src := resp.Source
	if resp.SnapshotAt != nil {
		src = fmt.Sprintf("snapshot (%s)", resp.SnapshotAt.Format(time.RFC3339))
	}
	lines := [][]any{
		{"Week starting", week.Date(weekStart).Format("2006-01-02")},
		{"Source", src},
		{"Total", sum.Total},
		{"Done", sum.Done},
		{"Missed", sum.Missed},
		{"Pending", sum.Pending},
		{"Upcoming", sum.Upcoming},
		{"Compliance rate", rate},
	}
	for i, line := range lines {
		if err := setRow(f, base+i, line); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func setRow(f *excelize.File, row int, vals []any) error {
	for col, v := range vals {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("export: cell name: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("export: set cell %s: %w", cell, err)
		}
	}
	return nil
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
