package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kibe0711-png/farm-erp-demo-sub001/pkg/compliance/service"
)

func TestWorkbook(t *testing.T) {
	rate := 50
	resp := &service.Response{
		Entries: []service.Entry{
			{Type: "labor", Farm: "Upper Farm", PhaseID: "BLK-01", CropCode: "FB", Task: "Weeding", DayOfWeek: 2, Status: "done"},
			{Type: "nutrition", Farm: "Upper Farm", PhaseID: "BLK-01", CropCode: "FB", Task: "CAN", DayOfWeek: 0, Status: "missed"},
		},
		Summary: service.Summary{Total: 2, Done: 1, Missed: 1, ComplianceRate: &rate},
		Source:  "live",
	}
	ws := time.Date(2026, 1, 26, 0, 0, 0, 0, time.UTC)

	f, err := Workbook(resp, ws)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Type", got)

	got, err = f.GetCellValue(sheet, "E2")
	require.NoError(t, err)
	assert.Equal(t, "Weeding", got)

	got, err = f.GetCellValue(sheet, "F2")
	require.NoError(t, err)
	assert.Equal(t, "Wednesday", got)

	got, err = f.GetCellValue(sheet, "G3")
	require.NoError(t, err)
	assert.Equal(t, "missed", got)

	// summary block starts two rows below the table
	got, err = f.GetCellValue(sheet, "A5")
	require.NoError(t, err)
	assert.Equal(t, "Week starting", got)
	got, err = f.GetCellValue(sheet, "B5")
	require.NoError(t, err)
	assert.Equal(t, "2026-01-26", got)

	got, err = f.GetCellValue(sheet, "B12")
	require.NoError(t, err)
	assert.Equal(t, "50%", got)
}

func TestWorkbook_EmptyWeek(t *testing.T) {
	resp := &service.Response{Entries: []service.Entry{}, Summary: service.Summary{}, Source: "live"}
	f, err := Workbook(resp, time.Date(2026, 1, 26, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetCellValue(sheet, "B10")
	require.NoError(t, err)
	assert.Equal(t, "n/a", got, "no countable entries means no rate")
}
