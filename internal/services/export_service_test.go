package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alumify/backend/internal/models"
	"github.com/alumify/backend/internal/utils"
)

func parseCSV(t *testing.T, data []byte) [][]string {
	t.Helper()
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	require.NoError(t, err)
	return records
}

func TestExportService_ExportRoster(t *testing.T) {
	store := newTestStore(t)
	surveys := NewSurveyService(store, nil)
	svc := NewExportService(store, nil)
	ctx := context.Background()

	admin := seedAlum(t, store, models.RoleAdmin)
	u := seedAlum(t, store, models.RoleUser)
	require.NoError(t, surveys.Submit(ctx, u.ID, validSubmission()))
	seedAlum(t, store, models.RoleUser) // pending respondent still exported

	out, err := svc.ExportRoster(ctx, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, "text/csv", out.ContentType)
	assert.Contains(t, out.FileName, "alumify-export-")
	assert.Empty(t, out.ArchivePath)

	records := parseCSV(t, out.Data)
	// preamble, header, then one line per alumni; the reader drops the
	// blank separator line
	assert.Equal(t, "ALUMIFY - COMPLETE ALUMNI DATABASE EXPORT", records[0][0])
	assert.Contains(t, records[2][0], "Total Records: 2")
	assert.Equal(t, rosterHeader, records[3])
	require.Len(t, records, 6)

	var completedLine []string
	for _, rec := range records[4:] {
		if rec[0] == u.ID {
			completedLine = rec
		}
	}
	require.NotNil(t, completedLine)
	assert.Equal(t, "Maria Clara", completedLine[1])
	assert.Equal(t, "Yes", completedLine[22])

	assert.Contains(t, recentDescriptions(t, store), "Admin exported alumni database")
}

func TestExportService_ExportRoster_Archives(t *testing.T) {
	store := newTestStore(t)
	svc := NewExportService(store, newFakeUploader())
	ctx := context.Background()

	admin := seedAlum(t, store, models.RoleAdmin)
	seedAlum(t, store, models.RoleUser)

	out, err := svc.ExportRoster(ctx, admin.ID)
	require.NoError(t, err)
	assert.Contains(t, out.ArchivePath, "fake://bucket/exports/")
}

func TestExportService_ExportRoster_ArchiveFailure(t *testing.T) {
	store := newTestStore(t)
	up := newFakeUploader()
	up.err = errors.New("bucket gone")
	svc := NewExportService(store, up)

	admin := seedAlum(t, store, models.RoleAdmin)

	_, err := svc.ExportRoster(context.Background(), admin.ID)
	assert.True(t, utils.IsCode(err, utils.CodeUnavailable))
}

func TestExportService_AlumniReport(t *testing.T) {
	store := newTestStore(t)
	surveys := NewSurveyService(store, nil)
	svc := NewExportService(store, nil)
	ctx := context.Background()

	admin := seedAlum(t, store, models.RoleAdmin)
	u := seedAlum(t, store, models.RoleUser)
	require.NoError(t, surveys.Submit(ctx, u.ID, validSubmission()))

	out, err := svc.AlumniReport(ctx, admin.ID, u.ID)
	require.NoError(t, err)
	assert.Contains(t, out.FileName, u.ID)

	records := parseCSV(t, out.Data)
	assert.Equal(t, "ALUMIFY - GRADUATE TRACER REPORT", records[0][0])
	assert.Equal(t, rosterHeader, records[2])
	require.Len(t, records, 4)
	assert.Equal(t, "Maria Clara", records[3][1])

	assert.Contains(t, recentDescriptions(t, store), "Admin generated report for Maria Clara")
}

func TestExportService_AlumniReport_NotFound(t *testing.T) {
	store := newTestStore(t)
	svc := NewExportService(store, nil)
	admin := seedAlum(t, store, models.RoleAdmin)

	_, err := svc.AlumniReport(context.Background(), admin.ID, "missing")
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}
