package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/alumify/backend/internal/models"
	pgrepo "github.com/alumify/backend/internal/repositories/postgres"
	"github.com/alumify/backend/internal/storage"
	"github.com/alumify/backend/internal/utils"
)

// Export is a generated CSV document plus, when an archive bucket is
// configured, the stored object path.
type Export struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"-"`
	ArchivePath string `json:"archive_path,omitempty"`
}

type ExportService interface {
	// ExportRoster produces the full alumni database CSV.
	ExportRoster(ctx context.Context, actorID string) (*Export, error)
	// AlumniReport produces a single-alumni CSV report.
	AlumniReport(ctx context.Context, actorID, alumniID string) (*Export, error)
}

type exportService struct {
	store    *pgrepo.Store
	uploader storage.Uploader // optional archive sink
}

func NewExportService(store *pgrepo.Store, uploader storage.Uploader) ExportService {
	return &exportService{store: store, uploader: uploader}
}

var rosterHeader = []string{
	"ID", "Name", "Email", "Registration Date", "Mobile", "Civil Status", "Sex",
	"Address", "Region", "Province", "Degree", "Specialization", "University",
	"Year Graduated", "Honors", "Employment Status", "Occupation", "Business Line",
	"Work Location", "Job Level", "Salary", "Curriculum Relevance",
	"Survey Completed", "Survey Completion Date",
}

func (s *exportService) ExportRoster(ctx context.Context, actorID string) (*Export, error) {
	const op = "ExportService.ExportRoster"

	if actorID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "actor_id is required", nil)
	}

	rows, err := s.store.Alumni.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load alumni", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	now := time.Now().UTC()
	_ = w.Write([]string{"ALUMIFY - COMPLETE ALUMNI DATABASE EXPORT"})
	_ = w.Write([]string{fmt.Sprintf("Generated on: %s", now.Format("2006-01-02"))})
	_ = w.Write([]string{fmt.Sprintf("Total Records: %d", len(rows))})
	_ = w.Write(nil)
	_ = w.Write(rosterHeader)

	for _, r := range rows {
		_ = w.Write(rosterRecord(r))
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to encode csv", err)
	}

	out := &Export{
		FileName:    fmt.Sprintf("alumify-export-%s.csv", now.Format("20060102-150405")),
		ContentType: "text/csv",
		Data:        buf.Bytes(),
	}
	if err := s.archive(ctx, out); err != nil {
		return nil, utils.E(utils.CodeUnavailable, op, "failed to archive export", err)
	}

	if err := s.store.Activities.Append(ctx, &models.ActivityLog{
		UserID:       actorID,
		ActivityType: models.ActivityProfileUpdated,
		Description:  "Admin exported alumni database",
	}); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to record export", err)
	}
	return out, nil
}

func (s *exportService) AlumniReport(ctx context.Context, actorID, alumniID string) (*Export, error) {
	const op = "ExportService.AlumniReport"

	if actorID == "" || alumniID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "actor_id and alumni_id are required", nil)
	}

	row, err := s.store.Alumni.GetByID(ctx, alumniID)
	if err != nil {
		if err == utils.ErrNotFound {
			return nil, utils.E(utils.CodeNotFound, op, "alumni not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load alumni", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	now := time.Now().UTC()
	_ = w.Write([]string{"ALUMIFY - GRADUATE TRACER REPORT"})
	_ = w.Write([]string{fmt.Sprintf("Generated on: %s", now.Format("2006-01-02"))})
	_ = w.Write(nil)
	_ = w.Write(rosterHeader)
	_ = w.Write(rosterRecord(*row))
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to encode csv", err)
	}

	out := &Export{
		FileName:    fmt.Sprintf("alumni-report-%s-%s.csv", alumniID, now.Format("20060102")),
		ContentType: "text/csv",
		Data:        buf.Bytes(),
	}
	if err := s.archive(ctx, out); err != nil {
		return nil, utils.E(utils.CodeUnavailable, op, "failed to archive report", err)
	}

	if err := s.store.Activities.Append(ctx, &models.ActivityLog{
		UserID:       actorID,
		ActivityType: models.ActivityProfileUpdated,
		Description:  fmt.Sprintf("Admin generated report for %s", row.Name),
	}); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to record report", err)
	}
	return out, nil
}

func (s *exportService) archive(ctx context.Context, e *Export) error {
	if s.uploader == nil {
		return nil
	}
	path, err := s.uploader.Upload(ctx, "exports/"+e.FileName, e.ContentType, bytes.NewReader(e.Data))
	if err != nil {
		return err
	}
	e.ArchivePath = path
	return nil
}

func rosterRecord(r pgrepo.AlumniRow) []string {
	completed := "No"
	if r.SurveyCompleted {
		completed = "Yes"
	}
	completedAt := "N/A"
	if r.SurveyCompletedAt != nil {
		completedAt = r.SurveyCompletedAt.Format("2006-01-02")
	}
	return []string{
		r.ID, r.Name, r.Email, r.CreatedAt.Format("2006-01-02"),
		r.MobileNumber, r.CivilStatus, r.Sex,
		r.PermanentAddress, r.RegionOfOrigin, r.Province,
		r.Degree, r.Specialization, r.CollegeUniversity,
		r.YearGraduated, r.HonorsAwards,
		r.IsEmployed, r.PresentOccupation, r.BusinessLine,
		r.PlaceOfWork, r.JobLevelCurrent, r.InitialGrossMonthlyEarning,
		r.CurriculumRelevant, completed, completedAt,
	}
}
