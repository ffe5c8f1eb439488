package services

import (
	"context"
	"math"
	"time"

	"github.com/alumify/backend/internal/cache"
	"github.com/alumify/backend/internal/models"
	pgrepo "github.com/alumify/backend/internal/repositories/postgres"
	"github.com/alumify/backend/internal/utils"
)

// AnalyticsCacheKey holds the cached dashboard snapshot; survey writes
// invalidate it.
const AnalyticsCacheKey = "analytics:dashboard:v1"

const analyticsTTL = 5 * time.Minute

type AnalyticsOverview struct {
	TotalUsers       int64   `json:"total_users"`
	CompletedSurveys int64   `json:"completed_surveys"`
	EmploymentRate   float64 `json:"employment_rate"`
	ResponseRate     float64 `json:"response_rate"`
}

type Analytics struct {
	Overview           AnalyticsOverview           `json:"overview"`
	EmploymentStatus   []pgrepo.StatusCount        `json:"employment_status"`
	JobLevels          []pgrepo.JobLevelCount      `json:"job_levels"`
	GraduationYears    []pgrepo.GraduationYearStat `json:"graduation_years"`
	DegreePrograms     []pgrepo.DegreeProgramStat  `json:"degree_programs"`
	TopIndustries      []pgrepo.IndustryCount      `json:"top_industries"`
	SalaryDistribution []pgrepo.SalaryCount        `json:"salary_distribution"`
	Trends             []TrendPoint                `json:"trends"`
}

type TrendPoint struct {
	Year           string  `json:"year"`
	EmploymentRate float64 `json:"employment_rate"`
}

type AnalyticsService interface {
	Dashboard(ctx context.Context) (*Analytics, error)
}

type analyticsService struct {
	store *pgrepo.Store
	cache cache.Cache // optional
}

func NewAnalyticsService(store *pgrepo.Store, c cache.Cache) AnalyticsService {
	return &analyticsService{store: store, cache: c}
}

func (s *analyticsService) Dashboard(ctx context.Context) (*Analytics, error) {
	const op = "AnalyticsService.Dashboard"

	if s.cache != nil {
		var cached Analytics
		if hit, err := s.cache.GetJSON(ctx, AnalyticsCacheKey, &cached); err == nil && hit {
			return &cached, nil
		}
	}

	out, err := s.compute(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to compute analytics", err)
	}

	if s.cache != nil {
		// cache failures are not the dashboard's problem
		_ = s.cache.SetJSON(ctx, AnalyticsCacheKey, out, analyticsTTL)
	}
	return out, nil
}

func (s *analyticsService) compute(ctx context.Context) (*Analytics, error) {
	totalUsers, err := s.store.Alumni.CountUsers(ctx)
	if err != nil {
		return nil, err
	}
	completed, err := s.store.Alumni.CountCompletedSurveys(ctx)
	if err != nil {
		return nil, err
	}

	statusCounts, err := s.store.Alumni.EmploymentStatusCounts(ctx)
	if err != nil {
		return nil, err
	}
	jobLevels, err := s.store.Alumni.JobLevelCounts(ctx)
	if err != nil {
		return nil, err
	}
	gradYears, err := s.store.Alumni.GraduationYearStats(ctx)
	if err != nil {
		return nil, err
	}
	degrees, err := s.store.Alumni.DegreeProgramStats(ctx)
	if err != nil {
		return nil, err
	}
	industries, err := s.store.Alumni.TopIndustries(ctx, 10)
	if err != nil {
		return nil, err
	}
	salaries, err := s.store.Alumni.SalaryDistribution(ctx)
	if err != nil {
		return nil, err
	}

	var employed int64
	for i, sc := range statusCounts {
		if sc.Status == string(models.EmployedYes) {
			employed = sc.Count
		}
		// dashboard labels, not raw flags
		switch sc.Status {
		case string(models.EmployedYes):
			statusCounts[i].Status = "Employed"
		case string(models.EmployedNo):
			statusCounts[i].Status = "Unemployed"
		case string(models.EmployedNever):
			statusCounts[i].Status = "Never Employed"
		}
	}

	trends := make([]TrendPoint, 0, len(gradYears))
	for _, y := range gradYears {
		trends = append(trends, TrendPoint{Year: y.YearGraduated, EmploymentRate: y.EmploymentRate})
	}

	return &Analytics{
		Overview: AnalyticsOverview{
			TotalUsers:       totalUsers,
			CompletedSurveys: completed,
			EmploymentRate:   rate(employed, completed),
			ResponseRate:     rate(completed, totalUsers),
		},
		EmploymentStatus:   statusCounts,
		JobLevels:          jobLevels,
		GraduationYears:    gradYears,
		DegreePrograms:     degrees,
		TopIndustries:      industries,
		SalaryDistribution: salaries,
		Trends:             trends,
	}, nil
}

func rate(part, whole int64) float64 {
	if whole <= 0 {
		return 0
	}
	return math.Round(float64(part)/float64(whole)*1000) / 10
}
