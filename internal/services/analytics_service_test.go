package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alumify/backend/internal/models"
)

func TestAnalyticsService_Dashboard(t *testing.T) {
	store := newTestStore(t)
	surveys := NewSurveyService(store, nil)
	svc := NewAnalyticsService(store, nil)
	ctx := context.Background()

	employed := seedAlum(t, store, models.RoleUser)
	require.NoError(t, surveys.Submit(ctx, employed.ID, validSubmission()))

	jobless := seedAlum(t, store, models.RoleUser)
	sub := validSubmission()
	sub.Employment = EmploymentSection{IsEmployed: models.EmployedNo}
	sub.UnemploymentReasons = []string{"Further study"}
	require.NoError(t, surveys.Submit(ctx, jobless.ID, sub))

	seedAlum(t, store, models.RoleUser) // non-respondent
	seedAlum(t, store, models.RoleAdmin)

	out, err := svc.Dashboard(ctx)
	require.NoError(t, err)

	assert.EqualValues(t, 3, out.Overview.TotalUsers)
	assert.EqualValues(t, 2, out.Overview.CompletedSurveys)
	assert.InDelta(t, 50.0, out.Overview.EmploymentRate, 0.01)
	assert.InDelta(t, 66.7, out.Overview.ResponseRate, 0.01)

	// raw flags are mapped to dashboard labels
	labels := map[string]int64{}
	for _, sc := range out.EmploymentStatus {
		labels[sc.Status] = sc.Count
	}
	assert.EqualValues(t, 1, labels["Employed"])
	assert.EqualValues(t, 1, labels["Unemployed"])

	require.Len(t, out.Trends, 1)
	assert.Equal(t, "2022", out.Trends[0].Year)
	assert.InDelta(t, 50.0, out.Trends[0].EmploymentRate, 0.01)

	require.Len(t, out.SalaryDistribution, 1)
	require.Len(t, out.TopIndustries, 1)
}

func TestAnalyticsService_Dashboard_EmptyStore(t *testing.T) {
	store := newTestStore(t)
	svc := NewAnalyticsService(store, nil)

	out, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Zero(t, out.Overview.TotalUsers)
	assert.Zero(t, out.Overview.EmploymentRate)
	assert.Zero(t, out.Overview.ResponseRate)
}

func TestAnalyticsService_Dashboard_UsesCache(t *testing.T) {
	store := newTestStore(t)
	c := newFakeCache()
	surveys := NewSurveyService(store, c)
	svc := NewAnalyticsService(store, c)
	ctx := context.Background()

	u := seedAlum(t, store, models.RoleUser)
	require.NoError(t, surveys.Submit(ctx, u.ID, validSubmission()))

	first, err := svc.Dashboard(ctx)
	require.NoError(t, err)
	_, cached := c.data[AnalyticsCacheKey]
	assert.True(t, cached)

	// new data is invisible until the snapshot is invalidated
	seedAlum(t, store, models.RoleUser)
	second, err := svc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.Overview.TotalUsers, second.Overview.TotalUsers)

	require.NoError(t, c.Del(ctx, AnalyticsCacheKey))
	third, err := svc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.Overview.TotalUsers+1, third.Overview.TotalUsers)
}
