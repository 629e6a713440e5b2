package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfreeman451/portscan/pkg/models"
)

func sampleReport(target string, start time.Time) *models.ScanReport {
	return &models.ScanReport{
		Target: target,
		OpenPorts: []models.PortResult{
			{Port: 22, Open: true, Service: "ssh"},
			{Port: 80, Open: true, Service: "http"},
		},
		Faults: []models.PortResult{
			{Port: 9000, Error: "connect: network is unreachable"},
		},
		TotalPorts:   100,
		ScannedPorts: 100,
		StartTime:    start,
		Duration:     2 * time.Second,
	}
}

func TestInMemoryStoreLatestReport(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryStore()

	_, err := s.LatestReport(ctx)
	require.ErrorIs(t, err, ErrNoReports)

	first := sampleReport("host-a", time.Now().Add(-time.Minute))
	second := sampleReport("host-b", time.Now())

	require.NoError(t, s.SaveReport(ctx, first))
	require.NoError(t, s.SaveReport(ctx, second))

	latest, err := s.LatestReport(ctx)
	require.NoError(t, err)
	assert.Equal(t, "host-b", latest.Target)

	reports, err := s.GetReports(ctx)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, "host-a", reports[0].Target)
}

func TestInMemoryStoreGetResults(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryStore()

	require.NoError(t, s.SaveReport(ctx, sampleReport("host-a", time.Now())))

	t.Run("no filter returns opens and faults", func(t *testing.T) {
		results, err := s.GetResults(ctx, nil)
		require.NoError(t, err)
		assert.Len(t, results, 3)
	})

	t.Run("filter by port", func(t *testing.T) {
		results, err := s.GetResults(ctx, &models.ResultFilter{Port: 22})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "ssh", results[0].Service)
	})

	t.Run("filter by open state", func(t *testing.T) {
		open := true
		results, err := s.GetResults(ctx, &models.ResultFilter{Open: &open})
		require.NoError(t, err)
		assert.Len(t, results, 2)
	})
}

func TestInMemoryStorePruneReports(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryStore()

	require.NoError(t, s.SaveReport(ctx, sampleReport("old", time.Now().Add(-2*time.Hour))))
	require.NoError(t, s.SaveReport(ctx, sampleReport("recent", time.Now())))

	require.NoError(t, s.PruneReports(ctx, time.Hour))

	reports, err := s.GetReports(ctx)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, "recent", reports[0].Target)
}

func TestInMemoryStoreHistoryCap(t *testing.T) {
	ctx := context.Background()
	s := &InMemoryStore{maxReports: 3}

	for i := 0; i < 5; i++ {
		require.NoError(t, s.SaveReport(ctx, sampleReport("host", time.Now())))
	}

	reports, err := s.GetReports(ctx)
	require.NoError(t, err)
	assert.Len(t, reports, 3)
}
