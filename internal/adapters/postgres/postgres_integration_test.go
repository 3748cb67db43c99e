//go:build integration

package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/alifrahmanhakim/AOC-RBS/internal/domain"
	"github.com/alifrahmanhakim/AOC-RBS/internal/ports"
)

func startPostgres(t *testing.T) *DB {
	t.Helper()
	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_DB":       "rbs_test",
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "testpass",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	url := fmt.Sprintf("postgres://postgres:testpass@%s:%s/rbs_test?sslmode=disable", host, port.Port())
	db, err := Connect(ctx, url)
	require.NoError(t, err)
	t.Cleanup(db.Close)
	require.NoError(t, db.Migrate(ctx))
	return db
}

func TestOperatorRepository(t *testing.T) {
	db := startPostgres(t)
	ctx := context.Background()
	var _ ports.OperatorRepository = db
	var _ ports.JobRepository = db

	day := func(d int) time.Time { return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC) }
	econ := 2.0
	op := domain.Operator{
		ID:          uuid.NewString(),
		Name:        "Pelita Air",
		AOCNumber:   "AOC/121-008",
		Category:    domain.OperatorScheduled,
		LastUpdated: day(1),
		Inputs:      domain.DefaultInputs(),
		RBS:         domain.RbsResult{CategoryKey: "5A", IndicatorLevel: 5, ExposureLevel: "A", SuggestedCycleMonths: 6, Zone: domain.ZoneMedium},
		Legacy:      domain.LegacyRisk{Score: 4, Level: domain.RiskLow},
		Findings: []domain.SurveillanceFinding{
			{ID: uuid.NewString(), DateAdded: day(1), Finding: "a", Category: domain.FindingLevel2, TargetCompletionDate: day(31)},
		},
		EconomicIndicatorScore: &econ,
		History:                domain.NewHistory(domain.RiskIndicatorHistoryEntry{Date: day(1), TechnicalIndicator: 5, ExposureLevel: "A", EconomicIndicator: 2}),
	}
	require.NoError(t, db.Create(ctx, op))

	got, err := db.Get(ctx, op.ID)
	require.NoError(t, err)
	assert.Equal(t, op.Name, got.Name)
	assert.Equal(t, op.Inputs, got.Inputs)
	assert.Equal(t, op.RBS, got.RBS)
	require.Len(t, got.Findings, 1)
	assert.Equal(t, op.Findings[0].TargetCompletionDate, got.Findings[0].TargetCompletionDate.UTC())
	require.NotNil(t, got.EconomicIndicatorScore)
	assert.Equal(t, 2.0, *got.EconomicIndicatorScore)
	assert.Equal(t, 1, got.History.Len())

	got.Findings[0].IsCompleted = true
	got.RBS.CategoryKey = "4A"
	got.SurveillanceLogs = []domain.SurveillanceLogItem{{ID: "l1", PredefinedAreaID: "qms-1", Status: domain.LogDone}}
	require.NoError(t, db.Save(ctx, got, &domain.RiskIndicatorHistoryEntry{Date: day(10), TechnicalIndicator: 4, ExposureLevel: "A"}))

	again, err := db.Get(ctx, op.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryKey("4A"), again.RBS.CategoryKey)
	assert.True(t, again.Findings[0].IsCompleted)
	assert.Len(t, again.SurveillanceLogs, 1)
	assert.Equal(t, 2, again.History.Len())

	h, err := db.History(ctx, op.ID, day(5), time.Time{})
	require.NoError(t, err)
	require.Len(t, h, 1)
	assert.Equal(t, domain.IndicatorLevel(4), h[0].TechnicalIndicator)

	_, err = db.Pool.Exec(ctx, `UPDATE risk_indicator_history SET performance_score = 1`)
	assert.Error(t, err)
	_, err = db.Pool.Exec(ctx, `DELETE FROM risk_indicator_history WHERE operator_id = $1`, op.ID)
	assert.Error(t, err)
	h, err = db.History(ctx, op.ID, time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Len(t, h, 2)

	_, err = db.Get(ctx, uuid.NewString())
	assert.ErrorIs(t, err, ports.ErrNotFound)
	_, err = db.Get(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, ports.ErrNotFound)
	assert.ErrorIs(t, db.Save(ctx, domain.Operator{ID: uuid.NewString()}, nil), ports.ErrNotFound)

	ids, err := db.ListIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{op.ID}, ids)
}

func TestJobRepository(t *testing.T) {
	db := startPostgres(t)
	ctx := context.Background()

	opID := uuid.NewString()
	require.NoError(t, db.Create(ctx, domain.Operator{ID: opID, Name: "x", Inputs: domain.DefaultInputs(), LastUpdated: time.Now()}))

	first, err := db.Enqueue(ctx, opID)
	require.NoError(t, err)
	second, err := db.Enqueue(ctx, opID)
	require.NoError(t, err)

	job, found, err := db.ClaimNext(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, first, job.ID)
	assert.Equal(t, ports.JobRunning, job.Status)
	assert.Equal(t, 1, job.Attempts)

	started, err := db.StartJob(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, ports.JobRunning, started.Status)
	_, err = db.StartJob(ctx, second)
	assert.ErrorIs(t, err, ports.ErrJobNotQueued)

	_, found, err = db.ClaimNext(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, db.MarkCompleted(ctx, first))
	require.NoError(t, db.MarkFailed(ctx, second, "boom"))
	j, err := db.Job(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, ports.JobFailed, j.Status)
	assert.Equal(t, "boom", j.Error)

	_, err = db.Job(ctx, uuid.NewString())
	assert.ErrorIs(t, err, ports.ErrNotFound)
}
