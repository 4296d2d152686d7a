package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/airlinehub/internal/app/repositories"
	"github.com/yigit/airlinehub/internal/app/services"
	"github.com/yigit/airlinehub/internal/db"
	"github.com/yigit/airlinehub/internal/pkg/apperrors"
	"github.com/yigit/airlinehub/internal/pkg/metrics"
	"github.com/yigit/airlinehub/internal/testutil"
)

type fixture struct {
	service  services.AirlineService
	repo     *repositories.AirlineRepository
	metrics  *metrics.Metrics
	airports []int64
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureOn(t, testutil.NewSQLite(t))
}

func newFixtureOn(t *testing.T, database *db.Database) *fixture {
	t.Helper()
	repo := repositories.NewAirlineRepository(database)
	m := metrics.NewMetrics("test")
	return &fixture{
		service:  services.NewAirlineService(database, repo, m),
		repo:     repo,
		metrics:  m,
		airports: testutil.InsertAirports(t, database, "ATL", "JFK", "LAX"),
	}
}

func TestCreateAirline_ThenListContainsLinks(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.service.CreateAirline(ctx, "Delta", f.airports[:2])
	require.NoError(t, err)
	assert.Equal(t, "Delta", created.Name)
	assert.Equal(t, f.airports[:2], created.AirportIDs())

	airlines, err := f.service.ListAirlines(ctx)
	require.NoError(t, err)
	require.Len(t, airlines, 1)
	assert.Equal(t, created.ID, airlines[0].ID)
	assert.Equal(t, f.airports[:2], airlines[0].AirportIDs())
}

func TestCreateAirline_RoundTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.service.CreateAirline(ctx, "  United  ", []int64{f.airports[2], f.airports[2]})
	require.NoError(t, err)

	got, err := f.service.GetAirline(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "United", got.Name)
	assert.Equal(t, created.AirlineAirport, got.AirlineAirport)
	assert.Equal(t, []int64{f.airports[2], f.airports[2]}, got.AirportIDs(), "duplicate links are kept")
}

func TestCreateAirline_Validation(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.CreateAirline(context.Background(), "   ", nil)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCreateAirline_UnknownAirportLeavesNothingBehind(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.service.CreateAirline(ctx, "Ghost", []int64{f.airports[0], 9999})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrAirportReference)

	airlines, err := f.service.ListAirlines(ctx)
	require.NoError(t, err)
	assert.Empty(t, airlines)
}

func TestGetAirline_NotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.service.CreateAirline(ctx, "Delta", nil)
	require.NoError(t, err)

	for _, id := range []int64{created.ID + 1000, 0, -1} {
		_, err := f.service.GetAirline(ctx, id)
		assert.ErrorIs(t, err, apperrors.ErrAirlineNotFound, "id %d", id)
		assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	}
}

func TestUpdateAirline_ReplacesLinks(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.service.CreateAirline(ctx, "Delta", f.airports[:2])
	require.NoError(t, err)

	updated, err := f.service.UpdateAirline(ctx, created.ID, "Delta Air Lines", f.airports[2:])
	require.NoError(t, err)
	assert.Equal(t, "Delta Air Lines", updated.Name)
	assert.Equal(t, f.airports[2:], updated.AirportIDs())

	links, err := f.repo.ListLinks(ctx, created.ID)
	require.NoError(t, err)
	assert.Len(t, links, 1)
}

func TestUpdateAirline_EmptyListClearsLinks(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.service.CreateAirline(ctx, "Delta", f.airports)
	require.NoError(t, err)

	updated, err := f.service.UpdateAirline(ctx, created.ID, "Delta", nil)
	require.NoError(t, err)
	assert.Empty(t, updated.AirlineAirport)
}

func TestUpdateAirline_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.UpdateAirline(context.Background(), 4242, "Nobody", nil)
	assert.ErrorIs(t, err, apperrors.ErrAirlineNotFound)
}

func TestUpdateAirline_FailedInsertKeepsOldLinks(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.service.CreateAirline(ctx, "Delta", f.airports[:2])
	require.NoError(t, err)

	_, err = f.service.UpdateAirline(ctx, created.ID, "Renamed", []int64{9999})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrAirportReference)

	got, err := f.service.GetAirline(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Delta", got.Name, "rename rolled back")
	assert.Equal(t, f.airports[:2], got.AirportIDs(), "old links kept")
}

func TestDeleteAirline_RemovesAirlineAndLinks(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.service.CreateAirline(ctx, "Delta", f.airports)
	require.NoError(t, err)

	require.NoError(t, f.service.DeleteAirline(ctx, created.ID))

	_, err = f.service.GetAirline(ctx, created.ID)
	assert.ErrorIs(t, err, apperrors.ErrAirlineNotFound)

	links, err := f.repo.ListLinks(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, links)
}

func TestDeleteAirline_MissingIsNotAnError(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	assert.NoError(t, f.service.DeleteAirline(ctx, 12345))
	assert.NoError(t, f.service.DeleteAirline(ctx, 0))
}

// SQLite runs on a single connection, so here the two calls are serialized
// and only the result contract is checked. The Postgres variant in
// airline_service_postgres_test.go exercises the row lock.
func TestConcurrentUpdateAndDelete_LeavesNoOrphanLinks(t *testing.T) {
	raceUpdateAndDelete(t, newFixture(t), 20)
}

// raceUpdateAndDelete runs an update and a delete of the same airline concurrently.
// The delete must always succeed and leave neither the airline nor any of its links.
func raceUpdateAndDelete(t *testing.T, f *fixture, rounds int) {
	t.Helper()
	ctx := context.Background()

	for round := 0; round < rounds; round++ {
		created, err := f.service.CreateAirline(ctx, "Delta", f.airports[:2])
		require.NoError(t, err)

		var wg sync.WaitGroup
		var updateErr, deleteErr error
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, updateErr = f.service.UpdateAirline(ctx, created.ID, "Delta", f.airports)
		}()
		go func() {
			defer wg.Done()
			deleteErr = f.service.DeleteAirline(ctx, created.ID)
		}()
		wg.Wait()

		require.NoError(t, deleteErr)
		if updateErr != nil {
			assert.True(t, errors.Is(updateErr, apperrors.ErrAirlineNotFound), "update lost the race: %v", updateErr)
		}

		_, err = f.service.GetAirline(ctx, created.ID)
		assert.ErrorIs(t, err, apperrors.ErrAirlineNotFound)

		orphans, err := f.repo.CountOrphanLinks(ctx)
		require.NoError(t, err)
		assert.Zero(t, orphans, "round %d", round)
	}
}

func TestAirportService_ListAirports(t *testing.T) {
	database := testutil.NewSQLite(t)
	ids := testutil.InsertAirports(t, database, "ORD", "DFW")
	service := services.NewAirportService(repositories.NewAirportRepository(database))

	airports, err := service.ListAirports(context.Background())
	require.NoError(t, err)
	require.Len(t, airports, 2)
	assert.Equal(t, ids[0], airports[0].ID)
	assert.Equal(t, "DFW", airports[1].Code)
}
