package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var runColumns = []string{"run_id", "season_type", "week", "season_year", "game_count", "files", "created_at"}

func newMockRepo(t *testing.T) (*RunRepository, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return NewRunRepository(&Database{conn: conn}), mock
}

func TestRunRepositoryCreate(t *testing.T) {
	repo, mock := newMockRepo(t)
	created := time.Date(2025, 9, 10, 12, 0, 0, 0, time.UTC)
	files := []string{"W02_ARI_at_CAR.txt", "W02_KC_at_PHI.txt"}

	mock.ExpectQuery("INSERT INTO sheet_runs").
		WithArgs("run-1", "reg", 2, 2025, 2, pq.Array(files)).
		WillReturnRows(sqlmock.NewRows(runColumns).
			AddRow("run-1", "reg", 2, 2025, 2, `{W02_ARI_at_CAR.txt,W02_KC_at_PHI.txt}`, created))

	stored, err := repo.Create(context.Background(), &Run{
		RunID:      "run-1",
		SeasonType: SeasonRegular,
		Week:       2,
		SeasonYear: 2025,
		GameCount:  2,
		Files:      files,
	})
	require.NoError(t, err)
	assert.Equal(t, files, stored.Files)
	assert.Equal(t, SeasonRegular, stored.SeasonType)
	assert.Equal(t, created, stored.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRunRepositoryCreateWrapsError(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery("INSERT INTO sheet_runs").WillReturnError(errors.New("duplicate key"))

	_, err := repo.Create(context.Background(), &Run{RunID: "run-1", SeasonType: SeasonRegular, Week: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert run")
}

func TestRunRepositoryRecent(t *testing.T) {
	repo, mock := newMockRepo(t)
	newer := time.Date(2025, 9, 17, 12, 0, 0, 0, time.UTC)
	older := time.Date(2025, 9, 10, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery("FROM sheet_runs").
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows(runColumns).
			AddRow("run-2", "post", 19, 2025, 1, `{"W19_AWAY_at_HOME.txt"}`, newer).
			AddRow("run-1", "reg", 2, 2025, 0, `{}`, older))

	runs, err := repo.Recent(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, SeasonPost, runs[0].SeasonType)
	assert.Equal(t, []string{"W19_AWAY_at_HOME.txt"}, runs[0].Files)
	assert.Empty(t, runs[1].Files)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRunRepositoryGetByIDNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery("WHERE run_id").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(runColumns))

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDatabaseHealthCheck(t *testing.T) {
	conn, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer conn.Close()
	db := &Database{conn: conn}

	mock.ExpectPing()
	assert.NoError(t, db.HealthCheck(context.Background()))

	mock.ExpectPing().WillReturnError(errors.New("connection reset"))
	assert.Error(t, db.HealthCheck(context.Background()))
}
