package postgres

import (
	"context"
	"errors"
	"testing"

	"piercing-service/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureSchema(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()
	db := sqlx.NewDb(mockDB, "sqlmock")

	for range schemaStatements {
		mock.ExpectExec(".*").WillReturnResult(sqlmock.NewResult(0, 0))
	}

	require.NoError(t, EnsureSchema(context.Background(), db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureSchema_Failure(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()
	db := sqlx.NewDb(mockDB, "sqlmock")

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS clients").WillReturnError(errors.New("permission denied"))

	err = EnsureSchema(context.Background(), db)
	assert.ErrorContains(t, err, "permission denied")
}

func TestConnectionString(t *testing.T) {
	cfg := config.PostgresConfig{
		DBname:   "studio",
		Username: "u",
		Password: "p",
		Host:     "db",
		Port:     "5433",
		SSLMode:  "require",
	}

	assert.Equal(t, "host=db port=5433 user=u password=p dbname=studio sslmode=require", ConnectionString(cfg))
}

func withMockOpen(t *testing.T) sqlmock.Sqlmock {
	t.Helper()
	mockDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	previous := openDB
	openDB = func(string) (*sqlx.DB, error) { return sqlx.NewDb(mockDB, "postgres"), nil }
	t.Cleanup(func() { openDB = previous })
	return mock
}

func TestConnectAndCreateDB(t *testing.T) {
	mock := withMockOpen(t)
	mock.ExpectPing()
	for range schemaStatements {
		mock.ExpectExec(".*").WillReturnResult(sqlmock.NewResult(0, 0))
	}

	db, err := ConnectAndCreateDB(config.PostgresConfig{})
	require.NoError(t, err)
	assert.NotNil(t, db)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConnectAndCreateDB_ClosesPoolOnFailure(t *testing.T) {
	t.Run("ping", func(t *testing.T) {
		mock := withMockOpen(t)
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))
		mock.ExpectClose()

		_, err := ConnectAndCreateDB(config.PostgresConfig{})
		assert.ErrorContains(t, err, "failed to ping target database")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("schema", func(t *testing.T) {
		mock := withMockOpen(t)
		mock.ExpectPing()
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS clients").WillReturnError(errors.New("permission denied"))
		mock.ExpectClose()

		_, err := ConnectAndCreateDB(config.PostgresConfig{})
		assert.ErrorContains(t, err, "permission denied")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
