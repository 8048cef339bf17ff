package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var piercingColumns = []string{
	"record_id", "client_id", "piercing_type", "category", "price", "date_pierced", "downsize_due_date",
}

func TestGetPiercingsByClientID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPiercingRepository(db)
	_, piercing := createTestRecords()

	mock.ExpectQuery("SELECT \\* FROM piercings WHERE client_id = \\$1").
		WithArgs(piercing.ClientID).
		WillReturnRows(sqlmock.NewRows(piercingColumns).AddRow(
			piercing.RecordID.String(), piercing.ClientID.String(), "helix", "default", "90.00",
			piercing.DatePierced, *piercing.DownsizeDueDate,
		))

	piercings, err := repo.GetPiercingsByClientID(context.Background(), piercing.ClientID)
	require.NoError(t, err)
	require.Len(t, piercings, 1)
	assert.True(t, decimal.NewFromInt(90).Equal(piercings[0].Price))
	require.NotNil(t, piercings[0].DownsizeDueDate)
	assert.True(t, piercing.DownsizeDueDate.Equal(*piercings[0].DownsizeDueDate))
}

func TestGetPiercingsByClientID_NullDownsize(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPiercingRepository(db)
	_, piercing := createTestRecords()

	mock.ExpectQuery("SELECT \\* FROM piercings").
		WillReturnRows(sqlmock.NewRows(piercingColumns).AddRow(
			piercing.RecordID.String(), piercing.ClientID.String(), "set of earlobes", "earlobe", "80",
			piercing.DatePierced, nil,
		))

	piercings, err := repo.GetPiercingsByClientID(context.Background(), piercing.ClientID)
	require.NoError(t, err)
	require.Len(t, piercings, 1)
	assert.Nil(t, piercings[0].DownsizeDueDate)
}

func TestGetDownsizesDueBetween(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPiercingRepository(db)
	from := time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)

	mock.ExpectQuery("downsize_due_date >= \\$1 AND downsize_due_date < \\$2").
		WithArgs(from, to).
		WillReturnError(errors.New("timeout"))

	_, err := repo.GetDownsizesDueBetween(context.Background(), from, to)
	assert.ErrorContains(t, err, "failed to get due downsizes")
	assert.NoError(t, mock.ExpectationsWereMet())
}
