package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suhas152/KUBERNETES-IMPLEMENTATION/internal/model"
	"github.com/xuri/excelize/v2"
)

func TestWriteBookingsXLSX(t *testing.T) {
	bookings := []*model.Booking{
		{
			ID:              1,
			StudentID:       10,
			TutorID:         20,
			BookingDateTime: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
			Status:          model.BookingStatusPending,
		},
		{
			ID:              2,
			StudentID:       11,
			TutorID:         20,
			BookingDateTime: time.Date(2025, 3, 2, 15, 30, 0, 0, time.UTC),
			Status:          model.BookingStatusConfirmed,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteBookingsXLSX(&buf, bookings))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(BookingsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"ID", "Student ID", "Tutor ID", "Date-time", "Status"}, rows[0])
	assert.Equal(t, []string{"1", "10", "20", "2025-03-01T10:00:00", "PENDING"}, rows[1])
	assert.Equal(t, []string{"2", "11", "20", "2025-03-02T15:30:00", "CONFIRMED"}, rows[2])
}

func TestWriteBookingsXLSX_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteBookingsXLSX(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(BookingsSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
