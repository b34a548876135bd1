package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suhas152/KUBERNETES-IMPLEMENTATION/internal/model"
)

func TestBookTutor_CreatesPendingBooking(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	student := env.mustRegister(t, alice())
	tutor := env.mustAddTutor(t, bob())

	first, err := env.bookings.BookTutor(ctx, student.ID, tutor.ID, "2025-01-01T10:00:00")
	require.NoError(t, err)
	second, err := env.bookings.BookTutor(ctx, student.ID, tutor.ID, "2025-01-02T10:00:00")
	require.NoError(t, err)

	assert.Equal(t, model.BookingStatusPending, first.Status)
	assert.Equal(t, model.BookingStatusPending, second.Status)
	assert.NotZero(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC), first.BookingDateTime)

	require.NotNil(t, first.Student)
	require.NotNil(t, first.Tutor)
	assert.Equal(t, "alice", first.Student.Username)
	assert.Empty(t, first.Student.Password)
	assert.Equal(t, "bob", first.Tutor.Username)
	assert.Empty(t, first.Tutor.Password)
}

func TestBookTutor_MissingReferences(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	student := env.mustRegister(t, alice())
	tutor := env.mustAddTutor(t, bob())

	_, err := env.bookings.BookTutor(ctx, 999, tutor.ID, "2025-01-01T10:00:00")
	assert.ErrorIs(t, err, ErrStudentNotFound)

	_, err = env.bookings.BookTutor(ctx, student.ID, 999, "2025-01-01T10:00:00")
	assert.ErrorIs(t, err, ErrTutorNotFound)

	assert.Zero(t, env.db.BookingCount())
}

func TestBookTutor_InvalidDateTime(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	student := env.mustRegister(t, alice())
	tutor := env.mustAddTutor(t, bob())

	_, err := env.bookings.BookTutor(ctx, student.ID, tutor.ID, "next tuesday")
	assert.ErrorIs(t, err, ErrInvalidDateTime)
	assert.Zero(t, env.db.BookingCount())
}

func TestGetStudentBookings_ReturnsExactlyOwnBookings(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	student := env.mustRegister(t, alice())
	other := alice()
	other.Username, other.Email, other.Phone = "carol", "c@x.com", "333"
	otherStudent := env.mustRegister(t, other)
	tutor := env.mustAddTutor(t, bob())

	const n = 4
	want := make(map[int64]bool)
	for i := 0; i < n; i++ {
		b, err := env.bookings.BookTutor(ctx, student.ID, tutor.ID, "2025-01-01T10:00:00")
		require.NoError(t, err)
		want[b.ID] = true
	}
	_, err := env.bookings.BookTutor(ctx, otherStudent.ID, tutor.ID, "2025-01-01T11:00:00")
	require.NoError(t, err)

	got, err := env.bookings.GetStudentBookings(ctx, student.ID)
	require.NoError(t, err)
	require.Len(t, got, n)
	for _, b := range got {
		assert.True(t, want[b.ID], "unexpected booking %d", b.ID)
		assert.Equal(t, student.ID, b.StudentID)
	}

	all, err := env.bookings.GetAllBookings(ctx)
	require.NoError(t, err)
	assert.Len(t, all, n+1)
}

func TestUpdateStatus(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	student := env.mustRegister(t, alice())
	tutor := env.mustAddTutor(t, bob())
	booking, err := env.bookings.BookTutor(ctx, student.ID, tutor.ID, "2025-01-01T10:00:00")
	require.NoError(t, err)

	t.Run("missing booking", func(t *testing.T) {
		err := env.bookings.UpdateStatus(ctx, 999, model.BookingStatusConfirmed)
		assert.ErrorIs(t, err, ErrBookingNotFound)

		got, err := env.bookings.GetByID(ctx, booking.ID)
		require.NoError(t, err)
		assert.Equal(t, model.BookingStatusPending, got.Status)
	})

	t.Run("unknown status", func(t *testing.T) {
		err := env.bookings.UpdateStatus(ctx, booking.ID, model.BookingStatus("LOST"))
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("same status twice", func(t *testing.T) {
		require.NoError(t, env.bookings.UpdateStatus(ctx, booking.ID, model.BookingStatusConfirmed))
		require.NoError(t, env.bookings.UpdateStatus(ctx, booking.ID, model.BookingStatusConfirmed))

		got, err := env.bookings.GetByID(ctx, booking.ID)
		require.NoError(t, err)
		assert.Equal(t, model.BookingStatusConfirmed, got.Status)
	})

	t.Run("any transition allowed", func(t *testing.T) {
		require.NoError(t, env.bookings.UpdateStatus(ctx, booking.ID, model.BookingStatusCancelled))
		require.NoError(t, env.bookings.UpdateStatus(ctx, booking.ID, model.BookingStatusConfirmed))

		got, err := env.bookings.GetByID(ctx, booking.ID)
		require.NoError(t, err)
		assert.Equal(t, model.BookingStatusConfirmed, got.Status)
	})
}

func TestDeleteBooking_Idempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	student := env.mustRegister(t, alice())
	tutor := env.mustAddTutor(t, bob())
	booking, err := env.bookings.BookTutor(ctx, student.ID, tutor.ID, "2025-01-01T10:00:00")
	require.NoError(t, err)

	require.NoError(t, env.bookings.DeleteBooking(ctx, booking.ID))
	require.NoError(t, env.bookings.DeleteBooking(ctx, booking.ID))
	require.NoError(t, env.bookings.DeleteBooking(ctx, 12345))

	assert.Zero(t, env.db.BookingCount())
}

func TestTutorBookingScenario(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	tutor := env.mustAddTutor(t, bob())
	require.Equal(t, int64(1), tutor.ID)

	env.mustRegister(t, alice())
	second := alice()
	second.Username, second.Email, second.Phone = "dave", "d@x.com", "444"
	student := env.mustRegister(t, second)
	require.Equal(t, int64(2), student.ID)

	booking, err := env.bookings.BookTutor(ctx, 2, 1, "2025-01-01T10:00:00")
	require.NoError(t, err)
	assert.Equal(t, int64(1), booking.ID)
	assert.Equal(t, int64(2), booking.StudentID)
	assert.Equal(t, int64(1), booking.TutorID)
	assert.Equal(t, model.BookingStatusPending, booking.Status)

	require.NoError(t, env.bookings.UpdateStatus(ctx, booking.ID, model.BookingStatusCompleted))

	list, err := env.bookings.GetTutorBookings(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, model.BookingStatusCompleted, list[0].Status)
}
