package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/suhas152/KUBERNETES-IMPLEMENTATION/internal/model"
	"github.com/suhas152/KUBERNETES-IMPLEMENTATION/internal/repository/base"
)

const bookingColumns = `id, student_s_id, tutor_tutor_id, booking_date_time, status`

// bookingWithPartiesQuery бронирование вместе со студентом и репетитором (без паролей)
const bookingWithPartiesQuery = `
	SELECT b.id, b.student_s_id, b.tutor_tutor_id, b.booking_date_time, b.status,
		s.s_id, s.student_name, s.student_email, s.student_phone, s.student_age,
		s.s_name, s.student_adress, s.student_gender,
		t.tutor_id, t.username, t.email, t.mobileno, t.tutor_name, t.tutor_location, t.gender
	FROM booking b
	JOIN student_table s ON s.s_id = b.student_s_id
	JOIN tutor_table t ON t.tutor_id = b.tutor_tutor_id
`

type BookingRepository struct {
	*base.Repository
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{Repository: base.NewRepository(pool)}
}

func scanBooking(row pgx.Row) (*model.Booking, error) {
	var booking model.Booking
	err := row.Scan(
		&booking.ID,
		&booking.StudentID,
		&booking.TutorID,
		&booking.BookingDateTime,
		&booking.Status,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func scanBookingWithParties(row pgx.Row) (*model.Booking, error) {
	var (
		booking model.Booking
		student model.Student
		tutor   model.Tutor
	)
	err := row.Scan(
		&booking.ID,
		&booking.StudentID,
		&booking.TutorID,
		&booking.BookingDateTime,
		&booking.Status,
		&student.ID,
		&student.Username,
		&student.Email,
		&student.Phone,
		&student.Age,
		&student.Name,
		&student.Address,
		&student.Gender,
		&tutor.ID,
		&tutor.Username,
		&tutor.Email,
		&tutor.Mobile,
		&tutor.Name,
		&tutor.Location,
		&tutor.Gender,
	)
	if err != nil {
		return nil, err
	}
	booking.Student = &student
	booking.Tutor = &tutor
	return &booking, nil
}

// Create создаёт новое бронирование
func (r *BookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	query := `
		INSERT INTO booking (student_s_id, tutor_tutor_id, booking_date_time, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.QueryRow(
		ctx, query,
		booking.StudentID,
		booking.TutorID,
		booking.BookingDateTime,
		booking.Status,
	).Scan(&booking.ID)

	if err != nil {
		return wrapWriteErr("create booking", err)
	}

	return nil
}

// GetByID получает бронирование по ID
func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*model.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM booking WHERE id = $1`

	booking, err := scanBooking(r.QueryRow(ctx, query, id))
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get booking by id: %w", err)
	}

	return booking, nil
}

// GetByStudentID получает все бронирования студента вместе со студентом и репетитором
func (r *BookingRepository) GetByStudentID(ctx context.Context, studentID int64) ([]*model.Booking, error) {
	query := bookingWithPartiesQuery + `WHERE b.student_s_id = $1 ORDER BY b.id`
	return r.list(ctx, "get bookings by student", query, studentID)
}

// GetByTutorID получает все бронирования репетитора
func (r *BookingRepository) GetByTutorID(ctx context.Context, tutorID int64) ([]*model.Booking, error) {
	query := bookingWithPartiesQuery + `WHERE b.tutor_tutor_id = $1 ORDER BY b.id`
	return r.list(ctx, "get bookings by tutor", query, tutorID)
}

// GetAll получает все бронирования
func (r *BookingRepository) GetAll(ctx context.Context) ([]*model.Booking, error) {
	query := bookingWithPartiesQuery + `ORDER BY b.id`
	return r.list(ctx, "get bookings", query)
}

func (r *BookingRepository) list(ctx context.Context, op, query string, args ...any) ([]*model.Booking, error) {
	rows, err := r.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var bookings []*model.Booking
	for rows.Next() {
		booking, err := scanBookingWithParties(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return bookings, nil
}

// UpdateStatus обновляет статус бронирования
func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status model.BookingStatus) error {
	affected, err := r.ExecAffected(ctx, `UPDATE booking SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("update booking status: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("update booking %d: %w", id, ErrNotFound)
	}

	return nil
}

// Delete удаляет бронирование
func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	affected, err := r.ExecAffected(ctx, `DELETE FROM booking WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("delete booking %d: %w", id, ErrNotFound)
	}

	return nil
}
