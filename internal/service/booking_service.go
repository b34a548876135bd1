package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/suhas152/KUBERNETES-IMPLEMENTATION/internal/model"
	"github.com/suhas152/KUBERNETES-IMPLEMENTATION/internal/repository"
	"go.uber.org/zap"
)

type BookingService struct {
	studentRepo StudentStore
	tutorRepo   TutorStore
	bookingRepo BookingStore
	logger      *zap.Logger
}

func NewBookingService(
	studentRepo StudentStore,
	tutorRepo TutorStore,
	bookingRepo BookingStore,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		studentRepo: studentRepo,
		tutorRepo:   tutorRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// BookTutor создаёт бронирование в статусе PENDING.
// Проверки студента и репетитора и вставка - отдельные запросы, без транзакции.
func (s *BookingService) BookTutor(ctx context.Context, studentID, tutorID int64, bookingDateTime string) (*model.Booking, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("get student: %w", err)
	}

	if student == nil {
		return nil, fmt.Errorf("%w with ID: %d", ErrStudentNotFound, studentID)
	}

	tutor, err := s.tutorRepo.GetByID(ctx, tutorID)
	if err != nil {
		return nil, fmt.Errorf("get tutor: %w", err)
	}

	if tutor == nil {
		return nil, fmt.Errorf("%w with ID: %d", ErrTutorNotFound, tutorID)
	}

	at, err := model.ParseBookingDateTime(bookingDateTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDateTime, err)
	}

	booking := &model.Booking{
		StudentID:       studentID,
		TutorID:         tutorID,
		BookingDateTime: at,
		Status:          model.BookingStatusPending,
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("Tutor booked",
		zap.Int64("booking_id", booking.ID),
		zap.Int64("student_id", studentID),
		zap.Int64("tutor_id", tutorID),
		zap.Time("booking_date_time", at),
	)

	booking.Student = student.Public()
	booking.Tutor = tutor.Public()

	return booking, nil
}

// GetByID получает бронирование по ID; nil если не найдено
func (s *BookingService) GetByID(ctx context.Context, bookingID int64) (*model.Booking, error) {
	return s.bookingRepo.GetByID(ctx, bookingID)
}

// GetStudentBookings получает все бронирования студента
func (s *BookingService) GetStudentBookings(ctx context.Context, studentID int64) ([]*model.Booking, error) {
	return s.bookingRepo.GetByStudentID(ctx, studentID)
}

// GetTutorBookings получает все бронирования репетитора
func (s *BookingService) GetTutorBookings(ctx context.Context, tutorID int64) ([]*model.Booking, error) {
	return s.bookingRepo.GetByTutorID(ctx, tutorID)
}

// GetAllBookings получает все бронирования (для админа)
func (s *BookingService) GetAllBookings(ctx context.Context) ([]*model.Booking, error) {
	return s.bookingRepo.GetAll(ctx)
}

// UpdateStatus перезаписывает статус. Переходы не ограничены:
// любой известный статус можно выставить из любого.
func (s *BookingService) UpdateStatus(ctx context.Context, bookingID int64, status model.BookingStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("get booking: %w", err)
	}

	if booking == nil {
		return fmt.Errorf("%w with ID: %d", ErrBookingNotFound, bookingID)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w with ID: %d", ErrBookingNotFound, bookingID)
		}
		return fmt.Errorf("update booking status: %w", err)
	}

	s.logger.Info("Booking status updated",
		zap.Int64("booking_id", bookingID),
		zap.String("from", string(booking.Status)),
		zap.String("to", string(status)),
	)

	return nil
}

// DeleteBooking удаляет бронирование. Отсутствующий ID - не ошибка.
func (s *BookingService) DeleteBooking(ctx context.Context, bookingID int64) error {
	err := s.bookingRepo.Delete(ctx, bookingID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("delete booking: %w", err)
	}

	s.logger.Info("Booking deleted",
		zap.Int64("booking_id", bookingID),
		zap.Bool("existed", err == nil),
	)

	return nil
}
