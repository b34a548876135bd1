package service

import (
	"context"
	"fmt"

	"github.com/suhas152/KUBERNETES-IMPLEMENTATION/internal/auth"
	"github.com/suhas152/KUBERNETES-IMPLEMENTATION/internal/model"
	"go.uber.org/zap"
)

// AdminService операции администратора над составом и бронированиями
type AdminService struct {
	adminRepo      AdminStore
	studentService *StudentService
	tutorService   *TutorService
	bookingService *BookingService
	logger         *zap.Logger
}

func NewAdminService(
	adminRepo AdminStore,
	studentService *StudentService,
	tutorService *TutorService,
	bookingService *BookingService,
	logger *zap.Logger,
) *AdminService {
	return &AdminService{
		adminRepo:      adminRepo,
		studentService: studentService,
		tutorService:   tutorService,
		bookingService: bookingService,
		logger:         logger,
	}
}

// Login ищет администратора по логину и паролю; (nil, nil) если не совпало
func (s *AdminService) Login(ctx context.Context, username, password string) (*model.Admin, error) {
	admin, err := s.adminRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("get admin: %w", err)
	}

	if admin == nil || !auth.CheckPassword(admin.Password, password) {
		return nil, nil
	}

	return admin.Public(), nil
}

// EnsureAdmin создаёт администратора если его ещё нет
func (s *AdminService) EnsureAdmin(ctx context.Context, username, password string) (bool, error) {
	hashed, err := auth.HashPassword(password)
	if err != nil {
		return false, err
	}

	created, err := s.adminRepo.CreateIfMissing(ctx, &model.Admin{Username: username, Password: hashed})
	if err != nil {
		return false, err
	}

	if created {
		s.logger.Info("Admin provisioned", zap.String("username", username))
	}

	return created, nil
}

func (s *AdminService) AddTutor(ctx context.Context, tutor *model.Tutor) (*model.Tutor, error) {
	return s.tutorService.Add(ctx, tutor)
}

func (s *AdminService) ListTutors(ctx context.Context) ([]*model.Tutor, error) {
	return s.tutorService.List(ctx)
}

// DeleteTutor удаляет репетитора; ErrTutorNotFound если ID нет
func (s *AdminService) DeleteTutor(ctx context.Context, tutorID int64) error {
	return s.tutorService.Delete(ctx, tutorID)
}

func (s *AdminService) ListStudents(ctx context.Context) ([]*model.Student, error) {
	return s.studentService.List(ctx)
}

// DeleteStudent удаляет студента; ErrStudentNotFound если ID нет
func (s *AdminService) DeleteStudent(ctx context.Context, studentID int64) error {
	return s.studentService.Delete(ctx, studentID)
}

func (s *AdminService) ListBookings(ctx context.Context) ([]*model.Booking, error) {
	return s.bookingService.GetAllBookings(ctx)
}

func (s *AdminService) DeleteBooking(ctx context.Context, bookingID int64) error {
	return s.bookingService.DeleteBooking(ctx, bookingID)
}
