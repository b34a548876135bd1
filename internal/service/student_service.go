package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/suhas152/KUBERNETES-IMPLEMENTATION/internal/auth"
	"github.com/suhas152/KUBERNETES-IMPLEMENTATION/internal/model"
	"github.com/suhas152/KUBERNETES-IMPLEMENTATION/internal/repository"
	"go.uber.org/zap"
)

type StudentService struct {
	studentRepo StudentStore
	logger      *zap.Logger
}

func NewStudentService(studentRepo StudentStore, logger *zap.Logger) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
		logger:      logger,
	}
}

// Register регистрирует студента. Дубликаты отсекает только UNIQUE в БД.
func (s *StudentService) Register(ctx context.Context, student *model.Student) (*model.Student, error) {
	hashed, err := auth.HashPassword(student.Password)
	if err != nil {
		return nil, err
	}

	created := *student
	created.ID = 0
	created.Password = hashed

	if err := s.studentRepo.Create(ctx, &created); err != nil {
		return nil, fmt.Errorf("register student: %w", err)
	}

	s.logger.Info("Student registered",
		zap.Int64("student_id", created.ID),
		zap.String("username", created.Username),
	)

	return created.Public(), nil
}

// Login ищет студента по логину и паролю; (nil, nil) если не совпало
func (s *StudentService) Login(ctx context.Context, username, password string) (*model.Student, error) {
	student, err := s.studentRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("get student: %w", err)
	}

	if student == nil || !auth.CheckPassword(student.Password, password) {
		return nil, nil
	}

	return student.Public(), nil
}

// UpdateProfile перезаписывает профиль студента.
// Телефон не меняется; пустой пароль оставляет прежний.
func (s *StudentService) UpdateProfile(ctx context.Context, update *model.Student) (*model.Student, error) {
	existing, err := s.studentRepo.GetByID(ctx, update.ID)
	if err != nil {
		return nil, fmt.Errorf("get student: %w", err)
	}

	if existing == nil {
		return nil, fmt.Errorf("%w: id %d", ErrStudentNotFound, update.ID)
	}

	if update.Gender == "" {
		return nil, ErrGenderRequired
	}

	existing.Name = update.Name
	existing.Age = update.Age
	existing.Address = update.Address
	existing.Email = update.Email
	existing.Gender = update.Gender
	existing.Username = update.Username

	if update.Password != "" {
		hashed, err := auth.HashPassword(update.Password)
		if err != nil {
			return nil, err
		}
		existing.Password = hashed
	}

	if err := s.studentRepo.Update(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrStudentNotFound, update.ID)
		}
		return nil, fmt.Errorf("update student: %w", err)
	}

	s.logger.Info("Student profile updated", zap.Int64("student_id", existing.ID))

	return existing.Public(), nil
}

// GetByID получает студента по ID; nil если не найден
func (s *StudentService) GetByID(ctx context.Context, id int64) (*model.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return student.Public(), nil
}

// List получает всех студентов
func (s *StudentService) List(ctx context.Context) ([]*model.Student, error) {
	students, err := s.studentRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*model.Student, 0, len(students))
	for _, student := range students {
		out = append(out, student.Public())
	}
	return out, nil
}

// Delete удаляет студента если он существует
func (s *StudentService) Delete(ctx context.Context, id int64) error {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get student: %w", err)
	}

	if student == nil {
		return fmt.Errorf("%w: id %d", ErrStudentNotFound, id)
	}

	if err := s.studentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: id %d", ErrStudentNotFound, id)
		}
		return fmt.Errorf("delete student: %w", err)
	}

	s.logger.Info("Student deleted", zap.Int64("student_id", id))

	return nil
}
