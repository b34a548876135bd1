package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/suhas152/KUBERNETES-IMPLEMENTATION/internal/auth"
	"github.com/suhas152/KUBERNETES-IMPLEMENTATION/internal/model"
	"github.com/suhas152/KUBERNETES-IMPLEMENTATION/internal/repository"
	"go.uber.org/zap"
)

type TutorService struct {
	tutorRepo TutorStore
	cache     TutorCache
	logger    *zap.Logger

	// generation растёт при каждой инвалидации; чтение из БД пишет в кэш,
	// только если за время чтения инвалидаций не было
	generation atomic.Uint64
}

func NewTutorService(tutorRepo TutorStore, cache TutorCache, logger *zap.Logger) *TutorService {
	return &TutorService{
		tutorRepo: tutorRepo,
		cache:     cache,
		logger:    logger,
	}
}

// Add добавляет репетитора (и админом, и самим репетитором)
func (s *TutorService) Add(ctx context.Context, tutor *model.Tutor) (*model.Tutor, error) {
	hashed, err := auth.HashPassword(tutor.Password)
	if err != nil {
		return nil, err
	}

	created := *tutor
	created.ID = 0
	created.Password = hashed

	if err := s.tutorRepo.Create(ctx, &created); err != nil {
		return nil, fmt.Errorf("add tutor: %w", err)
	}

	s.invalidate(ctx, created.ID)

	s.logger.Info("Tutor added",
		zap.Int64("tutor_id", created.ID),
		zap.String("username", created.Username),
	)

	return created.Public(), nil
}

// Login ищет репетитора по логину и паролю; (nil, nil) если не совпало
func (s *TutorService) Login(ctx context.Context, username, password string) (*model.Tutor, error) {
	tutor, err := s.tutorRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("get tutor: %w", err)
	}

	if tutor == nil || !auth.CheckPassword(tutor.Password, password) {
		return nil, nil
	}

	return tutor.Public(), nil
}

// GetByID получает репетитора по ID; nil если не найден
func (s *TutorService) GetByID(ctx context.Context, id int64) (*model.Tutor, error) {
	cached, ok, err := s.cache.GetTutor(ctx, id)
	if err != nil {
		s.logger.Warn("Tutor cache read failed", zap.Int64("tutor_id", id), zap.Error(err))
	} else if ok {
		return cached, nil
	}

	generation := s.generation.Load()

	tutor, err := s.tutorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if tutor == nil {
		return nil, nil
	}

	public := tutor.Public()
	if s.generation.Load() != generation {
		s.logger.Debug("Tutor changed during read, skipping cache write", zap.Int64("tutor_id", id))
		return public, nil
	}

	if err := s.cache.SetTutor(ctx, public); err != nil {
		s.logger.Warn("Tutor cache write failed", zap.Int64("tutor_id", id), zap.Error(err))
	}

	return public, nil
}

// List получает всех репетиторов
func (s *TutorService) List(ctx context.Context) ([]*model.Tutor, error) {
	cached, ok, err := s.cache.GetTutors(ctx)
	if err != nil {
		s.logger.Warn("Tutor list cache read failed", zap.Error(err))
	} else if ok {
		return cached, nil
	}

	generation := s.generation.Load()

	tutors, err := s.tutorRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*model.Tutor, 0, len(tutors))
	for _, tutor := range tutors {
		out = append(out, tutor.Public())
	}

	if s.generation.Load() != generation {
		s.logger.Debug("Tutors changed during read, skipping cache write")
		return out, nil
	}

	if err := s.cache.SetTutors(ctx, out); err != nil {
		s.logger.Warn("Tutor list cache write failed", zap.Error(err))
	}

	return out, nil
}

// UpdateProfile перезаписывает профиль репетитора без проверок полей.
// Пустой пароль оставляет прежний.
func (s *TutorService) UpdateProfile(ctx context.Context, update *model.Tutor) (*model.Tutor, error) {
	existing, err := s.tutorRepo.GetByID(ctx, update.ID)
	if err != nil {
		return nil, fmt.Errorf("get tutor: %w", err)
	}

	if existing == nil {
		return nil, fmt.Errorf("%w: id %d", ErrTutorNotFound, update.ID)
	}

	existing.Name = update.Name
	existing.Email = update.Email
	existing.Username = update.Username
	existing.Gender = update.Gender
	existing.Location = update.Location
	existing.Mobile = update.Mobile

	if update.Password != "" {
		hashed, err := auth.HashPassword(update.Password)
		if err != nil {
			return nil, err
		}
		existing.Password = hashed
	}

	if err := s.tutorRepo.Update(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrTutorNotFound, update.ID)
		}
		return nil, fmt.Errorf("update tutor: %w", err)
	}

	s.invalidate(ctx, existing.ID)

	s.logger.Info("Tutor profile updated", zap.Int64("tutor_id", existing.ID))

	return existing.Public(), nil
}

// Delete удаляет репетитора если он существует
func (s *TutorService) Delete(ctx context.Context, id int64) error {
	tutor, err := s.tutorRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get tutor: %w", err)
	}

	if tutor == nil {
		return fmt.Errorf("%w: id %d", ErrTutorNotFound, id)
	}

	if err := s.tutorRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: id %d", ErrTutorNotFound, id)
		}
		return fmt.Errorf("delete tutor: %w", err)
	}

	s.invalidate(ctx, id)

	s.logger.Info("Tutor deleted", zap.Int64("tutor_id", id))

	return nil
}

func (s *TutorService) invalidate(ctx context.Context, id int64) {
	s.generation.Add(1)
	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.logger.Warn("Tutor cache invalidation failed", zap.Int64("tutor_id", id), zap.Error(err))
	}
}

// AddIfMissing добавляет репетитора если логин ещё не занят
func (s *TutorService) AddIfMissing(ctx context.Context, tutor *model.Tutor) (bool, error) {
	existing, err := s.tutorRepo.GetByUsername(ctx, tutor.Username)
	if err != nil {
		return false, fmt.Errorf("get tutor: %w", err)
	}

	if existing != nil {
		return false, nil
	}

	if _, err := s.Add(ctx, tutor); err != nil {
		return false, err
	}

	return true, nil
}
