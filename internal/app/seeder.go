package app

import (
	"context"
	"fmt"
	"os"

	"github.com/suhas152/KUBERNETES-IMPLEMENTATION/internal/model"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// SeedFile начальные данные: администраторы (других способов их создать нет)
// и, опционально, репетиторы
type SeedFile struct {
	Admins []SeedAdmin `yaml:"admins"`
	Tutors []SeedTutor `yaml:"tutors"`
}

type SeedAdmin struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type SeedTutor struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Email    string `yaml:"email"`
	Mobile   string `yaml:"mobileno"`
	Name     string `yaml:"tutor_name"`
	Location string `yaml:"tutor_location"`
	Gender   string `yaml:"gender"`
}

type AdminProvisioner interface {
	EnsureAdmin(ctx context.Context, username, password string) (bool, error)
}

type TutorProvisioner interface {
	AddIfMissing(ctx context.Context, tutor *model.Tutor) (bool, error)
}

// Seeder применяет SEED_FILE при старте
type Seeder struct {
	admins AdminProvisioner
	tutors TutorProvisioner
	logger *zap.Logger
}

func NewSeeder(admins AdminProvisioner, tutors TutorProvisioner, logger *zap.Logger) *Seeder {
	return &Seeder{
		admins: admins,
		tutors: tutors,
		logger: logger,
	}
}

// LoadSeedFile читает и разбирает YAML файл
func LoadSeedFile(path string) (*SeedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var seed SeedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}

	for i, admin := range seed.Admins {
		if admin.Username == "" || admin.Password == "" {
			return nil, fmt.Errorf("seed admin #%d: username and password are required", i+1)
		}
	}

	for i, tutor := range seed.Tutors {
		if tutor.Username == "" {
			return nil, fmt.Errorf("seed tutor #%d: username is required", i+1)
		}
	}

	return &seed, nil
}

// Apply создаёт отсутствующие записи, существующие не меняет
func (s *Seeder) Apply(ctx context.Context, seed *SeedFile) error {
	var adminsCreated, tutorsCreated int

	for _, admin := range seed.Admins {
		created, err := s.admins.EnsureAdmin(ctx, admin.Username, admin.Password)
		if err != nil {
			return fmt.Errorf("seed admin %s: %w", admin.Username, err)
		}
		if created {
			adminsCreated++
		}
	}

	for _, t := range seed.Tutors {
		created, err := s.tutors.AddIfMissing(ctx, &model.Tutor{
			Username: t.Username,
			Password: t.Password,
			Email:    t.Email,
			Mobile:   t.Mobile,
			Name:     t.Name,
			Location: t.Location,
			Gender:   t.Gender,
		})
		if err != nil {
			return fmt.Errorf("seed tutor %s: %w", t.Username, err)
		}
		if created {
			tutorsCreated++
		}
	}

	s.logger.Info("Seed data applied",
		zap.Int("admins_created", adminsCreated),
		zap.Int("tutors_created", tutorsCreated),
	)

	return nil
}
