package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suhas152/KUBERNETES-IMPLEMENTATION/internal/cache"
	"github.com/suhas152/KUBERNETES-IMPLEMENTATION/internal/repository/memstore"
	"github.com/suhas152/KUBERNETES-IMPLEMENTATION/internal/service"
	"go.uber.org/zap"
)

const seedYAML = `
admins:
  - username: admin
    password: admin123
tutors:
  - username: bob
    password: secret
    email: bob@x.com
    mobileno: "222"
    tutor_name: Bob
    tutor_location: Hyderabad
    gender: M
`

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadSeedFile(t *testing.T) {
	seed, err := LoadSeedFile(writeSeed(t, seedYAML))
	require.NoError(t, err)

	require.Len(t, seed.Admins, 1)
	assert.Equal(t, "admin", seed.Admins[0].Username)
	require.Len(t, seed.Tutors, 1)
	assert.Equal(t, "222", seed.Tutors[0].Mobile)
	assert.Equal(t, "Hyderabad", seed.Tutors[0].Location)
}

func TestLoadSeedFile_Invalid(t *testing.T) {
	_, err := LoadSeedFile(writeSeed(t, "admins:\n  - username: admin\n"))
	assert.ErrorContains(t, err, "password")

	_, err = LoadSeedFile(writeSeed(t, "admins: [oops"))
	assert.Error(t, err)

	_, err = LoadSeedFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestSeederApply_Idempotent(t *testing.T) {
	ctx := context.Background()
	db := memstore.New()
	logger := zap.NewNop()

	students := service.NewStudentService(db.Students(), logger)
	tutors := service.NewTutorService(db.Tutors(), cache.NopTutorCache{}, logger)
	bookings := service.NewBookingService(db.Students(), db.Tutors(), db.Bookings(), logger)
	admins := service.NewAdminService(db.Admins(), students, tutors, bookings, logger)

	seed, err := LoadSeedFile(writeSeed(t, seedYAML))
	require.NoError(t, err)

	seeder := NewSeeder(admins, tutors, logger)
	require.NoError(t, seeder.Apply(ctx, seed))
	require.NoError(t, seeder.Apply(ctx, seed))

	admin, err := admins.Login(ctx, "admin", "admin123")
	require.NoError(t, err)
	assert.NotNil(t, admin)

	list, err := tutors.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "bob", list[0].Username)

	tutor, err := tutors.Login(ctx, "bob", "secret")
	require.NoError(t, err)
	assert.NotNil(t, tutor)
}
