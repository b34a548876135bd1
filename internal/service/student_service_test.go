package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suhas152/KUBERNETES-IMPLEMENTATION/internal/model"
)

func TestStudentRegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created := env.mustRegister(t, alice())
	assert.NotZero(t, created.ID)
	assert.Empty(t, created.Password)

	stored, err := env.db.Students().GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "p1", stored.Password)

	got, err := env.students.Login(ctx, "alice", "p1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Alice", got.Name)
	assert.Empty(t, got.Password)

	got, err = env.students.Login(ctx, "alice", "wrong")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = env.students.Login(ctx, "nobody", "p1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStudentRegister_Conflict(t *testing.T) {
	env := newTestEnv(t)

	env.mustRegister(t, alice())

	_, err := env.students.Register(context.Background(), alice())
	assert.ErrorIs(t, err, ErrConflict)
}

func TestStudentPasswordTooLong(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	student := alice()
	student.Password = strings.Repeat("p", 80)
	_, err := env.students.Register(ctx, student)
	assert.ErrorIs(t, err, ErrPasswordTooLong)
	students, err := env.students.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, students)

	created := env.mustRegister(t, alice())
	update := alice()
	update.ID = created.ID
	update.Password = strings.Repeat("p", 73)
	_, err = env.students.UpdateProfile(ctx, update)
	assert.ErrorIs(t, err, ErrPasswordTooLong)

	got, err := env.students.Login(ctx, "alice", "p1")
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestStudentUpdateProfile(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created := env.mustRegister(t, alice())

	t.Run("missing id", func(t *testing.T) {
		update := alice()
		update.ID = 999
		_, err := env.students.UpdateProfile(ctx, update)
		assert.ErrorIs(t, err, ErrStudentNotFound)
	})

	t.Run("empty gender leaves record unchanged", func(t *testing.T) {
		before, err := env.db.Students().GetByID(ctx, created.ID)
		require.NoError(t, err)

		update := &model.Student{ID: created.ID, Name: "Changed", Username: "changed", Age: 99}
		_, err = env.students.UpdateProfile(ctx, update)
		assert.ErrorIs(t, err, ErrGenderRequired)

		after, err := env.db.Students().GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("overwrites profile fields", func(t *testing.T) {
		update := &model.Student{
			ID:       created.ID,
			Username: "alice2",
			Password: "p2",
			Email:    "a2@x.com",
			Phone:    "999",
			Age:      21,
			Name:     "Alice B",
			Address:  "B St",
			Gender:   "F",
		}
		updated, err := env.students.UpdateProfile(ctx, update)
		require.NoError(t, err)

		assert.Equal(t, "alice2", updated.Username)
		assert.Equal(t, "a2@x.com", updated.Email)
		assert.Equal(t, 21, updated.Age)
		assert.Equal(t, "Alice B", updated.Name)
		assert.Equal(t, "B St", updated.Address)
		assert.Equal(t, "111", updated.Phone, "phone is not part of the profile update")

		got, err := env.students.Login(ctx, "alice2", "p2")
		require.NoError(t, err)
		assert.NotNil(t, got)
	})

	t.Run("empty password keeps the old one", func(t *testing.T) {
		current, err := env.students.GetByID(ctx, created.ID)
		require.NoError(t, err)

		current.Password = ""
		current.Name = "Alice C"
		_, err = env.students.UpdateProfile(ctx, current)
		require.NoError(t, err)

		got, err := env.students.Login(ctx, current.Username, "p2")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Alice C", got.Name)
	})
}

func TestStudentGetByID(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created := env.mustRegister(t, alice())

	got, err := env.students.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "alice", got.Username)
	assert.Empty(t, got.Password)

	got, err = env.students.GetByID(ctx, 42)
	require.NoError(t, err)
	assert.Nil(t, got)
}
