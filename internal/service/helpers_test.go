package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/suhas152/KUBERNETES-IMPLEMENTATION/internal/model"
	"github.com/suhas152/KUBERNETES-IMPLEMENTATION/internal/repository/memstore"
	"go.uber.org/zap"
)

type testEnv struct {
	db       *memstore.DB
	cache    *mapCache
	admins   *AdminService
	students *StudentService
	tutors   *TutorService
	bookings *BookingService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := memstore.New()
	logger := zap.NewNop()
	tutorCache := newMapCache()

	students := NewStudentService(db.Students(), logger)
	tutors := NewTutorService(db.Tutors(), tutorCache, logger)
	bookings := NewBookingService(db.Students(), db.Tutors(), db.Bookings(), logger)
	admins := NewAdminService(db.Admins(), students, tutors, bookings, logger)

	return &testEnv{
		db:       db,
		cache:    tutorCache,
		admins:   admins,
		students: students,
		tutors:   tutors,
		bookings: bookings,
	}
}

func alice() *model.Student {
	return &model.Student{
		Username: "alice",
		Password: "p1",
		Email:    "a@x.com",
		Phone:    "111",
		Age:      20,
		Name:     "Alice",
		Address:  "A St",
		Gender:   "F",
	}
}

func bob() *model.Tutor {
	return &model.Tutor{
		Username: "bob",
		Password: "secret",
		Email:    "b@x.com",
		Mobile:   "222",
		Name:     "Bob",
		Location: "B St",
		Gender:   "M",
	}
}

func (e *testEnv) mustRegister(t *testing.T, s *model.Student) *model.Student {
	t.Helper()
	created, err := e.students.Register(context.Background(), s)
	require.NoError(t, err)
	return created
}

func (e *testEnv) mustAddTutor(t *testing.T, tutor *model.Tutor) *model.Tutor {
	t.Helper()
	created, err := e.tutors.Add(context.Background(), tutor)
	require.NoError(t, err)
	return created
}

// mapCache кэш в памяти со счётчиками обращений
type mapCache struct {
	mu          sync.Mutex
	tutors      map[int64]*model.Tutor
	list        []*model.Tutor
	hasList     bool
	hits        int
	invalidated []int64
}

func newMapCache() *mapCache {
	return &mapCache{tutors: make(map[int64]*model.Tutor)}
}

func (c *mapCache) GetTutor(_ context.Context, id int64) (*model.Tutor, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	tutor, ok := c.tutors[id]
	if ok {
		c.hits++
	}
	return tutor, ok, nil
}

func (c *mapCache) SetTutor(_ context.Context, tutor *model.Tutor) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tutors[tutor.ID] = tutor
	return nil
}

func (c *mapCache) GetTutors(context.Context) ([]*model.Tutor, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.hasList {
		c.hits++
	}
	return c.list, c.hasList, nil
}

func (c *mapCache) SetTutors(_ context.Context, tutors []*model.Tutor) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.list = tutors
	c.hasList = true
	return nil
}

func (c *mapCache) Invalidate(_ context.Context, id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.tutors, id)
	c.list = nil
	c.hasList = false
	c.invalidated = append(c.invalidated, id)
	return nil
}
