// Package memstore хранилище в памяти с тем же контрактом, что и репозитории
// на pgx: (nil, nil) для отсутствующей записи, repository.ErrNotFound для
// UPDATE/DELETE без строк, repository.ErrDuplicate для нарушений UNIQUE,
// каскадное удаление бронирований. Используется в тестах сервисов и контроллеров.
package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/suhas152/KUBERNETES-IMPLEMENTATION/internal/model"
	"github.com/suhas152/KUBERNETES-IMPLEMENTATION/internal/repository"
)

type DB struct {
	mu       sync.Mutex
	admins   map[string]model.Admin
	students map[int64]model.Student
	tutors   map[int64]model.Tutor
	bookings map[int64]model.Booking

	nextStudentID int64
	nextTutorID   int64
	nextBookingID int64
}

func New() *DB {
	return &DB{
		admins:   make(map[string]model.Admin),
		students: make(map[int64]model.Student),
		tutors:   make(map[int64]model.Tutor),
		bookings: make(map[int64]model.Booking),
	}
}

func (db *DB) Admins() *AdminRepo     { return &AdminRepo{db: db} }
func (db *DB) Students() *StudentRepo { return &StudentRepo{db: db} }
func (db *DB) Tutors() *TutorRepo     { return &TutorRepo{db: db} }
func (db *DB) Bookings() *BookingRepo { return &BookingRepo{db: db} }

// BookingCount число бронирований (для проверок в тестах)
func (db *DB) BookingCount() int {
	db.mu.Lock()
	defer db.mu.Unlock()
	return len(db.bookings)
}

type AdminRepo struct{ db *DB }

func (r *AdminRepo) GetByUsername(_ context.Context, username string) (*model.Admin, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	admin, ok := r.db.admins[username]
	if !ok {
		return nil, nil
	}
	return &admin, nil
}

func (r *AdminRepo) CreateIfMissing(_ context.Context, admin *model.Admin) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.admins[admin.Username]; ok {
		return false, nil
	}
	r.db.admins[admin.Username] = *admin
	return true, nil
}

type StudentRepo struct{ db *DB }

func (r *StudentRepo) checkUnique(s *model.Student) error {
	for id, other := range r.db.students {
		if id == s.ID {
			continue
		}
		if other.Username == s.Username || other.Email == s.Email || other.Phone == s.Phone {
			return fmt.Errorf("student: %w", repository.ErrDuplicate)
		}
	}
	return nil
}

func (r *StudentRepo) Create(_ context.Context, student *model.Student) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	student.ID = 0
	if err := r.checkUnique(student); err != nil {
		return err
	}

	r.db.nextStudentID++
	student.ID = r.db.nextStudentID
	r.db.students[student.ID] = *student
	return nil
}

func (r *StudentRepo) GetByID(_ context.Context, id int64) (*model.Student, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	student, ok := r.db.students[id]
	if !ok {
		return nil, nil
	}
	return &student, nil
}

func (r *StudentRepo) GetByUsername(_ context.Context, username string) (*model.Student, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, student := range r.db.students {
		if student.Username == username {
			return &student, nil
		}
	}
	return nil, nil
}

func (r *StudentRepo) GetAll(_ context.Context) ([]*model.Student, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var out []*model.Student
	for _, student := range r.db.students {
		out = append(out, &student)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *StudentRepo) Update(_ context.Context, student *model.Student) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.students[student.ID]; !ok {
		return fmt.Errorf("update student %d: %w", student.ID, repository.ErrNotFound)
	}
	if err := r.checkUnique(student); err != nil {
		return err
	}
	r.db.students[student.ID] = *student
	return nil
}

func (r *StudentRepo) Delete(_ context.Context, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.students[id]; !ok {
		return fmt.Errorf("delete student %d: %w", id, repository.ErrNotFound)
	}
	delete(r.db.students, id)
	for bookingID, booking := range r.db.bookings {
		if booking.StudentID == id {
			delete(r.db.bookings, bookingID)
		}
	}
	return nil
}

type TutorRepo struct{ db *DB }

func (r *TutorRepo) checkUnique(t *model.Tutor) error {
	for id, other := range r.db.tutors {
		if id == t.ID {
			continue
		}
		if other.Username == t.Username || other.Email == t.Email || other.Mobile == t.Mobile {
			return fmt.Errorf("tutor: %w", repository.ErrDuplicate)
		}
	}
	return nil
}

func (r *TutorRepo) Create(_ context.Context, tutor *model.Tutor) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	tutor.ID = 0
	if err := r.checkUnique(tutor); err != nil {
		return err
	}

	r.db.nextTutorID++
	tutor.ID = r.db.nextTutorID
	r.db.tutors[tutor.ID] = *tutor
	return nil
}

func (r *TutorRepo) GetByID(_ context.Context, id int64) (*model.Tutor, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	tutor, ok := r.db.tutors[id]
	if !ok {
		return nil, nil
	}
	return &tutor, nil
}

func (r *TutorRepo) GetByUsername(_ context.Context, username string) (*model.Tutor, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, tutor := range r.db.tutors {
		if tutor.Username == username {
			return &tutor, nil
		}
	}
	return nil, nil
}

func (r *TutorRepo) GetAll(_ context.Context) ([]*model.Tutor, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var out []*model.Tutor
	for _, tutor := range r.db.tutors {
		out = append(out, &tutor)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *TutorRepo) Update(_ context.Context, tutor *model.Tutor) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.tutors[tutor.ID]; !ok {
		return fmt.Errorf("update tutor %d: %w", tutor.ID, repository.ErrNotFound)
	}
	if err := r.checkUnique(tutor); err != nil {
		return err
	}
	r.db.tutors[tutor.ID] = *tutor
	return nil
}

func (r *TutorRepo) Delete(_ context.Context, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.tutors[id]; !ok {
		return fmt.Errorf("delete tutor %d: %w", id, repository.ErrNotFound)
	}
	delete(r.db.tutors, id)
	for bookingID, booking := range r.db.bookings {
		if booking.TutorID == id {
			delete(r.db.bookings, bookingID)
		}
	}
	return nil
}

type BookingRepo struct{ db *DB }

func (r *BookingRepo) Create(_ context.Context, booking *model.Booking) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.students[booking.StudentID]; !ok {
		return fmt.Errorf("create booking: student %d violates foreign key", booking.StudentID)
	}
	if _, ok := r.db.tutors[booking.TutorID]; !ok {
		return fmt.Errorf("create booking: tutor %d violates foreign key", booking.TutorID)
	}

	r.db.nextBookingID++
	booking.ID = r.db.nextBookingID

	stored := *booking
	stored.Student = nil
	stored.Tutor = nil
	r.db.bookings[booking.ID] = stored
	return nil
}

func (r *BookingRepo) GetByID(_ context.Context, id int64) (*model.Booking, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	booking, ok := r.db.bookings[id]
	if !ok {
		return nil, nil
	}
	return &booking, nil
}

func (r *BookingRepo) filter(keep func(model.Booking) bool) []*model.Booking {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var out []*model.Booking
	for _, booking := range r.db.bookings {
		if !keep(booking) {
			continue
		}
		// как JOIN в BookingRepository: студент и репетитор без паролей
		if student, ok := r.db.students[booking.StudentID]; ok {
			booking.Student = student.Public()
		}
		if tutor, ok := r.db.tutors[booking.TutorID]; ok {
			booking.Tutor = tutor.Public()
		}
		out = append(out, &booking)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *BookingRepo) GetByStudentID(_ context.Context, studentID int64) ([]*model.Booking, error) {
	return r.filter(func(b model.Booking) bool { return b.StudentID == studentID }), nil
}

func (r *BookingRepo) GetByTutorID(_ context.Context, tutorID int64) ([]*model.Booking, error) {
	return r.filter(func(b model.Booking) bool { return b.TutorID == tutorID }), nil
}

func (r *BookingRepo) GetAll(_ context.Context) ([]*model.Booking, error) {
	return r.filter(func(model.Booking) bool { return true }), nil
}

func (r *BookingRepo) UpdateStatus(_ context.Context, id int64, status model.BookingStatus) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	booking, ok := r.db.bookings[id]
	if !ok {
		return fmt.Errorf("update booking %d: %w", id, repository.ErrNotFound)
	}
	booking.Status = status
	r.db.bookings[id] = booking
	return nil
}

func (r *BookingRepo) Delete(_ context.Context, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.bookings[id]; !ok {
		return fmt.Errorf("delete booking %d: %w", id, repository.ErrNotFound)
	}
	delete(r.db.bookings, id)
	return nil
}
