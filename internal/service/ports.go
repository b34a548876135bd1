package service

import (
	"context"

	"github.com/suhas152/KUBERNETES-IMPLEMENTATION/internal/model"
)

type AdminStore interface {
	GetByUsername(ctx context.Context, username string) (*model.Admin, error)
	CreateIfMissing(ctx context.Context, admin *model.Admin) (bool, error)
}

type StudentStore interface {
	Create(ctx context.Context, student *model.Student) error
	GetByID(ctx context.Context, id int64) (*model.Student, error)
	GetByUsername(ctx context.Context, username string) (*model.Student, error)
	GetAll(ctx context.Context) ([]*model.Student, error)
	Update(ctx context.Context, student *model.Student) error
	Delete(ctx context.Context, id int64) error
}

type TutorStore interface {
	Create(ctx context.Context, tutor *model.Tutor) error
	GetByID(ctx context.Context, id int64) (*model.Tutor, error)
	GetByUsername(ctx context.Context, username string) (*model.Tutor, error)
	GetAll(ctx context.Context) ([]*model.Tutor, error)
	Update(ctx context.Context, tutor *model.Tutor) error
	Delete(ctx context.Context, id int64) error
}

type BookingStore interface {
	Create(ctx context.Context, booking *model.Booking) error
	GetByID(ctx context.Context, id int64) (*model.Booking, error)
	GetByStudentID(ctx context.Context, studentID int64) ([]*model.Booking, error)
	GetByTutorID(ctx context.Context, tutorID int64) ([]*model.Booking, error)
	GetAll(ctx context.Context) ([]*model.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status model.BookingStatus) error
	Delete(ctx context.Context, id int64) error
}

// TutorCache кэш справочника репетиторов (cache-aside).
// ok=false означает промах.
type TutorCache interface {
	GetTutor(ctx context.Context, id int64) (tutor *model.Tutor, ok bool, err error)
	SetTutor(ctx context.Context, tutor *model.Tutor) error
	GetTutors(ctx context.Context) (tutors []*model.Tutor, ok bool, err error)
	SetTutors(ctx context.Context, tutors []*model.Tutor) error
	Invalidate(ctx context.Context, id int64) error
}
