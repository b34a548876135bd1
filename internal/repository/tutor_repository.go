package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/suhas152/KUBERNETES-IMPLEMENTATION/internal/model"
	"github.com/suhas152/KUBERNETES-IMPLEMENTATION/internal/repository/base"
)

const tutorColumns = `tutor_id, username, password, email, mobileno, tutor_name, tutor_location, gender`

type TutorRepository struct {
	*base.Repository
}

func NewTutorRepository(pool *pgxpool.Pool) *TutorRepository {
	return &TutorRepository{Repository: base.NewRepository(pool)}
}

func scanTutor(row pgx.Row) (*model.Tutor, error) {
	var tutor model.Tutor
	err := row.Scan(
		&tutor.ID,
		&tutor.Username,
		&tutor.Password,
		&tutor.Email,
		&tutor.Mobile,
		&tutor.Name,
		&tutor.Location,
		&tutor.Gender,
	)
	if err != nil {
		return nil, err
	}
	return &tutor, nil
}

// Create сохраняет нового репетитора и заполняет ID
func (r *TutorRepository) Create(ctx context.Context, tutor *model.Tutor) error {
	query := `
		INSERT INTO tutor_table (username, password, email, mobileno, tutor_name, tutor_location, gender)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING tutor_id
	`

	err := r.QueryRow(
		ctx, query,
		tutor.Username,
		tutor.Password,
		tutor.Email,
		tutor.Mobile,
		tutor.Name,
		tutor.Location,
		tutor.Gender,
	).Scan(&tutor.ID)

	if err != nil {
		return wrapWriteErr("create tutor", err)
	}

	return nil
}

// GetByID получает репетитора по ID
func (r *TutorRepository) GetByID(ctx context.Context, id int64) (*model.Tutor, error) {
	query := `SELECT ` + tutorColumns + ` FROM tutor_table WHERE tutor_id = $1`

	tutor, err := scanTutor(r.QueryRow(ctx, query, id))
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tutor by id: %w", err)
	}

	return tutor, nil
}

// GetByUsername получает репетитора по логину
func (r *TutorRepository) GetByUsername(ctx context.Context, username string) (*model.Tutor, error) {
	query := `SELECT ` + tutorColumns + ` FROM tutor_table WHERE username = $1`

	tutor, err := scanTutor(r.QueryRow(ctx, query, username))
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tutor by username: %w", err)
	}

	return tutor, nil
}

// GetAll получает всех репетиторов
func (r *TutorRepository) GetAll(ctx context.Context) ([]*model.Tutor, error) {
	query := `SELECT ` + tutorColumns + ` FROM tutor_table ORDER BY tutor_id`

	rows, err := r.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get tutors: %w", err)
	}
	defer rows.Close()

	var tutors []*model.Tutor
	for rows.Next() {
		tutor, err := scanTutor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tutor: %w", err)
		}
		tutors = append(tutors, tutor)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tutors: %w", err)
	}

	return tutors, nil
}

// Update перезаписывает профиль репетитора
func (r *TutorRepository) Update(ctx context.Context, tutor *model.Tutor) error {
	query := `
		UPDATE tutor_table
		SET username = $1, password = $2, email = $3, mobileno = $4,
		    tutor_name = $5, tutor_location = $6, gender = $7
		WHERE tutor_id = $8
	`

	affected, err := r.ExecAffected(
		ctx, query,
		tutor.Username,
		tutor.Password,
		tutor.Email,
		tutor.Mobile,
		tutor.Name,
		tutor.Location,
		tutor.Gender,
		tutor.ID,
	)
	if err != nil {
		return wrapWriteErr("update tutor", err)
	}

	if affected == 0 {
		return fmt.Errorf("update tutor %d: %w", tutor.ID, ErrNotFound)
	}

	return nil
}

// Delete удаляет репетитора; бронирования удаляются каскадом
func (r *TutorRepository) Delete(ctx context.Context, id int64) error {
	affected, err := r.ExecAffected(ctx, `DELETE FROM tutor_table WHERE tutor_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete tutor: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("delete tutor %d: %w", id, ErrNotFound)
	}

	return nil
}
