package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/suhas152/KUBERNETES-IMPLEMENTATION/internal/model"
	"github.com/suhas152/KUBERNETES-IMPLEMENTATION/internal/repository/base"
)

const studentColumns = `s_id, student_name, student_passwd, student_email, student_phone, student_age, s_name, student_adress, student_gender`

type StudentRepository struct {
	*base.Repository
}

func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{Repository: base.NewRepository(pool)}
}

func scanStudent(row pgx.Row) (*model.Student, error) {
	var student model.Student
	err := row.Scan(
		&student.ID,
		&student.Username,
		&student.Password,
		&student.Email,
		&student.Phone,
		&student.Age,
		&student.Name,
		&student.Address,
		&student.Gender,
	)
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// Create сохраняет нового студента и заполняет ID
func (r *StudentRepository) Create(ctx context.Context, student *model.Student) error {
	query := `
		INSERT INTO student_table (student_name, student_passwd, student_email, student_phone, student_age, s_name, student_adress, student_gender)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING s_id
	`

	err := r.QueryRow(
		ctx, query,
		student.Username,
		student.Password,
		student.Email,
		student.Phone,
		student.Age,
		student.Name,
		student.Address,
		student.Gender,
	).Scan(&student.ID)

	if err != nil {
		return wrapWriteErr("create student", err)
	}

	return nil
}

// GetByID получает студента по ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*model.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM student_table WHERE s_id = $1`

	student, err := scanStudent(r.QueryRow(ctx, query, id))
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get student by id: %w", err)
	}

	return student, nil
}

// GetByUsername получает студента по логину
func (r *StudentRepository) GetByUsername(ctx context.Context, username string) (*model.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM student_table WHERE student_name = $1`

	student, err := scanStudent(r.QueryRow(ctx, query, username))
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get student by username: %w", err)
	}

	return student, nil
}

// GetAll получает всех студентов
func (r *StudentRepository) GetAll(ctx context.Context) ([]*model.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM student_table ORDER BY s_id`

	rows, err := r.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get students: %w", err)
	}
	defer rows.Close()

	var students []*model.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan student: %w", err)
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate students: %w", err)
	}

	return students, nil
}

// Update перезаписывает все поля студента кроме ID
func (r *StudentRepository) Update(ctx context.Context, student *model.Student) error {
	query := `
		UPDATE student_table
		SET student_name = $1, student_passwd = $2, student_email = $3, student_phone = $4,
		    student_age = $5, s_name = $6, student_adress = $7, student_gender = $8
		WHERE s_id = $9
	`

	affected, err := r.ExecAffected(
		ctx, query,
		student.Username,
		student.Password,
		student.Email,
		student.Phone,
		student.Age,
		student.Name,
		student.Address,
		student.Gender,
		student.ID,
	)
	if err != nil {
		return wrapWriteErr("update student", err)
	}

	if affected == 0 {
		return fmt.Errorf("update student %d: %w", student.ID, ErrNotFound)
	}

	return nil
}

// Delete удаляет студента; бронирования удаляются каскадом
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	affected, err := r.ExecAffected(ctx, `DELETE FROM student_table WHERE s_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete student: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("delete student %d: %w", id, ErrNotFound)
	}

	return nil
}
