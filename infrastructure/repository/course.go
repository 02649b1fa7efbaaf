package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/linter/edu-analytics-api/infrastructure/database/postgres"
	"github.com/linter/edu-analytics-api/internal/domain"
)

type CourseRepository interface {
	Count() (int64, error)
	ListCourses() ([]*domain.Course, error)
}

type courseRepository struct {
	conn *postgres.Connection
}

func NewCourseRepository(conn *postgres.Connection) CourseRepository {
	return &courseRepository{
		conn: conn,
	}
}

func (r *courseRepository) Count() (int64, error) {
	query, _, err := squirrel.
		Select("COUNT(*)").
		From("courses").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int64
	if err := r.conn.QueryRow(query).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar cursos: %w", err)
	}

	return count, nil
}

func (r *courseRepository) ListCourses() ([]*domain.Course, error) {
	query, _, err := squirrel.
		Select("id", "name", "price").
		From("courses").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	courses := make([]*domain.Course, 0)
	for rows.Next() {
		course := &domain.Course{}
		if err := rows.Scan(&course.ID, &course.Name, &course.Price); err != nil {
			return nil, fmt.Errorf("erro ao escanear curso: %w", err)
		}
		courses = append(courses, course)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return courses, nil
}
