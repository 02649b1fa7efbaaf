package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/linter/edu-analytics-api/infrastructure/database/postgres"
	"github.com/linter/edu-analytics-api/internal/domain"
)

const (
	usersTable = "users u"
)

// Tendência de retenção por coorte semanal: coortes agrupadas pela segunda-feira
// da semana ISO de cadastro; retido = ativo a partir de 7 dias após o início da
// coorte. O arredondamento para 2 casas é feito na própria consulta.
const weeklyRetentionTrendQuery = `
	WITH cohorts AS (
		SELECT
			DATE_TRUNC('week', registration_date)::date AS cohort_week,
			COUNT(*) AS total_users,
			COUNT(*) FILTER (
				WHERE last_activity_date >= DATE_TRUNC('week', registration_date)::date + 7
			) AS retained_users
		FROM users
		WHERE registration_date BETWEEN $1 AND $2
		GROUP BY DATE_TRUNC('week', registration_date)::date
	)
	SELECT
		cohort_week,
		CASE
			WHEN total_users > 0 THEN ROUND(retained_users * 100.0 / total_users, 2)
			ELSE 0.0
		END AS retention_rate
	FROM cohorts
	ORDER BY cohort_week`

const monthlyRetentionTrendQuery = `
	WITH cohorts AS (
		SELECT
			DATE_TRUNC('month', registration_date)::date AS cohort_month,
			COUNT(*) AS total_users,
			COUNT(*) FILTER (
				WHERE last_activity_date >= DATE_TRUNC('month', registration_date)::date + 7
			) AS retained_users
		FROM users
		WHERE registration_date BETWEEN $1 AND $2
		GROUP BY DATE_TRUNC('month', registration_date)::date
	)
	SELECT
		cohort_month,
		CASE
			WHEN total_users > 0 THEN ROUND(retained_users * 100.0 / total_users, 2)
			ELSE 0.0
		END AS retention_rate
	FROM cohorts
	ORDER BY cohort_month`

type UserRepository interface {
	Count() (int64, error)
	CountByLastActivityBetween(start, end time.Time) (int64, error)
	CountByRegistrationBetween(start, end time.Time) (int64, error)
	GetDailyActiveUsers(start, end time.Time) ([]domain.DailyActivity, error)
	FindUsersWithAnyOrdersBefore(end time.Time) ([]*domain.User, error)
	GetWeeklyRetentionTrend(start, end time.Time) ([]domain.CohortRow, error)
	GetMonthlyRetentionTrend(start, end time.Time) ([]domain.CohortRow, error)
}

type userRepository struct {
	conn *postgres.Connection
}

func NewUserRepository(conn *postgres.Connection) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

func (r *userRepository) Count() (int64, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From("users").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int64
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar usuários: %w", err)
	}

	return count, nil
}

func (r *userRepository) CountByLastActivityBetween(start, end time.Time) (int64, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From("users").
		Where(squirrel.GtOrEq{"last_activity_date": start}).
		Where(squirrel.LtOrEq{"last_activity_date": end}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int64
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar usuários ativos no período: %w", err)
	}

	return count, nil
}

func (r *userRepository) CountByRegistrationBetween(start, end time.Time) (int64, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From("users").
		Where(squirrel.GtOrEq{"registration_date": start}).
		Where(squirrel.LtOrEq{"registration_date": end}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int64
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar usuários cadastrados no período: %w", err)
	}

	return count, nil
}

// GetDailyActiveUsers retorna pares (data, usuário) de atividade dentro do
// período, ordenados por data para alimentar a janela deslizante de DAU/WAU/MAU.
func (r *userRepository) GetDailyActiveUsers(start, end time.Time) ([]domain.DailyActivity, error) {
	query, args, err := squirrel.
		Select("CAST(u.last_activity_date AS date) AS activity_date", "u.id").
		From(usersTable).
		Where(squirrel.GtOrEq{"u.last_activity_date": start}).
		Where(squirrel.LtOrEq{"u.last_activity_date": end}).
		OrderBy("u.last_activity_date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	activities := make([]domain.DailyActivity, 0)
	for rows.Next() {
		var rawDate any
		var userID int64

		if err := rows.Scan(&rawDate, &userID); err != nil {
			return nil, fmt.Errorf("erro ao escanear atividade diária: %w", err)
		}

		date, err := decodeDate("activity_date", rawDate)
		if err != nil {
			return nil, err
		}
		if date == nil {
			return nil, &DataShapeError{Column: "activity_date", Value: rawDate}
		}

		activities = append(activities, domain.DailyActivity{Date: *date, UserID: userID})
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return activities, nil
}

// FindUsersWithAnyOrdersBefore retorna os usuários que já fizeram pelo menos
// um pedido antes do instante informado, sem limitar ao período do relatório.
func (r *userRepository) FindUsersWithAnyOrdersBefore(end time.Time) ([]*domain.User, error) {
	query, args, err := squirrel.
		Select("u.id", "u.name", "u.registration_date", "u.last_activity_date").
		Options("DISTINCT").
		From(usersTable).
		Join("orders o ON o.user_id = u.id").
		Where(squirrel.Lt{"o.order_date": end}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		user, err := r.scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear usuário: %w", err)
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return users, nil
}

func (r *userRepository) GetWeeklyRetentionTrend(start, end time.Time) ([]domain.CohortRow, error) {
	return r.queryRetentionTrend(weeklyRetentionTrendQuery, start, end)
}

func (r *userRepository) GetMonthlyRetentionTrend(start, end time.Time) ([]domain.CohortRow, error) {
	return r.queryRetentionTrend(monthlyRetentionTrendQuery, start, end)
}

func (r *userRepository) queryRetentionTrend(query string, start, end time.Time) ([]domain.CohortRow, error) {
	rows, err := r.conn.Query(query, start, end)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query de coortes: %w", err)
	}
	defer rows.Close()

	cohorts := make([]domain.CohortRow, 0)
	for rows.Next() {
		var rawPeriod, rawRate any

		if err := rows.Scan(&rawPeriod, &rawRate); err != nil {
			return nil, fmt.Errorf("erro ao escanear coorte: %w", err)
		}

		periodStart, err := decodeDate("cohort_start", rawPeriod)
		if err != nil {
			return nil, err
		}

		rate, err := decodeRate("retention_rate", rawRate)
		if err != nil {
			return nil, err
		}

		cohorts = append(cohorts, domain.CohortRow{PeriodStart: periodStart, RetentionRate: rate})
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return cohorts, nil
}

func (r *userRepository) scanUser(rows *sql.Rows) (*domain.User, error) {
	user := &domain.User{}
	var lastActivity sql.NullTime

	err := rows.Scan(
		&user.ID,
		&user.Name,
		&user.RegistrationDate,
		&lastActivity,
	)
	if err != nil {
		return nil, err
	}

	if lastActivity.Valid {
		user.LastActivityDate = &lastActivity.Time
	}

	return user, nil
}
