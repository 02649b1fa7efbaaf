package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	"github.com/linter/edu-analytics-api/infrastructure/database/postgres"
	"github.com/linter/edu-analytics-api/internal/domain"
)

const (
	ordersTable = "orders o"
)

type OrderRepository interface {
	CountByOrderDateBetween(start, end time.Time) (int64, error)
	CountDistinctPayingUsersBetween(start, end time.Time) (int64, error)
	GetTotalRevenue() (decimal.Decimal, error)
	GetTotalRevenueBetween(start, end time.Time) (decimal.Decimal, error)
	GetProductPerformance(start, end time.Time) ([]*domain.ProductPerformance, error)
	FindByUser(userID int64) ([]*domain.Order, error)
	DeleteByUser(userID int64) (int64, error)
}

type orderRepository struct {
	conn *postgres.Connection
}

func NewOrderRepository(conn *postgres.Connection) OrderRepository {
	return &orderRepository{
		conn: conn,
	}
}

func (r *orderRepository) CountByOrderDateBetween(start, end time.Time) (int64, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From("orders").
		Where(squirrel.GtOrEq{"order_date": start}).
		Where(squirrel.LtOrEq{"order_date": end}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int64
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar pedidos no período: %w", err)
	}

	return count, nil
}

func (r *orderRepository) CountDistinctPayingUsersBetween(start, end time.Time) (int64, error) {
	query, args, err := squirrel.
		Select("COUNT(DISTINCT o.user_id)").
		From(ordersTable).
		Where(squirrel.GtOrEq{"o.order_date": start}).
		Where(squirrel.LtOrEq{"o.order_date": end}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int64
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar usuários pagantes: %w", err)
	}

	return count, nil
}

// GetTotalRevenue retorna a receita acumulada de todos os tempos. Zero, nunca
// nulo, quando não há pedidos.
func (r *orderRepository) GetTotalRevenue() (decimal.Decimal, error) {
	query, _, err := squirrel.
		Select("COALESCE(SUM(amount), 0)").
		From("orders").
		ToSql()
	if err != nil {
		return decimal.Zero, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var rawRevenue any
	if err := r.conn.QueryRow(query).Scan(&rawRevenue); err != nil {
		return decimal.Zero, fmt.Errorf("erro ao somar receita total: %w", err)
	}

	return decodeDecimal("total_revenue", rawRevenue)
}

func (r *orderRepository) GetTotalRevenueBetween(start, end time.Time) (decimal.Decimal, error) {
	query, args, err := squirrel.
		Select("COALESCE(SUM(amount), 0)").
		From("orders").
		Where(squirrel.GtOrEq{"order_date": start}).
		Where(squirrel.LtOrEq{"order_date": end}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return decimal.Zero, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var rawRevenue any
	if err := r.conn.QueryRow(query, args...).Scan(&rawRevenue); err != nil {
		return decimal.Zero, fmt.Errorf("erro ao somar receita do período: %w", err)
	}

	return decodeDecimal("period_revenue", rawRevenue)
}

// GetProductPerformance retorna os cursos do período ordenados por volume de
// pedidos decrescente. Empates ficam na ordem estável do banco; o motor de
// ranking não reordena.
func (r *orderRepository) GetProductPerformance(start, end time.Time) ([]*domain.ProductPerformance, error) {
	query, args, err := squirrel.
		Select("c.id", "c.name", "COUNT(o.id) AS order_count", "COALESCE(SUM(o.amount), 0) AS revenue").
		From(ordersTable).
		Join("courses c ON c.id = o.course_id").
		Where(squirrel.GtOrEq{"o.order_date": start}).
		Where(squirrel.LtOrEq{"o.order_date": end}).
		GroupBy("c.id", "c.name").
		OrderBy("COUNT(o.id) DESC").
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

	performances := make([]*domain.ProductPerformance, 0)
	for rows.Next() {
		perf := &domain.ProductPerformance{}
		var rawRevenue any

		if err := rows.Scan(&perf.CourseID, &perf.CourseName, &perf.OrderCount, &rawRevenue); err != nil {
			return nil, fmt.Errorf("erro ao escanear desempenho de curso: %w", err)
		}

		revenue, err := decodeDecimal("revenue", rawRevenue)
		if err != nil {
			return nil, err
		}
		perf.Revenue = revenue

		performances = append(performances, perf)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return performances, nil
}

// FindByUser retorna o histórico completo de pedidos de um usuário, usado pelo
// cálculo de recompra vitalícia.
func (r *orderRepository) FindByUser(userID int64) ([]*domain.Order, error) {
	query, args, err := squirrel.
		Select("o.id", "o.reference", "o.user_id", "o.course_id", "o.order_date", "o.amount").
		From(ordersTable).
		Where(squirrel.Eq{"o.user_id": userID}).
		OrderBy("o.order_date ASC").
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

	orders := make([]*domain.Order, 0)
	for rows.Next() {
		order := &domain.Order{}
		err := rows.Scan(
			&order.ID,
			&order.Reference,
			&order.UserID,
			&order.CourseID,
			&order.OrderDate,
			&order.Amount,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear pedido: %w", err)
		}
		orders = append(orders, order)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return orders, nil
}

// DeleteByUser remove os pedidos de um usuário em lote. Substitui a exclusão
// em cascata do modelo de objetos por uma operação explícita do repositório.
func (r *orderRepository) DeleteByUser(userID int64) (int64, error) {
	query, args, err := squirrel.
		Delete("orders").
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}
