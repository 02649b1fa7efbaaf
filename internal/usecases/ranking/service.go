package ranking

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/linter/edu-analytics-api/infrastructure/repository"
	"github.com/linter/edu-analytics-api/internal/domain"
)

// O ranking exibe só as primeiras posições.
const topProductsLimit = 5

// ProductRanker retorna o ranking de cursos por volume de pedidos no período.
type ProductRanker interface {
	GetProductPerformance(start, end time.Time) ([]*domain.ProductPerformance, error)
}

type ProductRankingService struct {
	orderRepository repository.OrderRepository
}

func NewProductRankingService(orderRepository repository.OrderRepository) ProductRanker {
	return &ProductRankingService{
		orderRepository: orderRepository,
	}
}

// GetProductPerformance trunca as linhas já ordenadas da fonte nas primeiras
// cinco posições. A fonte ordena por volume decrescente; empates mantêm a
// ordem estável do banco e não são reordenados aqui. Fonte vazia produz lista
// vazia, nunca erro.
func (s *ProductRankingService) GetProductPerformance(start, end time.Time) ([]*domain.ProductPerformance, error) {
	performances, err := s.orderRepository.GetProductPerformance(start, end)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar desempenho de cursos")
		return nil, err
	}

	if len(performances) > topProductsLimit {
		performances = performances[:topProductsLimit]
	}

	return performances, nil
}
