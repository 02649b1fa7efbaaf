package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Granularity é a resolução de agregação temporal usada pelas métricas de
// audiência e pela tendência de retenção.
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

// Nomes das métricas de audiência no relatório.
const (
	MetricDAU = "DAU"
	MetricWAU = "WAU"
	MetricMAU = "MAU"
)

// AudienceMetrics mapeia nome da métrica (DAU/WAU/MAU) para data → contagem
// de alunos ativos. As chaves de data usam o formato AAAA-MM-DD, então a
// serialização JSON (que ordena chaves de mapa) sai em ordem cronológica.
type AudienceMetrics map[string]map[string]int

// RetentionTrend mapeia o início da coorte (AAAA-MM-DD) para o percentual de
// retenção daquela coorte, também ordenado cronologicamente no JSON.
type RetentionTrend map[string]float64

// CohortRow é uma linha bruta da consulta de coortes. Campos nulos vindos da
// fonte são representados como ponteiros nil e descartados pelo motor de
// retenção com um diagnóstico, sem abortar o cálculo.
type CohortRow struct {
	PeriodStart   *time.Time
	RetentionRate *float64
}

// DashboardStats são os totais exibidos no topo do dashboard.
type DashboardStats struct {
	UserCount    int64           `json:"user_count"`
	CourseCount  int64           `json:"course_count"`
	OrderCount   int64           `json:"order_count"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

// ProductPerformance é uma posição do ranking de cursos por volume de pedidos.
type ProductPerformance struct {
	CourseID   int64           `json:"course_id"`
	CourseName string          `json:"course_name"`
	OrderCount int64           `json:"order_count"`
	Revenue    decimal.Decimal `json:"revenue"`
}

// CompleteMetricsReport é o relatório composto montado pelo orquestrador de
// métricas para um período. Todas as estruturas são efêmeras: criadas por
// requisição e descartadas depois da resposta.
type CompleteMetricsReport struct {
	DashboardStats     *DashboardStats       `json:"dashboard_stats"`
	AudienceMetrics    AudienceMetrics       `json:"audience_metrics"`
	RetentionRate      float64               `json:"retention_rate"`
	LTV                decimal.Decimal       `json:"ltv"`
	CAC                decimal.Decimal       `json:"cac"`
	ARPPU              decimal.Decimal       `json:"arppu"`
	ProductPerformance []*ProductPerformance `json:"product_performance"`
	RetentionTrend     RetentionTrend        `json:"retention_trend"`
}
