package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order representa um pedido de compra de um curso. O valor é copiado do
// preço do curso no momento da compra para preservar o histórico de preços.
// OrderDate é imutável depois de criado.
type Order struct {
	ID        int64           `json:"id"`
	Reference string          `json:"reference"`
	UserID    int64           `json:"user_id"`
	CourseID  int64           `json:"course_id"`
	OrderDate time.Time       `json:"order_date"`
	Amount    decimal.Decimal `json:"amount"`
}
