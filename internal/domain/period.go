package domain

import "time"

// Period delimita o intervalo de um relatório. Start é inclusivo e End é
// exclusivo (meia-noite do dia seguinte ao último dia do período).
type Period struct {
	Start time.Time
	End   time.Time
}

// Rótulos de período aceitos pela camada de apresentação.
const (
	PeriodLast7Days   = "last7days"
	PeriodLast30Days  = "last30days"
	PeriodLast90Days  = "last90days"
	PeriodLast365Days = "last365days"
)

// PeriodFromLabel converte um rótulo de período em um intervalo concreto
// terminando amanhã à meia-noite. Rótulos desconhecidos caem no padrão de
// 30 dias.
func PeriodFromLabel(label string, now time.Time) Period {
	endDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var days int
	switch label {
	case PeriodLast7Days:
		days = 7
	case PeriodLast90Days:
		days = 90
	case PeriodLast365Days:
		days = 365
	default:
		days = 30
	}

	return Period{
		Start: endDate.AddDate(0, 0, -days),
		End:   endDate.AddDate(0, 0, 1),
	}
}
