package utils

import "time"

// ParseDate converte uma data no formato AAAA-MM-DD. String vazia retorna a
// data zero, deixando a decisão de padrão para quem chama.
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// DaysBetween retorna o número de períodos completos de 24h entre dois
// instantes, truncando o resto. Usado no rateio linear do custo de marketing.
func DaysBetween(start, end time.Time) int64 {
	return int64(end.Sub(start) / (24 * time.Hour))
}

// CalendarDaysBetween retorna o número de dias de calendário entre as datas
// dos dois instantes, ignorando o horário. Usado na escolha de granularidade.
func CalendarDaysBetween(start, end time.Time) int64 {
	startDate := Truncate(start)
	endDate := Truncate(end)
	return int64(endDate.Sub(startDate) / (24 * time.Hour))
}

// Truncate descarta o horário de um instante, mantendo a localidade.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
