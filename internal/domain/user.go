package domain

import "time"

// User representa um aluno da plataforma. A relação com pedidos é
// unidirecional: Order guarda o UserID, e a exclusão em cascata é uma
// operação explícita do repositório de pedidos (DeleteByUser).
type User struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	RegistrationDate time.Time `json:"registration_date"`
	// LastActivityDate é nulo quando o aluno nunca voltou depois do cadastro.
	// Invariante: quando presente, nunca é anterior a RegistrationDate.
	LastActivityDate *time.Time `json:"last_activity_date,omitempty"`
}

// DailyActivity é um par (data, aluno) retornado pela consulta de atividade
// diária, ordenado por data para suportar o cálculo de janelas deslizantes.
type DailyActivity struct {
	Date   time.Time
	UserID int64
}
