// Gerador de dados sintéticos de demonstração: cursos, usuários e pedidos com
// um modelo comportamental simples (churn, compra rápida, compra tardia,
// recompra e visitas extras).
package main

import (
	"database/sql"
	"fmt"
	"log"
	"math/rand"
	"time"

	_ "github.com/lib/pq"

	"github.com/linter/edu-analytics-api/infrastructure/database/postgres"
	"github.com/linter/edu-analytics-api/infrastructure/repository"
	"github.com/linter/edu-analytics-api/internal/config"
	"github.com/linter/edu-analytics-api/pkg/utils"
)

// Probabilidades do modelo comportamental dos usuários sintéticos.
const (
	churnRate         = 0.30 // abandona logo após o cadastro
	earlyBuyerRate    = 0.60 // compra nos 3 primeiros dias
	delayedBuyerRate  = 0.25 // compra entre 7 e 37 dias
	repeatBuyerRate   = 0.12 // segunda compra entre 20 e 140 dias após a primeira
	extraVisitsRate   = 0.70 // compradores que voltam a visitar sem comprar
	registrationSpan  = 365  // dias de espalhamento dos cadastros
	maxExtraVisits    = 5
	maxExtraVisitSpan = 60 // dias após a última compra para visitas extras
)

type seedCourse struct {
	Name  string
	Price float64
}

var courses = []seedCourse{
	{"Violão Popular para Iniciantes", 249.90},
	{"Violão Clássico Intermediário", 329.90},
	{"Guitarra Elétrica do Zero", 299.90},
	{"Baixo Elétrico Essencial", 279.90},
	{"Piano Popular", 349.90},
	{"Teclado para Iniciantes", 229.90},
	{"Bateria Acústica Básica", 319.90},
	{"Percussão Brasileira", 199.90},
	{"Canto Popular", 269.90},
	{"Técnica Vocal Avançada", 389.90},
	{"Teoria Musical e Percepção", 179.90},
	{"Harmonia Funcional", 259.90},
	{"Produção Musical no Home Studio", 449.90},
	{"Mixagem e Masterização", 499.90},
	{"Ukulele Descomplicado", 159.90},
	{"Saxofone para Iniciantes", 359.90},
}

var firstNames = []string{
	"Ana", "Bruno", "Carla", "Diego", "Elisa", "Felipe", "Gabriela", "Hugo",
	"Isabela", "João", "Karina", "Lucas", "Mariana", "Nicolas", "Olívia",
	"Pedro", "Rafaela", "Samuel", "Tatiana", "Vinícius",
}

var lastNames = []string{
	"Almeida", "Barbosa", "Cardoso", "Dias", "Ferreira", "Gomes", "Lima",
	"Martins", "Nunes", "Oliveira", "Pereira", "Ribeiro", "Santos", "Silva",
	"Souza", "Teixeira",
}

type seedUser struct {
	Name             string
	RegistrationDate time.Time
	LastActivityDate time.Time
	Orders           []seedOrder
}

type seedOrder struct {
	CourseIdx int
	OrderDate time.Time
}

func setupLogger() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("Iniciando gerador de dados de demonstração...")
}

func createSchema(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			registration_date TIMESTAMP NOT NULL,
			last_activity_date TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS courses (
			id BIGSERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			price NUMERIC(10,2) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id BIGSERIAL PRIMARY KEY,
			reference VARCHAR(10) NOT NULL UNIQUE,
			user_id BIGINT NOT NULL REFERENCES users(id),
			course_id BIGINT NOT NULL REFERENCES courses(id),
			order_date TIMESTAMP NOT NULL,
			amount NUMERIC(10,2) NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_users_last_activity ON users (last_activity_date)`,
		`CREATE INDEX IF NOT EXISTS idx_users_registration ON users (registration_date)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_order_date ON orders (order_date)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_user_id ON orders (user_id)`,
	}

	for _, statement := range statements {
		if _, err := db.Exec(statement); err != nil {
			return fmt.Errorf("erro ao criar schema: %w", err)
		}
	}

	return nil
}

// hasData verifica se o banco já foi populado para evitar carga duplicada.
func hasData(db *sql.DB) (bool, error) {
	var count int64
	if err := db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return false, fmt.Errorf("erro ao verificar dados existentes: %w", err)
	}
	return count > 0, nil
}

func insertCourses(tx *sql.Tx) ([]int64, error) {
	log.Printf("Iniciando inserção de %d cursos...", len(courses))

	stmt, err := tx.Prepare(`INSERT INTO courses (name, price) VALUES ($1, $2) RETURNING id`)
	if err != nil {
		return nil, fmt.Errorf("erro ao preparar statement de cursos: %w", err)
	}
	defer stmt.Close()

	ids := make([]int64, 0, len(courses))
	for _, course := range courses {
		var id int64
		if err := stmt.QueryRow(course.Name, course.Price).Scan(&id); err != nil {
			return nil, fmt.Errorf("erro ao inserir curso %s: %w", course.Name, err)
		}
		ids = append(ids, id)
	}

	log.Printf("Inserção de cursos concluída: %d cursos", len(ids))
	return ids, nil
}

// buildUser sorteia o comportamento de um usuário: churn imediato, compra
// rápida, compra tardia, recompra e visitas extras. Eventos no futuro são
// descartados.
func buildUser(rng *rand.Rand, now time.Time) seedUser {
	name := fmt.Sprintf("%s %s", firstNames[rng.Intn(len(firstNames))], lastNames[rng.Intn(len(lastNames))])

	registration := now.
		AddDate(0, 0, -rng.Intn(registrationSpan)).
		Add(-time.Duration(rng.Intn(24)) * time.Hour)

	user := seedUser{
		Name:             name,
		RegistrationDate: registration,
		LastActivityDate: registration,
	}

	if rng.Float64() < churnRate {
		return user
	}

	roll := rng.Float64()
	var firstOrderDate time.Time
	switch {
	case roll < earlyBuyerRate:
		firstOrderDate = registration.AddDate(0, 0, rng.Intn(3)+1)
	case roll < earlyBuyerRate+delayedBuyerRate:
		firstOrderDate = registration.AddDate(0, 0, rng.Intn(30)+7)
	default:
		// Ativo sem compra: só visitas
		user.LastActivityDate = clamp(registration.AddDate(0, 0, rng.Intn(30)+1), now)
		return user
	}

	if firstOrderDate.After(now) {
		return user
	}

	user.Orders = append(user.Orders, seedOrder{
		CourseIdx: rng.Intn(len(courses)),
		OrderDate: firstOrderDate,
	})
	user.LastActivityDate = firstOrderDate

	if rng.Float64() < repeatBuyerRate {
		repeatDate := firstOrderDate.AddDate(0, 0, rng.Intn(120)+20)
		if !repeatDate.After(now) {
			user.Orders = append(user.Orders, seedOrder{
				CourseIdx: rng.Intn(len(courses)),
				OrderDate: repeatDate,
			})
			user.LastActivityDate = repeatDate
		}
	}

	if rng.Float64() < extraVisitsRate {
		visits := rng.Intn(maxExtraVisits) + 1
		lastVisit := user.LastActivityDate
		for i := 0; i < visits; i++ {
			lastVisit = lastVisit.AddDate(0, 0, rng.Intn(maxExtraVisitSpan)+1)
		}
		user.LastActivityDate = clamp(lastVisit, now)
	}

	return user
}

func clamp(t, max time.Time) time.Time {
	if t.After(max) {
		return max
	}
	return t
}

func insertUsers(tx *sql.Tx, courseIDs []int64, userCount int, rng *rand.Rand) error {
	log.Printf("Iniciando inserção de %d usuários...", userCount)
	startTime := time.Now()

	userStmt, err := tx.Prepare(`INSERT INTO users (name, registration_date, last_activity_date) VALUES ($1, $2, $3) RETURNING id`)
	if err != nil {
		return fmt.Errorf("erro ao preparar statement de usuários: %w", err)
	}
	defer userStmt.Close()

	orderStmt, err := tx.Prepare(`INSERT INTO orders (reference, user_id, course_id, order_date, amount) VALUES ($1, $2, $3, $4, $5)`)
	if err != nil {
		return fmt.Errorf("erro ao preparar statement de pedidos: %w", err)
	}
	defer orderStmt.Close()

	now := time.Now()
	orderCount := 0

	for i := 0; i < userCount; i++ {
		user := buildUser(rng, now)

		var userID int64
		err := userStmt.QueryRow(user.Name, user.RegistrationDate, user.LastActivityDate).Scan(&userID)
		if err != nil {
			return fmt.Errorf("erro ao inserir usuário %s: %w", user.Name, err)
		}

		for _, order := range user.Orders {
			reference, err := utils.GenerateReference()
			if err != nil {
				return fmt.Errorf("erro ao gerar referência de pedido: %w", err)
			}

			_, err = orderStmt.Exec(
				reference,
				userID,
				courseIDs[order.CourseIdx],
				order.OrderDate,
				courses[order.CourseIdx].Price,
			)
			if err != nil {
				return fmt.Errorf("erro ao inserir pedido do usuário %d: %w", userID, err)
			}
			orderCount++
		}

		if i > 0 && i%100 == 0 {
			log.Printf("Progresso: %d/%d usuários processados", i, userCount)
		}
	}

	elapsed := time.Since(startTime)
	log.Printf("Inserção concluída em %v. Usuários: %d, Pedidos: %d", elapsed, userCount, orderCount)

	return nil
}

func main() {
	setupLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("ERRO ao carregar configuração: %v", err)
	}

	log.Println("Conectando ao banco de dados...")
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatalf("ERRO ao conectar ao banco de dados: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("ERRO ao verificar conexão com o banco: %v", err)
	}
	log.Println("Conexão com o banco de dados estabelecida com sucesso")

	if err := createSchema(db); err != nil {
		log.Fatalf("ERRO ao criar schema: %v", err)
	}
	log.Println("Schema verificado")

	populated, err := hasData(db)
	if err != nil {
		log.Fatalf("ERRO ao verificar dados existentes: %v", err)
	}
	if populated {
		log.Println("Banco já populado, nada a fazer")
		return
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	startTime := time.Now()
	log.Println("Iniciando transação...")

	tx, err := db.Begin()
	if err != nil {
		log.Fatalf("ERRO ao iniciar transação: %v", err)
	}

	courseIDs, err := insertCourses(tx)
	if err != nil {
		tx.Rollback()
		log.Fatalf("ERRO na inserção de cursos: %v", err)
	}

	if err := insertUsers(tx, courseIDs, cfg.Seed.UserCount, rng); err != nil {
		tx.Rollback()
		log.Fatalf("ERRO na inserção de usuários: %v", err)
	}

	if err := tx.Commit(); err != nil {
		log.Fatalf("ERRO ao confirmar transação: %v", err)
	}

	elapsed := time.Since(startTime)
	log.Printf("Carga inicial concluída em %v!", elapsed)

	// Verificação final pelo mesmo caminho de leitura usado pela API
	courseRepo := repository.NewCourseRepository(&postgres.Connection{DB: db})
	catalog, err := courseRepo.ListCourses()
	if err != nil {
		log.Fatalf("ERRO na verificação do catálogo: %v", err)
	}
	log.Printf("Verificação do catálogo: %d cursos disponíveis", len(catalog))
}
