package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/captain-burah/estateflow-pro/internal/domain"
)

// PostgresAgentRepository implements AgentRepository using PostgreSQL.
type PostgresAgentRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresAgentRepository creates a new PostgresAgentRepository.
func NewPostgresAgentRepository(pool *pgxpool.Pool) *PostgresAgentRepository {
	return &PostgresAgentRepository{pool: pool}
}

const agentColumns = `id, name, email, phone, avatar, sales_count, total_revenue, rating,
	created_at, updated_at`

func scanAgent(row rowScanner) (*domain.Agent, error) {
	var a domain.Agent
	err := row.Scan(
		&a.ID, &a.Name, &a.Email, &a.Phone, &a.Avatar, &a.SalesCount, &a.TotalRevenue, &a.Rating,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *PostgresAgentRepository) Create(ctx context.Context, a *domain.Agent) error {
	query := fmt.Sprintf(`INSERT INTO agents (%s) VALUES (%s)`, agentColumns, placeholders(10))

	_, err := r.pool.Exec(ctx, query,
		a.ID, a.Name, a.Email, a.Phone, a.Avatar, a.SalesCount, a.TotalRevenue, a.Rating,
		a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert agent: %w", err)
	}
	return nil
}

func (r *PostgresAgentRepository) GetByID(ctx context.Context, id string) (*domain.Agent, error) {
	query := fmt.Sprintf(`SELECT %s FROM agents WHERE id = $1`, agentColumns)

	a, err := scanAgent(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select agent: %w", err)
	}
	return a, nil
}

func (r *PostgresAgentRepository) List(ctx context.Context) ([]domain.Agent, error) {
	query := fmt.Sprintf(`SELECT %s FROM agents ORDER BY total_revenue DESC, name ASC`, agentColumns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("select agents: %w", err)
	}
	defer rows.Close()

	agents := make([]domain.Agent, 0)
	for rows.Next() {
		a, err := scanAgent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan agent: %w", err)
		}
		agents = append(agents, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate agents: %w", err)
	}
	return agents, nil
}

func (r *PostgresAgentRepository) Update(ctx context.Context, a *domain.Agent) error {
	query := `UPDATE agents SET
		name = $2, email = $3, phone = $4, avatar = $5,
		sales_count = $6, total_revenue = $7, rating = $8, updated_at = $9
		WHERE id = $1`

	a.UpdatedAt = time.Now()

	tag, err := r.pool.Exec(ctx, query,
		a.ID, a.Name, a.Email, a.Phone, a.Avatar,
		a.SalesCount, a.TotalRevenue, a.Rating, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update agent: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &domain.NotFoundError{Resource: "agent", ID: a.ID}
	}
	return nil
}

func (r *PostgresAgentRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM agents`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count agents: %w", err)
	}
	return count, nil
}
