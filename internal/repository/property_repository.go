package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/captain-burah/estateflow-pro/internal/domain"
)

// PostgresPropertyRepository implements PropertyRepository using PostgreSQL.
type PostgresPropertyRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresPropertyRepository creates a new PostgresPropertyRepository.
func NewPostgresPropertyRepository(pool *pgxpool.Pool) *PostgresPropertyRepository {
	return &PostgresPropertyRepository{pool: pool}
}

const propertyColumns = `id, title, title_ar, category, status, price, price_type, location,
	bedrooms, bathrooms, area, agent, image, description, description_ar,
	furnishing_type, size, property_age, available_from, compliance_type,
	listing_advertisement_number, project_status, developer, unit_number, floor_number,
	parking_slots, downpayment, number_of_cheques, amenities,
	published_portals, portal_configs, assigned_agent_id,
	is_portal_enhanced, portal_enhancement_completed_at, portal_enhancement_completed_by,
	approval_status, pending_changes, edited_by, edited_at, rejection_reason,
	created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProperty(row rowScanner) (*domain.Property, error) {
	var (
		p                domain.Property
		publishedPortals []string
		portalConfigs    []byte
		pendingChanges   []byte
	)

	err := row.Scan(
		&p.ID, &p.Title, &p.TitleAr, &p.Category, &p.Status, &p.Price, &p.PriceType, &p.Location,
		&p.Bedrooms, &p.Bathrooms, &p.Area, &p.Agent, &p.Image, &p.Description, &p.DescriptionAr,
		&p.FurnishingType, &p.Size, &p.PropertyAge, &p.AvailableFrom, &p.ComplianceType,
		&p.ListingAdvertisementNumber, &p.ProjectStatus, &p.Developer, &p.UnitNumber, &p.FloorNumber,
		&p.ParkingSlots, &p.Downpayment, &p.NumberOfCheques, &p.Amenities,
		&publishedPortals, &portalConfigs, &p.AssignedAgentID,
		&p.IsPortalEnhanced, &p.PortalEnhancementCompletedAt, &p.PortalEnhancementCompletedBy,
		&p.ApprovalStatus, &pendingChanges, &p.EditedBy, &p.EditedAt, &p.RejectionReason,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.PublishedPortals = make([]domain.PortalName, len(publishedPortals))
	for i, name := range publishedPortals {
		p.PublishedPortals[i] = domain.PortalName(name)
	}
	if portalConfigs != nil {
		if err := json.Unmarshal(portalConfigs, &p.PortalConfigs); err != nil {
			return nil, fmt.Errorf("unmarshal portal configs: %w", err)
		}
	}
	if pendingChanges != nil {
		if err := json.Unmarshal(pendingChanges, &p.PendingChanges); err != nil {
			return nil, fmt.Errorf("unmarshal pending changes: %w", err)
		}
	}

	return &p, nil
}

func propertyArgs(p *domain.Property) ([]any, error) {
	var portalConfigs any
	if p.PortalConfigs != nil {
		b, err := json.Marshal(p.PortalConfigs)
		if err != nil {
			return nil, fmt.Errorf("marshal portal configs: %w", err)
		}
		portalConfigs = b
	}

	var pendingChanges any
	if p.PendingChanges != nil {
		b, err := json.Marshal(p.PendingChanges)
		if err != nil {
			return nil, fmt.Errorf("marshal pending changes: %w", err)
		}
		pendingChanges = b
	}

	publishedPortals := make([]string, len(p.PublishedPortals))
	for i, name := range p.PublishedPortals {
		publishedPortals[i] = string(name)
	}

	return []any{
		p.ID, p.Title, p.TitleAr, p.Category, p.Status, p.Price, p.PriceType, p.Location,
		p.Bedrooms, p.Bathrooms, p.Area, p.Agent, p.Image, p.Description, p.DescriptionAr,
		p.FurnishingType, p.Size, p.PropertyAge, p.AvailableFrom, p.ComplianceType,
		p.ListingAdvertisementNumber, p.ProjectStatus, p.Developer, p.UnitNumber, p.FloorNumber,
		p.ParkingSlots, p.Downpayment, p.NumberOfCheques, p.Amenities,
		publishedPortals, portalConfigs, p.AssignedAgentID,
		p.IsPortalEnhanced, p.PortalEnhancementCompletedAt, p.PortalEnhancementCompletedBy,
		p.ApprovalStatus, pendingChanges, p.EditedBy, p.EditedAt, p.RejectionReason,
		p.CreatedAt, p.UpdatedAt,
	}, nil
}

func placeholders(n int) string {
	out := ""
	for i := 1; i <= n; i++ {
		if i > 1 {
			out += ", "
		}
		out += fmt.Sprintf("$%d", i)
	}
	return out
}

// Create inserts a new property.
func (r *PostgresPropertyRepository) Create(ctx context.Context, p *domain.Property) error {
	args, err := propertyArgs(p)
	if err != nil {
		return err
	}

	query := fmt.Sprintf("INSERT INTO properties (%s) VALUES (%s)", propertyColumns, placeholders(len(args)))
	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert property: %w", err)
	}
	return nil
}

// GetByID retrieves a property by ID. Returns (nil, nil) when not found.
func (r *PostgresPropertyRepository) GetByID(ctx context.Context, id string) (*domain.Property, error) {
	query := fmt.Sprintf("SELECT %s FROM properties WHERE id = $1", propertyColumns)

	p, err := scanProperty(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get property: %w", err)
	}
	return p, nil
}

// List returns properties matching the filter plus the unpaginated total.
func (r *PostgresPropertyRepository) List(ctx context.Context, filter PropertyFilter) ([]domain.Property, int, error) {
	where := "WHERE 1=1"
	args := []any{}
	argNum := 1

	if filter.Category != "" {
		where += fmt.Sprintf(" AND category = $%d", argNum)
		args = append(args, filter.Category)
		argNum++
	}
	if filter.City != "" {
		where += fmt.Sprintf(" AND location ILIKE $%d", argNum)
		args = append(args, "%"+filter.City+"%")
		argNum++
	}
	if filter.Status != "" {
		where += fmt.Sprintf(" AND status = $%d", argNum)
		args = append(args, filter.Status)
		argNum++
	}

	var total int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM properties "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count properties: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 10
	}

	query := fmt.Sprintf("SELECT %s FROM properties %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		propertyColumns, where, argNum, argNum+1)
	args = append(args, pageSize, (page-1)*pageSize)

	properties, err := r.queryProperties(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return properties, total, nil
}

// Search finds properties whose title or location matches the query.
func (r *PostgresPropertyRepository) Search(ctx context.Context, query string, limit int) ([]domain.Property, error) {
	q := fmt.Sprintf(`SELECT %s FROM properties
		WHERE title ILIKE $1 OR location ILIKE $1
		ORDER BY created_at DESC LIMIT $2`, propertyColumns)
	return r.queryProperties(ctx, q, "%"+query+"%", limit)
}

// ListPendingApprovals returns properties awaiting review, most recently
// edited first.
func (r *PostgresPropertyRepository) ListPendingApprovals(ctx context.Context) ([]domain.Property, error) {
	q := fmt.Sprintf(`SELECT %s FROM properties
		WHERE approval_status = $1
		ORDER BY edited_at DESC NULLS LAST`, propertyColumns)
	return r.queryProperties(ctx, q, domain.ApprovalPending)
}

// ListByAgent returns all properties assigned to the named agent.
func (r *PostgresPropertyRepository) ListByAgent(ctx context.Context, agentName string) ([]domain.Property, error) {
	q := fmt.Sprintf("SELECT %s FROM properties WHERE agent = $1 ORDER BY created_at DESC", propertyColumns)
	return r.queryProperties(ctx, q, agentName)
}

func (r *PostgresPropertyRepository) queryProperties(ctx context.Context, query string, args ...any) ([]domain.Property, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query properties: %w", err)
	}
	defer rows.Close()

	var properties []domain.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("scan property: %w", err)
		}
		properties = append(properties, *p)
	}
	return properties, rows.Err()
}

const updatePropertySQL = `UPDATE properties SET
	title = $2, title_ar = $3, category = $4, status = $5, price = $6, price_type = $7,
	location = $8, bedrooms = $9, bathrooms = $10, area = $11, agent = $12, image = $13,
	description = $14, description_ar = $15, furnishing_type = $16, size = $17,
	property_age = $18, available_from = $19, compliance_type = $20,
	listing_advertisement_number = $21, project_status = $22, developer = $23,
	unit_number = $24, floor_number = $25, parking_slots = $26, downpayment = $27,
	number_of_cheques = $28, amenities = $29, published_portals = $30, portal_configs = $31,
	assigned_agent_id = $32, is_portal_enhanced = $33, portal_enhancement_completed_at = $34,
	portal_enhancement_completed_by = $35, approval_status = $36, pending_changes = $37,
	edited_by = $38, edited_at = $39, rejection_reason = $40, created_at = $41, updated_at = $42
	WHERE id = $1`

// execer is satisfied by both *pgxpool.Pool and pgx.Tx.
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func execUpdate(ctx context.Context, exec execer, p *domain.Property) error {
	args, err := propertyArgs(p)
	if err != nil {
		return err
	}
	tag, err := exec.Exec(ctx, updatePropertySQL, args...)
	if err != nil {
		return fmt.Errorf("update property: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &domain.NotFoundError{Resource: "property", ID: p.ID}
	}
	return nil
}

// Update persists all mutable columns of the property.
func (r *PostgresPropertyRepository) Update(ctx context.Context, p *domain.Property) error {
	p.UpdatedAt = time.Now()
	return execUpdate(ctx, r.pool, p)
}

// UpdateAtomic loads the property under a row lock, applies mutate, and writes
// the result back in the same transaction. A mutate error rolls everything
// back, so a failed transition never persists partial field writes.
func (r *PostgresPropertyRepository) UpdateAtomic(ctx context.Context, id string, mutate func(*domain.Property) error) (*domain.Property, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := fmt.Sprintf("SELECT %s FROM properties WHERE id = $1 FOR UPDATE", propertyColumns)
	p, err := scanProperty(tx.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &domain.NotFoundError{Resource: "property", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("lock property: %w", err)
	}

	if err := mutate(p); err != nil {
		return nil, err
	}
	p.UpdatedAt = time.Now()

	if err := execUpdate(ctx, tx, p); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}
	return p, nil
}

// Delete removes a property.
func (r *PostgresPropertyRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM properties WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete property: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &domain.NotFoundError{Resource: "property", ID: id}
	}
	return nil
}

// DashboardStats aggregates the headline dashboard numbers in one round trip.
func (r *PostgresPropertyRepository) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	var stats domain.DashboardStats

	err := r.pool.QueryRow(ctx, `
		SELECT
			COALESCE(SUM(price) FILTER (WHERE category IN ('sale', 'luxury')), 0),
			COALESCE(SUM(price) FILTER (WHERE category = 'rental'), 0),
			COUNT(*) FILTER (WHERE category = 'luxury'),
			COUNT(*) FILTER (WHERE status = 'available'),
			COUNT(*)
		FROM properties
	`).Scan(&stats.TotalRevenue, &stats.RentalRevenue, &stats.LuxuryInventory,
		&stats.AvailableListings, &stats.TotalProperties)
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}

	return &stats, nil
}
