package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/polyforge/printdesk/internal/domain/errors"
	"github.com/polyforge/printdesk/internal/domain/model"
)

// pgxPool is the subset of pgxpool.Pool the storage depends on. It lets tests
// substitute a pgxmock pool.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage persists orders in PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS orders (
            id TEXT PRIMARY KEY,
            name TEXT NOT NULL,
            phone TEXT NOT NULL,
            delivery_method TEXT NOT NULL,
            street_address TEXT,
            city TEXT,
            state TEXT,
            zip TEXT,
            model_file_name TEXT,
            weight_grams DOUBLE PRECISION NOT NULL DEFAULT 0,
            print_time TEXT NOT NULL DEFAULT '',
            base_cost DOUBLE PRECISION NOT NULL DEFAULT 0,
            support_removal BOOLEAN NOT NULL DEFAULT FALSE,
            support_cost DOUBLE PRECISION NOT NULL DEFAULT 0,
            total_cost DOUBLE PRECISION NOT NULL DEFAULT 0,
            status TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_created ON orders(created_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

const orderColumns = `id, name, phone, delivery_method, street_address, city, state, zip,
                      model_file_name, weight_grams, print_time, base_cost,
                      support_removal, support_cost, total_cost, status, created_at, updated_at`

// Create assigns a fresh identifier and inserts the order as pending.
func (s *Storage) Create(ctx context.Context, draft model.OrderDraft) (*model.Order, error) {
	const query = `INSERT INTO orders (id, name, phone, delivery_method, street_address, city, state, zip,
                                       model_file_name, weight_grams, print_time, base_cost,
                                       support_removal, support_cost, total_cost, status)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
                   RETURNING created_at, updated_at`

	order := model.Order{
		ID:             uuid.NewString(),
		Name:           draft.Name,
		Phone:          draft.Phone,
		DeliveryMethod: draft.DeliveryMethod,
		StreetAddress:  draft.StreetAddress,
		City:           draft.City,
		State:          draft.State,
		Zip:            draft.Zip,
		ModelFileName:  draft.ModelFileName,
		WeightGrams:    draft.WeightGrams,
		PrintTime:      draft.PrintTime,
		BaseCost:       draft.BaseCost,
		SupportRemoval: draft.SupportRemoval,
		SupportCost:    draft.SupportCost,
		TotalCost:      draft.TotalCost,
		Status:         model.OrderStatusPending,
	}

	err := s.pool.QueryRow(ctx, query,
		order.ID, order.Name, order.Phone, order.DeliveryMethod,
		order.StreetAddress, order.City, order.State, order.Zip,
		order.ModelFileName, order.WeightGrams, order.PrintTime, order.BaseCost,
		order.SupportRemoval, order.SupportCost, order.TotalCost, order.Status,
	).Scan(&order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return &order, nil
}

// Get returns the order with the given identifier or ErrNotFound.
func (s *Storage) Get(ctx context.Context, id string) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`

	order, err := scanOrderRow(s.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return order, nil
}

// Update merges non-nil patch fields over the stored record and refreshes
// updated_at. Returns ErrNotFound when the identifier is absent.
func (s *Storage) Update(ctx context.Context, id string, patch model.OrderPatch) (*model.Order, error) {
	query := `UPDATE orders SET
                  name=COALESCE($2, name),
                  phone=COALESCE($3, phone),
                  delivery_method=COALESCE($4, delivery_method),
                  street_address=COALESCE($5, street_address),
                  city=COALESCE($6, city),
                  state=COALESCE($7, state),
                  zip=COALESCE($8, zip),
                  support_removal=COALESCE($9, support_removal),
                  support_cost=COALESCE($10, support_cost),
                  total_cost=COALESCE($11, total_cost),
                  status=COALESCE($12, status),
                  updated_at=NOW()
              WHERE id=$1
              RETURNING ` + orderColumns

	var method *string
	if patch.DeliveryMethod != nil {
		m := string(*patch.DeliveryMethod)
		method = &m
	}
	var status *string
	if patch.Status != nil {
		st := string(*patch.Status)
		status = &st
	}

	order, err := scanOrderRow(s.pool.QueryRow(ctx, query,
		id, patch.Name, patch.Phone, method,
		patch.StreetAddress, patch.City, patch.State, patch.Zip,
		patch.SupportRemoval, patch.SupportCost, patch.TotalCost, status,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return order, nil
}

// List returns all stored orders, newest first.
func (s *Storage) List(ctx context.Context) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		order, err := scanOrderRow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func scanOrderRow(row pgx.Row) (*model.Order, error) {
	var o model.Order
	err := row.Scan(
		&o.ID, &o.Name, &o.Phone, &o.DeliveryMethod,
		&o.StreetAddress, &o.City, &o.State, &o.Zip,
		&o.ModelFileName, &o.WeightGrams, &o.PrintTime, &o.BaseCost,
		&o.SupportRemoval, &o.SupportCost, &o.TotalCost, &o.Status,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}
