package repository

import (
	"context"
	"fmt"

	"grill-master/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// tableRepository implements the TableRepository interface using PostgreSQL.
type tableRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewTableRepository creates a new PostgreSQL-backed table repository.
func NewTableRepository(pool *pgxpool.Pool, logger zerolog.Logger) TableRepository {
	return &tableRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "table").Logger(),
	}
}

// GetAll retrieves all restaurant tables ordered by table number.
func (r *tableRepository) GetAll(ctx context.Context) ([]model.RestaurantTable, error) {
	query := `
		SELECT id, table_number, zone, capacity, position_x, position_y, is_available
		FROM restaurant_tables
		ORDER BY table_number
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query restaurant tables")
		return nil, fmt.Errorf("failed to query restaurant tables: %w", err)
	}
	defer rows.Close()

	var tables []model.RestaurantTable
	for rows.Next() {
		var t model.RestaurantTable
		err := rows.Scan(&t.ID, &t.TableNumber, &t.Zone, &t.Capacity, &t.PositionX, &t.PositionY, &t.IsAvailable)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan restaurant table row")
			return nil, fmt.Errorf("failed to scan restaurant table: %w", err)
		}
		tables = append(tables, t)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating restaurant table rows")
		return nil, fmt.Errorf("error iterating restaurant tables: %w", err)
	}

	return tables, nil
}
