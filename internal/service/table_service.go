package service

import (
	"context"

	"grill-master/internal/model"
	"grill-master/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// defaultTables is the built-in floor plan served when the table fetch
// fails. Positions are percentages of the floor extent.
var defaultTables = []model.RestaurantTable{
	{ID: uuid.MustParse("8d7f10c2-1111-4c61-9a30-000000000001"), TableNumber: 1, Zone: model.ZoneInterior, Capacity: 2, PositionX: 20, PositionY: 20, IsAvailable: true},
	{ID: uuid.MustParse("8d7f10c2-1111-4c61-9a30-000000000002"), TableNumber: 2, Zone: model.ZoneInterior, Capacity: 4, PositionX: 50, PositionY: 20, IsAvailable: true},
	{ID: uuid.MustParse("8d7f10c2-1111-4c61-9a30-000000000003"), TableNumber: 3, Zone: model.ZoneInterior, Capacity: 4, PositionX: 80, PositionY: 20, IsAvailable: false},
	{ID: uuid.MustParse("8d7f10c2-1111-4c61-9a30-000000000004"), TableNumber: 4, Zone: model.ZoneInterior, Capacity: 6, PositionX: 35, PositionY: 45, IsAvailable: true},
	{ID: uuid.MustParse("8d7f10c2-1111-4c61-9a30-000000000005"), TableNumber: 5, Zone: model.ZoneTerrace, Capacity: 2, PositionX: 15, PositionY: 75, IsAvailable: true},
	{ID: uuid.MustParse("8d7f10c2-1111-4c61-9a30-000000000006"), TableNumber: 6, Zone: model.ZoneTerrace, Capacity: 4, PositionX: 35, PositionY: 85, IsAvailable: true},
	{ID: uuid.MustParse("8d7f10c2-1111-4c61-9a30-000000000007"), TableNumber: 7, Zone: model.ZoneVIP, Capacity: 6, PositionX: 75, PositionY: 80, IsAvailable: true},
	{ID: uuid.MustParse("8d7f10c2-1111-4c61-9a30-000000000008"), TableNumber: 8, Zone: model.ZoneVIP, Capacity: 8, PositionX: 90, PositionY: 85, IsAvailable: false},
}

// tableService implements TableService.
type tableService struct {
	tableRepo repository.TableRepository
	logger    zerolog.Logger
}

// NewTableService creates a new table service.
func NewTableService(tableRepo repository.TableRepository, logger zerolog.Logger) TableService {
	return &tableService{
		tableRepo: tableRepo,
		logger:    logger.With().Str("service", "table").Logger(),
	}
}

// List returns all tables. Unlike the catalog, a failed fetch degrades to
// the built-in floor plan rather than an empty list, so the picker always
// has something to draw.
func (s *tableService) List(ctx context.Context) []model.RestaurantTable {
	tables, err := s.tableRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to load restaurant tables, serving default floor plan")
		return defaultTables
	}
	if len(tables) == 0 {
		return defaultTables
	}
	return tables
}

// Select returns the table when it exists and is available. Picking an
// occupied or unknown table is refused; the picker treats that as a no-op.
func (s *tableService) Select(ctx context.Context, id uuid.UUID) (*model.RestaurantTable, error) {
	for _, t := range s.List(ctx) {
		if t.ID == id {
			if !t.IsAvailable {
				s.logger.Debug().
					Int("table_number", t.TableNumber).
					Msg("occupied table selection refused")
				return nil, model.ErrTableUnavailable
			}
			return &t, nil
		}
	}
	return nil, model.ErrTableUnavailable
}
