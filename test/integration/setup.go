package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container and connection pool.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		t.Fatalf("failed to parse connection string: %v", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	createSchema(t, pool)

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// createSchema creates the database schema for testing.
func createSchema(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	schema := `
		CREATE TABLE IF NOT EXISTS products (
			id VARCHAR(50) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			category VARCHAR(100) NOT NULL,
			price BIGINT NOT NULL,
			image_url TEXT NOT NULL DEFAULT '',
			available BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS orders (
			id UUID PRIMARY KEY,
			customer_name VARCHAR(255) NOT NULL,
			customer_phone VARCHAR(50) NOT NULL,
			delivery_address TEXT NOT NULL DEFAULT '',
			total_amount BIGINT NOT NULL,
			status VARCHAR(50) NOT NULL DEFAULT 'pending',
			table_id UUID,
			table_number INTEGER,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS order_items (
			id UUID PRIMARY KEY,
			order_id UUID NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			product_id VARCHAR(50) NOT NULL REFERENCES products(id),
			quantity INTEGER NOT NULL CHECK (quantity > 0),
			unit_price BIGINT NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS restaurant_tables (
			id UUID PRIMARY KEY,
			table_number INTEGER NOT NULL UNIQUE,
			zone VARCHAR(50) NOT NULL,
			capacity INTEGER NOT NULL,
			position_x DOUBLE PRECISION NOT NULL,
			position_y DOUBLE PRECISION NOT NULL,
			is_available BOOLEAN NOT NULL DEFAULT TRUE
		);

		CREATE INDEX IF NOT EXISTS idx_order_items_order_id ON order_items(order_id);
		CREATE INDEX IF NOT EXISTS idx_products_category ON products(category);
	`

	_, err := pool.Exec(ctx, schema)
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
}

// SeedProducts inserts test menu data into the database.
func SeedProducts(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	products := []struct {
		id       string
		name     string
		category string
		price    int64
	}{
		{"GRIL-001", "Poulet braisé", "Grillades", 3500},
		{"GRIL-002", "Poisson braisé", "Grillades", 4000},
		{"ACCO-001", "Plantain frit", "Accompagnements", 1000},
		{"BOIS-001", "Jus de bissap", "Boissons", 500},
		{"SAUC-001", "Sauce piment", "Sauces", 200},
	}

	for _, p := range products {
		_, err := pool.Exec(ctx,
			"INSERT INTO products (id, name, category, price) VALUES ($1, $2, $3, $4)",
			p.id, p.name, p.category, p.price,
		)
		if err != nil {
			t.Fatalf("failed to seed product %s: %v", p.id, err)
		}
	}
}

// SeedTables inserts the test floor plan into the database.
func SeedTables(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	tables := []struct {
		id        string
		number    int
		zone      string
		capacity  int
		x, y      float64
		available bool
	}{
		{"11111111-1111-1111-1111-111111111111", 1, "interieur", 4, 20, 20, true},
		{"22222222-2222-2222-2222-222222222222", 2, "terrasse", 2, 15, 75, true},
		{"33333333-3333-3333-3333-333333333333", 3, "vip", 6, 75, 80, false},
	}

	for _, tb := range tables {
		_, err := pool.Exec(ctx,
			`INSERT INTO restaurant_tables (id, table_number, zone, capacity, position_x, position_y, is_available)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			tb.id, tb.number, tb.zone, tb.capacity, tb.x, tb.y, tb.available,
		)
		if err != nil {
			t.Fatalf("failed to seed table %d: %v", tb.number, err)
		}
	}
}

// CleanupDB cleans all data from test tables.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	tables := []string{"order_items", "orders", "restaurant_tables", "products"}
	for _, table := range tables {
		_, err := pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}
