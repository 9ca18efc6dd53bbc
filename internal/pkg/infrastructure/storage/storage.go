package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Config struct {
	host     string
	user     string
	password string
	port     string
	dbname   string
	sslmode  string
}

func (c Config) ConnStr() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", c.user, c.password, c.host, c.port, c.dbname, c.sslmode)
}

func NewConfig(host, user, password, port, dbname, sslmode string) Config {
	return Config{
		host:     host,
		user:     user,
		password: password,
		port:     port,
		dbname:   dbname,
		sslmode:  sslmode,
	}
}

func NewPool(ctx context.Context, config Config) (*pgxpool.Pool, error) {
	p, err := pgxpool.New(ctx, config.ConnStr())
	if err != nil {
		return nil, err
	}

	err = p.Ping(ctx)
	if err != nil {
		return nil, err
	}

	return p, nil
}

var (
	ErrNoRows             = errors.New("no rows in result set")
	ErrQueryRow           = errors.New("could not execute query")
	ErrStoreFailed        = errors.New("could not store data")
	ErrMissingTenant      = errors.New("missing tenant information")
	ErrServerNotFound     = errors.New("server not found")
	ErrTenantNotFound     = errors.New("tenant not found")
	ErrMissingFingerprint = errors.New("seen alert contains no fingerprint")
)

type Storage struct {
	pool *pgxpool.Pool
}

func NewWithPool(pool *pgxpool.Pool) *Storage {
	return &Storage{pool: pool}
}

func New(ctx context.Context, config Config) (*Storage, error) {
	pool, err := NewPool(ctx, config)
	if err != nil {
		return nil, err
	}

	return &Storage{pool: pool}, nil
}

func (s *Storage) Initialize(ctx context.Context) error {
	return s.createTables(ctx)
}

func (s *Storage) createTables(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS tenants (
			tenant_id	TEXT NOT NULL,
			name		TEXT NOT NULL DEFAULT '',
			plan_tier	TEXT NOT NULL DEFAULT 'free',
			settings	JSONB NOT NULL DEFAULT '{}',
			created_on	timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (tenant_id)
		);

		CREATE TABLE IF NOT EXISTS servers (
			server_id	TEXT NOT NULL,
			name		TEXT NOT NULL,
			url			TEXT NOT NULL,
			username	TEXT NOT NULL DEFAULT '',
			password	TEXT NOT NULL DEFAULT '',
			tenant		TEXT NOT NULL,
			created_on	timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (server_id)
		);

		CREATE TABLE IF NOT EXISTS alert_thresholds (
			tenant		TEXT NOT NULL,
			data		JSONB NOT NULL,
			modified_on	timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (tenant)
		);

		CREATE TABLE IF NOT EXISTS seen_alerts (
			fingerprint		TEXT NOT NULL,
			tenant			TEXT NOT NULL,
			server_id		TEXT NOT NULL,
			severity		TEXT NOT NULL,
			category		TEXT NOT NULL,
			source_type		TEXT NOT NULL,
			source_name		TEXT NOT NULL,
			first_seen_at	timestamp with time zone NOT NULL,
			last_seen_at	timestamp with time zone NOT NULL,
			resolved_at		timestamp with time zone NULL,
			notified_at		timestamp with time zone NULL,
			UNIQUE (tenant, server_id, fingerprint)
		);

		CREATE INDEX IF NOT EXISTS seen_alerts_tenant_server_idx ON seen_alerts (tenant, server_id);
	`)
	if err != nil {
		return fmt.Errorf("could not create tables: %w", err)
	}

	return nil
}

func (s *Storage) Close() {
	s.pool.Close()
}
