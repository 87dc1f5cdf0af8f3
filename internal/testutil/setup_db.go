package testutil

import (
	"context"
	"fmt"
	"io"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
)

// SetupTestDB starts a Postgres container, waits until it accepts
// connections, applies the schema with the seeded type table, and returns
// the pool plus a teardown func.
func SetupTestDB(t *testing.T) (*pgxpool.Pool, func()) {
	ctx := context.Background()
	postgresC, err := tcpostgres.Run(ctx,
		"postgres:17-alpine",
		tcpostgres.WithDatabase("wallets"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("secret"),
	)
	assert.NoError(t, err)

	dbURL, err := postgresC.ConnectionString(ctx, "sslmode=disable")
	assert.NoError(t, err)

	var pool *pgxpool.Pool
	for i := 0; i < 20; i++ {
		pool, err = pgxpool.New(ctx, dbURL)
		if err == nil {
			err = pool.Ping(ctx)
			if err == nil {
				break
			}
			pool.Close()
		}
		time.Sleep(1 * time.Second)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "[testutil] Postgres did not become ready in time. Container logs:")
		logs, logErr := postgresC.Logs(ctx)
		if logErr == nil {
			io.Copy(os.Stderr, logs)
		} else {
			fmt.Fprintln(os.Stderr, "[testutil] Failed to get container logs:", logErr)
		}
	}
	assert.NoError(t, err, "Postgres did not become ready in time")

	_, err = pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS types (
			id BIGINT PRIMARY KEY,
			name VARCHAR(50) NOT NULL
		);
		CREATE TABLE IF NOT EXISTS wallets (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL,
			iban VARCHAR(34) NOT NULL,
			name VARCHAR(50) NOT NULL,
			currency VARCHAR(3) NOT NULL,
			balance DECIMAL(15, 2) NOT NULL DEFAULT 0 CHECK (balance >= 0)
		);
		CREATE UNIQUE INDEX IF NOT EXISTS uq_wallets_iban ON wallets (lower(iban));
		CREATE UNIQUE INDEX IF NOT EXISTS uq_wallets_user_name ON wallets (user_id, lower(name));
		CREATE TABLE IF NOT EXISTS transactions (
			id BIGSERIAL PRIMARY KEY,
			reference_number UUID NOT NULL UNIQUE,
			amount DECIMAL(15, 2) NOT NULL CHECK (amount > 0),
			description VARCHAR(50) NOT NULL DEFAULT '',
			type_id BIGINT NOT NULL REFERENCES types(id),
			status VARCHAR(10) NOT NULL CHECK (status IN ('PENDING', 'COMPLETED', 'FAILED')),
			from_wallet_id BIGINT NOT NULL,
			from_iban VARCHAR(34) NOT NULL,
			to_wallet_id BIGINT NOT NULL,
			to_iban VARCHAR(34) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_transactions_from_wallet ON transactions(from_wallet_id);
		CREATE INDEX IF NOT EXISTS idx_transactions_to_wallet ON transactions(to_wallet_id);
		INSERT INTO types (id, name) VALUES
			(1, 'Initial balance'),
			(2, 'Transfer'),
			(3, 'Deposit'),
			(4, 'Withdrawal')
		ON CONFLICT (id) DO NOTHING;
	`)
	assert.NoError(t, err)

	return pool, func() {
		pool.Close()
		postgresC.Terminate(ctx)
	}
}
