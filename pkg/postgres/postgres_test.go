package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nyaay-saathi/pkg/config"
)

func TestDSN(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Host:     "db",
		Port:     "5432",
		User:     "nyaay",
		Password: "pw",
		DBName:   "nyaay_saathi",
		SSLMode:  "disable",
	}

	dsn := DSN(cfg)
	assert.Equal(t, "host=db port=5432 user=nyaay password=pw dbname=nyaay_saathi sslmode=disable", dsn)

	parsed, err := pgxpool.ParseConfig(dsn)
	require.NoError(t, err)
	assert.Equal(t, "db", parsed.ConnConfig.Host)
	assert.Equal(t, "nyaay_saathi", parsed.ConnConfig.Database)
}
