// Package migrations embeds the SQL schema of every store.
package migrations

import "embed"

// SQLite holds the authoritative store schema.
//
//go:embed sqlite/*.sql
var SQLite embed.FS

// ClickHouse holds the analytics schema.
//
//go:embed clickhouse/*.sql
var ClickHouse embed.FS

const (
	SQLiteDir     = "sqlite"
	ClickHouseDir = "clickhouse"
)
