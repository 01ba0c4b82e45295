// Package adapters provides database adapter implementations for the
// PostgreSQL paper registry.
//
// It implements the adapter pattern to support multiple PostgreSQL access
// libraries: pgxpool.Pool, database/sql and sqlx.DB. All adapters present the
// same DBAdapter interface for query execution and result handling, so the
// registry works unchanged with any supported connection type. Adapters with
// a configured read replica route queries to it and keep writes on the
// primary.
package adapters
