// Package postgresengine provides the PostgreSQL-backed paper registry: the
// persistence collaborator that projects commercial paper states into a flat,
// queryable table.
//
// The registry is write-through and one-way with respect to validation -
// records are saved after a transaction has been accepted and never flow back
// into the verification logic. It works over pgxpool.Pool, database/sql or
// sqlx.DB connections via an internal adapter layer, and builds all SQL with
// goqu.
package postgresengine
