package postgresengine

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // driver import
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"

	"github.com/paperledger/commercial-paper-go/contract"
	"github.com/paperledger/commercial-paper-go/contract/postgresengine/internal/adapters"
)

const (
	defaultPaperTableName      = "commercial_papers"
	logMsgBuildInsertFailed    = "failed to build insert query"
	logMsgBuildSelectFailed    = "failed to build select query"
	logMsgProjectionFailed     = "failed to project paper state"
	logMsgSerializeFailed      = "failed to serialize paper record details"
	logMsgDBExecFailed         = "database execution failed during paper save"
	logMsgDBQueryFailed        = "database query execution failed"
	logMsgCloseRowsFailed      = "failed to close database rows"
	logMsgScanRowFailed        = "failed to scan database row"
	logMsgPaperSaved           = "paper record saved"
	logMsgQueryCompleted       = "paper query completed"
	logMsgSQLExecuted          = "executed sql for: "
	logMsgOperation            = "paper registry operation: "
	logAttrError               = "error"
	logAttrQuery               = "query"
	logAttrOwnerKey            = "owner_key"
	logAttrRecordCount         = "record_count"
	logAttrDurationMS          = "duration_ms"
	logActionSave              = "save"
	logActionQuery             = "query"
	colIssuerKey               = "issuer_key"
	colIssuanceRef             = "issuance_ref"
	colOwnerKey                = "owner_key"
	colMaturityDate            = "maturity_date"
	colFaceValueQuantity       = "face_value_quantity"
	colCurrency                = "currency"
	colFaceValueIssuerKey      = "face_value_issuer_key"
	colFaceValueIssuerRef      = "face_value_issuer_ref"
	colDetails                 = "details"
	dialectPostgres            = "postgres"
	castTimestamp              = "?::timestamp with time zone"
	castJsonb                  = "?::jsonb"
	millisecondsPerMicrosecond = 1000.0
)

type sqlQueryString = string

// Logger interface for SQL query logging, operational metrics, warnings, and error reporting.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// PaperRegistry persists schema-v1 projections of commercial paper states
// into a PostgreSQL table and queries them back by owner. It leverages a
// database adapter and supports customizable logging and table configuration.
type PaperRegistry struct {
	db             adapters.DBAdapter
	paperTableName string
	logger         Logger
}

// Option defines a functional option for configuring PaperRegistry.
type Option func(*PaperRegistry) error

// WithTableName sets the table name for the PaperRegistry.
func WithTableName(tableName string) Option {
	return func(r *PaperRegistry) error {
		if tableName == "" {
			return contract.ErrEmptyTableNameSupplied
		}

		r.paperTableName = tableName

		return nil
	}
}

// WithLogger sets the logger for the PaperRegistry.
// Debug level receives SQL queries with execution timing, Info level
// operational messages, Warn level non-critical issues like cleanup failures,
// and Error level critical failures.
func WithLogger(logger Logger) Option {
	return func(r *PaperRegistry) error {
		r.logger = logger
		return nil
	}
}

// NewRegistryFromPGXPool creates a new PaperRegistry using a pgx Pool with optional configuration.
func NewRegistryFromPGXPool(db *pgxpool.Pool, options ...Option) (PaperRegistry, error) {
	if db == nil {
		return PaperRegistry{}, contract.ErrNilDatabaseConnection
	}

	return newRegistry(adapters.NewPGXAdapter(db), options...)
}

// NewRegistryFromPGXPoolAndReplica creates a new PaperRegistry using a
// primary pgx Pool for writes and a replica pool for reads.
func NewRegistryFromPGXPoolAndReplica(db *pgxpool.Pool, replica *pgxpool.Pool, options ...Option) (PaperRegistry, error) {
	if db == nil || replica == nil {
		return PaperRegistry{}, contract.ErrNilDatabaseConnection
	}

	return newRegistry(adapters.NewPGXAdapterWithReplica(db, replica), options...)
}

// NewRegistryFromSQLDB creates a new PaperRegistry using a sql.DB with optional configuration.
func NewRegistryFromSQLDB(db *sql.DB, options ...Option) (PaperRegistry, error) {
	if db == nil {
		return PaperRegistry{}, contract.ErrNilDatabaseConnection
	}

	return newRegistry(adapters.NewSQLAdapter(db), options...)
}

// NewRegistryFromSQLX creates a new PaperRegistry using a sqlx.DB with optional configuration.
func NewRegistryFromSQLX(db *sqlx.DB, options ...Option) (PaperRegistry, error) {
	if db == nil {
		return PaperRegistry{}, contract.ErrNilDatabaseConnection
	}

	return newRegistry(adapters.NewSQLXAdapter(db), options...)
}

func newRegistry(db adapters.DBAdapter, options ...Option) (PaperRegistry, error) {
	registry := PaperRegistry{
		db:             db,
		paperTableName: defaultPaperTableName,
	}

	for _, option := range options {
		if err := option(&registry); err != nil {
			return PaperRegistry{}, err
		}
	}

	return registry, nil
}

// Save projects the state onto contract.SchemaV1 and inserts the resulting
// record. Saving is append-only: each outstanding unit of paper is one row,
// and ownership changes are recorded by saving the successor state.
func (r PaperRegistry) Save(ctx context.Context, state contract.PaperState) error {
	record, projectErr := contract.ProjectToSchema(state, contract.SchemaV1)
	if projectErr != nil {
		r.logError(logMsgProjectionFailed, logAttrError, projectErr.Error())
		return projectErr
	}

	sqlQuery, buildErr := r.buildInsertQuery(record)
	if buildErr != nil {
		r.logError(logMsgBuildInsertFailed, logAttrError, buildErr.Error())
		return buildErr
	}

	start := time.Now()
	_, execErr := r.db.Exec(ctx, sqlQuery)
	duration := time.Since(start)
	r.logQueryWithDuration(sqlQuery, logActionSave, duration)

	if execErr != nil {
		r.logError(logMsgDBExecFailed, logAttrError, execErr.Error(), logAttrQuery, sqlQuery)
		return errors.Join(contract.ErrSavingPaperFailed, execErr)
	}

	r.logOperation(logMsgPaperSaved, logAttrDurationMS, r.durationToMilliseconds(duration))

	return nil
}

// QueryByOwner returns all stored records currently held by the given owning
// key, ordered by maturity date.
func (r PaperRegistry) QueryByOwner(ctx context.Context, ownerKey contract.PublicKey) ([]contract.PaperRecordV1, error) {
	sqlQuery, buildErr := r.buildSelectByOwnerQuery(ownerKey)
	if buildErr != nil {
		r.logError(logMsgBuildSelectFailed, logAttrError, buildErr.Error())
		return nil, buildErr
	}

	start := time.Now()
	rows, queryErr := r.db.Query(ctx, sqlQuery)
	duration := time.Since(start)
	r.logQueryWithDuration(sqlQuery, logActionQuery, duration)

	if queryErr != nil {
		r.logError(logMsgDBQueryFailed, logAttrError, queryErr.Error(), logAttrQuery, sqlQuery)
		return nil, errors.Join(contract.ErrQueryingPapersFailed, queryErr)
	}
	defer r.closeRows(rows)

	records, scanErr := r.scanRecords(rows)
	if scanErr != nil {
		return nil, scanErr
	}

	r.logOperation(
		logMsgQueryCompleted,
		logAttrOwnerKey, string(ownerKey),
		logAttrRecordCount, len(records),
		logAttrDurationMS, r.durationToMilliseconds(duration))

	return records, nil
}

func (r PaperRegistry) buildInsertQuery(record contract.PaperRecordV1) (sqlQueryString, error) {
	detailsJSON, serializeErr := record.ToJSON()
	if serializeErr != nil {
		r.logError(logMsgSerializeFailed, logAttrError, serializeErr.Error())
		return "", errors.Join(contract.ErrBuildingQueryFailed, serializeErr)
	}

	insertStmt := goqu.Dialect(dialectPostgres).
		Insert(r.paperTableName).
		Cols(
			colIssuerKey, colIssuanceRef, colOwnerKey, colMaturityDate,
			colFaceValueQuantity, colCurrency, colFaceValueIssuerKey, colFaceValueIssuerRef,
			colDetails,
		).
		Vals(goqu.Vals{
			string(record.IssuerKey),
			string(record.IssuanceRef),
			string(record.OwnerKey),
			goqu.L(castTimestamp, record.MaturityDate),
			record.FaceValueQuantity,
			record.Currency,
			string(record.FaceValueIssuerKey),
			string(record.FaceValueIssuerRef),
			goqu.L(castJsonb, string(detailsJSON)),
		})

	sqlQuery, _, toSQLErr := insertStmt.ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(contract.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

func (r PaperRegistry) buildSelectByOwnerQuery(ownerKey contract.PublicKey) (sqlQueryString, error) {
	selectStmt := goqu.Dialect(dialectPostgres).
		From(r.paperTableName).
		Select(
			colIssuerKey, colIssuanceRef, colOwnerKey, colMaturityDate,
			colFaceValueQuantity, colCurrency, colFaceValueIssuerKey, colFaceValueIssuerRef,
		).
		Where(goqu.Ex{colOwnerKey: string(ownerKey)}).
		Order(goqu.I(colMaturityDate).Asc())

	sqlQuery, _, toSQLErr := selectStmt.ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(contract.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

func (r PaperRegistry) scanRecords(rows adapters.DBRows) ([]contract.PaperRecordV1, error) {
	records := make([]contract.PaperRecordV1, 0)

	for rows.Next() {
		var record contract.PaperRecordV1
		var issuerKey, issuanceRef, ownerKey, faceValueIssuerKey, faceValueIssuerRef string

		scanErr := rows.Scan(
			&issuerKey, &issuanceRef, &ownerKey, &record.MaturityDate,
			&record.FaceValueQuantity, &record.Currency, &faceValueIssuerKey, &faceValueIssuerRef,
		)
		if scanErr != nil {
			r.logError(logMsgScanRowFailed, logAttrError, scanErr.Error())
			return nil, errors.Join(contract.ErrScanningDBRowFailed, scanErr)
		}

		record.IssuerKey = contract.PublicKey(issuerKey)
		record.IssuanceRef = contract.Reference(issuanceRef)
		record.OwnerKey = contract.PublicKey(ownerKey)
		record.FaceValueIssuerKey = contract.PublicKey(faceValueIssuerKey)
		record.FaceValueIssuerRef = contract.Reference(faceValueIssuerRef)

		records = append(records, record)
	}

	return records, nil
}

// closeRows safely closes database rows and logs any errors.
func (r PaperRegistry) closeRows(rows adapters.DBRows) {
	if closeErr := rows.Close(); closeErr != nil {
		if r.logger != nil {
			r.logger.Warn(logMsgCloseRowsFailed, logAttrError, closeErr.Error())
		}
	}
}

func (r PaperRegistry) logError(msg string, args ...any) {
	if r.logger != nil {
		r.logger.Error(msg, args...)
	}
}

func (r PaperRegistry) logOperation(msg string, args ...any) {
	if r.logger != nil {
		r.logger.Info(logMsgOperation+msg, args...)
	}
}

func (r PaperRegistry) logQueryWithDuration(sqlQuery string, action string, duration time.Duration) {
	if r.logger != nil {
		r.logger.Debug(
			logMsgSQLExecuted+action,
			logAttrQuery, sqlQuery,
			logAttrDurationMS, r.durationToMilliseconds(duration))
	}
}

func (r PaperRegistry) durationToMilliseconds(duration time.Duration) float64 {
	return float64(duration.Microseconds()) / millisecondsPerMicrosecond
}
