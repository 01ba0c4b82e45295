package contract

import "errors"

// Sentinel errors shared with the persistence engine subpackages.
var (
	ErrNilDatabaseConnection  = errors.New("nil database connection supplied")
	ErrEmptyTableNameSupplied = errors.New("empty paperTableName supplied")
	ErrBuildingQueryFailed    = errors.New("building sql query failed")
	ErrSavingPaperFailed      = errors.New("saving paper record failed")
	ErrQueryingPapersFailed   = errors.New("querying paper records failed")
	ErrScanningDBRowFailed    = errors.New("scanning database row failed")
)
