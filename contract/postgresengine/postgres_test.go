package postgresengine_test

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/paperledger/commercial-paper-go/contract"
	"github.com/paperledger/commercial-paper-go/contract/postgresengine"
	"github.com/paperledger/commercial-paper-go/testutil"
	"github.com/paperledger/commercial-paper-go/testutil/config"
)

func Test_NewRegistry_Validation(t *testing.T) {
	t.Run("nil pgx pool fails", func(t *testing.T) {
		_, err := postgresengine.NewRegistryFromPGXPool(nil)
		assert.ErrorIs(t, err, contract.ErrNilDatabaseConnection)
	})

	t.Run("nil sql db fails", func(t *testing.T) {
		_, err := postgresengine.NewRegistryFromSQLDB(nil)
		assert.ErrorIs(t, err, contract.ErrNilDatabaseConnection)
	})

	t.Run("nil sqlx db fails", func(t *testing.T) {
		_, err := postgresengine.NewRegistryFromSQLX(nil)
		assert.ErrorIs(t, err, contract.ErrNilDatabaseConnection)
	})

	t.Run("nil replica pool fails", func(t *testing.T) {
		_, err := postgresengine.NewRegistryFromPGXPoolAndReplica(nil, nil)
		assert.ErrorIs(t, err, contract.ErrNilDatabaseConnection)
	})
}

func Test_WithTableName_Validation(t *testing.T) {
	db := requirePostgres(t)

	_, err := postgresengine.NewRegistryFromSQLDB(db, postgresengine.WithTableName(""))
	assert.ErrorIs(t, err, contract.ErrEmptyTableNameSupplied)
}

func Test_PaperRegistry_SaveAndQueryByOwner(t *testing.T) {
	db := requirePostgres(t)
	ctx := context.Background()

	registry, err := postgresengine.NewRegistryFromSQLDB(db)
	assert.NoError(t, err)

	maturity := time.Date(2027, time.January, 15, 0, 0, 0, 0, time.UTC)
	paper := testutil.PaperWithRandomRef(testutil.MegaCorp, testutil.Dollars(500), maturity).WithOwner(testutil.Alice)

	assert.NoError(t, registry.Save(ctx, paper))

	records, queryErr := registry.QueryByOwner(ctx, testutil.Alice.OwningKey)
	assert.NoError(t, queryErr)
	assert.NotEmpty(t, records)

	var found bool
	for _, record := range records {
		if record.IssuanceRef == paper.Issuance.Reference {
			found = true

			assert.Equal(t, paper.Issuance.Party.OwningKey, record.IssuerKey)
			assert.Equal(t, paper.Owner.OwningKey, record.OwnerKey)
			assert.Equal(t, paper.FaceValue.Quantity, record.FaceValueQuantity)
			assert.Equal(t, paper.FaceValue.Currency, record.Currency)
			assert.True(t, paper.MaturityDate.Equal(record.MaturityDate))
		}
	}
	assert.True(t, found)
}

const createTableDDL = `
CREATE TABLE IF NOT EXISTS commercial_papers (
	issuer_key            text        NOT NULL,
	issuance_ref          text        NOT NULL,
	owner_key             text        NOT NULL,
	maturity_date         timestamptz NOT NULL,
	face_value_quantity   bigint      NOT NULL,
	currency              text        NOT NULL,
	face_value_issuer_key text        NOT NULL,
	face_value_issuer_ref text        NOT NULL,
	details               jsonb       NOT NULL
)`

// requirePostgres connects to the test database or skips the test when no
// DSN is configured in the environment.
func requirePostgres(t *testing.T) *sql.DB {
	t.Helper()

	if os.Getenv(config.DSNEnvVar) == "" {
		t.Skipf("set %s to run paper registry integration tests", config.DSNEnvVar)
	}

	db := config.PostgresSQLDBSingleConfig()
	t.Cleanup(func() { _ = db.Close() })

	if _, err := db.ExecContext(context.Background(), createTableDDL); err != nil {
		t.Fatalf("failed to create test table: %v", err)
	}

	return db
}
