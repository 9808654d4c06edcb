package mocks

import (
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"

	"hostel/infras/postgres"
)

// NewConnection returns a Connection whose read and write pools share one sqlmock
// database bound as postgres, so named queries are rebound to $N placeholders.
// Unmet expectations fail the test on cleanup.
func NewConnection(t *testing.T) (*postgres.Connection, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}

	conn := sqlx.NewDb(db, "postgres")

	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet sql expectations: %v", err)
		}

		_ = conn.Close()
	})

	return &postgres.Connection{Read: conn, Write: conn}, mock
}

// BeginTx opens a transaction on conn after registering the matching expectation.
func BeginTx(t *testing.T, conn *postgres.Connection, mock sqlmock.Sqlmock) *sqlx.Tx {
	t.Helper()

	mock.ExpectBegin()

	tx, err := conn.Write.Beginx()
	if err != nil {
		t.Fatalf("failed to begin tx: %v", err)
	}

	return tx
}

// QueryLike builds a sqlmock pattern matching a statement that contains every fragment
// in order, each taken literally.
func QueryLike(fragments ...string) string {
	quoted := make([]string, len(fragments))
	for i, f := range fragments {
		quoted[i] = regexp.QuoteMeta(f)
	}

	return strings.Join(quoted, ".*")
}
