// Package dappdb holds all the migrations for the transaction journal database
package dappdb

import (
	"context"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"

	mghelper "github.com/chainsafe/dapp-gateway/pkg/pgutil/migrations"
	"github.com/chainsafe/dapp-gateway/pkg/txstore"
)

// Migrations is the collection of all migrations for the journal database
var Migrations = migrate.NewMigrations()

// journalIndexes are the indexed columns of the transactions table.
var journalIndexes = []string{"status", "from_address", "submitted_at"}

// Reset deletes every journaled transaction and keeps the schema.
func Reset(ctx context.Context, db bun.IDB) error {
	return mghelper.TruncateTables(ctx, db, &txstore.TransactionDao{})
}
