package migrations

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun/migrate"

	"github.com/chainsafe/dapp-gateway/pkg/migrations/dappdb"
	"github.com/chainsafe/dapp-gateway/pkg/pgutil"
	"github.com/chainsafe/dapp-gateway/pkg/txstore"
)

func TestDappDBMigrations_ApplyAndRollback(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	migrator := migrate.NewMigrator(db, dappdb.Migrations)
	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}

	group, err := migrator.Migrate(ctx)
	if err != nil {
		t.Fatalf("Migrate() failed: %v", err)
	}
	if group.IsZero() {
		t.Fatal("Expected migrations to run, but none were applied")
	}

	pgutil.AssertTableExists(t, db, "transactions")
	pgutil.AssertTableExists(t, db, "bun_migrations")
	pgutil.AssertIndexExists(t, db, "idx_transactions_status")
	pgutil.AssertIndexExists(t, db, "idx_transactions_from_address")

	store := txstore.NewStore(db)
	rec := &txstore.Record{
		ID:          uuid.New(),
		Hash:        "0x1111111111111111111111111111111111111111111111111111111111111111",
		Action:      "mint_tokens",
		Contract:    "token",
		Network:     "hardhat",
		ChainID:     31337,
		From:        "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266",
		Status:      txstore.StatusSubmitted,
		SubmittedAt: time.Now().UTC(),
	}
	if err := store.Save(ctx, rec); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	pgutil.AssertRowCount(t, db, "transactions", 1)

	if err := dappdb.Reset(ctx, db); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	pgutil.AssertRowCount(t, db, "transactions", 0)
	pgutil.AssertTableExists(t, db, "transactions")

	if _, err := migrator.Rollback(ctx); err != nil {
		t.Fatalf("Rollback() failed: %v", err)
	}

	var exists bool
	err = db.NewSelect().
		ColumnExpr("EXISTS (SELECT 1 FROM information_schema.tables WHERE table_schema = ? AND table_name = ?)", "public", "transactions").
		Scan(ctx, &exists)
	if err != nil {
		t.Fatalf("failed to check table: %v", err)
	}
	if exists {
		t.Error("transactions table should be dropped after rollback")
	}

	err = db.NewRaw(`SELECT EXISTS (SELECT FROM pg_indexes WHERE schemaname = 'public' AND indexname = ?)`, "idx_transactions_status").Scan(ctx, &exists)
	if err != nil {
		t.Fatalf("failed to check index: %v", err)
	}
	if exists {
		t.Error("idx_transactions_status should be dropped after rollback")
	}
}
