package dappdb

import (
	"context"
	"log"

	"github.com/uptrace/bun"

	mghelper "github.com/chainsafe/dapp-gateway/pkg/pgutil/migrations"
	"github.com/chainsafe/dapp-gateway/pkg/txstore"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating transactions table...")
		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if err := mghelper.CreateSchema(ctx, tx, &txstore.TransactionDao{}); err != nil {
				return err
			}
			return mghelper.CreateModelIndexes(ctx, tx, &txstore.TransactionDao{}, journalIndexes...)
		})
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping transactions table...")
		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if err := mghelper.DropModelIndexes(ctx, tx, &txstore.TransactionDao{}, journalIndexes...); err != nil {
				return err
			}
			return mghelper.DropTables(ctx, tx, &txstore.TransactionDao{})
		})
	})
}
