package txstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

type pgStore struct {
	db *bun.DB
}

// NewStore creates a new postgres implementation of the transaction journal
func NewStore(db *bun.DB) Store {
	return &pgStore{db: db}
}

func (s *pgStore) Save(ctx context.Context, rec *Record) error {
	dao := toTransactionDao(rec)
	if dao.UpdatedAt.IsZero() {
		dao.UpdatedAt = time.Now()
	}

	_, err := s.db.NewInsert().
		Model(dao).
		On("CONFLICT (hash) DO UPDATE").
		Set("id = EXCLUDED.id").
		Set("action = EXCLUDED.action").
		Set("contract = EXCLUDED.contract").
		Set("network = EXCLUDED.network").
		Set("chain_id = EXCLUDED.chain_id").
		Set("from_address = EXCLUDED.from_address").
		Set("status = EXCLUDED.status").
		Set("block_number = EXCLUDED.block_number").
		Set("gas_used = EXCLUDED.gas_used").
		Set("error = EXCLUDED.error").
		Set("submitted_at = EXCLUDED.submitted_at").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}

func (s *pgStore) UpdateStatus(ctx context.Context, hash string, upd StatusUpdate) error {
	q := s.db.NewUpdate().
		Model((*TransactionDao)(nil)).
		Set("status = ?", string(upd.Status)).
		Set("updated_at = ?", time.Now()).
		Where("hash = ?", hash)
	if upd.BlockNumber != 0 {
		q = q.Set("block_number = ?", int64(upd.BlockNumber))
	}
	if upd.GasUsed != 0 {
		q = q.Set("gas_used = ?", int64(upd.GasUsed))
	}
	if upd.Error != "" {
		q = q.Set("error = ?", upd.Error)
	}

	res, err := q.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update transaction status: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *pgStore) Get(ctx context.Context, hash string) (*Record, error) {
	dao := new(TransactionDao)
	err := s.db.NewSelect().
		Model(dao).
		Where("hash = ?", hash).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return toRecord(dao), nil
}

func (s *pgStore) ListRecent(ctx context.Context, limit int) ([]*Record, error) {
	var daos []TransactionDao
	q := s.db.NewSelect().Model(&daos).Order("submitted_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	out := make([]*Record, len(daos))
	for i := range daos {
		out[i] = toRecord(&daos[i])
	}
	return out, nil
}
