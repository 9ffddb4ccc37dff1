package txstore

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// TransactionDao maps directly to the 'transactions' table in PostgreSQL.
type TransactionDao struct {
	bun.BaseModel `bun:"table:transactions,alias:t"`
	ID            uuid.UUID `bun:"id,pk,type:uuid"`
	Hash          string    `bun:"hash,unique,notnull,type:varchar(66)"`
	Action        string    `bun:"action,notnull,type:varchar(64)"`
	Contract      string    `bun:"contract,notnull,type:varchar(32)"`
	Network       string    `bun:"network,notnull,type:varchar(64)"`
	ChainID       int64     `bun:"chain_id,notnull"`
	FromAddress   string    `bun:"from_address,notnull,type:varchar(42)"`
	Status        string    `bun:"status,notnull,type:varchar(16)"`
	BlockNumber   *int64    `bun:"block_number"`
	GasUsed       *int64    `bun:"gas_used"`
	Error         *string   `bun:"error,type:text"`
	SubmittedAt   time.Time `bun:"submitted_at,notnull"`
	UpdatedAt     time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

func toTransactionDao(rec *Record) *TransactionDao {
	dao := &TransactionDao{
		ID:          rec.ID,
		Hash:        rec.Hash,
		Action:      rec.Action,
		Contract:    rec.Contract,
		Network:     rec.Network,
		ChainID:     rec.ChainID,
		FromAddress: rec.From,
		Status:      string(rec.Status),
		SubmittedAt: rec.SubmittedAt,
		UpdatedAt:   rec.UpdatedAt,
	}
	if rec.BlockNumber != 0 {
		bn := int64(rec.BlockNumber)
		dao.BlockNumber = &bn
	}
	if rec.GasUsed != 0 {
		gas := int64(rec.GasUsed)
		dao.GasUsed = &gas
	}
	if rec.Error != "" {
		dao.Error = &rec.Error
	}
	return dao
}

func toRecord(dao *TransactionDao) *Record {
	rec := &Record{
		ID:          dao.ID,
		Hash:        dao.Hash,
		Action:      dao.Action,
		Contract:    dao.Contract,
		Network:     dao.Network,
		ChainID:     dao.ChainID,
		From:        dao.FromAddress,
		Status:      Status(dao.Status),
		SubmittedAt: dao.SubmittedAt,
		UpdatedAt:   dao.UpdatedAt,
	}
	if dao.BlockNumber != nil {
		rec.BlockNumber = uint64(*dao.BlockNumber)
	}
	if dao.GasUsed != nil {
		rec.GasUsed = uint64(*dao.GasUsed)
	}
	if dao.Error != nil {
		rec.Error = *dao.Error
	}
	return rec
}
