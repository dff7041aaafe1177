package database

import (
	"context"

	"gorm.io/gorm"
)

type txKey struct{}

// Transactor runs a function inside a single database transaction.
// Repositories participating in the call pick the transaction up from the
// context, so one service call maps to exactly one atomic transaction.
type Transactor interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// GormTransactor implements Transactor on top of gorm's transaction API.
type GormTransactor struct {
	db *gorm.DB
}

// NewTransactor returns a Transactor bound to the given connection.
func NewTransactor(db *gorm.DB) *GormTransactor {
	return &GormTransactor{db: db}
}

// InTx executes fn inside a transaction. The transaction handle is carried in
// the context; nested calls reuse the ambient transaction instead of opening
// a second one. A returned error rolls the whole transaction back.
func (t *GormTransactor) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if txFromContext(ctx) != nil {
		return fn(ctx)
	}
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

func txFromContext(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return nil
}

// FromContext returns the ambient transaction if the caller opened one,
// otherwise the fallback connection.
func FromContext(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx := txFromContext(ctx); tx != nil {
		return tx
	}
	return fallback
}
