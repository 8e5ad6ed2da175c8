package repositories

import "context"

// TxFn runs within a transaction; the ctx it receives carries the tx.
type TxFn func(ctx context.Context) error

// TransactionManager wraps read-then-write sequences in a store-level
// transaction so existence/authorization checks and the following mutation
// are atomic against concurrent changes to the same row.
type TransactionManager interface {
	ExecTx(ctx context.Context, fn TxFn) error
}
