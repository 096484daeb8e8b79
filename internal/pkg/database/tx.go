package database

import "context"

// TxManager gives services all-or-nothing commits without tying them to a
// storage mechanism. Every mutating ledger operation runs its repository
// calls inside WithinTx so the ledger write and its history entry commit
// or fail together.
//
// The PostgreSQL implementation carries a real transaction in the context;
// the memory and local-file implementations serialize callbacks and roll
// their state back when fn fails.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
