package mocks

import (
	"context"

	"hostel/infras/postgres"
)

type transactorImpl struct{}

// WithTx implements postgres.Transactor by calling fn with a nil transaction.
// Repository mocks ignore the tx argument.
func (t *transactorImpl) WithTx(ctx context.Context, fn postgres.TxFunc) error {
	return fn(ctx, nil)
}

func NewTransactor() postgres.Transactor {
	return &transactorImpl{}
}
