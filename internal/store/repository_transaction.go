// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pet-storefront/internal/logger"
	"github.com/MKhiriev/go-pet-storefront/models"
)

// sharedOwner marks demo orders visible to every customer.
const sharedOwner = ""

var transactionColumns = []string{
	"id", "owner_email", "ordered_at", "order_id", "store",
	"items", "total", "tracking_id", "status",
}

type transactionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTransactionRepository constructs a [TransactionRepository] backed by db.
func NewTransactionRepository(db *DB, logger *logger.Logger) TransactionRepository {
	logger.Debug().Msg("creating transaction repository")
	return &transactionRepository{
		db:     db,
		logger: logger,
	}
}

// ListTransactions implements [TransactionRepository].
func (r *transactionRepository) ListTransactions(ctx context.Context, ownerEmail string) ([]models.Transaction, error) {
	query, args, err := r.db.builder.
		Select(transactionColumns...).
		From("transactions").
		Where(sq.Or{
			sq.Eq{"owner_email": ownerEmail},
			sq.Eq{"owner_email": sharedOwner},
		}).
		OrderBy("ordered_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var rows *sql.Rows
	err = r.db.withRetry(ctx, "*transactionRepository.ListTransactions", func() error {
		var queryErr error
		rows, queryErr = r.db.QueryContext(ctx, query, args...)
		return queryErr
	})
	if err != nil {
		r.logger.Err(err).Str("func", "*transactionRepository.ListTransactions").Msg("error querying transactions")
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	defer rows.Close()

	transactions := make([]models.Transaction, 0)
	for rows.Next() {
		var t models.Transaction
		if err = rows.Scan(&t.ID, &t.OwnerEmail, &t.Date, &t.OrderID, &t.Store,
			&t.Items, &t.Total, &t.TrackingID, &t.Status); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrScanningRow, err)
		}
		transactions = append(transactions, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScanningRows, err)
	}

	return transactions, nil
}
