// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"
)

// Transaction is a past order of a storefront customer.
type Transaction struct {
	ID         int64
	OwnerEmail string
	Date       time.Time
	OrderID    string
	Store      string
	Items      int
	Total      float64
	TrackingID string
	Status     string
}

// Row returns the transaction's display cells in profile table order.
func (t Transaction) Row() []string {
	return []string{
		t.Date.Format("2006-01-02"),
		t.OrderID,
		t.Store,
		fmt.Sprintf("%d", t.Items),
		fmt.Sprintf("$%.2f", t.Total),
		t.TrackingID,
		t.Status,
	}
}
