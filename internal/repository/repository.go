package repository

import "errors"

// ErrNotFound is returned when a lookup matches no document.
var ErrNotFound = errors.New("repository: not found")

// PageQuery carries skip/limit paging for list operations.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is one page of items plus the unpaged total.
type PageResult[T any] struct {
	Items []T
	Total int64
}

// AmountSummary aggregates quantity and amount over a set of collections.
type AmountSummary struct {
	TotalQuantity float64
	TotalAmount   float64
}

// MonthBucket is one month of a revenue/volume time series.
type MonthBucket struct {
	Month   string
	Revenue float64
	Volume  float64
}

// StatusAmount is a per-status count and amount rollup.
type StatusAmount struct {
	Count  int64
	Amount float64
}

// FBOPerformance is one FBO's contribution to revenue and volume.
type FBOPerformance struct {
	FBOID   string
	FBOName string
	Revenue float64
	Volume  float64
}
