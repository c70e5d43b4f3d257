package model

import "errors"

var (
	// ErrInsufficientData means fewer than 2 usable price bars were supplied.
	ErrInsufficientData = errors.New("insufficient price data")
	// ErrInvalidIncome means monthly income was zero or negative.
	ErrInvalidIncome = errors.New("invalid monthly income")
	// ErrEntityNotFound means the requested name is not in the roster.
	ErrEntityNotFound = errors.New("entity not found")
	// ErrNoData means no roster entity could be scored.
	ErrNoData = errors.New("no data available")
	// ErrSupplierFailure wraps network and decode errors from the market data supplier.
	ErrSupplierFailure = errors.New("market data supplier failure")
	// ErrInvalidProfile means a budget profile failed field validation.
	ErrInvalidProfile = errors.New("invalid budget profile")
	// ErrUnknownProfile means no savings tips exist for the requested profile.
	ErrUnknownProfile = errors.New("unknown savings profile")
	// ErrEmptyMessage means a chat message was blank.
	ErrEmptyMessage = errors.New("message cannot be empty")
)
