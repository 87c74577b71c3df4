package redemption

import (
	"errors"
	"strings"
	"unicode/utf8"
)

const (
	MaxOrderNumberLength = 128
	MaxDrawResultLength  = 1024
)

var (
	ErrEmptyOrderNumber   = errors.New("order number is required")
	ErrOrderNumberTooLong = errors.New("order number is too long")
	ErrInvalidOrderNumber = errors.New("order number contains invalid characters")
	ErrEmptyDrawResult    = errors.New("draw result is required")
	ErrDrawResultTooLong  = errors.New("draw result is too long")
)

// OrderNumber is also the storage key of an order, so it must be usable as a
// document ID: no slashes and not a relative path segment.
type OrderNumber struct {
	value string
}

func NewOrderNumber(s string) (OrderNumber, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return OrderNumber{}, ErrEmptyOrderNumber
	}
	if utf8.RuneCountInString(s) > MaxOrderNumberLength {
		return OrderNumber{}, ErrOrderNumberTooLong
	}
	if strings.Contains(s, "/") || s == "." || s == ".." {
		return OrderNumber{}, ErrInvalidOrderNumber
	}
	return OrderNumber{value: s}, nil
}

func (o OrderNumber) String() string { return o.value }

// DrawResult is opaque. It is stored exactly as supplied.
type DrawResult struct {
	value string
}

func NewDrawResult(s string) (DrawResult, error) {
	if strings.TrimSpace(s) == "" {
		return DrawResult{}, ErrEmptyDrawResult
	}
	if utf8.RuneCountInString(s) > MaxDrawResultLength {
		return DrawResult{}, ErrDrawResultTooLong
	}
	return DrawResult{value: s}, nil
}

func (d DrawResult) String() string { return d.value }
