package order

import "errors"

var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrOrderStatusNotFound = errors.New("order status not found")
	ErrPaymentNotFound     = errors.New("payment not found")
)
