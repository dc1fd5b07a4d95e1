package content

import "errors"

var (
	ErrPromotionNotFound = errors.New("promotion not found")
	ErrPostNotFound      = errors.New("post not found")
)
