package service

import "errors"

var (
	ErrPoolNotFound  = errors.New("pool not found")
	ErrEmptyReserves = errors.New("empty reserves")
	ErrZeroAmount    = errors.New("amount must be greater than zero")
	ErrInvalidSide   = errors.New("side must be x or y")
)
