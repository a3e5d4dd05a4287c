package domain

import "errors"

// Доменные ошибки - используются во всех слоях приложения.
// Нарушенные предусловия операций не являются сбоями: CLI печатает по ним
// диагностику и пропускает запись.

// Customer errors
var (
	ErrCustomerNotFound = errors.New("customer not found")
)

// Mechanic errors
var (
	ErrMechanicNotFound = errors.New("mechanic not found")
)

// Car errors
var (
	ErrCarNotFound = errors.New("car not found")
	ErrInvalidVIN  = errors.New("invalid vin")
)

// Service request errors
var (
	ErrServiceRequestNotFound = errors.New("service request not found")
	ErrServiceRequestClosed   = errors.New("service request already closed")
)

// Report errors
var (
	ErrInvalidLimit = errors.New("invalid report limit")
)
