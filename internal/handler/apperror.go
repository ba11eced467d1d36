package handler

import "net/http"

type AppError struct {
	Status  int
	Code    string
	Message string
}

func (e *AppError) Error() string { return e.Message }

var (
	ErrMissingToken       = &AppError{http.StatusUnauthorized, "MISSING_TOKEN", "Authorization header required"}
	ErrInvalidToken       = &AppError{http.StatusUnauthorized, "INVALID_TOKEN", "Token is invalid or expired"}
	ErrInvalidCredentials = &AppError{http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password"}
	ErrInvalidRequest     = &AppError{http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body"}
	ErrValidationFailed   = &AppError{http.StatusBadRequest, "VALIDATION_FAILED", "Validation failed"}
	ErrResourceNotFound   = &AppError{http.StatusNotFound, "RESOURCE_NOT_FOUND", "Resource not found"}
	ErrInternalError      = &AppError{http.StatusInternalServerError, "INTERNAL_ERROR", "An unexpected error occurred"}

	ErrInvalidCurrency    = &AppError{http.StatusBadRequest, "INVALID_CURRENCY", "Invalid currency"}
	ErrInvalidAmount      = &AppError{http.StatusBadRequest, "INVALID_AMOUNT", "Amount must not be negative"}
	ErrInvalidDebt        = &AppError{http.StatusUnprocessableEntity, "INVALID_DEBT", "Debt violates a construction invariant"}
	ErrInvalidAllocation  = &AppError{http.StatusUnprocessableEntity, "INVALID_ALLOCATION", "Bucket allocations must sum to 10000 basis points"}
	ErrInvalidIncome      = &AppError{http.StatusUnprocessableEntity, "INVALID_INCOME", "Fortnightly income must be greater than zero"}
)
