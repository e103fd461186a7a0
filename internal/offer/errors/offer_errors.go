package offererrors

import (
	"net/http"

	"jobtrack/internal/shared/apperror"
)

var (
	ErrOfferNotFound = apperror.New(
		apperror.CodeNotFound,
		"Offer not found",
		http.StatusNotFound,
	)

	ErrInvalidOfferID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid offer ID",
		http.StatusBadRequest,
	)

	ErrInvalidOwnerID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid owner ID",
		http.StatusBadRequest,
	)

	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid company ID",
		http.StatusBadRequest,
	)

	ErrReceivedAtRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Received At is required",
		http.StatusBadRequest,
	)

	ErrInvalidReceivedAt = apperror.New(
		apperror.CodeInvalidInput,
		"received_at must be an RFC3339 timestamp",
		http.StatusBadRequest,
	)
)
