package applicationerrors

import (
	"net/http"

	"jobtrack/internal/shared/apperror"
)

var (
	ErrApplicationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Application not found",
		http.StatusNotFound,
	)

	ErrInvalidApplicationID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid application ID",
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

	ErrNotesRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Notes is required",
		http.StatusBadRequest,
	)
)
