package companyerrors

import (
	"net/http"

	"jobtrack/internal/shared/apperror"
)

var (
	ErrCompanyNotFound = apperror.New(
		apperror.CodeNotFound,
		"Company not found",
		http.StatusNotFound,
	)

	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid company ID",
		http.StatusBadRequest,
	)

	ErrInvalidOwnerID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid owner ID",
		http.StatusBadRequest,
	)

	ErrNameRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Name is required",
		http.StatusBadRequest,
	)
)
