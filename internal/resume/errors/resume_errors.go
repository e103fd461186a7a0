package resumeerrors

import (
	"net/http"

	"jobtrack/internal/shared/apperror"
)

var (
	ErrResumeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Resume not found",
		http.StatusNotFound,
	)

	ErrInvalidResumeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid resume ID",
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

	ErrFileRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Resume file is required",
		http.StatusBadRequest,
	)

	ErrFileTooLarge = apperror.New(
		apperror.CodeInvalidInput,
		"Resume file exceeds the 10 MiB limit",
		http.StatusBadRequest,
	)

	ErrNotAnImage = apperror.New(
		apperror.CodeInvalidInput,
		"Uploaded file must be an image",
		http.StatusBadRequest,
	)
)
