package questionerrors

import (
	"net/http"

	"jobtrack/internal/shared/apperror"
)

var (
	ErrQuestionNotFound = apperror.New(
		apperror.CodeNotFound,
		"Question not found",
		http.StatusNotFound,
	)

	ErrInvalidQuestionID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid question ID",
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

	ErrContentRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Content is required",
		http.StatusBadRequest,
	)
)
