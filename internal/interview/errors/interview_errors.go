package interviewerrors

import (
	"net/http"

	"jobtrack/internal/shared/apperror"
)

var (
	ErrInterviewNotFound = apperror.New(
		apperror.CodeNotFound,
		"Interview not found",
		http.StatusNotFound,
	)

	ErrInvalidInterviewID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid interview ID",
		http.StatusBadRequest,
	)

	ErrInvalidApplicationID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid application ID",
		http.StatusBadRequest,
	)

	ErrNotesRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Notes is required",
		http.StatusBadRequest,
	)

	ErrScheduledAtRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Scheduled At is required",
		http.StatusBadRequest,
	)

	ErrInvalidScheduledAt = apperror.New(
		apperror.CodeInvalidInput,
		"scheduled_at must be an RFC3339 timestamp",
		http.StatusBadRequest,
	)
)
