package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/gl_ledger_service/internal/apperrors"
	"github.com/SscSPs/gl_ledger_service/internal/dto"
	"github.com/SscSPs/gl_ledger_service/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Error codes returned in dto.ErrorResponse.Code.
const (
	CodeEmptyEntry          = "EMPTY_ENTRY"
	CodeInvalidLineAmount   = "INVALID_LINE_AMOUNT"
	CodeDebitCreditMismatch = "DEBIT_CREDIT_MISMATCH"
	CodeAccountNotFound     = "ACCOUNT_NOT_FOUND"
	CodeInvalidStatus       = "INVALID_STATUS"
	CodeEntryNotDeletable   = "ENTRY_NOT_DELETABLE"
	CodeNotFound            = "NOT_FOUND"
	CodeValidation          = "VALIDATION_ERROR"
	CodeDuplicate           = "DUPLICATE"
	CodeConflict            = "CONFLICT"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeInternal            = "INTERNAL_ERROR"
)

// respondError maps err onto a status, an error code and a body.
// Infrastructure failures are logged in full and answered with an opaque message.
func respondError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var (
		emptyErr     apperrors.EmptyEntryError
		lineErr      apperrors.InvalidLineAmountError
		mismatchErr  apperrors.DebitCreditMismatchError
		accountErr   apperrors.AccountNotFoundError
		statusErr    apperrors.InvalidStatusError
		deletableErr apperrors.EntryNotDeletableError
	)

	status, body := http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal server error", Code: CodeInternal}
	switch {
	case errors.As(err, &emptyErr):
		status, body = http.StatusUnprocessableEntity, dto.ErrorResponse{Error: emptyErr.Error(), Code: CodeEmptyEntry}
	case errors.As(err, &lineErr):
		status, body = http.StatusUnprocessableEntity, dto.ErrorResponse{Error: lineErr.Error(), Code: CodeInvalidLineAmount,
			Details: map[string]any{"line_number": lineErr.LineNumber}}
	case errors.As(err, &mismatchErr):
		status, body = http.StatusUnprocessableEntity, dto.ErrorResponse{Error: mismatchErr.Error(), Code: CodeDebitCreditMismatch,
			Details: map[string]any{"debits": dto.Money(mismatchErr.Debits), "credits": dto.Money(mismatchErr.Credits)}}
	case errors.As(err, &accountErr):
		status, body = http.StatusBadRequest, dto.ErrorResponse{Error: accountErr.Error(), Code: CodeAccountNotFound,
			Details: map[string]any{"account_id": accountErr.AccountID}}
	case errors.As(err, &statusErr):
		status, body = http.StatusConflict, dto.ErrorResponse{Error: statusErr.Error(), Code: CodeInvalidStatus,
			Details: map[string]any{"from": statusErr.From, "to": statusErr.To}}
	case errors.As(err, &deletableErr):
		status, body = http.StatusConflict, dto.ErrorResponse{Error: deletableErr.Error(), Code: CodeEntryNotDeletable,
			Details: map[string]any{"status": deletableErr.Status}}
	case errors.Is(err, apperrors.ErrNotFound):
		status, body = http.StatusNotFound, dto.ErrorResponse{Error: messageOf(err), Code: CodeNotFound}
	case errors.Is(err, apperrors.ErrValidation):
		status, body = http.StatusBadRequest, dto.ErrorResponse{Error: messageOf(err), Code: CodeValidation}
	case errors.Is(err, apperrors.ErrDuplicate):
		status, body = http.StatusConflict, dto.ErrorResponse{Error: messageOf(err), Code: CodeDuplicate}
	case errors.Is(err, apperrors.ErrConflict):
		status, body = http.StatusConflict, dto.ErrorResponse{Error: messageOf(err), Code: CodeConflict}
	case errors.Is(err, apperrors.ErrUnauthorized):
		status, body = http.StatusUnauthorized, dto.ErrorResponse{Error: messageOf(err), Code: CodeUnauthorized}
	}

	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", slog.String("error", err.Error()))
	} else {
		logger.Warn("Request rejected", slog.Int("status", status), slog.String("code", body.Code), slog.String("error", err.Error()))
	}
	c.JSON(status, body)
}

// messageOf prefers the AppError message so wrapped causes stay out of responses.
func messageOf(err error) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return err.Error()
}

// respondBindError answers a request that failed binding or struct validation.
func respondBindError(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Invalid request", slog.String("error", err.Error()))

	body := dto.ErrorResponse{Error: "Invalid request", Code: CodeValidation}
	var verrs validator.ValidationErrors
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &verrs):
		fields := make(map[string]any, len(verrs))
		for _, fe := range verrs {
			fields[fe.Namespace()] = fe.Tag()
		}
		body.Details = map[string]any{"fields": fields}
	case errors.As(err, &syntaxErr), errors.As(err, &typeErr):
		body.Error = "Invalid request format"
	default:
		body.Error = err.Error()
	}
	c.JSON(http.StatusBadRequest, body)
}
