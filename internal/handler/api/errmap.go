package api

import (
	"errors"
	"log/slog"
	"net/http"

	"lendshare/internal/domain/booking"
	"lendshare/internal/handler/httperr"
	"lendshare/internal/pkg/errs"
	"lendshare/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// respondError maps use-case errors to HTTP statuses. The sentinel's message
// is the response message, so contract strings like the unknown-state text
// pass through untouched.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		slog.Error("request failed", "error", err, "path", c.Request.URL.Path)
		httperr.AbortWithError(c, status, err, "Internal server error")
		return
	}
	httperr.AbortWithError(c, status, err, err.Error())
}

func statusFor(err error) int {
	var unknownState *queries.UnknownStateError

	switch {
	case errors.Is(err, errs.ErrUserNotFound),
		errors.Is(err, errs.ErrItemNotFound),
		errors.Is(err, errs.ErrBookingNotFound),
		errors.Is(err, errs.ErrRequestNotFound),
		errors.Is(err, booking.ErrOwnerBooking):
		return http.StatusNotFound
	case errors.As(err, &unknownState),
		errors.Is(err, errs.ErrInvalidPagination),
		errors.Is(err, errs.ErrBlankName),
		errors.Is(err, errs.ErrCommentWithoutBooking),
		errors.Is(err, booking.ErrItemUnavailable),
		errors.Is(err, booking.ErrAlreadyDecided):
		return http.StatusBadRequest
	case errors.Is(err, booking.ErrNotOwner):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrEmailTaken):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
