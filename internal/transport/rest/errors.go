package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/beetracker-backend/internal/domain"
	"github.com/heartmarshall/beetracker-backend/internal/hints"
	"github.com/heartmarshall/beetracker-backend/internal/service/game"
)

const (
	actionRetry       = "retry"
	actionSignIn      = "start a new session"
	actionLoadHints   = "load hints first"
	actionPasteText   = "try a clearer screenshot or paste the text instead"
	actionCheckInput  = "check the input and try again"
	actionWaitForOCR  = "wait for the current screenshot to finish"
	actionRetryOrType = "retry, or paste the text instead"
)

// handleError maps service errors to status codes. Anything unknown is
// logged and hidden behind a 500.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError

	switch {
	case errors.Is(err, hints.ErrNoGrid):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error:  "could not find a hints grid",
			Action: actionPasteText,
		})
	case errors.As(err, &ve):
		resp := errorResponse{Error: "invalid input", Action: actionCheckInput}
		for _, fe := range ve.Errors {
			resp.Fields = append(resp.Fields, fieldError{Field: fe.Field, Message: fe.Message})
			if fe.Field == "image" {
				resp.Action = actionPasteText
			}
		}
		writeJSON(w, http.StatusBadRequest, resp)
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized", actionSignIn)
	case errors.Is(err, game.ErrNoSession):
		writeError(w, http.StatusNotFound, "no hints loaded", actionLoadHints)
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found", "")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "a screenshot is already being processed", actionWaitForOCR)
	case errors.Is(err, domain.ErrUnavailable):
		log.WarnContext(r.Context(), "upstream unavailable", slog.String("error", err.Error()))
		writeError(w, http.StatusBadGateway, "text recognition failed", actionRetryOrType)
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error", actionRetry)
	}
}
