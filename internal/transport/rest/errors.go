package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/heartmarshall/customtrack-backend/internal/domain"
	"github.com/heartmarshall/customtrack-backend/pkg/ctxutil"
)

type errorResponse struct {
	Error  string            `json:"error"`
	Fields []fieldErrorEntry `json:"fields,omitempty"`
}

type fieldErrorEntry struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// respondError maps a service error onto an HTTP status.
func respondError(c *gin.Context, log *slog.Logger, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		resp := errorResponse{Error: "validation failed"}
		for _, fe := range ve.Errors {
			resp.Fields = append(resp.Fields, fieldErrorEntry{Field: fe.Field, Message: fe.Message})
		}
		c.JSON(http.StatusBadRequest, resp)
	case errors.Is(err, domain.ErrNotFound):
		writeError(c, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(c, http.StatusConflict, "already exists")
	case errors.Is(err, domain.ErrConflict):
		writeError(c, http.StatusConflict, "conflict")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(c, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(c, http.StatusForbidden, "forbidden")
	default:
		log.ErrorContext(c.Request.Context(), "internal error",
			slog.String("path", c.Request.URL.Path),
			slog.String("error", err.Error()),
		)
		_ = c.Error(err)
		writeError(c, http.StatusInternalServerError, "internal server error")
	}
}

func writeError(c *gin.Context, status int, message string) {
	c.JSON(status, errorResponse{Error: message})
}

// bindFailed answers a malformed request body.
func bindFailed(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
}

// pathID parses the :id path parameter, answering 400 when it is malformed.
func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{
			Error:  "validation failed",
			Fields: []fieldErrorEntry{{Field: "id", Message: "invalid UUID"}},
		})
		return uuid.Nil, false
	}
	return id, true
}

// actorFrom returns the acting user, or nil for system/anonymous calls.
func actorFrom(c *gin.Context) *uuid.UUID {
	return ctxutil.ActorFromCtx(c.Request.Context())
}

// requireUser returns the acting user. Routes using it sit behind
// middleware.RequireActor, so a missing actor is answered with 401 here.
func requireUser(c *gin.Context) (uuid.UUID, bool) {
	id, ok := ctxutil.ActorIDFromCtx(c.Request.Context())
	if !ok {
		writeError(c, http.StatusUnauthorized, "unauthorized")
		return uuid.Nil, false
	}
	return id, true
}
