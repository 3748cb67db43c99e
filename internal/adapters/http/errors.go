package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	api "github.com/alifrahmanhakim/AOC-RBS/internal/api"
	"github.com/alifrahmanhakim/AOC-RBS/internal/findings"
	"github.com/alifrahmanhakim/AOC-RBS/internal/ports"
	"github.com/alifrahmanhakim/AOC-RBS/internal/rbs"
)

// validationError carries the failed validate tag per json field path.
type validationError struct {
	fields map[string]string
}

func (e *validationError) Error() string { return "validation failed" }

// check runs the validate tags of a decoded request body.
func (s *Server) check(body any) error {
	err := s.validate.Struct(body)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		_, field, _ := strings.Cut(fe.Namespace(), ".")
		fields[field] = fe.Tag()
	}
	return &validationError{fields: fields}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeRequestError answers parameter binding and body decoding failures.
func (s *Server) writeRequestError(w http.ResponseWriter, _ *http.Request, err error) {
	writeJSON(w, http.StatusBadRequest, api.Error{Error: err.Error()})
}

// writeError maps a handler error onto a status code. Internal errors are
// logged and their text is not returned.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		verr    *validationError
		invalid *rbs.InvalidInputError
	)
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, api.Error{Error: verr.Error(), Fields: verr.fields})
	case errors.As(err, &invalid):
		writeJSON(w, http.StatusBadRequest, api.Error{Error: invalid.Reason, Field: invalid.Field})
	case errors.Is(err, ports.ErrNotFound):
		writeJSON(w, http.StatusNotFound, api.Error{Error: err.Error()})
	case errors.Is(err, findings.ErrAlreadyCompleted), errors.Is(err, findings.ErrNotCompleted),
		errors.Is(err, ports.ErrJobNotQueued):
		writeJSON(w, http.StatusConflict, api.Error{Error: err.Error()})
	case errors.Is(err, context.DeadlineExceeded):
		writeJSON(w, http.StatusGatewayTimeout, api.Error{Error: "timed out"})
	default:
		s.Log.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		writeJSON(w, http.StatusInternalServerError, api.Error{Error: "internal error"})
	}
}
