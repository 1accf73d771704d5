package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/tcfw/starnotary/internal/utils/logging"
	"github.com/tcfw/starnotary/pkg/notary"
	"github.com/tcfw/starnotary/pkg/storage"
)

const (
	maxRequestBody = 1 << 16
)

func newRouter(l *logrus.Entry) *mux.Router {
	r := mux.NewRouter()

	r.Use(recoveryMiddleware(l), loggingMiddleware(l))
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, &ErrorResponse{Error: "no such endpoint"})
	})

	return r
}

func recoveryMiddleware(l *logrus.Entry) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					l.WithField("err", fmt.Sprintf("%s", rec)).Error("recovered from panic")
					writeJSON(w, http.StatusInternalServerError, &ErrorResponse{Error: "internal error"})
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func loggingMiddleware(l *logrus.Entry) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			l.WithFields(logging.Fields{
				"method":   r.Method,
				"path":     r.URL.Path,
				"status":   rec.status,
				"duration": time.Since(start),
			}).Debug("request")
		})
	}
}

func readJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return errors.Wrap(err, "decoding request")
	}

	return nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.WithError(err).Error("writing response")
	}
}

func badRequest(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusBadRequest, &ErrorResponse{Error: err.Error()})
}

// writeError maps core errors onto HTTP statuses
func writeError(w http.ResponseWriter, err error) {
	res := &ErrorResponse{Error: err.Error()}
	status := http.StatusInternalServerError

	var ierr *storage.IntegrityError

	switch {
	case errors.Is(err, storage.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, notary.ErrExpiredChallenge),
		errors.Is(err, notary.ErrInvalidSignature):
		status = http.StatusUnauthorized
	case errors.Is(err, notary.ErrMalformedChallenge),
		errors.Is(err, notary.ErrInvalidStar):
		status = http.StatusBadRequest
	case errors.As(err, &ierr):
		status = http.StatusConflict
		res.Findings = ierr.Findings
	default:
		logging.WithError(err).Error("request failed")
	}

	writeJSON(w, status, res)
}
