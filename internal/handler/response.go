package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"fsanano/hello-api/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func writeCreated(w http.ResponseWriter, location string, v any) {
	w.Header().Set("Location", location)
	writeJSON(w, http.StatusCreated, v)
}

// writeError maps a tagged model.Error to its status code. NotFound never
// carries a body; BadRequest and Conflict carry {"error": msg} when there
// is a message. Anything else is a 500 and gets logged.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var tagged *model.Error
	if !errors.As(err, &tagged) {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("unhandled error")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
		return
	}

	var status int
	switch tagged.Kind {
	case model.KindNotFound:
		w.WriteHeader(http.StatusNotFound)
		return
	case model.KindBadRequest:
		status = http.StatusBadRequest
	case model.KindConflict:
		status = http.StatusConflict
	default:
		status = http.StatusInternalServerError
	}

	if tagged.Message == "" {
		w.WriteHeader(status)
		return
	}
	writeJSON(w, status, errorResponse{Error: tagged.Message})
}

// writeHTML renders into a buffer first so a template failure still
// produces a clean 500.
func writeHTML(w http.ResponseWriter, r *http.Request, status int, render func(io.Writer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to render page")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

// decodeJSON decodes the body into a fresh T. A non-JSON content type, a
// malformed body, trailing data after the value or a literal null are all
// reported as a BadRequest without detail.
func decodeJSON[T any](r *http.Request) (T, error) {
	var zero T
	if !hasJSONContentType(r) {
		return zero, model.BadRequest("")
	}

	var dto *T
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&dto); err != nil || dto == nil {
		return zero, model.BadRequest("")
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return zero, model.BadRequest("")
	}
	return *dto, nil
}

// pathID reads the {id} route parameter. Routes only match digits, so a
// failure here means the value overflowed and is treated as an unknown id.
func pathID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return 0, model.ErrNotFound
	}
	return id, nil
}

func mediaType(r *http.Request) string {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return ""
	}
	return mt
}

func hasFormContentType(r *http.Request) bool {
	switch mediaType(r) {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		return true
	}
	return false
}

func hasJSONContentType(r *http.Request) bool {
	mt := mediaType(r)
	return mt == "application/json" || strings.HasSuffix(mt, "+json")
}
