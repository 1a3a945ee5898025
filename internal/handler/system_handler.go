package handler

import (
	"net/http"

	"fsanano/hello-api/internal/service"
)

type messageResponse struct {
	Message string `json:"message"`
}

func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, messageResponse{Message: "Hello from HelloWorldApp API"})
}

func (h *Handler) Hello(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, "Hello API user!")
}

// Greeting serves GET /api/greeting?name=.
func (h *Handler) Greeting(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	writeJSON(w, http.StatusOK, messageResponse{Message: service.Greeting(name)})
}

// Spec serves runtime details about the process. Diagnostic only.
func (h *Handler) Spec(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.runtime)
}
