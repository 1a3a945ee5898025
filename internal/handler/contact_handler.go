package handler

import (
	"fmt"
	"io"
	"net/http"

	"fsanano/hello-api/internal/model"
	"fsanano/hello-api/internal/service"
	"fsanano/hello-api/internal/web"
)

const maxFormMemory = 1 << 20

type ContactHandler struct {
	svc *service.ContactService
}

func NewContactHandler(svc *service.ContactService) *ContactHandler {
	return &ContactHandler{svc: svc}
}

func (h *ContactHandler) Form(w http.ResponseWriter, r *http.Request) {
	writeHTML(w, r, http.StatusOK, web.ContactForm)
}

// Submit accepts either a posted HTML form or a JSON body. Form posts
// always succeed and get a thank-you page; JSON posts get the stored
// record back.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if hasFormContentType(r) {
		if err := parseForm(r); err != nil {
			writeError(w, r, model.BadRequest(""))
			return
		}
		dto := model.ContactCreateDto{
			Name:    model.StringPtr(r.PostFormValue("name")),
			Email:   model.StringPtr(r.PostFormValue("email")),
			Message: model.StringPtr(r.PostFormValue("message")),
		}
		submission := h.svc.Submit(dto)
		writeHTML(w, r, http.StatusOK, func(out io.Writer) error {
			return web.ContactThanks(out, model.Deref(submission.Name))
		})
		return
	}

	dto, err := decodeJSON[model.ContactCreateDto](r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	submission := h.svc.Submit(dto)
	writeCreated(w, fmt.Sprintf("/api/contacts/%d", submission.ID), submission)
}

func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.List())
}

func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	submission, err := h.svc.Get(id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, submission)
}

func parseForm(r *http.Request) error {
	if mediaType(r) == "multipart/form-data" {
		return r.ParseMultipartForm(maxFormMemory)
	}
	return r.ParseForm()
}
