package handler

import (
	"fmt"
	"net/http"

	"fsanano/hello-api/internal/model"
	"fsanano/hello-api/internal/service"
)

type UserHandler struct {
	svc *service.UserService
}

func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.List())
}

// Search serves GET /api/users/search?username=.
func (h *UserHandler) Search(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.Search(r.URL.Query().Get("username"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	user, err := h.svc.Get(id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	dto, err := decodeJSON[model.UserCreateDto](r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	user, err := h.svc.Create(dto)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeCreated(w, fmt.Sprintf("/api/users/%d", user.ID), user)
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	dto, err := decodeJSON[model.UserCreateDto](r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.svc.Update(id, dto); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.svc.Delete(id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
