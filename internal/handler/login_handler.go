package handler

import (
	"errors"
	"io"
	"net/http"

	"fsanano/hello-api/internal/model"
	"fsanano/hello-api/internal/service"
	"fsanano/hello-api/internal/web"
)

type LoginHandler struct {
	svc *service.LoginService
}

func NewLoginHandler(svc *service.LoginService) *LoginHandler {
	return &LoginHandler{svc: svc}
}

func (h *LoginHandler) Form(w http.ResponseWriter, r *http.Request) {
	writeHTML(w, r, http.StatusOK, web.LoginForm)
}

// Login accepts form posts only. The password field is read and passed
// along but never verified; a known username is enough to "log in".
func (h *LoginHandler) Login(w http.ResponseWriter, r *http.Request) {
	if !hasFormContentType(r) {
		writeError(w, r, model.BadRequest(""))
		return
	}
	if err := parseForm(r); err != nil {
		writeError(w, r, model.BadRequest(""))
		return
	}

	user, err := h.svc.Login(r.PostFormValue("username"), r.PostFormValue("password"))
	if errors.Is(err, model.ErrNotFound) {
		writeHTML(w, r, http.StatusOK, web.LoginFailure)
		return
	}
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeHTML(w, r, http.StatusOK, func(out io.Writer) error {
		return web.LoginSuccess(out, model.Deref(user.Username), model.Deref(user.Email))
	})
}
