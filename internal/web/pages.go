// Package web renders the HTML pages served next to the JSON API.
// Pages are embedded into the binary; dynamic values are escaped by
// html/template.
package web

import (
	"embed"
	"html/template"
	"io"
)

//go:embed templates/*.html
var files embed.FS

var pages = template.Must(template.ParseFS(files, "templates/*.html"))

func ContactForm(w io.Writer) error {
	return pages.ExecuteTemplate(w, "contact.html", nil)
}

func ContactThanks(w io.Writer, name string) error {
	return pages.ExecuteTemplate(w, "contact_thanks.html", struct{ Name string }{name})
}

func LoginForm(w io.Writer) error {
	return pages.ExecuteTemplate(w, "login.html", nil)
}

func LoginSuccess(w io.Writer, username, email string) error {
	return pages.ExecuteTemplate(w, "login_success.html", struct {
		Username string
		Email    string
	}{username, email})
}

func LoginFailure(w io.Writer) error {
	return pages.ExecuteTemplate(w, "login_failure.html", nil)
}

// DeveloperError is the detailed error page shown in development when a
// handler panics.
func DeveloperError(w io.Writer, method, path, panicValue, stack string) error {
	return pages.ExecuteTemplate(w, "error_dev.html", struct {
		Method string
		Path   string
		Panic  string
		Stack  string
	}{method, path, panicValue, stack})
}
