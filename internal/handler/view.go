package handler

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"taskr/internal/domain"
)

// dateLayout is how calendar dates appear in pages and API payloads.
const dateLayout = "2006-01-02"

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"date": func(t time.Time) string { return t.Format(dateLayout) },
}).ParseFS(templateFS, "templates/*.html"))

// render writes an HTML page. Render failures after the header is written
// can only be logged.
func render(w http.ResponseWriter, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		slog.Error("render template", "template", name, "error", err)
	}
}

// loginPage is the data for templates/login.html.
type loginPage struct {
	Flash string
	Error string
	Email string
}

// registerPage is the data for templates/register.html.
type registerPage struct {
	Flash  string
	Error  string
	Fields map[string]string
	Name   string
	Email  string
}

// tasksPage is the data for templates/tasks.html.
type tasksPage struct {
	Flash    string
	Username string
	Email    string
	Fields   map[string]string
	Form     taskForm
	Open     []domain.Task
	Closed   []domain.Task
}

// taskForm holds raw add-task form values for redisplay after a
// validation failure.
type taskForm struct {
	Name     string
	DueDate  string
	Priority string
}

// fieldMessages flattens a ValidationError into a field-to-message map
// for template lookup.
func fieldMessages(verr *domain.ValidationError) map[string]string {
	fields := make(map[string]string, len(verr.Fields))
	for _, f := range verr.Fields {
		fields[f.Field] = f.Message
	}
	return fields
}
