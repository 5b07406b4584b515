package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"taskr/internal/domain"
	"taskr/internal/service"
)

// TaskHandler serves the task list and lifecycle routes. Every route here
// sits behind RequireIdentity.
type TaskHandler struct {
	tasks        *service.TaskService
	errlog       *ErrorLog
	cookieSecure bool
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(tasks *service.TaskService, errlog *ErrorLog, cookieSecure bool) *TaskHandler {
	return &TaskHandler{tasks: tasks, errlog: errlog, cookieSecure: cookieSecure}
}

// HandleTasks renders the open and closed task lists with the add form.
// GET /tasks
func (h *TaskHandler) HandleTasks(w http.ResponseWriter, r *http.Request) {
	h.renderTasks(w, r, tasksPage{Flash: popFlash(w, r)}, http.StatusOK)
}

// HandleAddPage renders the same task page as GET /tasks.
// GET /add
func (h *TaskHandler) HandleAddPage(w http.ResponseWriter, r *http.Request) {
	h.renderTasks(w, r, tasksPage{Flash: popFlash(w, r)}, http.StatusOK)
}

// HandleAdd processes the add-task form.
// POST /add with name, due_date, priority
func (h *TaskHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	identity, _ := IdentityFromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		h.renderTasks(w, r, tasksPage{Flash: "Invalid Form Data"}, http.StatusOK)
		return
	}
	form := taskForm{
		Name:     r.PostFormValue("name"),
		DueDate:  r.PostFormValue("due_date"),
		Priority: r.PostFormValue("priority"),
	}

	// Parse failures become zero values, which the service rejects with
	// the matching field errors.
	dueDate, _ := time.Parse(dateLayout, form.DueDate)
	priority, _ := strconv.Atoi(form.Priority)

	_, err := h.tasks.Create(r.Context(), identity, form.Name, dueDate, priority)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			h.renderTasks(w, r, tasksPage{Fields: fieldMessages(verr), Form: form}, http.StatusOK)
			return
		}
		renderServerError(w, r, h.errlog, err)
		return
	}

	setFlash(w, "New Task Added!", h.cookieSecure)
	http.Redirect(w, r, "/tasks", http.StatusSeeOther)
}

// HandleComplete marks a task as completed and redirects with a flash
// message either way.
// GET /complete/{task_id}
func (h *TaskHandler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	identity, _ := IdentityFromContext(r.Context())

	taskID, err := strconv.ParseInt(r.PathValue("task_id"), 10, 64)
	if err != nil {
		renderNotFound(w, r, h.errlog)
		return
	}

	switch err := h.tasks.Complete(r.Context(), identity, taskID); {
	case err == nil:
		setFlash(w, "Task marked completed", h.cookieSecure)
	case errors.Is(err, domain.ErrForbidden):
		setFlash(w, "Only assigned user or admin can complete the task.", h.cookieSecure)
	case errors.Is(err, domain.ErrNotFound):
		setFlash(w, "Task not found.", h.cookieSecure)
	default:
		renderServerError(w, r, h.errlog, err)
		return
	}
	http.Redirect(w, r, "/tasks", http.StatusSeeOther)
}

// HandleDelete removes a task permanently and redirects with a flash
// message either way.
// GET /delete/{task_id}
func (h *TaskHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	identity, _ := IdentityFromContext(r.Context())

	taskID, err := strconv.ParseInt(r.PathValue("task_id"), 10, 64)
	if err != nil {
		renderNotFound(w, r, h.errlog)
		return
	}

	switch err := h.tasks.Delete(r.Context(), identity, taskID); {
	case err == nil:
		setFlash(w, "Task Deleted", h.cookieSecure)
	case errors.Is(err, domain.ErrForbidden):
		setFlash(w, "Only assigned user or admin can delete the task.", h.cookieSecure)
	case errors.Is(err, domain.ErrNotFound):
		setFlash(w, "Task not found.", h.cookieSecure)
	default:
		renderServerError(w, r, h.errlog, err)
		return
	}
	http.Redirect(w, r, "/tasks", http.StatusSeeOther)
}

// renderTasks fills in the identity greeting and both task lists before
// rendering the tasks page.
func (h *TaskHandler) renderTasks(w http.ResponseWriter, r *http.Request, page tasksPage, status int) {
	identity, _ := IdentityFromContext(r.Context())
	page.Username = identity.Name
	page.Email = identity.Email

	open, err := h.tasks.ListOpen(r.Context())
	if err != nil {
		renderServerError(w, r, h.errlog, err)
		return
	}
	closed, err := h.tasks.ListClosed(r.Context())
	if err != nil {
		renderServerError(w, r, h.errlog, err)
		return
	}

	page.Open = open
	page.Closed = closed
	render(w, status, "tasks.html", page)
}
