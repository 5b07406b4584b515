package handler

import (
	"net/http"

	"taskr/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, accounts *service.AccountService, tasks *service.TaskService, errlog *ErrorLog, cookieSecure bool) {
	account := NewAccountHandler(accounts, errlog, cookieSecure)
	task := NewTaskHandler(tasks, errlog, cookieSecure)
	api := NewAPIHandler(tasks)

	protected := func(h http.HandlerFunc) http.Handler {
		return RequireIdentity(accounts, cookieSecure, h)
	}

	mux.HandleFunc("GET /{$}", account.HandleLoginPage)
	mux.HandleFunc("POST /{$}", account.HandleLogin)
	mux.Handle("GET /logout/", protected(account.HandleLogout))
	mux.HandleFunc("GET /register", account.HandleRegisterPage)
	mux.HandleFunc("POST /register", account.HandleRegister)

	mux.Handle("GET /tasks", protected(task.HandleTasks))
	mux.Handle("GET /add", protected(task.HandleAddPage))
	mux.Handle("POST /add", protected(task.HandleAdd))
	mux.Handle("GET /complete/{task_id}", protected(task.HandleComplete))
	mux.Handle("GET /delete/{task_id}", protected(task.HandleDelete))

	mux.HandleFunc("GET /api/v1/tasks/{$}", api.HandleListTasks)
	mux.HandleFunc("GET /api/v1/tasks/{task_id}", api.HandleGetTask)

	// Everything else is a 404 page (and an error-log line outside debug).
	mux.Handle("/", NotFoundHandler(errlog))
}
