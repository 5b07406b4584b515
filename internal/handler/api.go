package handler

import (
	"errors"
	"net/http"
	"strconv"

	"taskr/internal/domain"
	"taskr/internal/service"
)

// apiTaskLimit caps the number of tasks returned by the list endpoint.
const apiTaskLimit = 10

// APIHandler serves the unauthenticated read-only JSON API.
type APIHandler struct {
	tasks *service.TaskService
}

// NewAPIHandler creates a new APIHandler.
func NewAPIHandler(tasks *service.TaskService) *APIHandler {
	return &APIHandler{tasks: tasks}
}

// HandleListTasks returns up to ten tasks.
// GET /api/v1/tasks/
// Response: {"items": [{...}, ...]}
func (h *APIHandler) HandleListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.tasks.List(r.Context(), apiTaskLimit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"items": toTaskDTOs(tasks)})
}

// HandleGetTask returns a single task, or 404 when the id does not
// reference one. A missing task is never a 200 with empty data.
// GET /api/v1/tasks/{task_id}
// Response: {"items": {...}}
func (h *APIHandler) HandleGetTask(w http.ResponseWriter, r *http.Request) {
	taskID, err := strconv.ParseInt(r.PathValue("task_id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "Task does not exist.")
		return
	}

	task, err := h.tasks.Get(r.Context(), taskID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Task does not exist.")
			return
		}
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"items": toTaskDTO(task)})
}
