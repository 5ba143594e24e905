package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"todoserver/internal/api/shared"
	"todoserver/internal/service"
)

// TaskHandler handles the task listing, creation, and deletion endpoints.
type TaskHandler struct {
	taskService service.TaskService
}

// NewTaskHandler creates a new TaskHandler with the given dependencies.
func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// List handles GET /. An empty table yields an empty JSON array, not null.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.ListTasks(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	resp := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		resp = append(resp, TaskResponse{
			ID:          task.ID,
			Description: task.Description,
		})
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// Create handles POST /create. The description comes back verbatim together
// with the store-assigned ID.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	task, err := h.taskService.CreateTask(r.Context(), req.Description)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TaskResponse{
		ID:          task.ID,
		Description: task.Description,
	})
}

// RequireValidID rejects non-numeric or non-positive task IDs in the path.
// It is installed ahead of the auth gate so a malformed path fails with 400
// no matter what credentials accompany it.
func (h *TaskHandler) RequireValidID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil || id <= 0 {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid id")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Delete handles DELETE /delete/{id}. Non-numeric or non-positive IDs fail
// with 400 before any store access; unknown IDs fail with 404.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid id")
		return
	}

	if err := h.taskService.DeleteTask(r.Context(), id); err != nil {
		respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DeleteTaskResponse{ID: id})
}
