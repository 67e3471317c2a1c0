package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"team-portal/backend/members-service/logging"
	"team-portal/backend/members-service/models"
	"team-portal/backend/members-service/services"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TaskStore su operacije nad zadacima koje handler koristi; produkciona
// implementacija je *services.TaskService.
type TaskStore interface {
	GetTasksForMember(ctx context.Context, memberID string) ([]models.Task, error)
	ChangeTaskStatus(ctx context.Context, taskID primitive.ObjectID, status models.TaskStatus) error
	CreateTask(ctx context.Context, task models.Task) (models.Task, error)
}

type TaskHandler struct {
	TaskService   TaskStore
	MemberService MemberResolver
}

func NewTaskHandler(taskService TaskStore, memberService MemberResolver) *TaskHandler {
	return &TaskHandler{TaskService: taskService, MemberService: memberService}
}

type ChangeTaskStatusRequest struct {
	TaskID string            `json:"taskId" validate:"required"`
	Status models.TaskStatus `json:"status" validate:"required"`
}

type CreateTaskRequest struct {
	TaskName    string            `json:"taskName" validate:"required"`
	Description string            `json:"description"`
	Status      models.TaskStatus `json:"status"`
	Rate        float64           `json:"rate" validate:"gte=0"`
	AssignedTo  string            `json:"assignedTo" validate:"required"`
}

// GetTasks vraća zadatke dodeljene prijavljenom članu.
func (h *TaskHandler) GetTasks(w http.ResponseWriter, r *http.Request) {
	member, ok := resolveSessionMember(w, r, h.MemberService)
	if !ok {
		return
	}

	tasks, err := h.TaskService.GetTasksForMember(r.Context(), member.ID.Hex())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(tasks)
}

// ChangeTaskStatus menja status zadatka pa ponovo učitava celu listu -
// odgovor odražava stanje u bazi, bez optimističkog ažuriranja.
func (h *TaskHandler) ChangeTaskStatus(w http.ResponseWriter, r *http.Request) {
	var req ChangeTaskStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if err := validate.Struct(req); err != nil {
		http.Error(w, "taskId and status are required", http.StatusBadRequest)
		return
	}

	// Prihvata se bilo koja od četiri vrednosti, bez obzira na tekuću -
	// nema grafa prelaza. Vrednosti van enumeracije se odbijaju.
	if !req.Status.IsValid() {
		http.Error(w, "Invalid task status", http.StatusBadRequest)
		return
	}

	taskID, err := primitive.ObjectIDFromHex(req.TaskID)
	if err != nil {
		http.Error(w, "Invalid task ID format", http.StatusBadRequest)
		return
	}

	member, ok := resolveSessionMember(w, r, h.MemberService)
	if !ok {
		return
	}

	if err := h.TaskService.ChangeTaskStatus(r.Context(), taskID, req.Status); err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		logging.Logger.Errorf("Event ID: TASK_STATUS_UPDATE_FAILED, Description: Failed to update status of task %s: %v", req.TaskID, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	tasks, err := h.TaskService.GetTasksForMember(r.Context(), member.ID.Hex())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(tasks)
}

// CreateTask kreira novi zadatak. Dostupno samo adminu.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if err := validate.Struct(req); err != nil {
		http.Error(w, "taskName, assignedTo and a non-negative rate are required", http.StatusBadRequest)
		return
	}

	if req.Status != "" && !req.Status.IsValid() {
		http.Error(w, "Invalid task status", http.StatusBadRequest)
		return
	}

	task := models.Task{
		TaskName:    req.TaskName,
		Description: req.Description,
		Status:      req.Status,
		Rate:        req.Rate,
		AssignedTo:  req.AssignedTo,
	}

	createdTask, err := h.TaskService.CreateTask(r.Context(), task)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(createdTask)
}
