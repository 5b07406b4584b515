package handler

import "taskr/internal/domain"

// TaskDTO is the JSON representation of a task.
type TaskDTO struct {
	TaskID     int64  `json:"task_id"`
	TaskName   string `json:"task_name"`
	DueDate    string `json:"due_date"`
	Priority   int    `json:"priority"`
	Status     int    `json:"status"`
	PostedDate string `json:"posted_date"`
	UserID     int64  `json:"user_id"`
}

func toTaskDTO(t *domain.Task) TaskDTO {
	return TaskDTO{
		TaskID:     t.ID,
		TaskName:   t.Name,
		DueDate:    t.DueDate.Format(dateLayout),
		Priority:   t.Priority,
		Status:     t.Status,
		PostedDate: t.PostedDate.Format(dateLayout),
		UserID:     t.UserID,
	}
}

func toTaskDTOs(tasks []domain.Task) []TaskDTO {
	dtos := make([]TaskDTO, len(tasks))
	for i := range tasks {
		dtos[i] = toTaskDTO(&tasks[i])
	}
	return dtos
}
