package dto

import "time"

type CreateTaskRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	DueDate     string   `json:"dueDate"`
	Priority    int      `json:"priority" binding:"required"`
	Category    string   `json:"category"`
	Status      string   `json:"status"`
	UserIDs     []string `json:"user_ids"`
}

// UpdateTaskRequest carries a partial task update. Nil fields are left
// unchanged. The assignee list travels as "user_ids" only.
type UpdateTaskRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	DueDate     *string   `json:"dueDate"`
	Priority    *int      `json:"priority"`
	Category    *string   `json:"category"`
	Status      *string   `json:"status"`
	UserIDs     *[]string `json:"user_ids"`
}

type TaskResponse struct {
	TaskID      string         `json:"_id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	DueDate     time.Time      `json:"dueDate"`
	Priority    int            `json:"priority"`
	Category    string         `json:"category"`
	Status      string         `json:"status"`
	Users       []UserResponse `json:"users"`
	CreatedAt   time.Time      `json:"createdAt,omitempty"`
	UpdatedAt   time.Time      `json:"updatedAt,omitempty"`
}

// BoardResponse holds the three derived task partitions for one user.
type BoardResponse struct {
	AssignedToMe []TaskResponse `json:"assignedToMe"`
	Unassigned   []TaskResponse `json:"unassigned"`
	Completed    []TaskResponse `json:"completed"`
}
