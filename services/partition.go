package services

import (
	"taskserver/dto"
	"taskserver/model"
)

// PartitionTasks splits a fully-expanded task list into the three board
// views for the given identity:
//
//   - assigned to me: not completed and the email is among the assignees
//   - unassigned: no assignees at all
//   - completed: status is Completed, assigned or not
//
// A completed task assigned to the user lands only in completed.
func PartitionTasks(tasks []dto.TaskResponse, email string) dto.BoardResponse {
	board := dto.BoardResponse{
		AssignedToMe: []dto.TaskResponse{},
		Unassigned:   []dto.TaskResponse{},
		Completed:    []dto.TaskResponse{},
	}

	for _, task := range tasks {
		if task.Status != model.StatusCompleted && assignedTo(task, email) {
			board.AssignedToMe = append(board.AssignedToMe, task)
		}
		if len(task.Users) == 0 {
			board.Unassigned = append(board.Unassigned, task)
		}
		if task.Status == model.StatusCompleted {
			board.Completed = append(board.Completed, task)
		}
	}
	return board
}

func assignedTo(task dto.TaskResponse, email string) bool {
	for _, user := range task.Users {
		if user.Email == email {
			return true
		}
	}
	return false
}
