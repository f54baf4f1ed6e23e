package model

import (
	"time"
)

const (
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
)

const (
	PriorityHigh   = 1
	PriorityMedium = 2
	PriorityLow    = 3
)

// Categories is the closed set a task's category is drawn from.
var Categories = []string{"Work", "Personal", "Study", "Others"}

type Tasks struct {
	TaskID      string    `firestore:"taskid,omitempty"`
	Title       string    `firestore:"title,omitempty"`
	Description string    `firestore:"description,omitempty"`
	DueDate     time.Time `firestore:"duedate,omitempty"`
	Priority    int       `firestore:"priority,omitempty"` // 1 = high, 2 = medium, 3 = low
	Category    string    `firestore:"category,omitempty"`
	Status      string    `firestore:"status,omitempty"`
	UserIDs     []string  `firestore:"userids"`
	CreatedAt   time.Time `firestore:"createdat,omitempty"`
	UpdatedAt   time.Time `firestore:"updatedat,omitempty"`
}

// PriorityLabel maps the numeric priority to its display label.
// 1 is High, not Low; the direction is part of the contract.
func PriorityLabel(priority int) string {
	switch priority {
	case PriorityHigh:
		return "High"
	case PriorityMedium:
		return "Medium"
	case PriorityLow:
		return "Low"
	default:
		return ""
	}
}

func ValidPriority(priority int) bool {
	return priority >= PriorityHigh && priority <= PriorityLow
}

func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}
