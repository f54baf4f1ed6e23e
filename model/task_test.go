package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriorityLabel(t *testing.T) {
	tests := []struct {
		name     string
		priority int
		want     string
	}{
		{name: "1 is High", priority: 1, want: "High"},
		{name: "2 is Medium", priority: 2, want: "Medium"},
		{name: "3 is Low", priority: 3, want: "Low"},
		{name: "zero is unmapped", priority: 0, want: ""},
		{name: "out of range is unmapped", priority: 4, want: ""},
		{name: "negative is unmapped", priority: -1, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PriorityLabel(tt.priority))
		})
	}
}

func TestValidPriority(t *testing.T) {
	for _, p := range []int{1, 2, 3} {
		assert.True(t, ValidPriority(p), "priority %d", p)
	}
	for _, p := range []int{0, 4, -1, 100} {
		assert.False(t, ValidPriority(p), "priority %d", p)
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusPending, StatusInProgress, StatusCompleted} {
		assert.True(t, ValidStatus(s), "status %q", s)
	}
	for _, s := range []string{"", "Done", "pending", "COMPLETED", "In progress"} {
		assert.False(t, ValidStatus(s), "status %q", s)
	}
}

func TestValidCategory(t *testing.T) {
	for _, c := range []string{"Work", "Personal", "Study", "Others"} {
		assert.True(t, ValidCategory(c), "category %q", c)
	}
	for _, c := range []string{"", "work", "Hobby", "Other"} {
		assert.False(t, ValidCategory(c), "category %q", c)
	}
}
