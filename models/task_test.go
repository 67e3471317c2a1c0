package models

import "testing"

func TestTaskStatusIsValid(t *testing.T) {
	valid := []TaskStatus{StatusAttended, StatusPending, StatusInProgress, StatusCompleted}
	for _, status := range valid {
		if !status.IsValid() {
			t.Fatalf("status %q should be valid", status)
		}
	}

	invalid := []TaskStatus{"", "done", "in progress", "Completed"}
	for _, status := range invalid {
		if status.IsValid() {
			t.Fatalf("status %q should not be valid", status)
		}
	}
}
