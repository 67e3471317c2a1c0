package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type TaskStatus string

const (
	StatusAttended   TaskStatus = "attended"
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in-progress"
	StatusCompleted  TaskStatus = "completed"
)

// IsValid proverava da li je status jedna od četiri dozvoljene vrednosti.
func (s TaskStatus) IsValid() bool {
	switch s {
	case StatusAttended, StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

type Task struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TaskName    string             `bson:"taskName" json:"taskName"`
	Description string             `bson:"description" json:"description"`
	Status      TaskStatus         `bson:"status" json:"status"`
	Rate        float64            `bson:"rate" json:"rate"`
	AssignedTo  string             `bson:"assignedTo" json:"assignedTo"`
}
