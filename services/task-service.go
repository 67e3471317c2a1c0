package services

import (
	"context"
	"errors"
	"fmt"

	"team-portal/backend/members-service/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrTaskNotFound = errors.New("task not found")

type TaskService struct {
	TasksCollection *mongo.Collection
}

func NewTaskService(tasksCollection *mongo.Collection) *TaskService {
	return &TaskService{TasksCollection: tasksCollection}
}

// GetTasksForMember vraća sve zadatke dodeljene članu tima.
func (s *TaskService) GetTasksForMember(ctx context.Context, memberID string) ([]models.Task, error) {
	cursor, err := s.TasksCollection.Find(ctx, bson.M{"assignedTo": memberID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve tasks: %v", err)
	}
	defer cursor.Close(ctx)

	var tasks []models.Task
	for cursor.Next(ctx) {
		var task models.Task
		if err := cursor.Decode(&task); err != nil {
			return nil, fmt.Errorf("failed to decode task: %v", err)
		}
		tasks = append(tasks, task)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return tasks, nil
}

// ChangeTaskStatus - menja status taska. Jedina mutacija je polje status;
// ne proverava se prethodna vrednost niti redosled prelaza.
func (s *TaskService) ChangeTaskStatus(ctx context.Context, taskID primitive.ObjectID, status models.TaskStatus) error {
	update := bson.M{"$set": bson.M{"status": status}}
	result, err := s.TasksCollection.UpdateOne(ctx, bson.M{"_id": taskID}, update)
	if err != nil {
		return fmt.Errorf("failed to update task status: %v", err)
	}

	// Proveri da li task uopšte postoji
	if result.MatchedCount == 0 {
		return ErrTaskNotFound
	}

	return nil
}

// CreateTask kreira novi zadatak. Ako status nije naveden, postavlja se "pending".
func (s *TaskService) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	if task.Status == "" {
		task.Status = models.StatusPending
	}
	if task.ID.IsZero() {
		task.ID = primitive.NewObjectID()
	}

	if _, err := s.TasksCollection.InsertOne(ctx, task); err != nil {
		return models.Task{}, fmt.Errorf("failed to create task: %v", err)
	}

	return task, nil
}
