package services

import (
	"context"
	"fmt"

	"team-portal/backend/members-service/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type SummaryService struct {
	TasksCollection    *mongo.Collection
	PaymentsCollection *mongo.Collection
}

func NewSummaryService(tasksCollection, paymentsCollection *mongo.Collection) *SummaryService {
	return &SummaryService{
		TasksCollection:    tasksCollection,
		PaymentsCollection: paymentsCollection,
	}
}

// ComputeTaskSummary sabira zadatke i isplate u pregled za dashboard.
// Čista funkcija nad već učitanim listama - ne može da zakaže, greške su
// moguće samo u čitanju iz baze. Nepoznat status zadatka se preskače bez
// greške; isplate se očekuju već filtrirane na type == "paid".
func ComputeTaskSummary(tasks []models.Task, payments []models.Payment) models.TaskSummary {
	var summary models.TaskSummary

	for _, task := range tasks {
		switch task.Status {
		case models.StatusAttended:
			summary.TotalAttended++
		case models.StatusPending:
			summary.TotalPending++
		case models.StatusInProgress:
			summary.TotalInProgress++
		case models.StatusCompleted:
			summary.TotalCompleted++
			summary.TotalEarned += task.Rate
		}
	}

	for _, payment := range payments {
		summary.TotalMoneyReceived += payment.Amount
	}

	// Balans može biti i negativan (preplata) - nema odsecanja.
	summary.TotalBalanceAmount = summary.TotalEarned - summary.TotalMoneyReceived

	return summary
}

// GetTaskSummary učitava zadatke i isplate člana i računa pregled. Dva
// čitanja nisu u transakciji - pregled je snapshot najboljeg truda.
func (s *SummaryService) GetTaskSummary(ctx context.Context, memberID string) (models.TaskSummary, error) {
	tasks, err := s.fetchTasks(ctx, memberID)
	if err != nil {
		return models.TaskSummary{}, err
	}

	payments, err := s.fetchPaidPayments(ctx, memberID)
	if err != nil {
		return models.TaskSummary{}, err
	}

	return ComputeTaskSummary(tasks, payments), nil
}

func (s *SummaryService) fetchTasks(ctx context.Context, memberID string) ([]models.Task, error) {
	cursor, err := s.TasksCollection.Find(ctx, bson.M{"assignedTo": memberID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve tasks: %v", err)
	}
	defer cursor.Close(ctx)

	var tasks []models.Task
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, fmt.Errorf("failed to decode tasks: %v", err)
	}
	return tasks, nil
}

func (s *SummaryService) fetchPaidPayments(ctx context.Context, memberID string) ([]models.Payment, error) {
	filter := bson.M{"recipientId": memberID, "type": models.PaymentTypePaid}
	cursor, err := s.PaymentsCollection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve payments: %v", err)
	}
	defer cursor.Close(ctx)

	var payments []models.Payment
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("failed to decode payments: %v", err)
	}
	return payments, nil
}
