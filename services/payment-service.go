package services

import (
	"context"
	"fmt"

	"team-portal/backend/members-service/logging"
	"team-portal/backend/members-service/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UnresolvedTaskName se prikazuje kada isplata referencira task koji više
// ne postoji - nerazrešiva referenca degradira u placeholder, nikad u grešku.
const UnresolvedTaskName = "N/A"

type PaymentService struct {
	PaymentsCollection *mongo.Collection
	TasksCollection    *mongo.Collection
}

func NewPaymentService(paymentsCollection, tasksCollection *mongo.Collection) *PaymentService {
	return &PaymentService{
		PaymentsCollection: paymentsCollection,
		TasksCollection:    tasksCollection,
	}
}

// ResolveTaskNames spaja isplate sa imenima taskova iz prosleđene mape.
// Isplata bez taskId ili sa nepoznatim taskId dobija placeholder ime.
func ResolveTaskNames(payments []models.Payment, taskNames map[string]string) []models.PaymentHistoryEntry {
	entries := make([]models.PaymentHistoryEntry, 0, len(payments))
	for _, payment := range payments {
		taskName := UnresolvedTaskName
		if payment.TaskID != "" {
			if name, ok := taskNames[payment.TaskID]; ok {
				taskName = name
			}
		}
		entries = append(entries, models.PaymentHistoryEntry{
			ID:       payment.ID.Hex(),
			Amount:   payment.Amount,
			Date:     payment.Date,
			TaskID:   payment.TaskID,
			TaskName: taskName,
		})
	}
	return entries
}

// GetPaymentHistory vraća istoriju isplata člana sa razrešenim imenima taskova.
func (s *PaymentService) GetPaymentHistory(ctx context.Context, memberID string) ([]models.PaymentHistoryEntry, error) {
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

	taskNames := make(map[string]string)
	for _, payment := range payments {
		if payment.TaskID == "" {
			continue
		}
		if _, ok := taskNames[payment.TaskID]; ok {
			continue
		}

		taskObjectID, err := primitive.ObjectIDFromHex(payment.TaskID)
		if err != nil {
			// Neispravan ID u bazi - tretira se isto kao obrisan task.
			logging.Logger.Warnf("Event ID: PAYMENT_TASK_REF_INVALID, Description: Payment %s references malformed taskId %q.", payment.ID.Hex(), payment.TaskID)
			continue
		}

		var task models.Task
		err = s.TasksCollection.FindOne(ctx, bson.M{"_id": taskObjectID}).Decode(&task)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				logging.Logger.Warnf("Event ID: PAYMENT_TASK_REF_MISSING, Description: Payment %s references deleted task %s.", payment.ID.Hex(), payment.TaskID)
				continue
			}
			return nil, fmt.Errorf("failed to resolve task name: %v", err)
		}
		taskNames[payment.TaskID] = task.TaskName
	}

	return ResolveTaskNames(payments, taskNames), nil
}

// CreatePayment čuva novu isplatu.
func (s *PaymentService) CreatePayment(ctx context.Context, payment models.Payment) (models.Payment, error) {
	if payment.Type == "" {
		payment.Type = models.PaymentTypePaid
	}
	if payment.ID.IsZero() {
		payment.ID = primitive.NewObjectID()
	}

	if _, err := s.PaymentsCollection.InsertOne(ctx, payment); err != nil {
		return models.Payment{}, fmt.Errorf("failed to create payment: %v", err)
	}

	return payment, nil
}
