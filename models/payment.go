package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// PaymentTypePaid - samo isplate ovog tipa ulaze u istoriju i obračun.
const PaymentTypePaid = "paid"

type Payment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Amount      float64            `bson:"amount" json:"amount"`
	Date        string             `bson:"date" json:"date"`
	TaskID      string             `bson:"taskId,omitempty" json:"taskId,omitempty"`
	RecipientID string             `bson:"recipientId" json:"recipientId"`
	Type        string             `bson:"type" json:"type"`
}

// PaymentHistoryEntry je red u istoriji isplata sa razrešenim imenom taska.
type PaymentHistoryEntry struct {
	ID       string  `json:"id"`
	Amount   float64 `json:"amount"`
	Date     string  `json:"date"`
	TaskID   string  `json:"taskId,omitempty"`
	TaskName string  `json:"taskName"`
}
