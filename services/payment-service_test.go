package services_test

import (
	"testing"

	"team-portal/backend/members-service/models"
	"team-portal/backend/members-service/services"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestResolveTaskNames(t *testing.T) {
	knownID := primitive.NewObjectID().Hex()
	deletedID := primitive.NewObjectID().Hex()

	payments := []models.Payment{
		{ID: primitive.NewObjectID(), Amount: 400, Date: "2024-05-01", TaskID: knownID},
		{ID: primitive.NewObjectID(), Amount: 100, Date: "2024-05-02", TaskID: deletedID},
		{ID: primitive.NewObjectID(), Amount: 50, Date: "2024-05-03"},
	}
	taskNames := map[string]string{knownID: "Landing page"}

	entries := services.ResolveTaskNames(payments, taskNames)

	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].TaskName != "Landing page" {
		t.Fatalf("expected resolved task name, got %q", entries[0].TaskName)
	}
	// Obrisan task i isplata bez taska degradiraju u placeholder, ne u grešku.
	if entries[1].TaskName != services.UnresolvedTaskName {
		t.Fatalf("deleted task reference must degrade to %q, got %q", services.UnresolvedTaskName, entries[1].TaskName)
	}
	if entries[2].TaskName != services.UnresolvedTaskName {
		t.Fatalf("payment without taskId must degrade to %q, got %q", services.UnresolvedTaskName, entries[2].TaskName)
	}
	if entries[0].Amount != 400 || entries[0].Date != "2024-05-01" {
		t.Fatalf("entry must carry payment fields, got %+v", entries[0])
	}
}

func TestResolveTaskNamesEmpty(t *testing.T) {
	entries := services.ResolveTaskNames(nil, nil)
	if len(entries) != 0 {
		t.Fatalf("expected empty history, got %d entries", len(entries))
	}
}
