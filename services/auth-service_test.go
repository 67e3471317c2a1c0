package services_test

import (
	"context"
	"errors"
	"testing"

	"team-portal/backend/members-service/services"

	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

// Prijava sa nepoznatim email-om i prijava za vreme pada baze moraju da se
// razlikuju: prva je neispravna prijava, druga je greška servisa.
func TestLoginDistinguishesStoreFailureFromUnknownEmail(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("unknown email is invalid credentials", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "portal.users", mtest.FirstBatch))

		service := services.NewAuthService(mt.Coll, nil, nil)
		_, _, err := service.Login(context.Background(), "nobody@example.com", "secret")

		if !errors.Is(err, services.ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	mt.Run("store failure is not invalid credentials", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    11600,
			Message: "interrupted at shutdown",
			Name:    "InterruptedAtShutdown",
		}))

		service := services.NewAuthService(mt.Coll, nil, nil)
		_, _, err := service.Login(context.Background(), "ana@example.com", "secret")

		if err == nil {
			t.Fatal("expected an error when the store is down")
		}
		if errors.Is(err, services.ErrInvalidCredentials) {
			t.Fatalf("store failure reported as invalid credentials: %v", err)
		}
	})
}

// Pad provere postojanja naloga prekida registraciju - ne sme da se nastavi
// kao da nalog ne postoji.
func TestRegisterStopsWhenExistenceCheckFails(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("store failure aborts registration", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    11600,
			Message: "interrupted at shutdown",
			Name:    "InterruptedAtShutdown",
		}))

		service := services.NewAuthService(mt.Coll, nil, nil)
		_, err := service.Register(context.Background(), "ana@example.com", "secret123", "Ana")

		if err == nil {
			t.Fatal("expected an error when the existence check fails")
		}
		if errors.Is(err, services.ErrUserExists) {
			t.Fatalf("store failure reported as existing user: %v", err)
		}
	})
}
