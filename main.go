package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"team-portal/backend/members-service/handlers"
	"team-portal/backend/members-service/logging"
	"team-portal/backend/members-service/middleware"
	"team-portal/backend/members-service/services"
	"team-portal/backend/members-service/utils"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/sony/gobreaker"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CORS Middleware
func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Max-Age", "86400")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func main() {
	logging.InitLogger()

	logging.Logger.Info("Event ID: SERVICE_START, Description: Starting Members Service...")
	if err := godotenv.Load(".env"); err != nil {
		logging.Logger.Warnf("Event ID: ENV_LOAD_WARNING, Description: No .env file loaded: %v", err)
	}

	mongoURI := os.Getenv("MONGO_URI")
	mongoDBName := os.Getenv("MONGO_DB_NAME")
	if mongoURI == "" || mongoDBName == "" {
		logging.Logger.Fatalf("Event ID: CONFIG_ERROR, Description: MONGO_URI and MONGO_DB_NAME must be set in the environment variables.")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		logging.Logger.Fatalf("Event ID: DB_CONNECTION_FAILED, Description: Database connection for MongoDB failed: %v", err)
	}
	defer client.Disconnect(ctx)

	if err := client.Ping(ctx, nil); err != nil {
		logging.Logger.Fatalf("Event ID: DB_PING_FAILED, Description: MongoDB connection ping error: %v", err)
	}
	logging.Logger.Infof("Event ID: DB_CONNECTED, Description: Successfully connected to MongoDB at %s.", mongoURI)

	db := client.Database(mongoDBName)
	userCollection := db.Collection("users")
	memberCollection := db.Collection("teamMembers")
	taskCollection := db.Collection("tasks")
	paymentCollection := db.Collection("payments")

	// Circuit breaker oko slanja emaila - jedini izlazni poziv ka spolja
	emailBreaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "smtp-cb",
		MaxRequests: 1,
		Timeout:     5 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Logger.Infof("Event ID: CIRCUIT_BREAKER_STATE_CHANGE, Description: Circuit Breaker '%s' changed from '%s' to '%s'", name, from.String(), to.String())
		},
	})
	sendEmail := func(to, subject, body string) error {
		_, err := emailBreaker.Execute(func() (interface{}, error) {
			return nil, utils.SendEmail(to, subject, body)
		})
		return err
	}

	memberService := services.NewMemberService(memberCollection)
	taskService := services.NewTaskService(taskCollection)
	summaryService := services.NewSummaryService(taskCollection, paymentCollection)
	paymentService := services.NewPaymentService(paymentCollection, taskCollection)
	authService := services.NewAuthService(userCollection, memberService, sendEmail)

	authHandler := handlers.NewAuthHandler(authService)
	memberHandler := handlers.NewMemberHandler(memberService)
	taskHandler := handlers.NewTaskHandler(taskService, memberService)
	dashboardHandler := handlers.NewDashboardHandler(summaryService, memberService)
	paymentHandler := handlers.NewPaymentHandler(paymentService, memberService)

	authed := func(h http.HandlerFunc) http.Handler {
		return middleware.JWTAuthMiddleware(authService, h)
	}
	adminOnly := func(h http.HandlerFunc) http.Handler {
		return middleware.JWTAuthMiddleware(authService, middleware.RequireAdmin(h))
	}

	// Kreiranje mux routera
	r := mux.NewRouter()

	// Javne rute za prijavu i reset lozinke
	r.HandleFunc("/api/auth/login", authHandler.Login).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/forgot-password", authHandler.ForgotPassword).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/reset-password", authHandler.ResetPassword).Methods(http.MethodPost)

	// Rute za prijavljene članove
	r.Handle("/api/auth/logout", authed(authHandler.Logout)).Methods(http.MethodPost)
	r.Handle("/api/members/me", authed(memberHandler.GetCurrentMember)).Methods(http.MethodGet)
	r.Handle("/api/tasks", authed(taskHandler.GetTasks)).Methods(http.MethodGet)
	r.Handle("/api/tasks/status", authed(taskHandler.ChangeTaskStatus)).Methods(http.MethodPost)
	r.Handle("/api/dashboard/summary", authed(dashboardHandler.GetTaskSummary)).Methods(http.MethodGet)
	r.Handle("/api/payments", authed(paymentHandler.GetPaymentHistory)).Methods(http.MethodGet)

	// Admin rute
	r.Handle("/api/auth/register", adminOnly(authHandler.Register)).Methods(http.MethodPost)
	r.Handle("/api/tasks/create", adminOnly(taskHandler.CreateTask)).Methods(http.MethodPost)
	r.Handle("/api/payments/create", adminOnly(paymentHandler.CreatePayment)).Methods(http.MethodPost)
	r.Handle("/api/members/all", adminOnly(memberHandler.GetAllMembers)).Methods(http.MethodGet)

	corsRouter := enableCORS(r)

	// Pokretanje servera
	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		logging.Logger.Fatalf("Event ID: CONFIG_ERROR, Description: SERVER_PORT is not set in the environment variables.")
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", serverPort),
		Handler:      corsRouter,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	logging.Logger.Infof("Event ID: SERVER_START_INFO, Description: Server running on http://localhost:%s", serverPort)

	if err := srv.ListenAndServe(); err != nil {
		logging.Logger.Fatalf("Event ID: SERVER_FATAL_ERROR, Description: Server failed to start: %v", err)
	}
}
