package handlers

import (
	"encoding/json"
	"net/http"

	"team-portal/backend/members-service/models"
	"team-portal/backend/members-service/services"
)

type PaymentHandler struct {
	PaymentService *services.PaymentService
	MemberService  *services.MemberService
}

func NewPaymentHandler(paymentService *services.PaymentService, memberService *services.MemberService) *PaymentHandler {
	return &PaymentHandler{PaymentService: paymentService, MemberService: memberService}
}

type CreatePaymentRequest struct {
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Date        string  `json:"date" validate:"required"`
	TaskID      string  `json:"taskId"`
	RecipientID string  `json:"recipientId" validate:"required"`
	Type        string  `json:"type"`
}

// GetPaymentHistory vraća isplate prijavljenog člana sa imenima taskova.
func (h *PaymentHandler) GetPaymentHistory(w http.ResponseWriter, r *http.Request) {
	member, ok := resolveSessionMember(w, r, h.MemberService)
	if !ok {
		return
	}

	payments, err := h.PaymentService.GetPaymentHistory(r.Context(), member.ID.Hex())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(payments)
}

// CreatePayment beleži novu isplatu. Dostupno samo adminu.
func (h *PaymentHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if err := validate.Struct(req); err != nil {
		http.Error(w, "amount, date and recipientId are required", http.StatusBadRequest)
		return
	}

	payment := models.Payment{
		Amount:      req.Amount,
		Date:        req.Date,
		TaskID:      req.TaskID,
		RecipientID: req.RecipientID,
		Type:        req.Type,
	}

	createdPayment, err := h.PaymentService.CreatePayment(r.Context(), payment)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(createdPayment)
}
