package handlers

import (
	"encoding/json"
	"net/http"

	"team-portal/backend/members-service/services"
)

type DashboardHandler struct {
	SummaryService *services.SummaryService
	MemberService  *services.MemberService
}

func NewDashboardHandler(summaryService *services.SummaryService, memberService *services.MemberService) *DashboardHandler {
	return &DashboardHandler{SummaryService: summaryService, MemberService: memberService}
}

// GetTaskSummary vraća pregled zadataka i zarade za prijavljenog člana.
// Pregled se računa iz tekućeg stanja pri svakom pozivu.
func (h *DashboardHandler) GetTaskSummary(w http.ResponseWriter, r *http.Request) {
	member, ok := resolveSessionMember(w, r, h.MemberService)
	if !ok {
		return
	}

	summary, err := h.SummaryService.GetTaskSummary(r.Context(), member.ID.Hex())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(summary)
}
