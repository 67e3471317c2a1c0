package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"team-portal/backend/members-service/middleware"
	"team-portal/backend/members-service/models"
	"team-portal/backend/members-service/services"
)

// MemberResolver razrešava nalog u člana tima; produkciona implementacija
// je *services.MemberService.
type MemberResolver interface {
	ResolveMember(ctx context.Context, userID string) (models.Member, error)
	GetAllMembers(ctx context.Context) ([]models.Member, error)
}

type MemberHandler struct {
	MemberService MemberResolver
}

func NewMemberHandler(memberService MemberResolver) *MemberHandler {
	return &MemberHandler{MemberService: memberService}
}

// resolveSessionMember razrešava sesiju u člana tima - prvi korak svake
// funkcionalnosti. Vraća false ako je odgovor već upisan.
func resolveSessionMember(w http.ResponseWriter, r *http.Request, memberService MemberResolver) (models.Member, bool) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		http.Error(w, "Not authenticated", http.StatusUnauthorized)
		return models.Member{}, false
	}

	member, err := memberService.ResolveMember(r.Context(), session.UserID)
	if err != nil {
		if errors.Is(err, services.ErrMemberNotFound) {
			http.Error(w, services.ErrMemberNotInTeam.Error(), http.StatusNotFound)
			return models.Member{}, false
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return models.Member{}, false
	}

	return member, true
}

// GetCurrentMember vraća zapis člana tima za prijavljenog korisnika.
func (h *MemberHandler) GetCurrentMember(w http.ResponseWriter, r *http.Request) {
	member, ok := resolveSessionMember(w, r, h.MemberService)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(member)
}

// GetAllMembers vraća sve članove tima. Dostupno samo adminu.
func (h *MemberHandler) GetAllMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.MemberService.GetAllMembers(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(members)
}
