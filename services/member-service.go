package services

import (
	"context"
	"errors"
	"fmt"

	"team-portal/backend/members-service/logging"
	"team-portal/backend/members-service/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrMemberNotFound označava da prijavljeni korisnik nema zapis u kolekciji
// teamMembers. To je očekivano "nema podataka" stanje, ne pad servisa.
var ErrMemberNotFound = errors.New("member not found")

type MemberService struct {
	MemberCollection *mongo.Collection
}

func NewMemberService(memberCollection *mongo.Collection) *MemberService {
	return &MemberService{MemberCollection: memberCollection}
}

// SelectMember bira člana iz rezultata upita po userId polju: nula pogodaka
// je "nije pronađen" (ne greška servisa), a kod duplikata se uzima prvi uz
// upozorenje u logu.
func SelectMember(members []models.Member, userID string) (models.Member, error) {
	if len(members) == 0 {
		return models.Member{}, ErrMemberNotFound
	}
	if len(members) > 1 {
		logging.Logger.Warnf("Event ID: MEMBER_DUPLICATE, Description: Found %d team member records for userId %s, using the first one.", len(members), userID)
	}
	return members[0], nil
}

// ResolveMember pronalazi člana tima po userId polju.
func (s *MemberService) ResolveMember(ctx context.Context, userID string) (models.Member, error) {
	cursor, err := s.MemberCollection.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return models.Member{}, fmt.Errorf("failed to query team members: %v", err)
	}
	defer cursor.Close(ctx)

	var members []models.Member
	if err := cursor.All(ctx, &members); err != nil {
		return models.Member{}, fmt.Errorf("failed to decode team members: %v", err)
	}

	return SelectMember(members, userID)
}

func (s *MemberService) GetAllMembers(ctx context.Context) ([]models.Member, error) {
	cursor, err := s.MemberCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve members: %v", err)
	}
	defer cursor.Close(ctx)

	var members []models.Member
	for cursor.Next(ctx) {
		var member models.Member
		if err := cursor.Decode(&member); err != nil {
			return nil, fmt.Errorf("failed to decode member: %v", err)
		}
		members = append(members, member)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return members, nil
}

// CreateMember čuva novog člana tima u bazi.
func (s *MemberService) CreateMember(ctx context.Context, member models.Member) (models.Member, error) {
	if member.ID.IsZero() {
		member.ID = primitive.NewObjectID()
	}
	if _, err := s.MemberCollection.InsertOne(ctx, member); err != nil {
		return models.Member{}, fmt.Errorf("failed to create member: %v", err)
	}
	return member, nil
}
