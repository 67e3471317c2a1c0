package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"team-portal/backend/members-service/logging"
	"team-portal/backend/members-service/models"
	"team-portal/backend/members-service/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrMemberNotInTeam - nalog postoji i lozinka je tačna, ali korisnik nije
	// član tima. Prijava se odbija istom porukom kao u postojećem sistemu.
	ErrMemberNotInTeam = errors.New("User not found in team members.")
	// ErrNoAccount se vraća pre slanja reset emaila kada email nije registrovan.
	ErrNoAccount    = errors.New("No account exists with this email address.")
	ErrInvalidToken = errors.New("invalid or expired reset token")
	ErrUserExists   = errors.New("user with this email already exists")
)

// SendEmailFunc šalje email; u main-u je umotana u circuit breaker.
type SendEmailFunc func(to, subject, body string) error

type AuthService struct {
	UserCollection *mongo.Collection
	MemberService  *MemberService
	SendEmail      SendEmailFunc

	// Opozvani tokeni (logout). Sesija se briše stavljanjem tokena na listu.
	mu        sync.RWMutex
	blacklist map[string]bool
}

func NewAuthService(userCollection *mongo.Collection, memberService *MemberService, sendEmail SendEmailFunc) *AuthService {
	return &AuthService{
		UserCollection: userCollection,
		MemberService:  memberService,
		SendEmail:      sendEmail,
		blacklist:      make(map[string]bool),
	}
}

// Login proverava kredencijale i razrešava nalog u člana tima. Uspešna
// autentifikacija bez zapisa u teamMembers se tretira kao neuspešna prijava -
// članstvo je kapija za autorizaciju.
func (s *AuthService) Login(ctx context.Context, email, password string) (models.Member, string, error) {
	var user models.User
	err := s.UserCollection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		// Nepostojeći nalog je neispravna prijava; pad baze nije i mora
		// da se vidi kao takav.
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Member{}, "", ErrInvalidCredentials
		}
		return models.Member{}, "", fmt.Errorf("failed to look up user: %v", err)
	}

	// Provera hashirane lozinke
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.Member{}, "", ErrInvalidCredentials
	}

	member, err := s.MemberService.ResolveMember(ctx, user.ID.Hex())
	if err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			return models.Member{}, "", ErrMemberNotInTeam
		}
		return models.Member{}, "", err
	}

	token, err := utils.GenerateToken(user.ID.Hex(), user.Email, member.Role)
	if err != nil {
		return models.Member{}, "", fmt.Errorf("failed to generate token: %v", err)
	}

	return member, token, nil
}

// FetchSignInMethods vraća načine prijave registrovane za email adresu.
// Svi nalozi koriste lozinku, pa je rezultat ili prazna lista ili ["password"].
func (s *AuthService) FetchSignInMethods(ctx context.Context, email string) ([]string, error) {
	var user models.User
	err := s.UserCollection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up sign-in methods: %v", err)
	}
	return []string{"password"}, nil
}

// ForgotPassword proverava da li nalog postoji pa šalje email sa reset linkom.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	methods, err := s.FetchSignInMethods(ctx, email)
	if err != nil {
		return err
	}
	if len(methods) == 0 {
		return ErrNoAccount
	}

	resetToken, err := utils.GenerateResetToken(email)
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %v", err)
	}

	update := bson.M{"$set": bson.M{"resetToken": resetToken}}
	if _, err := s.UserCollection.UpdateOne(ctx, bson.M{"email": email}, update); err != nil {
		return fmt.Errorf("failed to store reset token: %v", err)
	}

	baseURL := os.Getenv("APP_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:3000"
	}

	subject := "Reset your password"
	body := fmt.Sprintf("Click the link below to reset your password:<br/><a href=\"%s/reset-password?token=%s\">Reset Password</a>", baseURL, resetToken)
	if err := s.SendEmail(email, subject, body); err != nil {
		return fmt.Errorf("failed to send reset email: %v", err)
	}

	logging.Logger.Infof("Event ID: RESET_EMAIL_SENT, Description: Password reset email sent to %s.", email)
	return nil
}

// ResetPassword menja lozinku na osnovu reset tokena iz emaila.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	email, err := utils.ValidateResetToken(token)
	if err != nil {
		return ErrInvalidToken
	}

	var user models.User
	if err := s.UserCollection.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return ErrInvalidToken
	}

	// Token mora da bude poslednji izdat za ovaj nalog
	if user.ResetToken == "" || user.ResetToken != token {
		return ErrInvalidToken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %v", err)
	}

	update := bson.M{
		"$set":   bson.M{"password": string(hashedPassword)},
		"$unset": bson.M{"resetToken": ""},
	}
	if _, err := s.UserCollection.UpdateOne(ctx, bson.M{"_id": user.ID}, update); err != nil {
		return fmt.Errorf("failed to update password: %v", err)
	}

	logging.Logger.Infof("Event ID: PASSWORD_RESET, Description: Password reset completed for %s.", email)
	return nil
}

// Register kreira nalog i odgovarajućeg člana tima.
func (s *AuthService) Register(ctx context.Context, email, password, name string) (models.Member, error) {
	var existing models.User
	err := s.UserCollection.FindOne(ctx, bson.M{"email": email}).Decode(&existing)
	if err == nil {
		return models.Member{}, ErrUserExists
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return models.Member{}, fmt.Errorf("failed to check existing user: %v", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.Member{}, fmt.Errorf("failed to hash password: %v", err)
	}

	user := models.User{
		ID:       primitive.NewObjectID(),
		Email:    email,
		Password: string(hashedPassword),
	}
	if _, err := s.UserCollection.InsertOne(ctx, user); err != nil {
		return models.Member{}, fmt.Errorf("failed to save user: %v", err)
	}

	member := models.Member{
		UserID: user.ID.Hex(),
		Name:   name,
		Role:   models.RoleMember,
	}
	member, err = s.MemberService.CreateMember(ctx, member)
	if err != nil {
		return models.Member{}, err
	}

	logging.Logger.Infof("Event ID: USER_REGISTERED, Description: Created account and team member for %s.", email)
	return member, nil
}

// Logout opoziva token - sledeći zahtevi sa njim se odbijaju.
func (s *AuthService) Logout(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blacklist[token] = true
}

// IsRevoked proverava da li je token opozvan logout-om.
func (s *AuthService) IsRevoked(token string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.blacklist[token]
}
