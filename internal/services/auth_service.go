package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"kodeks24/internal/models"
	"kodeks24/internal/otp"
	"kodeks24/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// Errors surfaced by the registration and login flows. Handlers map them to
// HTTP statuses with errors.Is.
var (
	ErrPasswordMismatch   = errors.New("passwords did not match")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already registered")
	ErrNotFoundOrExpired  = errors.New("confirmation not found or expired")
	ErrInvalidCode        = errors.New("invalid confirmation code")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountNotActive   = errors.New("account is not active")
)

// RegisterInput carries a registration submission.
type RegisterInput struct {
	Username        string
	Email           string
	FirstName       string
	LastName        string
	Password        string
	ConfirmPassword string
}

// TokenPair is an access/refresh JWT pair scoped to one user.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// AuthService handles registration, activation and authentication.
type AuthService struct {
	userRepo     repositories.UserRepository
	pending      otp.Store
	emails       *EmailService
	jwtSecret    []byte
	accessDurat  time.Duration // Duration for which the access JWT is valid
	refreshDurat time.Duration
	codeExpiry   time.Duration
}

// NewAuthService creates a new AuthService. codeExpiry is the lifetime of a
// pending registration and must match the TTL of the pending store.
func NewAuthService(userRepo repositories.UserRepository, pending otp.Store, emails *EmailService, jwtSecret string, codeExpiry time.Duration) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		pending:      pending,
		emails:       emails,
		jwtSecret:    []byte(jwtSecret),
		accessDurat:  24 * time.Hour,
		refreshDurat: 7 * 24 * time.Hour,
		codeExpiry:   codeExpiry,
	}
}

// Register validates the submission, parks the pending registration in the
// TTL store keyed by email, and queues the confirmation email. No user row
// is created here; that happens only in Activate. Returns as soon as the
// email job is queued.
func (s *AuthService) Register(input RegisterInput) error {
	if input.Password != input.ConfirmPassword {
		return ErrPasswordMismatch
	}
	if existing, err := s.userRepo.GetByUsername(input.Username); err == nil && existing != nil {
		return ErrUsernameTaken
	}
	if existing, err := s.userRepo.GetByEmail(input.Email); err == nil && existing != nil {
		return ErrEmailTaken
	}

	// Hash before the password touches the store; the plaintext never
	// outlives this call.
	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	code := otp.GenerateCode()
	s.pending.Put(input.Email, otp.PendingRegistration{
		Username:     input.Username,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: string(hashed),
		Code:         code,
	})

	if err := s.emails.EnqueueConfirmationCode(input.Email, code, s.codeExpiry); err != nil {
		// Registration already succeeded from the caller's perspective; the
		// pending entry stands and the user can re-register to retry.
		log.Printf("Failed to queue confirmation email for %s: %v", input.Email, err)
	}
	return nil
}

// Activate consumes the pending registration for email if code matches and
// materializes the active user. A second call for the same email fails with
// ErrNotFoundOrExpired because the entry is deleted on success.
func (s *AuthService) Activate(email, code string) (*models.User, error) {
	reg, ok := s.pending.Get(email)
	if !ok {
		return nil, ErrNotFoundOrExpired
	}
	if reg.Code != code {
		return nil, ErrInvalidCode
	}

	user := &models.User{
		Username:  reg.Username,
		Email:     &email,
		FirstName: reg.FirstName,
		LastName:  reg.LastName,
		Password:  reg.PasswordHash,
		IsActive:  true,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	s.pending.Delete(email)
	return user, nil
}

// Login authenticates by email or username and returns a fresh token pair.
func (s *AuthService) Login(identifier, password string) (*TokenPair, error) {
	user, err := s.userRepo.GetByIdentifier(identifier)
	if err != nil || user == nil {
		// Do not reveal whether the identifier exists.
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrAccountNotActive
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.IssueTokenPair(user)
}

// Refresh validates a refresh token and issues a new pair for its user.
func (s *AuthService) Refresh(refreshToken string) (*TokenPair, error) {
	claims, err := s.ValidateToken(refreshToken)
	if err != nil {
		return nil, err
	}
	if typ, _ := claims["typ"].(string); typ != "refresh" {
		return nil, fmt.Errorf("not a refresh token")
	}
	userID, _ := claims["user_id"].(string)
	user, err := s.userRepo.GetByID(userID)
	if err != nil || user == nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrAccountNotActive
	}
	return s.IssueTokenPair(user)
}

// IssueTokenPair signs an access and a refresh token for the user.
func (s *AuthService) IssueTokenPair(user *models.User) (*TokenPair, error) {
	now := time.Now()

	access := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"is_staff": user.IsStaff,
		"exp":      now.Add(s.accessDurat).Unix(),
		"iat":      now.Unix(),
	})
	accessString, err := access.SignedString(s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	refresh := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"typ":     "refresh",
		"exp":     now.Add(s.refreshDurat).Unix(),
		"iat":     now.Unix(),
	})
	refreshString, err := refresh.SignedString(s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return &TokenPair{Access: accessString, Refresh: refreshString}, nil
}

// ValidateToken parses and validates a JWT, returning the claims if valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}
