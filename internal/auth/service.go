package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/veiligwerk/toolbox-tracker/internal"
	"github.com/veiligwerk/toolbox-tracker/internal/core/events"
)

type UserRepository interface {
	GetByID(id string) (*User, error)
	GetByLogin(usernameOrEmail string) (*User, error)
	ExistsByUsernameOrEmail(username, email string) (bool, error)
	Create(user *User) error
}

// InvitationRedeemer consumes an invitation token during registration and
// returns the role the invite grants.
type InvitationRedeemer interface {
	Redeem(token string) (role string, err error)
}

var ErrDuplicateUser = errors.New("duplicate user")

// Service is the main auth service with dependencies
type Service struct {
	userRepo       UserRepository
	tokenGenerator TokenGenerator
	invitations    InvitationRedeemer
	eventBus       *events.EventBus
	bcryptCost     int
	dummyHash      []byte
}

// NewService creates a new auth service. invitations and eventBus may be nil
// when those features are not wired (tests, minimal deployments).
func NewService(userRepo UserRepository, tokenGen TokenGenerator, invitations InvitationRedeemer, eventBus *events.EventBus, bcryptCost int) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	// Compared against when a login name resolves to no user, so missing and
	// existing accounts take comparable time. Same cost as real hashes.
	dummyHash, _ := bcrypt.GenerateFromPassword([]byte("credential-padding"), bcryptCost)
	return &Service{
		userRepo:       userRepo,
		tokenGenerator: tokenGen,
		invitations:    invitations,
		eventBus:       eventBus,
		bcryptCost:     bcryptCost,
		dummyHash:      dummyHash,
	}
}

// NewJWTTokenGenerator creates a token generator signing with a single
// server-held secret.
func NewJWTTokenGenerator(secret string, ttl time.Duration) *JWTTokenGenerator {
	if ttl <= 0 {
		ttl = apperrors.DefaultTokenTTL
	}
	return &JWTTokenGenerator{
		Secret:   []byte(secret),
		TokenTTL: ttl,
	}
}

// Register creates a new user account. Uniqueness is pre-checked for a
// friendly error, but the unique indexes on users remain the authoritative
// guard; a constraint rejection surfaces as the same conflict.
func (s *Service) Register(dto RegisterDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	role := dto.Role
	if role == "" {
		role = RoleEmployee
	}

	exists, err := s.userRepo.ExistsByUsernameOrEmail(dto.Username, dto.Email)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to check existing users", err)
	}
	if exists {
		return nil, apperrors.ErrUserExists
	}

	// Redeem only once the registration can plausibly succeed; a rejected
	// registration must leave the one-time token usable for a retry.
	if dto.InviteToken != "" && s.invitations != nil {
		invitedRole, err := s.invitations.Redeem(dto.InviteToken)
		if err != nil {
			return nil, err
		}
		role = invitedRole
	}

	hash, err := s.HashPassword(dto.Password)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to hash password", err)
	}

	now := time.Now()
	user := &User{
		ID:           uuid.New().String(),
		Username:     dto.Username,
		Email:        dto.Email,
		Name:         dto.Name,
		Role:         role,
		IsActive:     true,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, ErrDuplicateUser) {
			return nil, apperrors.ErrUserExists
		}
		return nil, apperrors.NewInternalError("failed to create user", err)
	}

	if s.eventBus != nil {
		_ = s.eventBus.Publish(context.Background(), events.NewUserRegisteredEvent(user.ID, user.Username, user.Role))
	}

	return user, nil
}

// Authenticate validates credentials and returns a signed bearer token with
// the user it belongs to. The login name may be a username or an email.
func (s *Service) Authenticate(dto LoginDTO) (TokenResponse, error) {
	if err := dto.Validate(); err != nil {
		return TokenResponse{}, err
	}

	user, err := s.userRepo.GetByLogin(dto.Username)
	if err != nil {
		// Burn a comparison anyway; unknown users should not be cheaper.
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(dto.Password))
		return TokenResponse{}, apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(dto.Password)); err != nil {
		return TokenResponse{}, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return TokenResponse{}, apperrors.ErrUserInactive
	}

	token, err := s.tokenGenerator.GenerateAccessToken(user.ID, user.Username, user.Role)
	if err != nil {
		return TokenResponse{}, apperrors.NewInternalError("failed to issue token", err)
	}

	return TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user,
	}, nil
}

// CurrentUser resolves a bearer token to an active user record. This is the
// authorization guard's entry point.
func (s *Service) CurrentUser(tokenString string) (*User, error) {
	claims, err := s.tokenGenerator.ValidateToken(tokenString)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(claims.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if !user.IsActive {
		return nil, apperrors.ErrUserInactive
	}

	return user, nil
}

// RequireAdmin fails with a forbidden error unless the user holds the admin
// role.
func (s *Service) RequireAdmin(user *User) error {
	if user == nil || !user.IsAdmin() {
		return apperrors.ErrAdminRequired
	}
	return nil
}

// ValidateAccessToken validates access token and returns claims
func (s *Service) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.tokenGenerator.ValidateToken(tokenString)
}

// GenerateAccessToken creates a signed token embedding identity and role.
func (j *JWTTokenGenerator) GenerateAccessToken(userID, username, role string) (string, error) {
	now := time.Now()

	claims := &Claims{
		UserID:   userID,
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(j.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   userID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(j.Secret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ValidateToken validates a JWT token and returns claims. Malformed tokens,
// wrong signatures and expired tokens all fail the same way.
func (j *JWTTokenGenerator) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.Secret, nil
	})

	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		if claims.UserID == "" && claims.Subject != "" {
			claims.UserID = claims.Subject
		}
		return claims, nil
	}

	return nil, apperrors.ErrInvalidToken
}

// HashPassword creates a bcrypt hash of the password
func (s *Service) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether plaintext matches the stored hash.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GenerateRandomToken generates a cryptographically secure random token,
// used for invitation tokens.
func GenerateRandomToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
