package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/workoflow/hrms-api/internal/database"
	"github.com/workoflow/hrms-api/internal/models"
)

// AuthService handles registration, login and logout. Registration creates
// a new organization plus its first (and only, absent an invite flow) user.
type AuthService struct {
	db         database.Database
	jwtService *JWTService
	audit      *AuditService
	bcryptCost int
}

// AuthResult carries the issued token and the authenticated user.
type AuthResult struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

func NewAuthService(db database.Database, jwtService *JWTService, audit *AuditService, bcryptCost int) *AuthService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{
		db:         db,
		jwtService: jwtService,
		audit:      audit,
		bcryptCost: bcryptCost,
	}
}

// Register creates an organization and its admin user, then issues a token
// scoped to both. The username is checked before anything is created, so a
// conflict leaves no partial state behind.
func (s *AuthService) Register(ctx context.Context, username, password, orgName string) (*AuthResult, error) {
	var existing models.User
	err := s.db.DB().WithContext(ctx).Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil, fmt.Errorf("username %q: %w", username, ErrConflict)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	org := models.Organization{Name: orgName}
	if err := s.db.DB().WithContext(ctx).Create(&org).Error; err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:       username,
		PasswordHash:   string(hash),
		OrganizationID: org.ID,
	}
	if err := s.db.DB().WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost a race with a concurrent registration for the same name.
			return nil, fmt.Errorf("username %q: %w", username, ErrConflict)
		}
		return nil, err
	}

	s.audit.Record(user.ID, "registered and created organization", orgName)

	token, err := s.jwtService.Issue(user.ID, org.ID)
	if err != nil {
		return nil, err
	}

	return &AuthResult{Token: token, User: &user}, nil
}

// Login authenticates a username/password pair. An unknown username and a
// wrong password both come back as ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	var user models.User
	err := s.db.DB().WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	s.audit.Record(user.ID, "logged in", "")

	token, err := s.jwtService.Issue(user.ID, user.OrganizationID)
	if err != nil {
		return nil, err
	}

	return &AuthResult{Token: token, User: &user}, nil
}

// Logout records the action for the audit trail. Tokens are stateless so
// there is nothing to revoke server-side; an issued token remains valid
// until the client discards it.
func (s *AuthService) Logout(userID uint) {
	s.audit.Record(userID, "logged out", "")
}
