package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"taskr/internal/domain"
)

// Field length limits enforced at registration time.
const (
	minNameLen     = 6
	maxNameLen     = 25
	minPasswordLen = 6
	maxPasswordLen = 50
	minEmailLen    = 6
	maxEmailLen    = 50
)

const tokenTTL = 24 * time.Hour

// AccountService handles registration, login, and session token operations.
type AccountService struct {
	users         domain.UserRepository
	sessionSecret []byte
	bcryptCost    int
}

// NewAccountService creates a new AccountService.
func NewAccountService(users domain.UserRepository, sessionSecret string, bcryptCost int) *AccountService {
	return &AccountService{
		users:         users,
		sessionSecret: []byte(sessionSecret),
		bcryptCost:    bcryptCost,
	}
}

// Register creates a new user account after validating all four fields.
// Validation failures come back as a *domain.ValidationError enumerating
// every offending field; nothing is persisted in that case. A duplicate
// email surfaces as domain.ErrDuplicateEmail via the store's unique
// constraint, never via a check-then-insert race in this code.
func (s *AccountService) Register(ctx context.Context, name, email, password, confirm string) (*domain.User, error) {
	if err := validateRegistration(name, email, password, confirm); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login verifies credentials and returns the caller's Identity. An unknown
// email and a wrong password produce the same ErrInvalidCredentials so the
// two cases are indistinguishable to an external observer.
func (s *AccountService) Login(ctx context.Context, email, password string) (domain.Identity, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Identity{}, domain.ErrInvalidCredentials
		}
		return domain.Identity{}, fmt.Errorf("get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return domain.Identity{}, domain.ErrInvalidCredentials
	}

	return domain.Identity{
		UserID: user.ID,
		Name:   firstToken(user.Name),
		Email:  user.Email,
		Role:   user.Role,
	}, nil
}

// IssueToken serializes an identity into a signed session token.
func (s *AccountService) IssueToken(identity domain.Identity) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   strconv.FormatInt(identity.UserID, 10),
		"name":  identity.Name,
		"email": identity.Email,
		"role":  identity.Role,
		"iat":   now.Unix(),
		"exp":   now.Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.sessionSecret)
}

// ValidateToken parses and verifies a session token and reconstructs the
// Identity carried in its claims.
func (s *AccountService) ValidateToken(tokenString string) (domain.Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.sessionSecret, nil
	})
	if err != nil {
		return domain.Identity{}, domain.ErrInvalidCredentials
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return domain.Identity{}, domain.ErrInvalidCredentials
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return domain.Identity{}, domain.ErrInvalidCredentials
	}
	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return domain.Identity{}, domain.ErrInvalidCredentials
	}

	name, _ := claims["name"].(string)
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	if role != domain.RoleUser && role != domain.RoleAdmin {
		return domain.Identity{}, domain.ErrInvalidCredentials
	}

	return domain.Identity{UserID: userID, Name: name, Email: email, Role: role}, nil
}

func validateRegistration(name, email, password, confirm string) error {
	verr := &domain.ValidationError{}

	switch {
	case name == "":
		verr.Add("name", "This field is required.")
	case len(name) < minNameLen || len(name) > maxNameLen:
		verr.Add("name", fmt.Sprintf("Field must be between %d and %d characters long.", minNameLen, maxNameLen))
	}

	switch {
	case email == "":
		verr.Add("email", "This field is required.")
	case len(email) < minEmailLen || len(email) > maxEmailLen:
		verr.Add("email", fmt.Sprintf("Field must be between %d and %d characters long.", minEmailLen, maxEmailLen))
	case !validEmail(email):
		verr.Add("email", "Invalid email address.")
	}

	switch {
	case password == "":
		verr.Add("password", "This field is required.")
	case len(password) < minPasswordLen || len(password) > maxPasswordLen:
		verr.Add("password", fmt.Sprintf("Field must be between %d and %d characters long.", minPasswordLen, maxPasswordLen))
	}

	switch {
	case confirm == "":
		verr.Add("confirm", "This field is required.")
	case password != "" && password != confirm:
		verr.Add("confirm", "Passwords must match.")
	}

	return verr.Err()
}

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	// Reject the "Name <addr>" form; only a bare address is a valid input.
	return err == nil && addr.Address == email
}

// firstToken returns the first whitespace-delimited token of name.
func firstToken(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
