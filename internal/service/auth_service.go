//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"kitten/backend/pkg/logger"
)

const (
	tokenTTL     = 12 * time.Hour
	adminSubject = "admin"
	tokenIssuer  = "kitten"
)

var (
	ErrPasswordRequired = errors.New("password is required")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrAdminDisabled    = errors.New("admin login is not configured")
	ErrInvalidToken     = errors.New("invalid token")
)

// LoginResponse is returned after a successful admin login.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type AuthService interface {
	Login(ctx context.Context, password string) (*LoginResponse, error)
	ValidateToken(token string) (bool, error)
}

type authService struct {
	passwordHash []byte
	secret       []byte
	now          func() time.Time
}

// NewAuthService checks admin passwords against a bcrypt hash. An empty
// secret is replaced by a random one, so tokens do not survive a restart.
func NewAuthService(passwordHash, secret string) AuthService {
	key := []byte(secret)
	if len(key) == 0 {
		key = randomSecret()
	}
	return &authService{
		passwordHash: []byte(strings.TrimSpace(passwordHash)),
		secret:       key,
		now:          time.Now,
	}
}

func (s *authService) Login(ctx context.Context, password string) (*LoginResponse, error) {
	if len(s.passwordHash) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrUnauthorized, ErrAdminDisabled)
	}
	if password == "" {
		return nil, ErrPasswordRequired
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		logger.Warn("admin login rejected", "module", "service", "action", "login", "resource", "auth", "result", "failed")
		return nil, fmt.Errorf("%w: %w", ErrUnauthorized, ErrInvalidPassword)
	}

	now := s.now().UTC()
	expiresAt := now.Add(tokenTTL)
	claims := jwt.RegisteredClaims{
		Subject:   adminSubject,
		Issuer:    tokenIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	logger.Info("admin login", "module", "service", "action", "login", "resource", "auth", "result", "ok")
	return &LoginResponse{Token: token, ExpiresAt: expiresAt}, nil
}

func (s *authService) ValidateToken(tokenString string) (bool, error) {
	if tokenString == "" {
		return false, ErrInvalidToken
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithIssuer(tokenIssuer), jwt.WithSubject(adminSubject))
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return token.Valid, nil
}

// HashPassword returns the bcrypt hash to configure as the admin password.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrPasswordRequired
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func randomSecret() []byte {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		panic("crypto/rand unavailable: " + err.Error())
	}
	return []byte(hex.EncodeToString(buf))
}
