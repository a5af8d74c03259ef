package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/angel1410/score-backend/internal/repository"
)

// ErrInvalidCredentials reports a failed login attempt.
var ErrInvalidCredentials = errors.New("invalid credentials")

const tokenTTL = 4 * time.Hour

// LoginUser is the account projection returned on login; it never carries
// the password hash.
type LoginUser struct {
	ID           int64  `json:"id"`
	Nacionalidad string `json:"nacionalidad"`
	Cedula       int64  `json:"cedula"`
	Nombre       string `json:"nombre"`
	Apellido     string `json:"apellido"`
	Login        string `json:"login"`
	Activo       int    `json:"activo"`
	Expired      int    `json:"expired"`
}

// ServerTimeInfo lets the front end align countdowns with the server clock.
type ServerTimeInfo struct {
	Timestamp   int64  `json:"timestamp"`
	TimestampMs int64  `json:"timestamp_ms"`
	ISO8601UTC  string `json:"iso8601_utc"`
	ISO8601Loc  string `json:"iso8601_local"`
	Timezone    string `json:"timezone"`
}

// LoginResponse is the full login payload.
type LoginResponse struct {
	Token      string         `json:"token"`
	User       LoginUser      `json:"user"`
	ServerTime ServerTimeInfo `json:"server_time"`
}

// AuthService issues JWTs against the accounts store. Tokens are stateless;
// there is no session state to share with the registry core.
type AuthService struct {
	users     repository.UsersRepository
	jwtSecret []byte
	logger    *zap.Logger
	now       func() time.Time
}

func NewAuthService(users repository.UsersRepository, jwtSecret string, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:     users,
		jwtSecret: []byte(jwtSecret),
		logger:    logger,
		now:       time.Now,
	}
}

// HashPassword is the stored password encoding: SHA-256 hex.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Login verifies credentials and issues an HS256 token valid for 4 hours.
func (s *AuthService) Login(ctx context.Context, cedula int64, password string) (*LoginResponse, error) {
	user, err := s.users.GetUsuarioForLogin(ctx, cedula, HashPassword(password))
	if err != nil {
		return nil, fmt.Errorf("login lookup: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	now := s.now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   fmt.Sprintf("%d", user.ID),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("token signing: %w", err)
	}

	local := now.Local()
	return &LoginResponse{
		Token: token,
		User: LoginUser{
			ID:           user.ID,
			Nacionalidad: user.Nacionalidad,
			Cedula:       user.Cedula,
			Nombre:       user.Nombre,
			Apellido:     user.Apellido,
			Login:        user.Login,
			Activo:       user.Activo,
			Expired:      user.Expired,
		},
		ServerTime: ServerTimeInfo{
			Timestamp:   now.Unix(),
			TimestampMs: now.UnixMilli(),
			ISO8601UTC:  now.Format(time.RFC3339),
			ISO8601Loc:  local.Format(time.RFC3339),
			Timezone:    local.Format("MST"),
		},
	}, nil
}
