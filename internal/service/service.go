package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Dan9191/calc-service/internal/config"
	"github.com/Dan9191/calc-service/internal/models"
	"github.com/Dan9191/calc-service/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("not found")
	ErrMailDisabled       = errors.New("mail is not configured")
)

// TokenTTL is how long a device token stays valid
const TokenTTL = 30 * 24 * time.Hour

// Mailer sends a calculator's notes by email
type Mailer interface {
	SendNotes(to, calculatorName string, notes []models.Note) error
}

// Service handles devices, notes and favorites on top of a KVStore
type Service struct {
	store  repository.KVStore
	log    *logrus.Logger
	config *config.Config
	mailer Mailer
	now    func() time.Time

	// mu serializes read-modify-write of stored lists
	mu sync.Mutex
}

// NewService initializes a new service. mailer may be nil.
func NewService(store repository.KVStore, log *logrus.Logger, cfg *config.Config, mailer Mailer) *Service {
	return &Service{store: store, log: log, config: cfg, mailer: mailer, now: time.Now}
}

// Register creates a device protected by a hashed passphrase and returns a token
func (s *Service) Register(ctx context.Context, passphrase string) (*models.Device, string, error) {
	if passphrase == "" {
		return nil, "", fmt.Errorf("passphrase is required")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(passphrase), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash passphrase: %w", err)
	}

	device := &models.Device{
		ID:             uuid.New().String(),
		PassphraseHash: string(hashed),
		CreatedAt:      s.now().UTC(),
	}
	raw, err := json.Marshal(device)
	if err != nil {
		return nil, "", fmt.Errorf("failed to encode device: %w", err)
	}
	if err := s.store.Set(ctx, deviceKey(device.ID), string(raw)); err != nil {
		return nil, "", fmt.Errorf("failed to save device: %w", err)
	}

	token, err := s.issueToken(device.ID)
	if err != nil {
		return nil, "", err
	}
	s.log.Infof("Device registered: %s", device.ID)
	return device, token, nil
}

// Login checks a device passphrase and returns a fresh token
func (s *Service) Login(ctx context.Context, deviceID, passphrase string) (string, error) {
	raw, ok, err := s.store.Get(ctx, deviceKey(deviceID))
	if err != nil {
		return "", fmt.Errorf("failed to load device: %w", err)
	}
	if !ok {
		return "", ErrInvalidCredentials
	}
	var device models.Device
	if err := json.Unmarshal([]byte(raw), &device); err != nil {
		s.log.Warnf("Corrupt device record %s: %v", deviceID, err)
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(device.PassphraseHash), []byte(passphrase)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.issueToken(device.ID)
	if err != nil {
		return "", err
	}
	s.log.Infof("Device logged in: %s", device.ID)
	return token, nil
}

func (s *Service) issueToken(deviceID string) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   deviceID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
	})
	signed, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return signed, nil
}

func deviceKey(id string) string {
	return "device-" + id
}

// scope returns the part of the store owned by one device
func (s *Service) scope(deviceID string) repository.KVStore {
	return repository.NewScoped(s.store, deviceID)
}

// readList decodes a JSON array stored under key. A missing or unreadable
// entry is an empty list; only store failures are errors.
func readList[T any](ctx context.Context, s *Service, store repository.KVStore, key string) ([]T, error) {
	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	out := []T{}
	if !ok {
		return out, nil
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		s.log.WithField("key", key).Warnf("Discarding unreadable entry: %v", err)
		return []T{}, nil
	}
	return out, nil
}

func writeList[T any](ctx context.Context, store repository.KVStore, key string, list []T) error {
	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := store.Set(ctx, key, string(raw)); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}
