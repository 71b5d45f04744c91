package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"carrental-pickup-flow/internal/logger"
	"carrental-pickup-flow/internal/security"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid confirmation code or phone digits")

// stubAuthService validates check-in credentials against a single
// configured pair. The phone digits are bcrypt-hashed at construction so
// the plaintext credential is not kept around after startup.
type stubAuthService struct {
	confirmationCode string
	digitsHash       []byte
	tokens           security.TokenManager
	delay            time.Duration
}

func NewStubAuthService(confirmationCode, phoneDigits string, tokens security.TokenManager, delay time.Duration) (AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(phoneDigits), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash phone digits: %w", err)
	}
	return &stubAuthService{
		confirmationCode: confirmationCode,
		digitsHash:       hash,
		tokens:           tokens,
		delay:            delay,
	}, nil
}

func (s *stubAuthService) CheckIn(ctx context.Context, confirmationCode, phoneDigits string) (string, error) {
	logger.CollaboratorCall("auth", "CheckIn", "confirmation_code", confirmationCode)
	pause(s.delay)

	codeMatch := subtle.ConstantTimeCompare([]byte(confirmationCode), []byte(s.confirmationCode)) == 1
	digitsErr := bcrypt.CompareHashAndPassword(s.digitsHash, []byte(phoneDigits))
	if !codeMatch || digitsErr != nil {
		// Same error for every failing combination.
		logger.CollaboratorResult("auth", "CheckIn", ErrInvalidCredentials)
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateSessionToken(confirmationCode)
	if err != nil {
		logger.CollaboratorResult("auth", "CheckIn", err)
		return "", fmt.Errorf("failed to issue session token: %w", err)
	}

	logger.CollaboratorResult("auth", "CheckIn", nil)
	return token, nil
}
