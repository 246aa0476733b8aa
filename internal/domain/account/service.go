package account

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ayurnidaan/ayurnidaan/internal/platform/auth"
)

// ErrInvalidCredentials is returned for a failed login. The message never
// says which of the two inputs was wrong.
var ErrInvalidCredentials = errors.New("invalid email or password")

type Service struct {
	repo   Repository
	tokens *auth.Manager
	log    zerolog.Logger
}

func NewService(repo Repository, tokens *auth.Manager, log zerolog.Logger) *Service {
	return &Service{repo: repo, tokens: tokens, log: log}
}

// Register creates the account and immediately opens a session, matching
// the original signup flow.
func (s *Service) Register(ctx context.Context, a *Account) (string, error) {
	a.Email = strings.TrimSpace(strings.ToLower(a.Email))
	if a.Name == "" || a.Email == "" || a.Password == "" {
		return "", fmt.Errorf("name, email and password are required")
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return "", err
	}
	s.log.Info().Str("account_id", a.ID.String()).Msg("account registered")
	return s.tokens.Issue(a.ID.String(), a.Name, a.Email)
}

// Login checks the credentials and opens a session.
func (s *Service) Login(ctx context.Context, email, password string) (*Account, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	a, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if a.Password != password {
		return nil, "", ErrInvalidCredentials
	}
	token, err := s.tokens.Issue(a.ID.String(), a.Name, a.Email)
	if err != nil {
		return nil, "", err
	}
	return a, token, nil
}

// Get fetches one account by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Account, error) {
	return s.repo.FindByID(ctx, id)
}
