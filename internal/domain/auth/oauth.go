package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"strings"
	"sync"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/octa-app/fengshui-backend/pkg/errors"
)

const defaultOAuthProvider = "google"

// OAuthClaims are the identity fields extracted from a verified id_token.
type OAuthClaims struct {
	Subject       string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	GivenName     string `json:"given_name"`
}

// IDTokenVerifier validates a provider issued id_token and extracts its
// identity claims.
type IDTokenVerifier interface {
	Verify(ctx context.Context, rawToken string) (OAuthClaims, error)
}

// OIDCVerifier verifies id_tokens against an OIDC discovery issuer. Discovery
// runs lazily on first use so construction never hits the network.
type OIDCVerifier struct {
	issuer   string
	clientID string

	mu       sync.Mutex
	verifier *oidc.IDTokenVerifier
}

// NewOIDCVerifier builds a verifier for one issuer/audience pair.
func NewOIDCVerifier(issuer, clientID string) *OIDCVerifier {
	return &OIDCVerifier{issuer: issuer, clientID: clientID}
}

func (v *OIDCVerifier) Verify(ctx context.Context, rawToken string) (OAuthClaims, error) {
	verifier, err := v.ensure(ctx)
	if err != nil {
		return OAuthClaims{}, apperrors.Wrap("auth_error", "failed to initialize oidc provider", err)
	}
	idToken, err := verifier.Verify(ctx, rawToken)
	if err != nil {
		return OAuthClaims{}, apperrors.Wrap("invalid_token", "failed to verify id token", err)
	}
	var claims OAuthClaims
	if err := idToken.Claims(&claims); err != nil {
		return OAuthClaims{}, apperrors.Wrap("invalid_token", "failed to parse id token claims", err)
	}
	if claims.Email == "" {
		return OAuthClaims{}, apperrors.Wrap("invalid_token", "missing email in id token", nil)
	}
	return claims, nil
}

func (v *OIDCVerifier) ensure(ctx context.Context) (*oidc.IDTokenVerifier, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.verifier != nil {
		return v.verifier, nil
	}
	provider, err := oidc.NewProvider(ctx, v.issuer)
	if err != nil {
		return nil, err
	}
	v.verifier = provider.Verifier(&oidc.Config{ClientID: v.clientID})
	return v.verifier, nil
}

// OAuthLogin signs a user in with a provider issued id_token, creating the
// account on first sight of the provider subject.
func (s *service) OAuthLogin(ctx context.Context, req OAuthLoginRequest) (LoginResponse, error) {
	if s.oidc == nil {
		return LoginResponse{}, apperrors.Wrap("auth_not_configured", "oauth login is not configured", nil)
	}
	provider := strings.TrimSpace(req.Provider)
	if provider == "" {
		provider = defaultOAuthProvider
	}
	if strings.TrimSpace(req.IDToken) == "" {
		return LoginResponse{}, apperrors.Wrap("invalid_input", "id token cannot be empty", nil)
	}

	claims, err := s.oidc.Verify(ctx, req.IDToken)
	if err != nil {
		return LoginResponse{}, err
	}
	if !claims.EmailVerified {
		return LoginResponse{}, apperrors.Wrap("invalid_credentials", "provider account email not verified", nil)
	}
	if claims.Subject == "" {
		return LoginResponse{}, apperrors.Wrap("auth_error", "missing provider subject", nil)
	}
	email, err := normalizeEmail(claims.Email)
	if err != nil {
		return LoginResponse{}, apperrors.Wrap("invalid_input", "invalid email address", err)
	}

	identity, found, err := s.repo.GetIdentity(ctx, provider, claims.Subject)
	if err != nil {
		return LoginResponse{}, apperrors.Wrap("auth_error", "failed to fetch identity", err)
	}
	if found {
		user, ok, err := s.repo.GetByID(ctx, identity.UserID)
		if err != nil {
			return LoginResponse{}, apperrors.Wrap("auth_error", "failed to load user", err)
		}
		if !ok {
			return LoginResponse{}, apperrors.Wrap("user_not_found", "user not found", nil)
		}
		return s.buildLoginResponse(user)
	}

	if _, exists, err := s.repo.GetByEmail(ctx, email); err != nil {
		return LoginResponse{}, apperrors.Wrap("auth_error", "failed to check existing user", err)
	} else if exists {
		return LoginResponse{}, apperrors.Wrap("account_linking_disabled", "account linking by email is not enabled", nil)
	}

	passwordHash, err := hashRandomPassword()
	if err != nil {
		return LoginResponse{}, apperrors.Wrap("auth_error", "failed to generate password hash", err)
	}
	user, err := s.repo.Create(ctx, email, oauthNickname(claims), passwordHash)
	if err != nil {
		if errors.Is(err, ErrEmailExists) {
			return LoginResponse{}, apperrors.Wrap("email_exists", "email already registered", err)
		}
		return LoginResponse{}, apperrors.Wrap("auth_error", "failed to create user", err)
	}

	if _, err := s.repo.UpsertIdentity(ctx, Identity{
		UserID:          user.ID,
		Provider:        provider,
		ProviderSubject: claims.Subject,
		ProviderEmail:   claims.Email,
	}); err != nil {
		return LoginResponse{}, apperrors.Wrap("auth_error", "failed to persist identity", err)
	}
	return s.buildLoginResponse(user)
}

func oauthNickname(claims OAuthClaims) string {
	candidate := strings.TrimSpace(claims.GivenName)
	if candidate == "" {
		candidate = strings.TrimSpace(claims.Name)
	}
	if candidate == "" {
		candidate = strings.Split(claims.Email, "@")[0]
	}
	builder := strings.Builder{}
	count := 0
	for _, r := range candidate {
		if count >= 10 {
			break
		}
		if r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z' {
			builder.WriteRune(r)
			count++
		}
	}
	name := builder.String()
	if name == "" {
		name = "User"
	}
	if normalized, err := normalizeNickname(name); err == nil {
		return normalized
	}
	return "User"
}

func hashRandomPassword() (string, error) {
	raw, err := randomString(32)
	if err != nil {
		return "", err
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func randomString(size int) (string, error) {
	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
