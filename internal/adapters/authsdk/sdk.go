package authsdk

import (
	"context"
	"errors"
	"fmt"
	"io"
	"location-registry-service/internal/ports"
	"location-registry-service/internal/web/views"
	"strings"
	"sync"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultAppName is the name given to the first configured app.
const DefaultAppName = "[DEFAULT]"

const issuerPrefix = "https://securetoken.google.com/"

// Config describes the authentication SDK setup the host page would load.
type Config struct {
	ProjectIDs       []string
	APIKey           string
	RecaptchaSiteKey string
	// Verification keys by key id, used by the auth handle.
	Keys map[string]any
}

// SDK is a configuration-backed implementation of ports.AuthSDK.
// Apps count as initialized only when an API key is present.
type SDK struct {
	cfg  Config
	apps []ports.App
}

func New(cfg Config) *SDK {
	s := &SDK{cfg: cfg}
	if strings.TrimSpace(cfg.APIKey) == "" {
		return s
	}
	for i, id := range cfg.ProjectIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		name := id
		if i == 0 {
			name = DefaultAppName
		}
		s.apps = append(s.apps, ports.App{Name: name, ProjectID: id})
	}
	return s
}

func (s *SDK) InitializedApps() []ports.App {
	out := make([]ports.App, len(s.apps))
	copy(out, s.apps)
	return out
}

// AuthHandle returns a token verifier bound to the default app. Without
// verification keys no token could ever pass, so that is an error too.
func (s *SDK) AuthHandle() (ports.AuthHandle, error) {
	if len(s.apps) == 0 {
		return nil, errors.New("auth handle: no initialized app")
	}
	if len(s.cfg.Keys) == 0 {
		return nil, errors.New("auth handle: no verification keys configured")
	}
	return NewTokenVerifier(s.apps[0], s.cfg.Keys), nil
}

func (s *SDK) NewChallengeWidget(containerID string) (ports.ChallengeWidget, error) {
	w, err := NewRecaptchaWidget(containerID, s.cfg.RecaptchaSiteKey)
	if err != nil {
		return nil, err
	}
	return w, nil
}

// TokenVerifier validates ID tokens issued for one project.
type TokenVerifier struct {
	app    ports.App
	keys   map[string]any
	parser *jwt.Parser
}

// Claims carried by a verified ID token.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
}

func NewTokenVerifier(app ports.App, keys map[string]any) *TokenVerifier {
	return &TokenVerifier{
		app:  app,
		keys: keys,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
			jwt.WithIssuer(issuerPrefix+app.ProjectID),
			jwt.WithAudience(app.ProjectID),
			jwt.WithExpirationRequired(),
		),
	}
}

func (v *TokenVerifier) AppName() string { return v.app.Name }

// Verify parses token and checks signature, issuer, audience and expiry.
func (v *TokenVerifier) Verify(token string) (*Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, errors.New("verify token: token is empty")
	}

	var claims Claims
	_, err := v.parser.ParseWithClaims(token, &claims, v.keyFor)
	if err != nil {
		return nil, fmt.Errorf("verify token: %w", err)
	}
	if claims.Subject == "" {
		return nil, errors.New("verify token: subject is empty")
	}
	return &claims, nil
}

func (v *TokenVerifier) keyFor(t *jwt.Token) (any, error) {
	kid, _ := t.Header["kid"].(string)
	key, ok := v.keys[kid]
	if !ok {
		return nil, fmt.Errorf("unknown key id %q", kid)
	}
	return key, nil
}

// RecaptchaWidget is an invisible reCAPTCHA challenge mounted in a container.
type RecaptchaWidget struct {
	mu          sync.Mutex
	containerID string
	cleared     bool
}

// NewRecaptchaWidget renders the widget mount point; it fails when the
// site key or container id is missing.
func NewRecaptchaWidget(containerID, siteKey string) (*RecaptchaWidget, error) {
	containerID = strings.TrimSpace(containerID)
	siteKey = strings.TrimSpace(siteKey)
	if containerID == "" {
		return nil, errors.New("recaptcha widget: container id is empty")
	}
	if siteKey == "" {
		return nil, errors.New("recaptcha widget: site key is not configured")
	}

	if err := views.RecaptchaContainer(containerID, siteKey).Render(context.Background(), io.Discard); err != nil {
		return nil, fmt.Errorf("recaptcha widget: render: %w", err)
	}

	return &RecaptchaWidget{containerID: containerID}, nil
}

func (w *RecaptchaWidget) Clear() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.cleared {
		return fmt.Errorf("recaptcha widget %q: already cleared", w.containerID)
	}
	w.cleared = true
	return nil
}
