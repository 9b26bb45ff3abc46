package authsdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// LoadKeys reads a JSON object mapping key ids to PEM encoded RSA public
// keys or X.509 certificates, the shape the token issuer publishes its
// signing keys in.
func LoadKeys(path string) (map[string]any, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load verification keys: read %q: %w", path, err)
	}
	return ParseKeys(b)
}

func ParseKeys(data []byte) (map[string]any, error) {
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse verification keys: parse json: %w", err)
	}
	if len(raw) == 0 {
		return nil, errors.New("parse verification keys: no keys")
	}

	keys := make(map[string]any, len(raw))
	for kid, pem := range raw {
		if strings.TrimSpace(kid) == "" {
			return nil, errors.New("parse verification keys: empty key id")
		}
		key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(pem))
		if err != nil {
			return nil, fmt.Errorf("parse verification keys kid=%q: %w", kid, err)
		}
		keys[kid] = key
	}
	return keys, nil
}
