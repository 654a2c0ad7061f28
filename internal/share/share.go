// Package share encodes a scenario configuration into an opaque URL token so
// a user can hand their exact slider state to someone else.
package share

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/skadix/skadix/internal/scoring"
)

// ErrRestoreFailed marks a token that cannot be decoded back into a scenario
// configuration. Callers reject the token; they never crash on it.
var ErrRestoreFailed = errors.New("share token restore failed")

// QueryParam is the query parameter carrying the token.
const QueryParam = "data"

// Payload is the shared configuration. Field names match the web client's
// wire format, so tokens minted there still decode.
type Payload struct {
	Weights         scoring.Weights `json:"weights"`
	EditosScenario  string          `json:"editosScenario"`
	PlanningHorizon int             `json:"planningHorizon"`
}

// EncodeToken produces a URL-safe opaque token for the given configuration.
func EncodeToken(weights scoring.Weights, scenarioID string, horizon int) string {
	data, _ := json.Marshal(Payload{
		Weights:         weights,
		EditosScenario:  scenarioID,
		PlanningHorizon: horizon,
	})
	return base64.URLEncoding.EncodeToString(data)
}

// DecodeToken reverses EncodeToken. Standard-alphabet tokens minted by older
// clients are accepted too. Any malformed input, wrong base64 or invalid
// JSON, returns ErrRestoreFailed.
func DecodeToken(token string) (Payload, error) {
	data, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		data, err = base64.StdEncoding.DecodeString(token)
	}
	if err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrRestoreFailed, err)
	}
	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrRestoreFailed, err)
	}
	return p, nil
}

// URL appends the token to base as the data query parameter.
func URL(base, token string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse share base url: %w", err)
	}
	q := u.Query()
	q.Set(QueryParam, token)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
