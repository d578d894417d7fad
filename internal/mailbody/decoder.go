// Package mailbody decodes transport-encoded message payloads into text.
package mailbody

import (
	"encoding/base64"
	"errors"
	"fmt"

	"cardmail/internal/models"
)

// ErrMalformedMessage reports a message body that could not be decoded.
// The affected message is skipped and logged; it never aborts a batch.
var ErrMalformedMessage = errors.New("malformed message body")

// Decode selects the message's text block and base64url-decodes it as
// UTF-8. The inline body wins when its declared size is non-zero;
// otherwise the first sub-part carries the text.
func Decode(p *models.Payload) (string, error) {
	data := p.Body.Data
	if p.Body.Size == 0 {
		if len(p.Parts) == 0 {
			return "", fmt.Errorf("%w: no inline body and no parts", ErrMalformedMessage)
		}
		data = p.Parts[0].Body.Data
	}
	if data == "" {
		return "", fmt.Errorf("%w: empty body data", ErrMalformedMessage)
	}

	decoded, err := base64.URLEncoding.DecodeString(data)
	if err != nil {
		// some payloads arrive without padding
		decoded, err = base64.RawURLEncoding.DecodeString(data)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrMalformedMessage, err)
		}
	}
	return string(decoded), nil
}
