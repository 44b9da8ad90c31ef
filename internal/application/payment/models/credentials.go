package payment

import (
	"encoding/base64"
	"errors"
)

var ErrMissingCredentials = errors.New("payment provider credentials are not configured")

type Credentials struct {
	PublicKey string
	SecretKey string
}

func (c Credentials) Validate() error {
	if c.PublicKey == "" || c.SecretKey == "" {
		return ErrMissingCredentials
	}
	return nil
}

// BasicAuthToken is the value that follows "Basic " in the Authorization header.
func (c Credentials) BasicAuthToken() string {
	return base64.StdEncoding.EncodeToString([]byte(c.PublicKey + ":" + c.SecretKey))
}
