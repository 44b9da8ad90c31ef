package payment

import (
	"bytes"

	json "github.com/json-iterator/go"
)

// ProviderID holds the provider's transaction id as the raw JSON it arrived
// in, so numeric and string ids reach the caller unchanged.
type ProviderID string

func NewProviderID(id string) ProviderID {
	b, _ := json.Marshal(id)
	return ProviderID(b)
}

func (id ProviderID) MarshalJSON() ([]byte, error) {
	if id == "" {
		return []byte("null"), nil
	}
	return []byte(id), nil
}

func (id *ProviderID) UnmarshalJSON(b []byte) error {
	*id = ProviderID(bytes.TrimSpace(b))
	return nil
}

// String is the id without JSON quoting, for logs.
func (id ProviderID) String() string {
	var s string
	if err := json.Unmarshal([]byte(id), &s); err == nil {
		return s
	}
	return string(id)
}
