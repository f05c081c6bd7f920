package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// ServiceCredential is the JSON blob privileged entrypoints authenticate
// with. It lives in a single environment variable so hosted deployments can
// inject it without a file mount.
type ServiceCredential struct {
	ProjectID   string `json:"project_id"`
	ClientEmail string `json:"client_email"`
	PrivateKey  string `json:"private_key"`
}

const credentialEnvVar = "EDULINK_SERVICE_CREDENTIALS"

// LoadServiceCredential parses EDULINK_SERVICE_CREDENTIALS. A missing or
// malformed value is a configuration error and must abort startup; it is
// never treated as runtime data.
func LoadServiceCredential() (*ServiceCredential, error) {
	raw := os.Getenv(credentialEnvVar)
	if raw == "" {
		return nil, fmt.Errorf("%s is not set", credentialEnvVar)
	}

	var cred ServiceCredential
	if err := json.Unmarshal([]byte(raw), &cred); err != nil {
		return nil, fmt.Errorf("%s is not valid JSON: %w", credentialEnvVar, err)
	}

	if cred.ProjectID == "" || cred.ClientEmail == "" || cred.PrivateKey == "" {
		return nil, fmt.Errorf("%s is missing project_id, client_email or private_key", credentialEnvVar)
	}
	return &cred, nil
}

// RequireServiceCredential loads the credential into AppConfig once;
// subsequent calls reuse the parsed value.
func RequireServiceCredential() (*ServiceCredential, error) {
	if AppConfig != nil && AppConfig.Credential != nil {
		return AppConfig.Credential, nil
	}
	cred, err := LoadServiceCredential()
	if err != nil {
		return nil, err
	}
	if AppConfig != nil {
		AppConfig.Credential = cred
	}
	return cred, nil
}
