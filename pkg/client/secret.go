package client

import (
	"fmt"
	"strings"

	"github.com/zalando/go-keyring"
)

const keyringService = "relica"

// normalizeKey converts a baseURL into a stable key name for keyring storage.
// It currently trims trailing slashes and lowercases the host portion to avoid
// accidental duplicates like https://example.com/ and https://example.com.
func normalizeKey(baseURL string) string {
	s := strings.TrimSpace(baseURL)
	s = strings.TrimRight(s, "/")
	s = strings.ToLower(s)
	return s
}

// SaveCredentials stores the shared credential pair in the OS keyring under
// the normalized baseURL key.
func SaveCredentials(baseURL, username, password string) error {
	key := normalizeKey(baseURL)
	return keyring.Set(keyringService, key, username+"\n"+password)
}

// LoadCredentials retrieves the credential pair stored for the given
// baseURL. If no entry is found the underlying keyring error is returned.
func LoadCredentials(baseURL string) (username, password string, err error) {
	key := normalizeKey(baseURL)
	entry, err := keyring.Get(keyringService, key)
	if err != nil {
		return "", "", err
	}
	parts := strings.SplitN(entry, "\n", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("malformed keyring entry for %s", key)
	}
	return parts[0], parts[1], nil
}

// DeleteCredentials removes the entry for the given baseURL from the OS
// keyring. It is a convenience for logout flows.
func DeleteCredentials(baseURL string) error {
	key := normalizeKey(baseURL)
	return keyring.Delete(keyringService, key)
}
