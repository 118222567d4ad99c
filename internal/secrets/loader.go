// Package secrets resolves provider credentials from config, environment or files.
package secrets

import (
	"fmt"
	"os"
	"strings"
)

// Source is one provider credential, e.g. the Adzuna app key.
type Source struct {
	// Name labels the credential in errors.
	Name string
	// Value comes from the config file or an environment variable.
	Value string
	// File holds the credential on disk and wins over Value.
	File string
}

// Load resolves a credential that must be present.
func Load(src Source) (string, error) {
	secret, err := resolve(src)
	if err != nil {
		return "", err
	}

	if secret == "" {
		return "", fmt.Errorf("%s is not configured", src.label())
	}

	return secret, nil
}

// LoadOptional resolves a credential whose absence only disables its provider.
// A configured file that is missing or empty is still an error.
func LoadOptional(src Source) (string, error) {
	return resolve(src)
}

func resolve(src Source) (string, error) {
	file := strings.TrimSpace(src.File)
	if file == "" {
		return strings.TrimSpace(src.Value), nil
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("reading %s from file %q: %w", src.label(), file, err)
	}

	secret := strings.TrimSpace(string(data))
	if secret == "" {
		return "", fmt.Errorf("%s file %q is empty", src.label(), file)
	}

	return secret, nil
}

func (s Source) label() string {
	if name := strings.TrimSpace(s.Name); name != "" {
		return name
	}
	return "secret"
}
