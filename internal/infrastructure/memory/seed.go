package memory

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"rbac-admin/internal/domain"
)

type seedDoc struct {
	Roles []domain.Role `yaml:"roles"`
	Users []domain.User `yaml:"users"`
}

// LoadSeed decodes fixture data from r and applies it to the store.
func LoadSeed(store *Store, r io.Reader) error {
	var doc seedDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return fmt.Errorf("decode seed: %w", err)
	}
	for _, role := range doc.Roles {
		if err := domain.ValidateRoleFields(role); err != nil {
			return fmt.Errorf("seed role %q: %w", role.Name, err)
		}
	}
	for _, user := range doc.Users {
		if err := domain.ValidateUserFields(user); err != nil {
			return fmt.Errorf("seed user %q: %w", user.Name, err)
		}
	}
	store.Seed(doc.Users, doc.Roles)
	return nil
}

// LoadSeedFile reads fixture data from a yaml file on disk.
func LoadSeedFile(store *Store, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return LoadSeed(store, f)
}
