package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Sanuxal/SOCRATES.AI/internal/keyring"
)

// KeySetCmd stores the Gemini API key in the OS keyring.
type KeySetCmd struct {
	Key string `arg:"" help:"The API key to store."`
}

func (c *KeySetCmd) Run(ctx *Context) error {
	if err := keyring.SetAPIKey(strings.TrimSpace(c.Key)); err != nil {
		return err
	}
	fmt.Println("API key stored.")
	return nil
}

// KeyShowCmd prints a masked form of the stored API key.
type KeyShowCmd struct{}

func (c *KeyShowCmd) Run(ctx *Context) error {
	key, err := keyring.GetAPIKey()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return fmt.Errorf("no API key stored")
		}
		return err
	}
	fmt.Println(mask(key))
	return nil
}

// KeyDeleteCmd removes the stored API key.
type KeyDeleteCmd struct{}

func (c *KeyDeleteCmd) Run(ctx *Context) error {
	if err := keyring.DeleteAPIKey(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return fmt.Errorf("no API key stored")
		}
		return err
	}
	fmt.Println("API key deleted.")
	return nil
}

func mask(key string) string {
	if len(key) <= 8 {
		return strings.Repeat("*", len(key))
	}
	return key[:4] + strings.Repeat("*", len(key)-8) + key[len(key)-4:]
}
