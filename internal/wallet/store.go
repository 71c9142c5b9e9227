package wallet

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/zalando/go-keyring"
)

// Store persists the connected wallet address between runs
type Store interface {
	Get() (string, error)
	Set(address string) error
	Delete() error
	IsAvailable() bool
}

// ErrNotStored means no wallet has been connected yet
var ErrNotStored = errors.New("no wallet address stored")

const keyName = "wallet-address"

type keyringStore struct {
	service string
	envVar  string
}

// NewStore returns a store backed by the OS keyring. A non-empty envVar takes
// precedence over the keyring, for hosts without a secret service.
func NewStore(service, envVar string) Store {
	return &keyringStore{service: service, envVar: envVar}
}

// Get reads the address from the environment override or the keyring
func (k *keyringStore) Get() (string, error) {
	if v := k.env(); v != "" {
		return v, nil
	}

	addr, err := keyring.Get(k.service, keyName)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotStored
		}
		return "", errors.Wrap(err, "failed to read wallet from keyring")
	}
	if addr == "" {
		return "", ErrNotStored
	}
	return addr, nil
}

// Set stores the address in the keyring
func (k *keyringStore) Set(address string) error {
	if address == "" {
		return errors.New("address cannot be empty")
	}
	if err := keyring.Set(k.service, keyName, address); err != nil {
		if k.env() != "" {
			return errors.Newf("keyring not available: %s is set, update it instead", k.envVar)
		}
		return errors.Wrap(err, "failed to store wallet in keyring")
	}
	return nil
}

// Delete forgets the stored address. Deleting nothing is not an error.
func (k *keyringStore) Delete() error {
	err := keyring.Delete(k.service, keyName)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return errors.Wrap(err, "failed to delete wallet from keyring")
	}
	if k.env() != "" {
		return errors.Newf("wallet is pinned by %s; unset it to disconnect", k.envVar)
	}
	return nil
}

// IsAvailable checks that the keyring accepts writes
func (k *keyringStore) IsAvailable() bool {
	testKey := "__movo_availability_test__"
	if err := keyring.Set(k.service, testKey, "test"); err != nil {
		return false
	}
	_ = keyring.Delete(k.service, testKey)
	return true
}

func (k *keyringStore) env() string {
	if k.envVar == "" {
		return ""
	}
	return strings.TrimSpace(os.Getenv(k.envVar))
}
