package usecase

import (
	"fmt"

	"github.com/MdAshrafuddinnoyon/artistiya-showcase-sub004/internal/vault"
)

type CredentialsUsecase interface {
	EncryptCredentials(credentials map[string]string) (map[string]string, error)
}

type DefaultCredentialsUsecase struct {
	Vault *vault.Vault
}

func NewDefaultCredentialsUsecase(credentialVault *vault.Vault) *DefaultCredentialsUsecase {
	return &DefaultCredentialsUsecase{Vault: credentialVault}
}

// EncryptCredentials encrypts every field of an admin-supplied credential
// map. Encryption is idempotent, so re-submitting already-encrypted values
// returns them unchanged.
func (uc *DefaultCredentialsUsecase) EncryptCredentials(credentials map[string]string) (map[string]string, error) {
	encrypted := make(map[string]string, len(credentials))
	for field, value := range credentials {
		ciphertext, err := uc.Vault.Encrypt(value)
		if err != nil {
			return nil, fmt.Errorf("encrypting field %q: %w", field, err)
		}
		encrypted[field] = ciphertext
	}
	return encrypted, nil
}
