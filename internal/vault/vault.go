package vault

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/pbkdf2"

	"github.com/MdAshrafuddinnoyon/artistiya-showcase-sub004/internal/domain"
)

// Prefix marks a value as envelope-encrypted. Values without it are treated
// as legacy plaintext and pass through decryption unchanged.
const Prefix = "enc:"

const (
	saltSize   = 16
	nonceSize  = 12
	keySize    = 32
	iterations = 100_000
)

type Mode string

const (
	// ModePermissive keeps unconfigured environments working: Encrypt
	// returns the plaintext unchanged when no master key is set.
	ModePermissive Mode = "permissive"
	// ModeStrict refuses to operate without a master key.
	ModeStrict Mode = "strict"
)

// Vault performs envelope encryption of gateway credentials with a key
// derived per call from the operator-supplied master secret.
type Vault struct {
	masterKey string
	mode      Mode
	logger    *zap.Logger
}

func NewVault(masterKey string, mode Mode, logger *zap.Logger) *Vault {
	if mode != ModeStrict {
		mode = ModePermissive
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Vault{masterKey: masterKey, mode: mode, logger: logger}
}

// Encrypt envelope-encrypts plaintext as "enc:" + base64(salt||nonce||sealed).
// Empty or whitespace-only input and already-encrypted values are returned
// unchanged, so Encrypt is idempotent.
func (v *Vault) Encrypt(plaintext string) (string, error) {
	if strings.TrimSpace(plaintext) == "" {
		return plaintext, nil
	}
	if strings.HasPrefix(plaintext, Prefix) {
		return plaintext, nil
	}
	if v.masterKey == "" {
		if v.mode == ModeStrict {
			return "", fmt.Errorf("encrypt: no master key configured")
		}
		v.logger.Warn("no encryption master key configured, storing credential as plaintext")
		return plaintext, nil
	}

	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("encrypt: generating salt: %w", err)
	}
	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("encrypt: generating nonce: %w", err)
	}

	aead, err := v.deriveAEAD(salt)
	if err != nil {
		return "", err
	}

	sealed := aead.Seal(nil, nonce, []byte(plaintext), nil)
	payload := make([]byte, 0, saltSize+nonceSize+len(sealed))
	payload = append(payload, salt...)
	payload = append(payload, nonce...)
	payload = append(payload, sealed...)

	return Prefix + base64.StdEncoding.EncodeToString(payload), nil
}

// Decrypt reverses Encrypt. Unprefixed values are returned as-is. A missing
// master key, malformed payload or failed authentication yields an empty
// string and ErrDecryptionFailure; callers decide whether that is fatal.
func (v *Vault) Decrypt(value string) (string, error) {
	if !strings.HasPrefix(value, Prefix) {
		return value, nil
	}
	if v.masterKey == "" {
		v.logger.Error("cannot decrypt credential: master key is not configured")
		return "", domain.ErrDecryptionFailure
	}

	payload, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(value, Prefix))
	if err != nil {
		v.logger.Error("malformed encrypted credential", zap.Error(err))
		return "", domain.ErrDecryptionFailure
	}
	if len(payload) < saltSize+nonceSize+1 {
		v.logger.Error("encrypted credential payload too short")
		return "", domain.ErrDecryptionFailure
	}

	salt := payload[:saltSize]
	nonce := payload[saltSize : saltSize+nonceSize]
	sealed := payload[saltSize+nonceSize:]

	aead, err := v.deriveAEAD(salt)
	if err != nil {
		return "", domain.ErrDecryptionFailure
	}

	plaintext, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		v.logger.Error("credential decryption failed", zap.Error(err))
		return "", domain.ErrDecryptionFailure
	}

	return string(plaintext), nil
}

// DecryptFields decrypts the named fields of a credential map in place,
// leaving absent fields untouched. The first failure aborts the batch.
func (v *Vault) DecryptFields(creds map[string]string, fields ...string) error {
	for _, field := range fields {
		value, ok := creds[field]
		if !ok {
			continue
		}
		plaintext, err := v.Decrypt(value)
		if err != nil {
			return fmt.Errorf("decrypting field %q: %w", field, err)
		}
		creds[field] = plaintext
	}
	return nil
}

func (v *Vault) deriveAEAD(salt []byte) (cipher.AEAD, error) {
	key := pbkdf2.Key([]byte(v.masterKey), salt, iterations, keySize, sha256.New)
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("deriving cipher: %w", err)
	}
	return cipher.NewGCM(block)
}
