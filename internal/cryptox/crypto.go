package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/secureshare/internal/common"
)

// KeySize is the AES-256 key length used for shared content.
const KeySize = 32

var ErrKeyMismatch = errors.New("key does not match content key hash")

// EncryptedContent is what leaves the client: the server receives Ciphertext,
// hex IV and KeyHash, the Key itself is shared out of band.
type EncryptedContent struct {
	Ciphertext []byte
	Key        []byte
	Nonce      []byte
}

func (e *EncryptedContent) IVHex() string {
	return hex.EncodeToString(e.Nonce)
}

func (e *EncryptedContent) KeyHex() string {
	return hex.EncodeToString(e.Key)
}

// KeyHash is the hex SHA-256 of the raw key. The server stores it so that a
// recipient can check the key it was given before decrypting.
func KeyHash(key []byte) string {
	hash := sha256.Sum256(key)
	return hex.EncodeToString(hash[:])
}

// EncryptContent encrypts plaintext with a fresh random AES-256 key using
// AES-GCM. A new random nonce is generated for each call.
func EncryptContent(plaintext []byte) (*EncryptedContent, error) {
	key := common.GenerateRandByteArray(KeySize)

	aesgcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := common.GenerateRandByteArray(aesgcm.NonceSize())
	ciphertext := aesgcm.Seal(nil, nonce, plaintext, nil)

	return &EncryptedContent{Ciphertext: ciphertext, Key: key, Nonce: nonce}, nil
}

// EncryptFile reads the file at path and encrypts it with EncryptContent.
func EncryptFile(path string) (*EncryptedContent, error) {
	plaintext, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(plaintext)

	return EncryptContent(plaintext)
}

// DecryptContent verifies the key against keyHash and opens the ciphertext.
// keyHex and ivHex are the hex encodings handed out at upload time.
func DecryptContent(ciphertext []byte, keyHex, ivHex, keyHash string) ([]byte, error) {
	key, err := hex.DecodeString(keyHex)
	if err != nil {
		return nil, fmt.Errorf("decode key: %w", err)
	}
	if KeyHash(key) != keyHash {
		return nil, ErrKeyMismatch
	}

	nonce, err := hex.DecodeString(ivHex)
	if err != nil {
		return nil, fmt.Errorf("decode iv: %w", err)
	}

	aesgcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(nonce) != aesgcm.NonceSize() {
		return nil, fmt.Errorf("iv must be %d bytes", aesgcm.NonceSize())
	}

	return aesgcm.Open(nil, nonce, ciphertext, nil)
}

// DeviceFingerprint hashes device attributes into a stable identifier.
// json.Marshal sorts map keys, so the encoding is canonical.
func DeviceFingerprint(info map[string]any) (string, error) {
	data, err := json.Marshal(info)
	if err != nil {
		return "", err
	}
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:]), nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
