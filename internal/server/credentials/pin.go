// Package credentials hashes and verifies PINs and applies the failed-attempt
// lockout policy to a PinCredential.
package credentials

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"

	"github.com/dmitrijs2005/secureshare/internal/common"
)

const (
	Iterations = 100_000
	SaltSize   = 16
	KeyLen     = 32

	MinPinLength = 4
	MaxPinLength = 10

	digestScheme = "pbkdf2_sha256"
)

// HashPin returns a self-describing digest
// "pbkdf2_sha256$<iterations>$<salt hex>$<hash hex>" with a fresh salt.
func HashPin(pin string) string {
	return hashWithSalt(pin, common.GenerateRandByteArray(SaltSize), Iterations)
}

func hashWithSalt(pin string, salt []byte, iterations int) string {
	dk := pbkdf2.Key([]byte(pin), salt, iterations, KeyLen, sha256.New)
	return fmt.Sprintf("%s$%d$%s$%s", digestScheme, iterations, hex.EncodeToString(salt), hex.EncodeToString(dk))
}

// VerifyPin reports whether pin matches digest. Any malformed digest yields
// false.
func VerifyPin(pin, digest string) bool {
	parts := strings.Split(digest, "$")
	if len(parts) != 4 || parts[0] != digestScheme {
		return false
	}
	iterations, err := strconv.Atoi(parts[1])
	if err != nil || iterations <= 0 {
		return false
	}
	salt, err := hex.DecodeString(parts[2])
	if err != nil || len(salt) == 0 {
		return false
	}
	want, err := hex.DecodeString(parts[3])
	if err != nil || len(want) == 0 {
		return false
	}

	got := pbkdf2.Key([]byte(pin), salt, iterations, len(want), sha256.New)
	return subtle.ConstantTimeCompare(got, want) == 1
}

// LookupKey is the keyed index of a PIN. It lets the store find a credential
// by PIN without keeping the PIN itself.
func LookupKey(secret []byte, pin string) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(pin))
	return hex.EncodeToString(mac.Sum(nil))
}

// ValidatePin checks that pin is MinPinLength..MaxPinLength decimal digits.
func ValidatePin(pin string) error {
	if len(pin) < MinPinLength || len(pin) > MaxPinLength {
		return common.Validationf("pin must be %d-%d digits", MinPinLength, MaxPinLength)
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return common.Validationf("pin must contain digits only")
		}
	}
	return nil
}

// GeneratePin returns a uniformly random PIN of n decimal digits.
func GeneratePin(n int) (string, error) {
	var b strings.Builder
	b.Grow(n)
	ten := big.NewInt(10)
	for i := 0; i < n; i++ {
		d, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", err
		}
		b.WriteByte(byte('0' + d.Int64()))
	}
	return b.String(), nil
}
