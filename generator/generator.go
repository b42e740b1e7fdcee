package generator

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

type RandomTokenType string

func tokenTypeFromString(token string) RandomTokenType {
	if token == "" {
		panic("zero length token issued, this is probably the only reason to ever panic")
	}
	return RandomTokenType(token)

}

type RandomTokenGenerator struct{}

// CreateSecureToken returns a url safe token of 32 random bytes
func (g *RandomTokenGenerator) CreateSecureToken() RandomTokenType {
	return g.CreateSecureTokenWithSize(32)
}

// CreateSecureTokenWithSize returns a url safe token of size random bytes
func (*RandomTokenGenerator) CreateSecureTokenWithSize(size int) RandomTokenType {
	b := make([]byte, size)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		panic(err.Error()) // rand should never fail
	}
	return tokenTypeFromString(removePadding(base64.URLEncoding.EncodeToString(b)))
}

// CreateKey returns size raw random bytes, used for csrf keys
func (*RandomTokenGenerator) CreateKey(size int) []byte {
	b := make([]byte, size)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		panic(err.Error())
	}
	return b
}

func removePadding(token string) string {
	return strings.TrimRight(token, "=")
}

func New() *RandomTokenGenerator {
	return &RandomTokenGenerator{}
}

// PlaceholderIndex maps a name onto 1..18, the first n bytes of the name
// are summed where n is its character count
func PlaceholderIndex(name string) int {
	n := utf8.RuneCountInString(name)
	sum := 0
	for i := 0; i < n && i < len(name); i++ {
		sum += int(name[i])
	}
	digit := sum % 19
	if digit == 0 {
		digit = 1
	}
	return digit
}

// PlaceholderImageName formats the placeholder index of name with the given prefix, e.g. app_07.png
func PlaceholderImageName(prefix string, name string) string {
	return fmt.Sprintf("%s_%02d.png", prefix, PlaceholderIndex(name))
}
