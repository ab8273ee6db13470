// Package passgen generates random passwords.
package passgen

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/mesh-intelligence/workos/internal/shell"
)

const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*"

// Length bounds match the generator's slider.
const (
	MinLength     = 6
	MaxLength     = 32
	DefaultLength = 12
)

// Generate returns a random password of the given length.
func Generate(length int) (string, error) {
	if length < MinLength || length > MaxLength {
		return "", fmt.Errorf("password length %d out of range [%d, %d]", length, MinLength, MaxLength)
	}
	out := make([]byte, length)
	max := big.NewInt(int64(len(charset)))
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generating password: %w", err)
		}
		out[i] = charset[n.Int64()]
	}
	return string(out), nil
}

// View renders one freshly generated password.
type View struct {
	Length int
}

func (v View) ID() string { return shell.ViewPassword }

func (v View) Render(w io.Writer, dark bool) error {
	length := v.Length
	if length == 0 {
		length = DefaultLength
	}
	password, err := Generate(length)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, shell.Heading("Tạo mật khẩu", dark))
	fmt.Fprintf(w, "%s (độ dài: %d)\n", password, length)
	return nil
}
