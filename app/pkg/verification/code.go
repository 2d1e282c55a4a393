package verification

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"backend/cipherhacks-mailer/app/internal/config"
)

var ErrEmptyCode = errors.New("verification code is empty")

// CodeGenerator produces the code embedded in a verification email.
// Implementations receive the recipient so a per-recipient code can be swapped in
// without touching the dispatch flow.
type CodeGenerator interface {
	Generate(ctx context.Context, recipient string) (string, error)
}

// StaticCodeGenerator hands every recipient the same deploy-time code.
type StaticCodeGenerator struct {
	code string
}

func NewStaticCodeGenerator(code string) StaticCodeGenerator {
	return StaticCodeGenerator{code: code}
}

func (g StaticCodeGenerator) Generate(_ context.Context, _ string) (string, error) {
	if g.code == "" {
		return "", ErrEmptyCode
	}
	return g.code, nil
}

var alphabet = []rune("ABCDEFGHJKLMNPQRSTUVWXYZ23456789")

// RandomCodeGenerator draws a fresh alphanumeric code per call.
type RandomCodeGenerator struct {
	length int
}

func NewRandomCodeGenerator(length int) RandomCodeGenerator {
	return RandomCodeGenerator{length: length}
}

func (g RandomCodeGenerator) Generate(_ context.Context, _ string) (string, error) {
	if g.length <= 0 {
		return "", ErrEmptyCode
	}
	b := make([]rune, g.length)
	for i := range b {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphabet))))
		if err != nil {
			return "", fmt.Errorf("failed to draw verification code: %w", err)
		}
		b[i] = alphabet[n.Int64()]
	}
	return string(b), nil
}

// NewCodeGenerator picks the generator named by cfg.Strategy. Static is the default.
func NewCodeGenerator(cfg config.VerificationConfig) (CodeGenerator, error) {
	switch cfg.Strategy {
	case config.VerificationStrategyStatic, "":
		if cfg.Code == "" {
			return nil, ErrEmptyCode
		}
		return NewStaticCodeGenerator(cfg.Code), nil
	case config.VerificationStrategyRandom:
		if cfg.Length <= 0 {
			return nil, fmt.Errorf("invalid verification code length %d", cfg.Length)
		}
		return NewRandomCodeGenerator(cfg.Length), nil
	default:
		return nil, fmt.Errorf("unknown verification strategy %q", cfg.Strategy)
	}
}
