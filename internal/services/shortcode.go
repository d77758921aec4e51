package services

import (
	"github.com/gal099/qr-track-challenge/internal/repository"
	"github.com/gal099/qr-track-challenge/pkg/utils"
)

const (
	shortCodeLength    = 8
	fallbackCodeLength = 12
	maxCodeRetries     = 5
)

// ShortCodeGenerator issues short codes that are unique across the full
// code history, soft-deleted rows included.
type ShortCodeGenerator struct {
	repo          *repository.QRCodeRepository
	codeGenerator func(int) string
}

func NewShortCodeGenerator(repo *repository.QRCodeRepository) *ShortCodeGenerator {
	return &ShortCodeGenerator{
		repo:          repo,
		codeGenerator: utils.GenerateShortCode,
	}
}

// GenerateUnique produces an 8-character candidate and retries on
// collision. After maxCodeRetries collisions it falls back to a
// 12-character code, accepted without a further existence check.
// Storage errors propagate immediately; only logical collisions retry.
func (g *ShortCodeGenerator) GenerateUnique() (string, error) {
	for i := 0; i < maxCodeRetries; i++ {
		code := g.codeGenerator(shortCodeLength)
		exists, err := g.repo.ShortCodeExists(code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}

	return g.codeGenerator(fallbackCodeLength), nil
}
