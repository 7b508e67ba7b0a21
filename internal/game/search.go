package game

import (
	"context"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/xenopets/XenoPets_Go/internal/domain"
)

// NormalizeQuery folds a search query for accent-insensitive matching:
// lowercased, diacritics stripped, whitespace collapsed. "José" and "jose"
// normalize identically.
func NormalizeQuery(query string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, query)
	if err != nil {
		folded = query
	}
	return strings.Join(strings.Fields(strings.ToLower(folded)), " ")
}

func (s *service) SearchPlayers(ctx context.Context, query string) ([]domain.PlayerProfile, error) {
	normalized := NormalizeQuery(query)
	if normalized == "" {
		return []domain.PlayerProfile{}, nil
	}
	return s.remote.SearchPlayers(ctx, normalized)
}

func (s *service) GetPlayerProfile(ctx context.Context, userID string) (*domain.PlayerProfile, error) {
	return s.remote.GetPlayerProfile(ctx, userID)
}
