package service

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// semAcentos decomposes to NFD and drops combining marks, so "Pão" and "Pao"
// normalize identically.
var semAcentos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizarNome canonicalizes a display name for duplicate detection across
// tenants: lowercase, accents stripped, everything but ASCII letters, digits
// and spaces removed, whitespace runs collapsed, ends trimmed.
//
// Deterministic and total: empty or all-punctuation input normalizes to "",
// which still participates in equality matching.
func NormalizarNome(nome string) string {
	s := strings.ToLower(nome)
	if t, _, err := transform.String(semAcentos, s); err == nil {
		s = t
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', unicode.IsSpace(r):
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// indiceDeNomes builds a normalized-name → id index from (id, nome) pairs.
// The first occurrence of a normalized name wins, matching a linear
// first-match scan over the snapshot.
func indiceDeNomes(pares []nomeado) map[string]uuid.UUID {
	idx := make(map[string]uuid.UUID, len(pares))
	for _, p := range pares {
		chave := NormalizarNome(p.nome)
		if _, ok := idx[chave]; !ok {
			idx[chave] = p.id
		}
	}
	return idx
}

type nomeado struct {
	id   uuid.UUID
	nome string
}
