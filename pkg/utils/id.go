package utils

import (
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	base36Chars  = "0123456789abcdefghijklmnopqrstuvwxyz"
	suffixLength = 6
)

// GenerateID gera um identificador no formato {prefix}-{millis}-{sufixo},
// onde o sufixo é aleatório em base36. Resistente a colisões dentro de um
// único processo; não há escritor concorrente neste design.
func GenerateID(prefix string) (string, error) {
	suffix, err := gonanoid.Generate(base36Chars, suffixLength)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), suffix), nil
}

// FormatInvoiceNumber monta o número sequencial de fatura por ano,
// com a sequência preenchida com zeros à esquerda (INV-2025-001).
func FormatInvoiceNumber(year int, sequence int) string {
	return fmt.Sprintf("INV-%d-%03d", year, sequence)
}
