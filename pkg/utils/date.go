package utils

import "time"

const dateLayout = "2006-01-02"

// ParseDate converte uma data de calendário no formato AAAA-MM-DD.
// String vazia retorna a data zero sem erro.
func ParseDate(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return time.Time{}, nil
	}

	return time.Parse(dateLayout, dateStr)
}

// FormatDate formata uma data de calendário no formato AAAA-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// DateBefore informa se a data de calendário dateStr é estritamente
// anterior a ref, ignorando a hora. Datas inválidas ou vazias retornam false.
func DateBefore(dateStr string, ref time.Time) bool {
	date, err := ParseDate(dateStr)
	if err != nil || date.IsZero() {
		return false
	}

	refDay := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)
	return date.Before(refDay)
}
