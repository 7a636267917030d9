package model

import "strings"

func countWords(s string) int {
	return len(strings.Fields(s))
}

func joinSentences(sentences []SentenceRecord) string {
	parts := make([]string, 0, len(sentences))
	for _, s := range sentences {
		t := strings.TrimSpace(s.Text)
		if t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}
