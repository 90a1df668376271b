package store

import (
	"database/sql"
	"encoding/json"
	"strings"

	"go.uber.org/zap"
)

// ProfileText is the free text of one record's tutor suggestions, keyed by
// the condition label that produced it.
type ProfileText struct {
	Profile string
	Text    string
}

// SuggestionTexts returns the parsed suggestion text of every scored record
// matching the run IDs and judge filter. Records whose payload yields no
// text are omitted.
func (s *Store) SuggestionTexts(runIDs []string, judgeFilter string) []ProfileText {
	db, ok := s.handle()
	if !ok || len(runIDs) == 0 {
		return nil
	}

	query := `
		SELECT profile_name, suggestions
		FROM evaluation_results
		WHERE run_id IN (` + placeholders(len(runIDs)) + `)
		  AND judge_model LIKE ?
		  AND overall_score IS NOT NULL`

	rows, err := db.Query(query, args(runIDs, judgeFilter)...)
	if err != nil {
		s.log.Warn("suggestion texts query failed", zap.Error(err))
		return nil
	}
	defer rows.Close()

	var out []ProfileText
	for rows.Next() {
		var profile string
		var payload sql.NullString
		if err := rows.Scan(&profile, &payload); err != nil {
			continue
		}
		text, ok := parseSuggestionText(payload.String)
		if !ok {
			continue
		}
		out = append(out, ProfileText{Profile: profile, Text: text})
	}
	return out
}

// parseSuggestionText turns the loosely structured suggestions payload into
// plain text. A JSON array of objects contributes its message, title, and
// reason fields; a bare JSON string contributes itself; anything else,
// including malformed JSON, contributes nothing.
func parseSuggestionText(payload string) (string, bool) {
	if payload == "" {
		return "", false
	}

	var items []map[string]any
	if err := json.Unmarshal([]byte(payload), &items); err == nil {
		var parts []string
		for _, item := range items {
			for _, key := range []string{"message", "title", "reason"} {
				if v, ok := item[key].(string); ok && v != "" {
					parts = append(parts, v)
				}
			}
		}
		if len(parts) == 0 {
			return "", false
		}
		return strings.Join(parts, " "), true
	}

	var plain string
	if err := json.Unmarshal([]byte(payload), &plain); err == nil && plain != "" {
		return plain, true
	}
	return "", false
}
