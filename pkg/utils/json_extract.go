package utils

import (
	"encoding/json"
	"regexp"
	"strings"
)

var fencedBlockRe = regexp.MustCompile("(?s)```(?:json|JSON)?\\s*(.*?)\\s*```")

// jsonCandidates returns possible JSON spans in priority order: a fenced
// code block first, then the greedy span from the first "{" to the last
// "}". An unmarked fence can hold prose, so the caller keeps the brace
// span as a fallback.
func jsonCandidates(raw string) []string {
	var out []string
	if m := fencedBlockRe.FindStringSubmatch(raw); m != nil && m[1] != "" {
		out = append(out, m[1])
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start != -1 && end > start {
		out = append(out, raw[start:end+1])
	}
	return out
}

// ExtractJSONObject pulls the strongest JSON candidate out of free-form
// model output. Returns ErrNoJSONFound when neither a fence nor a brace
// pair matches.
func ExtractJSONObject(raw string) (string, error) {
	candidates := jsonCandidates(raw)
	if len(candidates) == 0 {
		return "", ErrNoJSONFound
	}
	return candidates[0], nil
}

// DecodeJSONObject extracts and strictly parses a JSON object into out,
// trying candidates in order so a prose-filled fence does not shadow a
// parseable object elsewhere in the reply. Extraction and parse failures
// stay distinct error kinds so the caller can tailor the corrective
// instruction.
func DecodeJSONObject(raw string, out interface{}) error {
	candidates := jsonCandidates(raw)
	if len(candidates) == 0 {
		return ErrNoJSONFound
	}

	for _, candidate := range candidates {
		if !json.Valid([]byte(candidate)) {
			continue
		}
		if err := json.Unmarshal([]byte(candidate), out); err != nil {
			return ErrMalformedJSON
		}
		return nil
	}
	return ErrMalformedJSON
}
