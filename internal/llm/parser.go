package llm

import (
	"encoding/json"
	"strings"
	"unicode/utf8"

	"bumpwise/apimodels"
)

// DegradedSource flags a result whose provider output could not be parsed
// as structured JSON, so callers can tell a degraded answer from a real
// one.
const DegradedSource = "AI-generated response (incomplete - could not parse structured data)"

const (
	// summaryPrefixLen caps how much raw provider text is surfaced as the
	// summary of a degraded result.
	summaryPrefixLen = 200

	// longQueryThreshold: a "query" longer than this was almost certainly
	// an image-analysis prompt, so the degraded result gets a generic
	// label instead of echoing it.
	longQueryThreshold = 120

	degradedApology = "The analysis could not be completed. Please try again with a simpler or clearer question."
)

// ParseSafetyResponse extracts a structured outcome from a provider's raw
// free-text output. Providers sometimes wrap JSON in prose or code
// fences, or truncate it under token limits, so parsing is resilient:
// this function never fails, degrading to a labeled caution result when
// no structured data can be recovered.
func ParseSafetyResponse(raw, originalQuery string) *apimodels.Outcome {
	cleaned := stripCodeFences(raw)

	if out := tryParse(cleaned); out != nil {
		return out
	}

	// Providers often surround the object with prose; take the outermost
	// brace-delimited slice and retry.
	if slice, ok := sliceJSONObject(cleaned); ok {
		if out := tryParse(slice); out != nil {
			return out
		}
	}

	return degradedResult(raw, originalQuery)
}

// tryParse accepts the text only when it is a well-formed object carrying
// either the single-item or the menu shape.
func tryParse(text string) *apimodels.Outcome {
	var out apimodels.Outcome
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return nil
	}

	if len(out.Items) > 0 {
		out.MenuAnalysis = true
		for i := range out.Items {
			if !out.Items[i].SafetyLevel.Valid() {
				out.Items[i].SafetyLevel = apimodels.SafetyLevelCaution
			}
		}
		out.NormalizeLists()
		return &out
	}

	if out.Item != "" && out.SafetyLevel != "" {
		if !out.SafetyLevel.Valid() {
			out.SafetyLevel = apimodels.SafetyLevelCaution
		}
		out.NormalizeLists()
		return &out
	}

	return nil
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	// Drop an optional language tag on the opening fence line.
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		firstLine := strings.TrimSpace(s[:idx])
		if len(firstLine) <= 10 && !strings.ContainsAny(firstLine, "{}") {
			s = s[idx+1:]
		}
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func sliceJSONObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start == -1 || end == -1 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}

func degradedResult(raw, originalQuery string) *apimodels.Outcome {
	item := strings.TrimSpace(originalQuery)
	if item == "" || len(item) > longQueryThreshold {
		item = "Analyzed item"
	}

	summary := strings.TrimSpace(raw)
	if summary == "" {
		summary = degradedApology
	} else if len(summary) > summaryPrefixLen {
		// Back up to a rune boundary so the cut never leaves a partial
		// multi-byte sequence in the summary.
		cut := summaryPrefixLen
		for cut > 0 && !utf8.RuneStart(summary[cut]) {
			cut--
		}
		summary = summary[:cut]
	}

	return &apimodels.Outcome{
		Item:            item,
		SafetyLevel:     apimodels.SafetyLevelCaution,
		Summary:         summary,
		DirectRisks:     []string{},
		GeneralRisks:    []string{},
		Recommendations: []string{"Consult your healthcare provider for more information", "Try again with a simpler or clearer question"},
		TrimesterNotes:  &apimodels.TrimesterNotes{General: "Please discuss with your doctor."},
		Sources:         []string{DegradedSource},
	}
}
