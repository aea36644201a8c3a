package apimodels

import (
	"bytes"
	"encoding/json"
)

// SafetyLevel is the three-valued verdict attached to every result.
type SafetyLevel string

const (
	SafetyLevelSafe    SafetyLevel = "safe"
	SafetyLevelCaution SafetyLevel = "caution"
	SafetyLevelAvoid   SafetyLevel = "avoid"
)

// Valid reports whether the level is one of the three known values.
func (l SafetyLevel) Valid() bool {
	switch l {
	case SafetyLevelSafe, SafetyLevelCaution, SafetyLevelAvoid:
		return true
	}
	return false
}

// TrimesterNotes is either a single note that applies to the whole
// pregnancy, or one note per trimester. It marshals as a bare JSON string
// in the former case and as a {"t1","t2","t3"} object in the latter,
// matching what providers are instructed to emit.
type TrimesterNotes struct {
	General string `json:"-"`
	T1      string `json:"t1,omitempty"`
	T2      string `json:"t2,omitempty"`
	T3      string `json:"t3,omitempty"`
}

// Structured reports whether per-trimester notes are present.
func (n *TrimesterNotes) Structured() bool {
	return n != nil && (n.T1 != "" || n.T2 != "" || n.T3 != "")
}

// ForTrimester returns the note for trimester t (1-3), or "" if no
// structured note exists for it.
func (n *TrimesterNotes) ForTrimester(t int) string {
	if n == nil {
		return ""
	}
	switch t {
	case 1:
		return n.T1
	case 2:
		return n.T2
	case 3:
		return n.T3
	}
	return ""
}

func (n TrimesterNotes) MarshalJSON() ([]byte, error) {
	if n.T1 == "" && n.T2 == "" && n.T3 == "" {
		return json.Marshal(n.General)
	}
	type structured TrimesterNotes
	return json.Marshal(structured(n))
}

func (n *TrimesterNotes) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		return json.Unmarshal(data, &n.General)
	}
	type structured TrimesterNotes
	var s structured
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*n = TrimesterNotes(s)
	return nil
}

// MenuItem is the lighter-weight per-item entry of a menu analysis.
type MenuItem struct {
	Item        string      `json:"item"`
	SafetyLevel SafetyLevel `json:"safetyLevel"`
	Summary     string      `json:"summary"`
}

// Outcome is the single result shape returned to callers. It is a tagged
// union: a single-item safety result, or a menu analysis when Items is
// non-empty. Callers must check IsMenu before reading single-item fields.
type Outcome struct {
	// Single-item fields.
	Item            string          `json:"item,omitempty"`
	SafetyLevel     SafetyLevel     `json:"safetyLevel,omitempty"`
	Summary         string          `json:"summary,omitempty"`
	DirectRisks     []string        `json:"directRisks"`
	GeneralRisks    []string        `json:"generalRisks"`
	Recommendations []string        `json:"recommendations"`
	TrimesterNotes  *TrimesterNotes `json:"trimesterNotes,omitempty"`

	// Menu-analysis fields.
	MenuAnalysis  bool       `json:"menuAnalysis,omitempty"`
	AnalysisType  string     `json:"analysisType,omitempty"` // menu | ingredients | product
	Items         []MenuItem `json:"items,omitempty"`
	OverallAdvice string     `json:"overallAdvice,omitempty"`

	// Shared fields.
	Sources   []string `json:"sources"`
	FromCache bool     `json:"fromCache,omitempty"`
}

// IsMenu reports whether the outcome is the multi-item menu variant.
func (o *Outcome) IsMenu() bool {
	return o.MenuAnalysis || len(o.Items) > 0
}

// NormalizeLists replaces nil slices with empty ones so consumers never
// see null where a sequence is expected.
func (o *Outcome) NormalizeLists() {
	if o.DirectRisks == nil {
		o.DirectRisks = []string{}
	}
	if o.GeneralRisks == nil {
		o.GeneralRisks = []string{}
	}
	if o.Recommendations == nil {
		o.Recommendations = []string{}
	}
	if o.Sources == nil {
		o.Sources = []string{}
	}
}
