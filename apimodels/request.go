package apimodels

// SafetyRequest is the inbound payload for a safety check. At least one of
// Query or Image must be present; the HTTP boundary rejects requests that
// carry neither before the resolver is invoked.
type SafetyRequest struct {
	// Query is a free-text item to look up (food, activity, medication,
	// skincare ingredient).
	Query string `json:"query,omitempty"`

	// Image is an optional data URL ("data:<mediaType>;base64,<data>")
	// containing a photo of a menu, ingredient list, or product label.
	Image string `json:"image,omitempty"`

	// Trimester narrows trimester-specific notes (1, 2, or 3; 0 means
	// no preference).
	Trimester int `json:"trimester,omitempty"`

	// DatabaseHint carries the display name of a near match from the
	// knowledge base, forwarded to the provider prompt.
	DatabaseHint string `json:"databaseHint,omitempty"`
}

// ErrorResponse is the structured failure body returned by the boundary.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
