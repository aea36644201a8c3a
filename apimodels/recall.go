package apimodels

// Recall is one entry in the supplementary food-recall alerts view,
// aggregated from FDA/USDA feeds.
type Recall struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Product       string `json:"product"`
	Brand         string `json:"brand"`
	Description   string `json:"description"`
	Link          string `json:"link"`
	Date          string `json:"date"`
	Contaminant   string `json:"contaminant"`
	PregnancyRisk string `json:"pregnancyRisk"` // high | moderate
	Status        string `json:"status"`        // Announced | Ongoing | Updated | Closed
	Source        string `json:"source"`
}

// RecallsResponse is the payload of the recalls endpoint.
type RecallsResponse struct {
	Recalls []Recall `json:"recalls"`
	Source  string   `json:"source"`
}
