// Package recalls aggregates FDA/USDA recall feeds for the supplementary
// alerts view. Sources are fetched in parallel with a per-source timeout
// so one slow feed never blocks the others; failures are logged and the
// remaining sources still contribute.
package recalls

import (
	"context"
	"encoding/base64"
	"encoding/xml"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"sort"
	"strings"
	"time"

	"bumpwise/apimodels"
	"bumpwise/internal/config"
)

var defaultSources = []string{
	// FDA feeds
	"https://www.fda.gov/about-fda/contact-fda/stay-informed/rss-feeds/food-safety-recalls/rss.xml",
	"https://www.fda.gov/about-fda/contact-fda/stay-informed/rss-feeds/recalls/rss.xml",
	"https://www.fda.gov/about-fda/contact-fda/stay-informed/rss-feeds/food-allergies/rss.xml",
	"https://www.fda.gov/about-fda/contact-fda/stay-informed/rss-feeds/press-releases/rss.xml",
	"https://www.fda.gov/about-fda/contact-fda/stay-informed/rss-feeds/biologics/rss.xml",
	"https://www.fda.gov/about-fda/contact-fda/stay-informed/rss-feeds/drugs/rss.xml",
	// recalls.gov consolidated feeds
	"https://www.recalls.gov/rss/fda.rss",
	"https://www.recalls.gov/rss/usda.rss",
	// USDA FSIS meat/poultry recalls
	"https://www.fsis.usda.gov/fsis-rss-feeds/recalls-rss-feed.xml",
	"https://www.fsis.usda.gov/recalls/rss.xml",
}

const (
	perFeedLimit = 20
	userAgent    = "bumpwise/1.0 (Food Safety Monitor)"
)

type Fetcher struct {
	sources       []string
	client        *http.Client
	sourceTimeout time.Duration
	maxItems      int
}

// NewFetcher builds a fetcher over the default FDA/USDA feeds; explicit
// sources override them (used by tests).
func NewFetcher(cfg *config.RecallsConfig, sources ...string) *Fetcher {
	if len(sources) == 0 {
		sources = defaultSources
	}
	return &Fetcher{
		sources:       sources,
		client:        &http.Client{},
		sourceTimeout: cfg.SourceTimeout,
		maxItems:      cfg.MaxItems,
	}
}

// Fetch queries every source in parallel and returns the merged,
// deduplicated, newest-first recall list.
func (f *Fetcher) Fetch(ctx context.Context) []apimodels.Recall {
	results := make(chan []apimodels.Recall, len(f.sources))

	for _, source := range f.sources {
		go func(url string) {
			results <- f.fetchOne(ctx, url)
		}(source)
	}

	var all []apimodels.Recall
	for range f.sources {
		all = append(all, <-results...)
	}

	unique := dedupe(all)
	sort.SliceStable(unique, func(i, j int) bool {
		return parseDate(unique[i].Date).After(parseDate(unique[j].Date))
	})

	if len(unique) > f.maxItems {
		unique = unique[:f.maxItems]
	}
	return unique
}

func (f *Fetcher) fetchOne(ctx context.Context, url string) []apimodels.Recall {
	ctx, cancel := context.WithTimeout(ctx, f.sourceTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/rss+xml, application/xml, text/xml")

	resp, err := f.client.Do(req)
	if err != nil {
		slog.Debug("recall feed unreachable", "url", url, "error", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Debug("recall feed returned non-OK status", "url", url, "status", resp.StatusCode)
		return nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil
	}
	return parseFeed(body)
}

type rssDocument struct {
	Items []rssItem `xml:"channel>item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate"`
}

func parseFeed(data []byte) []apimodels.Recall {
	var doc rssDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		slog.Debug("recall feed parse failed", "error", err)
		return nil
	}

	var recalls []apimodels.Recall
	for _, item := range doc.Items {
		title := strings.TrimSpace(item.Title)
		if title == "" {
			continue
		}
		fullText := strings.ToLower(title + " " + item.Description)
		if !isRelevant(fullText) {
			continue
		}

		contaminant := detectContaminant(fullText)
		risk := "moderate"
		if contaminant == "Listeria" || contaminant == "Cronobacter" {
			risk = "high"
		}

		recalls = append(recalls, apimodels.Recall{
			ID:            "rss-" + base64ID(title),
			Title:         title,
			Product:       title,
			Brand:         extractBrand(title),
			Description:   stripHTML(item.Description),
			Link:          strings.TrimSpace(item.Link),
			Date:          formatDate(item.PubDate),
			Contaminant:   contaminant,
			PregnancyRisk: risk,
			Status:        detectStatus(fullText),
			Source:        "FDA RSS",
		})
		if len(recalls) >= perFeedLimit {
			break
		}
	}
	return recalls
}

var relevanceKeywords = []string{
	// pathogens
	"listeria", "salmonella", "e. coli", "ecoli", "campylobacter",
	"botulism", "cronobacter", "hepatitis", "norovirus", "clostridium",
	"vibrio", "shigella", "cyclospora",
	// general food safety terms
	"contamination", "contaminated", "food recall", "voluntary recall",
	"health risk", "food safety",
	// food products
	"cheese", "dairy", "milk", "meat", "poultry", "seafood", "fish",
	"produce", "vegetable", "fruit", "lettuce", "spinach",
}

func isRelevant(text string) bool {
	for _, kw := range relevanceKeywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func detectContaminant(text string) string {
	switch {
	case strings.Contains(text, "listeria"):
		return "Listeria"
	case strings.Contains(text, "salmonella"):
		return "Salmonella"
	case strings.Contains(text, "e. coli") || strings.Contains(text, "ecoli"):
		return "E. coli"
	case strings.Contains(text, "campylobacter"):
		return "Campylobacter"
	case strings.Contains(text, "cronobacter"):
		return "Cronobacter"
	case strings.Contains(text, "botulism"):
		return "Botulism"
	case strings.Contains(text, "hepatitis"):
		return "Hepatitis A"
	case strings.Contains(text, "norovirus"):
		return "Norovirus"
	}
	return "Unknown"
}

func detectStatus(text string) string {
	switch {
	case strings.Contains(text, "investigat") || strings.Contains(text, "ongoing"):
		return "Ongoing"
	case strings.Contains(text, "update") || strings.Contains(text, "additional") || strings.Contains(text, "expanded"):
		return "Updated"
	case strings.Contains(text, "terminated") || strings.Contains(text, "completed") ||
		strings.Contains(text, "closed") || strings.Contains(text, "resolved") ||
		strings.Contains(text, "no longer"):
		return "Closed"
	}
	return "Announced"
}

var brandSplitRe = regexp.MustCompile(`(?i)recalls?|issues|announces`)

// extractBrand guesses the company name; recall titles usually lead with
// it ("Acme Foods Recalls ...").
func extractBrand(title string) string {
	parts := brandSplitRe.Split(title, 2)
	if len(parts) > 0 {
		lead := strings.TrimSpace(parts[0])
		if len(lead) > 3 && len(lead) < 100 {
			return lead
		}
	}
	words := strings.Fields(title)
	if len(words) > 3 {
		words = words[:3]
	}
	return strings.Join(words, " ")
}

// dedupe drops entries whose titles are equal, or share a 30-character
// prefix when both are long (feeds repeat the same recall with slightly
// different suffixes).
func dedupe(recalls []apimodels.Recall) []apimodels.Recall {
	var unique []apimodels.Recall
	for _, r := range recalls {
		t1 := strings.ToLower(r.Title)
		dup := false
		for _, seen := range unique {
			t2 := strings.ToLower(seen.Title)
			if t1 == t2 || (len(t1) > 30 && len(t2) > 30 && t1[:30] == t2[:30]) {
				dup = true
				break
			}
		}
		if !dup {
			unique = append(unique, r)
		}
	}
	return unique
}

var tagRe = regexp.MustCompile(`<[^>]*>`)

func stripHTML(s string) string {
	s = tagRe.ReplaceAllString(s, "")
	replacer := strings.NewReplacer(
		"&nbsp;", " ",
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
	)
	return strings.TrimSpace(replacer.Replace(s))
}

var pubDateLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
}

func parsePubDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range pubDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func formatDate(pubDate string) string {
	t, ok := parsePubDate(pubDate)
	if !ok {
		return "Recent"
	}
	return t.Format("1/2/2006")
}

func parseDate(formatted string) time.Time {
	t, err := time.Parse("1/2/2006", formatted)
	if err != nil {
		return time.Time{}
	}
	return t
}

func base64ID(s string) string {
	encoded := base64.StdEncoding.EncodeToString([]byte(s))
	if len(encoded) > 20 {
		encoded = encoded[:20]
	}
	return encoded
}
