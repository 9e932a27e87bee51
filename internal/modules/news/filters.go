package news

import (
	"regexp"
	"strings"

	"github.com/jurnalfx/jurnalfx/internal/clients/rss2json"
)

// highImpactKeywords mark releases and speakers that regularly move
// the major pairs.
var highImpactKeywords = []string{
	"nfp", "non-farm", "nonfarm",
	"fed", "fomc", "federal reserve",
	"ecb", "boe", "boj",
	"interest rate", "rate decision", "rate hike", "rate cut",
	"cpi", "inflation",
	"gdp",
	"unemployment",
	"powell", "lagarde",
}

var bullishKeywords = []string{
	"rally", "surge", "gain", "rise", "bullish", "strong", "growth",
	"recovery", "optimism", "higher", "boost", "soar",
}

var bearishKeywords = []string{
	"fall", "drop", "decline", "bearish", "weak", "recession",
	"crisis", "fear", "lower", "plunge", "slump", "concern",
}

// currencyOrder fixes the grouping order so responses are stable.
var currencyOrder = []string{"USD", "EUR", "GBP", "JPY", "AUD", "CAD", "CHF", "NZD"}

// OtherCurrency buckets items that mention none of the known currencies.
const OtherCurrency = "Other"

// Sentiment is the aggregate mood of the cached headlines.
type Sentiment struct {
	Sentiment string  `json:"sentiment"`
	Strength  float64 `json:"strength"`
	Bullish   int     `json:"bullishCount"`
	Bearish   int     `json:"bearishCount"`
}

// FilterByPairs keeps items that mention either leg of any given pair.
// Pair legs are matched as whole words, so "EUR/USD" matches items
// mentioning EUR or USD but not "europe".
func FilterByPairs(items []rss2json.Item, pairs []string) []rss2json.Item {
	if len(pairs) == 0 {
		return items
	}

	var patterns []*regexp.Regexp
	for _, pair := range pairs {
		for _, leg := range strings.Split(pair, "/") {
			leg = strings.TrimSpace(leg)
			if leg == "" {
				continue
			}
			patterns = append(patterns, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(leg)+`\b`))
		}
	}

	var filtered []rss2json.Item
	for _, item := range items {
		text := item.Title + " " + item.Description
		for _, p := range patterns {
			if p.MatchString(text) {
				filtered = append(filtered, item)
				break
			}
		}
	}
	return filtered
}

// HighImpact keeps items whose title or description mentions a
// high-impact economic release or central bank.
func HighImpact(items []rss2json.Item) []rss2json.Item {
	var filtered []rss2json.Item
	for _, item := range items {
		text := strings.ToLower(item.Title + " " + item.Description)
		for _, kw := range highImpactKeywords {
			if strings.Contains(text, kw) {
				filtered = append(filtered, item)
				break
			}
		}
	}
	return filtered
}

// GroupByCurrency buckets items under the first known currency they
// mention, falling back to OtherCurrency. Only non-empty buckets appear
// in the result.
func GroupByCurrency(items []rss2json.Item) map[string][]rss2json.Item {
	groups := make(map[string][]rss2json.Item)
	for _, item := range items {
		text := strings.ToUpper(item.Title + " " + item.Description)
		bucket := OtherCurrency
		for _, cur := range currencyOrder {
			if strings.Contains(text, cur) {
				bucket = cur
				break
			}
		}
		groups[bucket] = append(groups[bucket], item)
	}
	return groups
}

// MarketSentiment counts bullish versus bearish keywords across all item
// titles and descriptions. Strength is the absolute count difference over
// the total, 0 when no keyword matched at all.
func MarketSentiment(items []rss2json.Item) Sentiment {
	var bullish, bearish int
	for _, item := range items {
		text := strings.ToLower(item.Title + " " + item.Description)
		for _, kw := range bullishKeywords {
			bullish += strings.Count(text, kw)
		}
		for _, kw := range bearishKeywords {
			bearish += strings.Count(text, kw)
		}
	}

	result := Sentiment{Bullish: bullish, Bearish: bearish}
	total := bullish + bearish
	switch {
	case total == 0 || bullish == bearish:
		result.Sentiment = "neutral"
	case bullish > bearish:
		result.Sentiment = "bullish"
	default:
		result.Sentiment = "bearish"
	}
	if total > 0 {
		diff := bullish - bearish
		if diff < 0 {
			diff = -diff
		}
		result.Strength = float64(diff) / float64(total)
	}
	return result
}

// FormatForPrompt renders up to limit items as a compact numbered list
// for inclusion in a model prompt.
func FormatForPrompt(items []rss2json.Item, limit int) string {
	if limit <= 0 || limit > len(items) {
		limit = len(items)
	}
	if limit == 0 {
		return "No recent market news available."
	}

	var b strings.Builder
	for i := 0; i < limit; i++ {
		item := items[i]
		b.WriteString(strings.TrimSpace(item.Title))
		if item.Description != "" {
			b.WriteString(": ")
			b.WriteString(strings.TrimSpace(item.Description))
		}
		b.WriteString("\n")
	}
	return b.String()
}
