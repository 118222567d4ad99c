package jobs

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Placeholders shown for fields a provider did not supply.
const (
	PlaceholderTitle    = "Job Title"
	PlaceholderCompany  = "Company"
	PlaceholderLocation = "Location"
	PlaceholderURL      = "#"
)

// Posting is a job record exactly as a provider returned it.
type Posting map[string]any

// Card is the provider-independent view of a posting.
type Card struct {
	Title    string `json:"title"`
	Company  string `json:"company"`
	Location string `json:"location"`
	URL      string `json:"url"`
}

// displayName marks fields that may arrive as a plain string or as a record
// carrying display_name.
type displayName string

var (
	displayNameType = reflect.TypeOf(displayName(""))
	stringType      = reflect.TypeOf("")
)

type rawCard struct {
	Title    displayName `json:"title"`
	Company  displayName `json:"company"`
	Location displayName `json:"location"`
	// Remotive names these fields differently.
	CompanyName       displayName `json:"company_name"`
	CandidateLocation displayName `json:"candidate_required_location"`

	RedirectURL string `json:"redirect_url"`
	URL         string `json:"url"`
	Link        string `json:"link"`
}

// NewCard normalizes a posting. Company and location may be plain strings or
// records carrying a display_name; the display name wins for records.
func NewCard(p Posting) Card {
	raw, err := decodeCard(p)
	if err != nil {
		raw = rawCard{}
	}

	company := raw.Company
	if isBlank(string(company)) {
		company = raw.CompanyName
	}

	location := raw.Location
	if isBlank(string(location)) {
		location = raw.CandidateLocation
	}

	return Card{
		Title:    orPlaceholder(string(raw.Title), PlaceholderTitle),
		Company:  orPlaceholder(string(company), PlaceholderCompany),
		Location: orPlaceholder(string(location), PlaceholderLocation),
		URL:      firstNonBlank(PlaceholderURL, raw.RedirectURL, raw.URL, raw.Link),
	}
}

// DisplayName renders v as a single string. Records are reduced to their
// display_name; anything missing or blank becomes placeholder.
func DisplayName(v any, placeholder string) string {
	switch typed := v.(type) {
	case Posting:
		return DisplayName(map[string]any(typed), placeholder)
	case map[string]any:
		name := typed["display_name"]
		if _, nested := name.(map[string]any); nested {
			return placeholder
		}
		return DisplayName(name, placeholder)
	default:
		return orPlaceholder(scalarString(v), placeholder)
	}
}

// Cards normalizes a list of postings, keeping at most limit entries when limit > 0.
func Cards(postings []Posting, limit int) []Card {
	if limit > 0 && len(postings) > limit {
		postings = postings[:limit]
	}

	cards := make([]Card, 0, len(postings))
	for _, p := range postings {
		cards = append(cards, NewCard(p))
	}

	return cards
}

func decodeCard(p Posting) (rawCard, error) {
	var raw rawCard

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: cardFieldHook,
		Result:     &raw,
		TagName:    "json",
	})
	if err != nil {
		return rawCard{}, err
	}

	if err := decoder.Decode(map[string]any(p)); err != nil {
		return rawCard{}, fmt.Errorf("decode posting: %w", err)
	}

	return raw, nil
}

// cardFieldHook flattens whatever a provider sent into the string the card field
// expects. Values that cannot be shown become "" and later the placeholder.
func cardFieldHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	switch to {
	case displayNameType:
		return displayName(DisplayName(data, "")), nil
	case stringType:
		return scalarString(data), nil
	default:
		return data, nil
	}
}

// scalarString renders JSON scalars; records and lists render as "".
func scalarString(v any) string {
	switch typed := v.(type) {
	case nil, map[string]any, Posting, []any:
		return ""
	case string:
		return strings.TrimSpace(typed)
	default:
		return fmt.Sprintf("%v", typed)
	}
}

func orPlaceholder(s, placeholder string) string {
	if isBlank(s) {
		return placeholder
	}
	return strings.TrimSpace(s)
}

func firstNonBlank(placeholder string, values ...string) string {
	for _, v := range values {
		if !isBlank(v) {
			return strings.TrimSpace(v)
		}
	}
	return placeholder
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// text returns the string value stored under key, or "" when absent or not a string.
func (p Posting) text(key string) string {
	s, _ := p[key].(string)
	return s
}
