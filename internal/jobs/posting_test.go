package jobs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "plain string", value: "Acme", want: "Acme"},
		{name: "nested display name", value: map[string]any{"display_name": "Acme"}, want: "Acme"},
		{name: "nested without display name", value: map[string]any{"label": "Acme"}, want: "Company"},
		{name: "nested blank display name", value: map[string]any{"display_name": " "}, want: "Company"},
		{name: "missing", value: nil, want: "Company"},
		{name: "blank string", value: "   ", want: "Company"},
		{name: "number", value: float64(42), want: "42"},
		{name: "list", value: []any{"a"}, want: "Company"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, DisplayName(tt.value, PlaceholderCompany))
		})
	}
}

func TestNewCard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload string
		want    Card
	}{
		{
			name: "adzuna shape",
			payload: `{
				"title": "Python Developer",
				"company": {"display_name": "Acme", "__CLASS__": "Adzuna::API::Response::Company"},
				"location": {"display_name": "Bengaluru, Karnataka", "area": ["India", "Karnataka"]},
				"redirect_url": "https://adzuna.example/1"
			}`,
			want: Card{Title: "Python Developer", Company: "Acme", Location: "Bengaluru, Karnataka", URL: "https://adzuna.example/1"},
		},
		{
			name: "jooble shape",
			payload: `{
				"title": "React Engineer",
				"company": "Acme",
				"location": "Pune",
				"link": "https://jooble.example/2"
			}`,
			want: Card{Title: "React Engineer", Company: "Acme", Location: "Pune", URL: "https://jooble.example/2"},
		},
		{
			name: "remotive shape",
			payload: `{
				"title": "AWS Engineer",
				"company_name": "Remote Co",
				"candidate_required_location": "Worldwide",
				"url": "https://remotive.example/3"
			}`,
			want: Card{Title: "AWS Engineer", Company: "Remote Co", Location: "Worldwide", URL: "https://remotive.example/3"},
		},
		{
			name:    "empty record",
			payload: `{}`,
			want:    Card{Title: "Job Title", Company: "Company", Location: "Location", URL: "#"},
		},
		{
			name:    "redirect url preferred over url and link",
			payload: `{"redirect_url": "https://a", "url": "https://b", "link": "https://c"}`,
			want:    Card{Title: "Job Title", Company: "Company", Location: "Location", URL: "https://a"},
		},
		{
			name:    "blank redirect falls back to url",
			payload: `{"redirect_url": "", "url": "https://b", "link": "https://c"}`,
			want:    Card{Title: "Job Title", Company: "Company", Location: "Location", URL: "https://b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var p Posting
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &p))
			assert.Equal(t, tt.want, NewCard(p))
		})
	}
}

func TestNewCardNilPosting(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Card{Title: "Job Title", Company: "Company", Location: "Location", URL: "#"}, NewCard(nil))
}

func TestCards(t *testing.T) {
	t.Parallel()

	postings := make([]Posting, 0, 12)
	for i := 0; i < 12; i++ {
		postings = append(postings, Posting{"title": "job"})
	}

	assert.Len(t, Cards(postings, 10), 10)
	assert.Len(t, Cards(postings, 0), 12)
	assert.Empty(t, Cards(nil, 10))
	assert.NotNil(t, Cards(nil, 10))
}

func TestNewCardFieldTypes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		posting Posting
		want    Card
	}{
		{
			name:    "numbers render as text",
			posting: Posting{"title": float64(1234), "location": float64(560001)},
			want:    Card{Title: "1234", Company: "Company", Location: "560001", URL: "#"},
		},
		{
			name:    "record without display name falls back to company_name",
			posting: Posting{"company": map[string]any{"id": "7"}, "company_name": "Remote Co"},
			want:    Card{Title: "Job Title", Company: "Remote Co", Location: "Location", URL: "#"},
		},
		{
			name:    "list values become placeholders",
			posting: Posting{"title": []any{"a", "b"}, "location": []any{"India"}},
			want:    Card{Title: "Job Title", Company: "Company", Location: "Location", URL: "#"},
		},
		{
			name:    "record url is skipped",
			posting: Posting{"redirect_url": map[string]any{"href": "https://a"}, "link": " https://c "},
			want:    Card{Title: "Job Title", Company: "Company", Location: "Location", URL: "https://c"},
		},
		{
			name:    "null values become placeholders",
			posting: Posting{"title": nil, "company": nil, "url": nil},
			want:    Card{Title: "Job Title", Company: "Company", Location: "Location", URL: "#"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, NewCard(tt.posting))
		})
	}
}

func TestDecodeCard(t *testing.T) {
	t.Parallel()

	raw, err := decodeCard(Posting{
		"title":        " Go Developer ",
		"company":      map[string]any{"display_name": "Acme"},
		"redirect_url": "https://a",
		"extra":        true,
	})
	require.NoError(t, err)

	assert.Equal(t, displayName("Go Developer"), raw.Title)
	assert.Equal(t, displayName("Acme"), raw.Company)
	assert.Equal(t, "https://a", raw.RedirectURL)
	assert.Empty(t, raw.Location)
}
