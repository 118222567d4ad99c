package jobs

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

const (
	JoobleName = "Jooble"

	joobleURL             = "https://jooble.org/api"
	joobleDefaultLocation = "India"
	joobleMaxKeywords     = 3
)

// Jooble posts up to three skills as keywords to the Jooble search API.
type Jooble struct {
	client *Client

	APIKey   string
	Location string
	APIURL   string
}

type joobleRequest struct {
	Keywords string `json:"keywords"`
	Location string `json:"location"`
}

type joobleResponse struct {
	Jobs []Posting `json:"jobs"`
}

func NewJooble(client *Client, apiKey string) *Jooble {
	return &Jooble{
		client:   client,
		APIKey:   strings.TrimSpace(apiKey),
		Location: joobleDefaultLocation,
		APIURL:   joobleURL,
	}
}

func (j *Jooble) Name() string { return JoobleName }

func (j *Jooble) Fetch(ctx context.Context, skills []string) ([]Posting, error) {
	if len(skills) == 0 {
		return []Posting{}, nil
	}

	if j.APIKey == "" {
		return nil, fmt.Errorf("jooble api key: %w", ErrMissingCredentials)
	}

	if len(skills) > joobleMaxKeywords {
		skills = skills[:joobleMaxKeywords]
	}

	location := strings.TrimSpace(j.Location)
	if location == "" {
		location = joobleDefaultLocation
	}

	payload := joobleRequest{
		Keywords: strings.Join(skills, " "),
		Location: location,
	}

	endpoint := strings.TrimRight(j.APIURL, "/") + "/" + url.PathEscape(j.APIKey)

	var response joobleResponse
	if err := j.client.postJSON(ctx, endpoint, payload, &response, j.APIKey); err != nil {
		return nil, err
	}

	if response.Jobs == nil {
		return []Posting{}, nil
	}

	return response.Jobs, nil
}
