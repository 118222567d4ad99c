package jobs

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const (
	AdzunaName = "Adzuna"

	adzunaURL            = "https://api.adzuna.com"
	adzunaSearchPath     = "/v1/api/jobs/%s/search/1"
	adzunaDefaultCountry = "in"
	adzunaSortBy         = "relevance"
	adzunaPerPage        = 10
)

// Adzuna searches the Adzuna jobs API using the first skill as the search phrase.
type Adzuna struct {
	client *Client

	AppID          string
	AppKey         string
	Country        string
	ResultsPerPage int
	APIURL         string
}

type adzunaResponse struct {
	Results []Posting `json:"results"`
}

// NewAdzuna returns an Adzuna provider with the default country and page size.
func NewAdzuna(client *Client, appID, appKey string) *Adzuna {
	return &Adzuna{
		client:         client,
		AppID:          strings.TrimSpace(appID),
		AppKey:         strings.TrimSpace(appKey),
		Country:        adzunaDefaultCountry,
		ResultsPerPage: adzunaPerPage,
		APIURL:         adzunaURL,
	}
}

func (a *Adzuna) Name() string { return AdzunaName }

func (a *Adzuna) Fetch(ctx context.Context, skills []string) ([]Posting, error) {
	if len(skills) == 0 {
		return []Posting{}, nil
	}

	if a.AppID == "" || a.AppKey == "" {
		return nil, fmt.Errorf("adzuna app id and app key: %w", ErrMissingCredentials)
	}

	country := strings.ToLower(strings.TrimSpace(a.Country))
	if country == "" {
		country = adzunaDefaultCountry
	}

	perPage := a.ResultsPerPage
	if perPage <= 0 {
		perPage = adzunaPerPage
	}

	q := url.Values{}
	q.Set("app_id", a.AppID)
	q.Set("app_key", a.AppKey)
	q.Set("what", skills[0])
	q.Set("sort_by", adzunaSortBy)
	q.Set("results_per_page", strconv.Itoa(perPage))

	endpoint := strings.TrimRight(a.APIURL, "/") + fmt.Sprintf(adzunaSearchPath, url.PathEscape(country))

	var response adzunaResponse
	if err := a.client.getJSON(ctx, endpoint, q, &response, a.AppID, a.AppKey); err != nil {
		return nil, err
	}

	if response.Results == nil {
		return []Posting{}, nil
	}

	return response.Results, nil
}
