package jobs

import (
	"context"
	"strings"
)

const (
	RemotiveName = "Remotive"

	remotiveURL = "https://remotive.com/api/remote-jobs"
)

// Remotive downloads the public remote-jobs feed and keeps the postings whose
// title or description mentions any of the skills.
type Remotive struct {
	client *Client

	APIURL string
}

type remotiveResponse struct {
	Jobs []Posting `json:"jobs"`
}

func NewRemotive(client *Client) *Remotive {
	return &Remotive{
		client: client,
		APIURL: remotiveURL,
	}
}

func (r *Remotive) Name() string { return RemotiveName }

func (r *Remotive) Fetch(ctx context.Context, skills []string) ([]Posting, error) {
	keywords := lowerNonEmpty(skills)
	// Nothing in the feed can match an empty keyword list.
	if len(keywords) == 0 {
		return []Posting{}, nil
	}

	var response remotiveResponse
	if err := r.client.getJSON(ctx, r.APIURL, nil, &response); err != nil {
		return nil, err
	}

	return filterBySkills(response.Jobs, keywords), nil
}

// filterBySkills keeps postings whose lower-cased "title description" contains any keyword.
func filterBySkills(postings []Posting, keywords []string) []Posting {
	filtered := make([]Posting, 0)
	for _, p := range postings {
		if p == nil {
			continue
		}

		haystack := strings.ToLower(p.text("title") + " " + p.text("description"))
		for _, kw := range keywords {
			if strings.Contains(haystack, kw) {
				filtered = append(filtered, p)
				break
			}
		}
	}
	return filtered
}

func lowerNonEmpty(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			out = append(out, s)
		}
	}
	return out
}
