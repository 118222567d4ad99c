// Package report turns an analysis into the records shown to the user.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spigell/careerconnect/internal/analyzer"
	"github.com/spigell/careerconnect/internal/jobs"
)

// DefaultLimit is how many jobs are shown per provider.
const DefaultLimit = 10

const (
	NoticeNoSkills = "No skills detected in your resume."
	NoticeNoJobs   = "No matching jobs found. Try adjusting your resume or skills."
)

// Section holds the jobs of a single provider.
type Section struct {
	Provider string      `json:"provider"`
	Total    int         `json:"total"`
	Jobs     []jobs.Card `json:"jobs"`
}

type Report struct {
	RunID     string    `json:"run_id,omitempty"`
	Skills    []string  `json:"skills"`
	Providers []Section `json:"providers"`
	Notice    string    `json:"notice,omitempty"`
}

// Build shapes an analysis for display. Sections follow the order of names,
// falling back to the analysis provider order when names is empty.
// Each section keeps at most limit cards; limit <= 0 means DefaultLimit.
func Build(analysis *analyzer.Analysis, names []string, limit int) *Report {
	if limit <= 0 {
		limit = DefaultLimit
	}

	r := &Report{
		Skills:    []string{},
		Providers: []Section{},
	}
	if analysis == nil {
		r.Notice = NoticeNoSkills
		return r
	}

	r.RunID = analysis.RunID
	r.Skills = analysis.Skills.Slice()

	if len(names) == 0 {
		names = analysis.Providers
	}

	for _, name := range names {
		postings := analysis.Jobs[name]
		r.Providers = append(r.Providers, Section{
			Provider: name,
			Total:    len(postings),
			Jobs:     jobs.Cards(postings, limit),
		})
	}

	switch {
	case analysis.Skills.Empty():
		r.Notice = NoticeNoSkills
	case analysis.Jobs.Empty():
		r.Notice = NoticeNoJobs
	}

	return r
}

// Section returns the section for provider, or nil when it is not part of the report.
func (r *Report) Section(provider string) *Section {
	for i := range r.Providers {
		if strings.EqualFold(r.Providers[i].Provider, provider) {
			return &r.Providers[i]
		}
	}
	return nil
}

// Cards returns all shown cards in section order.
func (r *Report) Cards() []jobs.Card {
	cards := make([]jobs.Card, 0)
	for _, s := range r.Providers {
		cards = append(cards, s.Jobs...)
	}
	return cards
}

// WriteSkills prints the detected skills, or the no-skills notice.
func (r *Report) WriteSkills(w io.Writer) error {
	if len(r.Skills) == 0 {
		_, err := fmt.Fprintln(w, NoticeNoSkills)
		return err
	}

	_, err := fmt.Fprintf(w, "Your skills: %s\n", strings.Join(r.Skills, ", "))
	return err
}

// WriteText prints skills followed by every provider's jobs.
func (r *Report) WriteText(w io.Writer) error {
	if err := r.WriteSkills(w); err != nil {
		return err
	}

	if r.Notice != "" {
		if r.Notice != NoticeNoSkills {
			_, err := fmt.Fprintln(w, r.Notice)
			return err
		}
		return nil
	}

	for _, s := range r.Providers {
		if err := s.WriteText(w); err != nil {
			return err
		}
	}

	return nil
}

// WriteText prints the section heading and its job cards.
func (s Section) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "\n%s (%d shown of %d)\n", s.Provider, len(s.Jobs), s.Total); err != nil {
		return err
	}

	for _, card := range s.Jobs {
		if _, err := fmt.Fprintf(w, "- %s\n  %s | %s\n  %s\n", card.Title, card.Company, card.Location, card.URL); err != nil {
			return err
		}
	}

	return nil
}

// DumpToTmpFile writes the report as indented JSON to a new temporary file
// and returns its name.
func (r *Report) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "careerconnect_jobs_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return "", err
	}
	return file.Name(), nil
}
