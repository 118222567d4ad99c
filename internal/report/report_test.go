package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"reflect"
	"testing"

	"github.com/spigell/careerconnect/internal/analyzer"
	"github.com/spigell/careerconnect/internal/jobs"
	"github.com/spigell/careerconnect/internal/search"
	"github.com/spigell/careerconnect/internal/skills"
)

var providerNames = []string{jobs.AdzunaName, jobs.RemotiveName, jobs.JoobleName}

func postings(n int) []jobs.Posting {
	out := make([]jobs.Posting, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, jobs.Posting{"title": fmt.Sprintf("job %d", i)})
	}
	return out
}

func TestBuild(t *testing.T) {
	t.Parallel()

	analysis := &analyzer.Analysis{
		RunID:     "run-1",
		Skills:    skills.NewSet("Python", "AWS"),
		Providers: providerNames,
		Jobs: search.Results{
			jobs.AdzunaName: {{
				"title":        "Python Developer",
				"company":      map[string]any{"display_name": "Acme"},
				"location":     map[string]any{"display_name": "Pune"},
				"redirect_url": "https://adzuna/1",
			}},
			jobs.RemotiveName: postings(12),
			jobs.JoobleName:   {},
		},
	}

	r := Build(analysis, nil, 0)

	if r.RunID != "run-1" {
		t.Fatalf("expected run id run-1, got %q", r.RunID)
	}
	if !reflect.DeepEqual(r.Skills, []string{"Python", "AWS"}) {
		t.Fatalf("unexpected skills: %v", r.Skills)
	}
	if r.Notice != "" {
		t.Fatalf("expected no notice, got %q", r.Notice)
	}
	if len(r.Providers) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(r.Providers))
	}

	adzuna := r.Providers[0]
	want := []jobs.Card{{Title: "Python Developer", Company: "Acme", Location: "Pune", URL: "https://adzuna/1"}}
	if adzuna.Provider != jobs.AdzunaName || !reflect.DeepEqual(adzuna.Jobs, want) {
		t.Fatalf("unexpected adzuna section: %+v", adzuna)
	}

	remotive := r.Section("remotive")
	if remotive == nil {
		t.Fatalf("expected remotive section")
	}
	if remotive.Total != 12 || len(remotive.Jobs) != DefaultLimit {
		t.Fatalf("expected 10 of 12 remotive jobs, got %d of %d", len(remotive.Jobs), remotive.Total)
	}

	jooble := r.Section(jobs.JoobleName)
	if jooble == nil || jooble.Jobs == nil || len(jooble.Jobs) != 0 {
		t.Fatalf("expected empty non-nil jooble section, got %+v", jooble)
	}

	if r.Section("Indeed") != nil {
		t.Fatalf("did not expect a section for an unknown provider")
	}
	if got := len(r.Cards()); got != 11 {
		t.Fatalf("expected 11 cards, got %d", got)
	}
}

func TestBuildNotices(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		analysis *analyzer.Analysis
		want     string
	}{
		{
			name:     "nil analysis",
			analysis: nil,
			want:     NoticeNoSkills,
		},
		{
			name:     "no skills",
			analysis: &analyzer.Analysis{Providers: providerNames},
			want:     NoticeNoSkills,
		},
		{
			name: "no jobs",
			analysis: &analyzer.Analysis{
				Skills:    skills.NewSet("Go"),
				Providers: providerNames,
				Jobs:      search.Results{jobs.AdzunaName: {}, jobs.RemotiveName: {}, jobs.JoobleName: {}},
			},
			want: NoticeNoJobs,
		},
		{
			name: "jobs found",
			analysis: &analyzer.Analysis{
				Skills:    skills.NewSet("Go"),
				Providers: providerNames,
				Jobs:      search.Results{jobs.AdzunaName: {}, jobs.RemotiveName: postings(1), jobs.JoobleName: {}},
			},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Build(tt.analysis, nil, DefaultLimit).Notice; got != tt.want {
				t.Fatalf("expected notice %q, got %q", tt.want, got)
			}
		})
	}
}

func TestBuildExplicitNamesAndLimit(t *testing.T) {
	t.Parallel()

	analysis := &analyzer.Analysis{
		Skills: skills.NewSet("Go"),
		Jobs:   search.Results{jobs.RemotiveName: postings(5)},
	}

	r := Build(analysis, providerNames, 2)

	if len(r.Providers) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(r.Providers))
	}
	if len(r.Providers[0].Jobs) != 0 {
		t.Fatalf("expected no adzuna jobs, got %d", len(r.Providers[0].Jobs))
	}
	if len(r.Providers[1].Jobs) != 2 || r.Providers[1].Total != 5 {
		t.Fatalf("expected 2 of 5 remotive jobs, got %d of %d", len(r.Providers[1].Jobs), r.Providers[1].Total)
	}
}

func TestWriteText(t *testing.T) {
	t.Parallel()

	r := &Report{
		Skills: []string{"Python", "React"},
		Providers: []Section{
			{Provider: jobs.AdzunaName, Total: 1, Jobs: []jobs.Card{{Title: "Dev", Company: "Acme", Location: "Pune", URL: "https://a"}}},
			{Provider: jobs.JoobleName, Jobs: []jobs.Card{}},
		},
	}

	var buf bytes.Buffer
	if err := r.WriteText(&buf); err != nil {
		t.Fatalf("write text: %v", err)
	}

	want := "Your skills: Python, React\n" +
		"\nAdzuna (1 shown of 1)\n" +
		"- Dev\n  Acme | Pune\n  https://a\n" +
		"\nJooble (0 shown of 0)\n"
	if buf.String() != want {
		t.Fatalf("expected %q, got %q", want, buf.String())
	}
}

func TestWriteTextNotices(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		report *Report
		want   string
	}{
		{
			name:   "no skills",
			report: &Report{Notice: NoticeNoSkills},
			want:   NoticeNoSkills + "\n",
		},
		{
			name:   "no jobs",
			report: &Report{Skills: []string{"Go"}, Notice: NoticeNoJobs},
			want:   "Your skills: Go\n" + NoticeNoJobs + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := tt.report.WriteText(&buf); err != nil {
				t.Fatalf("write text: %v", err)
			}
			if buf.String() != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, buf.String())
			}
		})
	}
}

func TestDumpToTmpFile(t *testing.T) {
	t.Parallel()

	r := &Report{
		RunID:     "run-2",
		Skills:    []string{"Go"},
		Providers: []Section{{Provider: jobs.RemotiveName, Total: 1, Jobs: []jobs.Card{{Title: "Gopher"}}}},
	}

	name, err := r.DumpToTmpFile()
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	t.Cleanup(func() { _ = os.Remove(name) })

	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatalf("read dump: %v", err)
	}

	var got Report
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("decode dump: %v", err)
	}
	if !reflect.DeepEqual(*r, got) {
		t.Fatalf("expected %+v, got %+v", *r, got)
	}
}
