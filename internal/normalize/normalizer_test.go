package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/PremDutta/pm-job-hub/internal/config"
	"github.com/PremDutta/pm-job-hub/internal/domain"
)

func testTaxonomy() config.Taxonomy {
	return config.Taxonomy{
		Skills:         config.DefaultSkills(),
		WorkModeRules:  config.DefaultWorkModeRules(),
		SeniorityRules: config.DefaultSeniorityRules(),
	}
}

func TestExtractSkills(t *testing.T) {
	n := New(testTaxonomy())

	t.Run("word boundary matching", func(t *testing.T) {
		// "sql" must not fire inside "nosqlite"; "jira" has a boundary hit
		skills := n.ExtractSkills("We use nosqlitedb and Jira for sprint planning")
		assert.NotContains(t, skills, "sql")
		assert.Contains(t, skills, "jira")
		assert.Contains(t, skills, "sprint planning")
	})

	t.Run("deterministic vocabulary order", func(t *testing.T) {
		a := n.ExtractSkills("roadmap okr sql agile")
		b := n.ExtractSkills("agile sql okr roadmap")
		assert.Equal(t, a, b)
	})

	t.Run("cap at fifteen", func(t *testing.T) {
		text := "sql python analytics a/b testing agile scrum jira roadmap " +
			"user research data analysis metrics kpi okr b2b b2c saas api mobile"
		skills := n.ExtractSkills(text)
		assert.Len(t, skills, 15)
	})

	t.Run("empty text", func(t *testing.T) {
		assert.Empty(t, n.ExtractSkills(""))
	})
}

func TestDetectWorkMode(t *testing.T) {
	n := New(testTaxonomy())

	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "remote", text: "Product Manager (Remote, India)", want: domain.WorkModeRemote},
		{name: "wfh", text: "work from home opportunity", want: domain.WorkModeRemote},
		{name: "hybrid", text: "Hybrid role, 3 days in Bangalore office", want: domain.WorkModeHybrid},
		{name: "onsite", text: "On-site at Mumbai HQ", want: domain.WorkModeOnsite},
		{name: "remote beats hybrid", text: "remote or hybrid", want: domain.WorkModeRemote},
		{name: "no signal", text: "Product Manager, Payments", want: domain.WorkModeUnspecified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.DetectWorkMode(tt.text))
		})
	}
}

func TestDetectSeniority(t *testing.T) {
	n := New(testTaxonomy())

	tests := []struct {
		name  string
		title string
		want  string
	}{
		{name: "cpo", title: "Chief Product Officer", want: domain.SeniorityExecutive},
		{name: "vp", title: "VP Product", want: domain.SeniorityVPHead},
		{name: "head of", title: "Head of Product", want: domain.SeniorityVPHead},
		{name: "director over senior", title: "Senior Director of Product", want: domain.SeniorityDirector},
		{name: "principal", title: "Principal Product Manager", want: domain.SeniorityPrincipalGroup},
		{name: "group", title: "Group Product Manager", want: domain.SeniorityPrincipalGroup},
		{name: "senior", title: "Senior Product Manager", want: domain.SenioritySeniorLead},
		{name: "lead", title: "Product Lead", want: domain.SenioritySeniorLead},
		{name: "associate", title: "Associate Product Manager", want: domain.SeniorityEntryAPM},
		{name: "default mid", title: "Product Manager", want: domain.SeniorityMid},
		{name: "domain word stays mid", title: "Product Manager - Insurance", want: domain.SeniorityMid},
		{name: "numbered title stays mid", title: "Product Manager 3", want: domain.SeniorityMid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.DetectSeniority(tt.title))
		})
	}
}
