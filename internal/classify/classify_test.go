package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/PremDutta/pm-job-hub/internal/config"
)

func TestIsTarget(t *testing.T) {
	c := New(config.DefaultIncludeTitles(), config.DefaultExcludeTitles())

	tests := []struct {
		name  string
		title string
		want  bool
	}{
		{name: "plain pm", title: "Product Manager", want: true},
		{name: "senior pm", title: "Senior Product Manager - Payments", want: true},
		{name: "product owner", title: "Product Owner (Fintech)", want: true},
		{name: "apm", title: "APM - Growth", want: true},
		{name: "head of product", title: "Head of Product", want: true},
		{name: "case insensitive", title: "pRoDuCt MaNaGeR", want: true},

		{name: "production manager excluded", title: "Production Manager", want: false},
		{name: "project manager excluded", title: "Project Manager", want: false},
		{name: "program manager excluded", title: "Technical Program Manager", want: false},
		{name: "pm substring but excluded", title: "PMO Analyst", want: false},
		{name: "exclusion wins over inclusion", title: "Product Manager / Project Manager", want: false},
		{name: "product analyst excluded", title: "Product Analyst", want: false},
		{name: "product designer excluded", title: "Product Designer", want: false},
		{name: "product marketing excluded", title: "Product Marketing Manager", want: false},

		{name: "unrelated role", title: "Software Engineer", want: false},
		{name: "empty title", title: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.IsTarget(tt.title))
		})
	}
}

func TestIsTargetCustomLists(t *testing.T) {
	c := New([]string{"designer"}, nil)
	assert.True(t, c.IsTarget("Product Designer"))
	assert.False(t, c.IsTarget("Product Manager"))
}
