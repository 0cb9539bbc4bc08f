package foundit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAPIShapes(t *testing.T) {
	t.Run("wrapped data array", func(t *testing.T) {
		body := []byte(`{"jobSearchResponse":{"data":[{"title":"Product Manager","companyName":"Acme"}]}}`)
		jobs := parseAPI(body)
		require.Len(t, jobs, 1)
		assert.Equal(t, "Acme", jobs[0].CompanyName)
	})

	t.Run("bare jobs array", func(t *testing.T) {
		body := []byte(`{"jobs":[{"title":"PM"},{"title":"APM"}]}`)
		assert.Len(t, parseAPI(body), 2)
	})

	t.Run("html instead of json", func(t *testing.T) {
		assert.Empty(t, parseAPI([]byte(`<html><body></body></html>`)))
	})
}

func TestSkillsString(t *testing.T) {
	assert.Equal(t, "sql, agile", skillsString([]byte(`"sql, agile"`)))
	assert.Equal(t, "sql, agile", skillsString([]byte(`["sql","agile"]`)))
	assert.Equal(t, "", skillsString(nil))
	assert.Equal(t, "", skillsString([]byte(`42`)))
}

func TestParseHTMLFallback(t *testing.T) {
	html := `
<div class="card-apply-content">
  <h3 class="jobTitle">Product Manager</h3>
  <span class="companyName">Acme</span>
  <span class="expWrap">4-7 years</span>
  <a href="/job/pm-1">view</a>
</div>`

	postings, err := parseHTML([]byte(html), "Bangalore")
	require.NoError(t, err)
	require.Len(t, postings, 1)

	p := postings[0]
	assert.Equal(t, "Product Manager", p.Title)
	assert.Equal(t, "Acme", p.Company)
	assert.Equal(t, "Bangalore", p.Location)
	assert.Equal(t, "4-7 years", p.ExperienceRaw)
	assert.Equal(t, "https://www.foundit.in/job/pm-1", p.URL)
	assert.Equal(t, "Foundit", p.Source)
}
