// Package foundit pulls postings from Foundit (formerly Monster India).
// Foundit serves a JSON search API; when that shape changes or the
// response is not JSON, the HTML card layout is parsed as a fallback.
package foundit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/PremDutta/pm-job-hub/internal/domain"
	"github.com/PremDutta/pm-job-hub/internal/scrape/fetch"
	"github.com/PremDutta/pm-job-hub/internal/scrape/util"
)

const pageLimit = 50

type Adapter struct {
	fc *fetch.Client
}

func New(fc *fetch.Client) *Adapter {
	return &Adapter{fc: fc.WithAccept("application/json")}
}

func (a *Adapter) Name() string { return "foundit" }

// searchResponse covers both shapes the API has served: a top-level
// jobSearchResponse wrapper and a bare jobs array.
type searchResponse struct {
	JobSearchResponse struct {
		Data []apiJob `json:"data"`
	} `json:"jobSearchResponse"`
	JobDetails []apiJob `json:"jobDetails"`
	Jobs       []apiJob `json:"jobs"`
}

type apiJob struct {
	Title       string          `json:"title"`
	CompanyName string          `json:"companyName"`
	Locations   string          `json:"locations"`
	Salary      string          `json:"salary"`
	Experience  string          `json:"exp"`
	PostedAt    string          `json:"updatedAt"`
	SeoURL      string          `json:"seoJdUrl"`
	Skills      json.RawMessage `json:"skills"`
}

func (a *Adapter) FetchPage(ctx context.Context, query, location string, page int) ([]domain.RawPosting, error) {
	u := fmt.Sprintf(
		"https://www.foundit.in/srp/results?query=%s&locations=%s&sort=1&limit=%d&page=%d",
		url.QueryEscape(query), url.QueryEscape(location), pageLimit, page+1,
	)

	body, err := a.fc.Get(ctx, u)
	if err != nil {
		return nil, err
	}

	if jobs := parseAPI(body); len(jobs) > 0 {
		out := make([]domain.RawPosting, 0, len(jobs))
		for _, j := range jobs {
			if j.Title == "" {
				continue
			}
			out = append(out, domain.RawPosting{
				Title:         j.Title,
				Company:       j.CompanyName,
				Location:      util.FirstNonEmpty(j.Locations, location),
				SalaryRaw:     j.Salary,
				ExperienceRaw: j.Experience,
				PostedRaw:     j.PostedAt,
				SkillsRaw:     skillsString(j.Skills),
				URL:           util.AbsURL("https://www.foundit.in", j.SeoURL),
				Source:        "Foundit",
			})
		}
		return out, nil
	}

	return parseHTML(body, location)
}

func parseAPI(body []byte) []apiJob {
	var res searchResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return nil
	}
	switch {
	case len(res.JobSearchResponse.Data) > 0:
		return res.JobSearchResponse.Data
	case len(res.JobDetails) > 0:
		return res.JobDetails
	default:
		return res.Jobs
	}
}

// skillsString tolerates the two encodings seen in the wild: a plain
// string and an array of strings.
func skillsString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return strings.Join(list, ", ")
	}
	return ""
}

func parseHTML(body []byte, location string) ([]domain.RawPosting, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("foundit parse: %w", err)
	}

	cards := util.FirstCards(doc, "div.card-apply-content", "div.srpResultCard", "div.jobTuple")

	var out []domain.RawPosting
	cards.Each(func(_ int, card *goquery.Selection) {
		title := util.FirstText(card, "h3.jobTitle", "div.jobTitle", "h3")
		if title == "" {
			return
		}
		out = append(out, domain.RawPosting{
			Title:         title,
			Company:       util.FirstText(card, "span.companyName", "div.companyName", "span.company-name"),
			Location:      util.FirstNonEmpty(util.FirstText(card, "div.details.location", "span.location"), location),
			SalaryRaw:     util.FirstText(card, "span.packageWrap", "span.salary"),
			ExperienceRaw: util.FirstText(card, "span.expWrap", "span.experience"),
			URL:           util.AbsURL("https://www.foundit.in", util.FirstAttr(card, "href", "a[href]")),
			Source:        "Foundit",
		})
	})
	return out, nil
}
