// Package indeed scrapes Indeed India search result pages.
package indeed

import (
	"bytes"
	"context"
	"fmt"
	"net/url"

	"github.com/PuerkitoBio/goquery"

	"github.com/PremDutta/pm-job-hub/internal/domain"
	"github.com/PremDutta/pm-job-hub/internal/scrape/fetch"
	"github.com/PremDutta/pm-job-hub/internal/scrape/util"
)

const (
	baseURL  = "https://in.indeed.com"
	pageSize = 10
)

type Adapter struct {
	fc *fetch.Client
}

func New(fc *fetch.Client) *Adapter { return &Adapter{fc: fc} }

func (a *Adapter) Name() string { return "indeed" }

func (a *Adapter) FetchPage(ctx context.Context, query, location string, page int) ([]domain.RawPosting, error) {
	u := fmt.Sprintf(
		"%s/jobs?q=%s&l=%s&start=%d&sort=date&fromage=14",
		baseURL, url.QueryEscape(query), url.QueryEscape(location), page*pageSize,
	)

	body, err := a.fc.Get(ctx, u)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("indeed parse: %w", err)
	}

	cards := util.FirstCards(doc,
		"div.job_seen_beacon",
		"div[data-testid='job-card']",
		"td.resultContent",
	)

	var out []domain.RawPosting
	cards.Each(func(_ int, card *goquery.Selection) {
		title := util.FirstText(card,
			"h2.jobTitle",
			"a[data-testid='job-title']",
			"span[title]",
			"h2",
		)
		if title == "" {
			return
		}

		out = append(out, domain.RawPosting{
			Title:   title,
			Company: util.FirstText(card, "span[data-testid='company-name']", "span.companyName", "span.company"),
			Location: util.FirstNonEmpty(
				util.FirstText(card, "div[data-testid='text-location']", "div.companyLocation", "span.location"),
				location,
			),
			SalaryRaw: util.FirstText(card,
				"div[data-testid='attribute_snippet_testid']",
				"span.salary-snippet",
				"div.salary-snippet-container",
			),
			URL:    util.AbsURL(baseURL, util.FirstAttr(card, "href", "a[href]")),
			Source: "Indeed",
		})
	})

	return out, nil
}
