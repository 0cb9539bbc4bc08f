// Package linkedin scrapes LinkedIn's public guest job search. The
// guest endpoint serves one <li> card per posting and blocks hard when
// pacing looks robotic, so everything goes through the fetch policy.
package linkedin

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

const pageSize = 25

type Adapter struct {
	fc *fetch.Client
}

func New(fc *fetch.Client) *Adapter { return &Adapter{fc: fc} }

func (a *Adapter) Name() string { return "linkedin" }

func (a *Adapter) FetchPage(ctx context.Context, query, location string, page int) ([]domain.RawPosting, error) {
	u := fmt.Sprintf(
		"https://www.linkedin.com/jobs-guest/jobs/api/seeMoreJobPostings/search?keywords=%s&location=%s&start=%d&f_TPR=r604800",
		url.QueryEscape(query), url.QueryEscape(location), page*pageSize,
	)

	body, err := a.fc.Get(ctx, u)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("linkedin parse: %w", err)
	}

	cards := util.FirstCards(doc, "li", "div.base-card", "div.job-search-card")

	var out []domain.RawPosting
	cards.Each(func(_ int, card *goquery.Selection) {
		title := util.FirstText(card, "h3.base-search-card__title", "h3", "a.base-card__full-link")
		if title == "" {
			return
		}

		out = append(out, domain.RawPosting{
			Title:     title,
			Company:   util.FirstText(card, "h4.base-search-card__subtitle", "a.hidden-nested-link", "h4"),
			Location:  util.FirstNonEmpty(util.FirstText(card, "span.job-search-card__location", "span.bullet"), location),
			URL:       util.FirstAttr(card, "href", "a.base-card__full-link", "a[href]"),
			PostedRaw: util.FirstAttr(card, "datetime", "time"),
			Source:    "LinkedIn",
		})
	})

	return out, nil
}
