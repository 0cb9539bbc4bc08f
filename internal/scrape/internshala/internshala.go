// Package internshala scrapes Internshala's jobs listing. Entry-level
// coverage mostly; the board pays off for associate PM searches.
package internshala

import (
	"bytes"
	"context"
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"github.com/PremDutta/pm-job-hub/internal/domain"
	"github.com/PremDutta/pm-job-hub/internal/scrape/fetch"
	"github.com/PremDutta/pm-job-hub/internal/scrape/util"
)

const baseURL = "https://internshala.com"

type Adapter struct {
	fc *fetch.Client
}

func New(fc *fetch.Client) *Adapter { return &Adapter{fc: fc} }

func (a *Adapter) Name() string { return "internshala" }

func (a *Adapter) FetchPage(ctx context.Context, query, location string, page int) ([]domain.RawPosting, error) {
	u := fmt.Sprintf("%s/jobs/%s-jobs/page-%d", baseURL, util.Slugify(query), page+1)

	body, err := a.fc.Get(ctx, u)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("internshala parse: %w", err)
	}

	cards := util.FirstCards(doc, "div.individual_internship", "div.internship_meta")

	var out []domain.RawPosting
	cards.Each(func(_ int, card *goquery.Selection) {
		title := util.FirstText(card, "h3.job-internship-name", "a.job-title-href", "h3")
		if title == "" {
			return
		}

		out = append(out, domain.RawPosting{
			Title:   title,
			Company: util.FirstText(card, "p.company-name", "div.company-name", "a.link_display_like_text"),
			Location: util.FirstNonEmpty(
				util.FirstText(card, "div#location_names", "p.locations", "a.location_link"),
				location,
			),
			SalaryRaw: util.FirstText(card, "span.stipend", "div.stipend"),
			PostedRaw: util.FirstText(card, "div.status-success span", "div.status-inactive span", "div.posted_by_container"),
			URL:       util.AbsURL(baseURL, util.FirstAttr(card, "href", "a.job-title-href", "a[href]")),
			Source:    "Internshala",
		})
	})

	return out, nil
}
