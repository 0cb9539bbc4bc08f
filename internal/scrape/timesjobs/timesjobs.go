// Package timesjobs scrapes TimesJobs search result pages.
package timesjobs

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

type Adapter struct {
	fc *fetch.Client
}

func New(fc *fetch.Client) *Adapter { return &Adapter{fc: fc} }

func (a *Adapter) Name() string { return "timesjobs" }

func (a *Adapter) FetchPage(ctx context.Context, query, location string, page int) ([]domain.RawPosting, error) {
	u := fmt.Sprintf(
		"https://www.timesjobs.com/candidate/job-search.html?searchType=personalizedSearch&from=submit&searchTextSrc=as&searchTextText=%s&txtLocation=%s&sequence=%d&startPage=%d",
		url.QueryEscape(query), url.QueryEscape(location), page+1, page+1,
	)

	body, err := a.fc.Get(ctx, u)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("timesjobs parse: %w", err)
	}

	cards := util.FirstCards(doc, "li.clearfix.job-bx", "li.job-bx")

	var out []domain.RawPosting
	cards.Each(func(_ int, card *goquery.Selection) {
		title := util.FirstText(card, "h2 a", "h2")
		if title == "" {
			return
		}

		out = append(out, domain.RawPosting{
			Title:   title,
			Company: util.FirstText(card, "h3.joblist-comp-name", "h3"),
			Location: util.FirstNonEmpty(
				util.FirstText(card, "ul.top-jd-dtl li span[title]", "span[title='Location']"),
				location,
			),
			ExperienceRaw: util.FirstText(card, "ul.top-jd-dtl li:has(i.material-icons)", "span[title='Experience']"),
			PostedRaw:     util.FirstText(card, "span.sim-posted span", "span.sim-posted"),
			Description:   util.FirstText(card, "ul.list-job-dtl li"),
			URL:           util.FirstAttr(card, "href", "h2 a", "a[href]"),
			Source:        "TimesJobs",
		})
	})

	return out, nil
}
