// Package naukri scrapes Naukri search result pages. Naukri uses
// slugged paths instead of query parameters and 1-based page numbers.
package naukri

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/PremDutta/pm-job-hub/internal/domain"
	"github.com/PremDutta/pm-job-hub/internal/scrape/fetch"
	"github.com/PremDutta/pm-job-hub/internal/scrape/util"
)

type Adapter struct {
	fc *fetch.Client
}

func New(fc *fetch.Client) *Adapter { return &Adapter{fc: fc} }

func (a *Adapter) Name() string { return "naukri" }

func (a *Adapter) FetchPage(ctx context.Context, query, location string, page int) ([]domain.RawPosting, error) {
	u := fmt.Sprintf(
		"https://www.naukri.com/%s-jobs-in-%s-%d",
		util.Slugify(query), util.Slugify(location), page+1,
	)

	body, err := a.fc.Get(ctx, u)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("naukri parse: %w", err)
	}

	cards := util.FirstCards(doc,
		"article.jobTuple",
		"div.srp-jobtuple-wrapper",
		"div.cust-job-tuple",
	)

	var out []domain.RawPosting
	cards.Each(func(_ int, card *goquery.Selection) {
		title := util.FirstText(card, "a.title", "a.jobTitle", "h2 a")
		if title == "" {
			return
		}

		var skills []string
		card.Find("ul.tags li, ul.tags-gt li").Each(func(_ int, tag *goquery.Selection) {
			if s := util.CleanText(tag.Text()); s != "" {
				skills = append(skills, s)
			}
		})

		out = append(out, domain.RawPosting{
			Title:   title,
			Company: util.FirstText(card, "a.subTitle", "a.comp-name", "a.companyName"),
			Location: util.FirstNonEmpty(
				util.FirstText(card, "li.location", "span.locWdth", "span.location"),
				location,
			),
			SalaryRaw:     util.FirstText(card, "li.salary", "span.salWdth", "span.salary"),
			ExperienceRaw: util.FirstText(card, "li.experience", "span.expwdth", "span.experience"),
			PostedRaw:     util.FirstText(card, "span.job-post-day", "div.type br + span"),
			Description:   util.FirstText(card, "div.job-description", "span.job-desc"),
			SkillsRaw:     strings.Join(skills, ", "),
			URL:           util.FirstAttr(card, "href", "a.title", "a.jobTitle", "h2 a"),
			Source:        "Naukri",
		})
	})

	return out, nil
}
