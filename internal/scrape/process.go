package scrape

import (
	"context"
	"database/sql"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/PremDutta/pm-job-hub/internal/classify"
	"github.com/PremDutta/pm-job-hub/internal/config"
	"github.com/PremDutta/pm-job-hub/internal/dedup"
	"github.com/PremDutta/pm-job-hub/internal/domain"
	"github.com/PremDutta/pm-job-hub/internal/events"
	"github.com/PremDutta/pm-job-hub/internal/normalize"
	"github.com/PremDutta/pm-job-hub/internal/rank"
	"github.com/PremDutta/pm-job-hub/internal/scrape/fetch"
	"github.com/PremDutta/pm-job-hub/internal/scrape/types"
	"github.com/PremDutta/pm-job-hub/internal/scrape/util"
	"github.com/PremDutta/pm-job-hub/internal/store"
)

// Result totals one run. Found counts raw postings before filtering;
// New and Duplicates partition what survived the title filter.
type Result struct {
	Found      int
	New        int
	Duplicates int
}

// unit is one (adapter, query, location) crawl assignment. Pages within
// a unit go sequentially so pacing reads like one person browsing.
type unit struct {
	adapter  types.SourceAdapter
	query    string
	location string
}

// Process executes one full run over the given adapters. A cancelled
// context stops crawling but everything persisted so far stays
// persisted; the partial Result comes back alongside ctx.Err().
func Process(ctx context.Context, db *sql.DB, cfg config.Config, adapters []types.SourceAdapter, fc *fetch.Client, hub *events.Hub, update func(func(*types.RunStats))) (Result, error) {
	if len(adapters) == 0 {
		log.Printf("[scrape] no usable sources configured")
		return Result{}, nil
	}

	queries := cfg.Search.Queries
	if len(queries) > cfg.Search.MaxQueries {
		queries = queries[:cfg.Search.MaxQueries]
	}

	var units []unit
	for _, a := range adapters {
		for _, loc := range cfg.Search.Locations {
			for _, q := range queries {
				units = append(units, unit{adapter: a, query: q, location: loc})
			}
		}
	}

	var (
		mu  sync.Mutex
		raw []domain.RawPosting
		res Result

		done int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Search.Workers)

	for _, u := range units {
		u := u
		g.Go(func() error {
			postings := crawlUnit(gctx, fc, u, cfg.Search.Pages)

			mu.Lock()
			raw = append(raw, postings...)
			res.Found += len(postings)
			done++
			found, progress := res.Found, done*80/len(units)
			mu.Unlock()

			update(func(st *types.RunStats) {
				st.Found = found
				st.Progress = progress
			})
			return gctx.Err()
		})
	}
	crawlErr := g.Wait()

	update(func(st *types.RunStats) { st.Phase = "processing" })

	// Normalization and persistence run even after a cancel so partial
	// crawl results are not thrown away.
	cls := classify.New(cfg.Taxonomy.IncludeTitles, cfg.Taxonomy.ExcludeTitles)
	norm := normalize.New(cfg.Taxonomy)
	tiers := rank.TierTable{Cfg: cfg.Companies}
	seen := dedup.NewSet()
	now := time.Now().UTC()

	for _, rp := range raw {
		if !cls.IsTarget(rp.Title) {
			continue
		}

		j := buildJob(rp, norm, tiers, now)
		if !seen.Add(j.ID) {
			res.Duplicates++
			continue
		}

		added, err := store.InsertJobIfNew(context.Background(), db, j)
		if err != nil {
			log.Printf("[scrape] save failed id=%s: %v", j.ID, err)
			continue
		}
		if !added {
			res.Duplicates++
			continue
		}
		res.New++
		hub.Publish(events.Make(events.TypeJobCreated, j))
	}

	newCount, dupCount := res.New, res.Duplicates
	update(func(st *types.RunStats) {
		st.New = newCount
		st.Duplicates = dupCount
		st.Progress = 95
	})

	return res, crawlErr
}

// crawlUnit walks a unit's pages in order, pacing between requests.
// Fetch failures end the unit quietly; boards that block mid-run cost
// pages, not the run.
func crawlUnit(ctx context.Context, fc *fetch.Client, u unit, pages int) []domain.RawPosting {
	var out []domain.RawPosting
	for page := 0; page < pages; page++ {
		if ctx.Err() != nil {
			return out
		}
		if page > 0 {
			if err := fc.Pace(ctx); err != nil {
				return out
			}
		}

		postings, err := u.adapter.FetchPage(ctx, u.query, u.location, page)
		if err != nil {
			log.Printf("[scrape] %s q=%q loc=%q page=%d: %v", u.adapter.Name(), u.query, u.location, page, err)
			return out
		}
		if len(postings) == 0 {
			return out
		}
		out = append(out, postings...)
	}
	return out
}

// buildJob turns a raw posting into the canonical record: normalized
// fields, fingerprint identity, tier, and score.
func buildJob(rp domain.RawPosting, norm *normalize.Normalizer, tiers rank.TierTable, now time.Time) domain.Job {
	title := util.CleanText(rp.Title)
	company := util.CleanText(rp.Company)
	location := util.NormalizeLocation(rp.Location)

	salaryMin, salaryMax, salaryDisplay := normalize.ParseSalary(rp.SalaryRaw)
	expMin, expMax, expDisplay := normalize.ParseExperience(rp.ExperienceRaw)

	// Skills match against everything the board gave us; a board's own
	// tag list just joins the text.
	skillText := title + " " + location + " " + rp.Description + " " + rp.SkillsRaw
	modeText := title + " " + location + " " + rp.Description

	j := domain.Job{
		ID:                dedup.Fingerprint(title, company, location),
		Title:             title,
		Company:           company,
		Location:          location,
		WorkMode:          norm.DetectWorkMode(modeText),
		Seniority:         norm.DetectSeniority(title),
		ExperienceMin:     expMin,
		ExperienceMax:     expMax,
		ExperienceDisplay: expDisplay,
		SalaryMin:         salaryMin,
		SalaryMax:         salaryMax,
		SalaryDisplay:     salaryDisplay,
		PostedDate:        normalize.ParseDate(rp.PostedRaw, now),
		Skills:            norm.ExtractSkills(skillText),
		CompanyTier:       tiers.TierFor(company),
		Source:            rp.Source,
		URL:               rp.URL,
		CreatedAt:         now,
	}
	j.MatchScore = rank.Score(j, now)
	return j
}
