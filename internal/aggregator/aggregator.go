// Package aggregator orchestrates a scan: fetch articles for tracked
// companies, run the extraction engine over them, attach company identity
// and filter duplicates.
package aggregator

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jonesrussell/people-moves/internal/config"
	"github.com/jonesrussell/people-moves/internal/domain"
	"github.com/jonesrussell/people-moves/internal/logger"
	"github.com/jonesrussell/people-moves/internal/parser"
)

// Fetcher pulls raw articles from the configured sources.
type Fetcher interface {
	FetchGoogleNews(ctx context.Context, companyName string) []domain.RawArticle
	FetchNewsAPI(ctx context.Context, companyName string) []domain.RawArticle
	FetchNewsroom(ctx context.Context, companyName string) []domain.RawArticle
	FetchPRNewswire(ctx context.Context, companyName string) []domain.RawArticle
	FetchIndustryFeeds(ctx context.Context) []domain.RawArticle
}

// Aggregator runs scans over all tracked companies.
type Aggregator struct {
	fetcher Fetcher
	parser  *parser.ArticleParser
	recent  parser.RecentChecker
	cfg     config.FetchConfig
	log     logger.Logger
}

// New creates an Aggregator. recent may be nil, which disables the
// temporal duplicate check.
func New(fetcher Fetcher, p *parser.ArticleParser, recent parser.RecentChecker, cfg config.FetchConfig, log logger.Logger) *Aggregator {
	if log == nil {
		log = logger.NewNop()
	}
	return &Aggregator{
		fetcher: fetcher,
		parser:  p,
		recent:  recent,
		cfg:     cfg,
		log:     log,
	}
}

// ProcessArticles runs the extraction engine over raw articles and returns
// candidates attributed to a tracked company. When target is non-nil only
// articles mentioning that company survive; otherwise the first tracked
// company mentioned wins.
func (a *Aggregator) ProcessArticles(ctx context.Context, articles []domain.RawArticle, target *domain.Company, companies []domain.Company) []domain.Candidate {
	var out []domain.Candidate

	for _, article := range articles {
		candidate := a.parser.Parse(article)
		if candidate == nil {
			continue
		}

		combined := article.Title + " " + article.Body

		var company *domain.Company
		if target != nil {
			if parser.FindCompanyInText(combined, []domain.Company{*target}) == nil {
				continue
			}
			company = target
		} else {
			company = parser.FindCompanyInText(combined, companies)
			if company == nil {
				continue
			}
		}

		candidate.CompanyID = company.ID
		candidate.CompanyName = company.Name

		if a.isRecentDuplicate(ctx, candidate) {
			continue
		}
		out = append(out, *candidate)
	}
	return out
}

// isRecentDuplicate consults storage for a same-person same-company record
// inside the rolling window. A failed check keeps the candidate; review
// catches duplicates that slip through, while a dropped real move is gone.
func (a *Aggregator) isRecentDuplicate(ctx context.Context, c *domain.Candidate) bool {
	if a.recent == nil {
		return false
	}

	exists, err := a.recent.ExistsRecent(ctx, c.CompanyID, c.PersonName, a.cfg.DedupWindow)
	if err != nil {
		a.log.Warn("duplicate check failed",
			logger.String("person", c.PersonName),
			logger.Int64("company_id", c.CompanyID),
			logger.Error(err))
		return false
	}
	if exists {
		a.log.Debug("skipping recent duplicate",
			logger.String("person", c.PersonName),
			logger.String("company", c.CompanyName))
	}
	return exists
}

// FetchForCompany pulls every source for one company and returns the
// extracted candidates.
func (a *Aggregator) FetchForCompany(ctx context.Context, company domain.Company) []domain.Candidate {
	a.log.Info("fetching news", logger.String("company", company.Name))

	var articles []domain.RawArticle
	articles = append(articles, a.fetcher.FetchGoogleNews(ctx, company.Name)...)
	articles = append(articles, a.fetcher.FetchNewsAPI(ctx, company.Name)...)
	articles = append(articles, a.fetcher.FetchNewsroom(ctx, company.Name)...)
	articles = append(articles, a.fetcher.FetchPRNewswire(ctx, company.Name)...)

	candidates := a.ProcessArticles(ctx, articles, &company, nil)
	a.log.Info("company scan complete",
		logger.String("company", company.Name),
		logger.Int("articles", len(articles)),
		logger.Int("candidates", len(candidates)))
	return candidates
}

// FetchAll scans the industry feeds plus every tracked company and returns
// the URL-deduplicated candidates. Company fetches run concurrently,
// bounded by the configured concurrency; results merge in company order so
// runs are reproducible.
func (a *Aggregator) FetchAll(ctx context.Context, companies []domain.Company) []domain.Candidate {
	a.log.Info("scan started", logger.Int("companies", len(companies)))

	all := a.ProcessArticles(ctx, a.fetcher.FetchIndustryFeeds(ctx), nil, companies)

	perCompany := make([][]domain.Candidate, len(companies))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Concurrency)

	for i := range companies {
		i := i
		g.Go(func() error {
			perCompany[i] = a.FetchForCompany(gctx, companies[i])
			return nil
		})
	}
	// workers only return nil; Wait is for completion
	_ = g.Wait()

	for _, candidates := range perCompany {
		all = append(all, candidates...)
	}

	deduper := parser.NewBatchDeduper()
	unique := make([]domain.Candidate, 0, len(all))
	for _, c := range all {
		if deduper.Seen(c.SourceURL) {
			continue
		}
		unique = append(unique, c)
	}

	a.log.Info("scan complete",
		logger.Int("candidates", len(all)),
		logger.Int("unique", len(unique)))
	return unique
}
