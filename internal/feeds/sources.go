// Package feeds fetches candidate articles from RSS feeds, Google News
// searches and PR Newswire company pages.
package feeds

import (
	"fmt"
	"net/url"
)

// googleNewsRSS is the Google News RSS search endpoint. Free, no API key.
const googleNewsRSS = "https://news.google.com/rss/search?q=%s&hl=en-US&gl=US&ceid=US:en"

// Source is a single configured feed.
type Source struct {
	Name     string `yaml:"name"`
	URL      string `yaml:"url"`
	Category string `yaml:"category"`
}

// Feed categories.
const (
	CategoryPersonnel = "personnel"
	CategoryIndustry  = "industry_news"
)

// industryFeeds are the wire-service and trade-press feeds scanned on
// every run regardless of company.
var industryFeeds = []Source{
	{Name: "PR Newswire - Food & Beverage", URL: "https://www.prnewswire.com/rss/food-and-beverages-industry-news.rss", Category: CategoryIndustry},
	{Name: "PR Newswire - Personnel Announcements", URL: "https://www.prnewswire.com/rss/personnel-announcements-news.rss", Category: CategoryPersonnel},
	{Name: "Business Wire - Food & Beverage", URL: "https://feed.businesswire.com/rss/home/?rss=G1QFDERJXkJeGVpXWg==", Category: CategoryIndustry},
	{Name: "MeatPoultry.com - People", URL: "https://www.meatpoultry.com/rss/topic/285-people", Category: CategoryPersonnel},
	{Name: "MeatPoultry.com - All", URL: "https://www.meatpoultry.com/rss/topic/280-news", Category: CategoryIndustry},
	{Name: "The National Provisioner", URL: "https://www.provisioneronline.com/rss", Category: CategoryIndustry},
	{Name: "Food Business News", URL: "https://www.foodbusinessnews.net/rss", Category: CategoryIndustry},
	{Name: "Food Dive", URL: "https://www.fooddive.com/feeds/news/", Category: CategoryIndustry},
	{Name: "Grocery Dive", URL: "https://www.grocerydive.com/feeds/news/", Category: CategoryIndustry},
	{Name: "Supermarket News", URL: "https://www.supermarketnews.com/rss.xml", Category: CategoryIndustry},
	{Name: "Progressive Grocer", URL: "https://progressivegrocer.com/rss.xml", Category: CategoryIndustry},
	{Name: "Watt Poultry", URL: "https://www.wattagnet.com/rss/poultry", Category: CategoryIndustry},
	{Name: "Feedstuffs", URL: "https://www.feedstuffs.com/rss.xml", Category: CategoryIndustry},
}

// companyNewsrooms maps tracked company names to their newsroom RSS feeds.
var companyNewsrooms = map[string]string{
	"Tyson Foods":      "https://ir.tyson.com/rss/news-releases.xml",
	"Hormel Foods":     "https://www.hormelfoods.com/newsroom/feed/",
	"Smithfield Foods": "https://www.smithfieldfoods.com/press-room/feed",
	"Cargill":          "https://www.cargill.com/feed/news",
	"JBS USA":          "https://jbsfoodsgroup.com/feed",
	"Maple Leaf Foods": "https://www.mapleleaffoods.com/feed/",
	"Conagra Brands":   "https://www.conagrabrands.com/news-room/rss",
	"Sysco":            "https://investors.sysco.com/rss/news-releases.xml",
	"US Foods":         "https://ir.usfoods.com/rss/news-releases.xml",
	"Kroger":           "https://ir.kroger.com/rss/news-releases.xml",
	"Walmart":          "https://corporate.walmart.com/feeds/news",
}

// prNewswireCompanies maps company names to their PR Newswire listing
// pages. PR Newswire has no company-specific RSS, so these are scraped.
var prNewswireCompanies = map[string]string{
	"Tyson Foods":            "https://www.prnewswire.com/news/tyson-foods-inc/",
	"Hormel Foods":           "https://www.prnewswire.com/news/hormel-foods-corporation/",
	"Smithfield Foods":       "https://www.prnewswire.com/news/smithfield-foods-inc/",
	"Cargill":                "https://www.prnewswire.com/news/cargill/",
	"JBS USA":                "https://www.prnewswire.com/news/jbs-usa/",
	"Pilgrim's Pride":        "https://www.prnewswire.com/news/pilgrims-pride-corporation/",
	"Perdue Farms":           "https://www.prnewswire.com/news/perdue-farms/",
	"Sanderson Farms":        "https://www.prnewswire.com/news/sanderson-farms/",
	"National Beef":          "https://www.prnewswire.com/news/national-beef-packing-company/",
	"Seaboard Foods":         "https://www.prnewswire.com/news/seaboard-foods/",
	"Conagra Brands":         "https://www.prnewswire.com/news/conagra-brands,-inc./",
	"Sysco":                  "https://www.prnewswire.com/news/sysco-corporation/",
	"US Foods":               "https://www.prnewswire.com/news/us-foods-holding-corp/",
	"Kroger":                 "https://www.prnewswire.com/news/the-kroger-co/",
	"Butterball":             "https://www.prnewswire.com/news/butterball-llc/",
	"Mountaire Farms":        "https://www.prnewswire.com/news/mountaire-farms/",
	"Koch Foods":             "https://www.prnewswire.com/news/koch-foods/",
	"Johnsonville":           "https://www.prnewswire.com/news/johnsonville-sausage-llc/",
	"Maple Leaf Foods":       "https://www.prnewswire.com/news/maple-leaf-foods-inc/",
	"Boar's Head":            "https://www.prnewswire.com/news/boars-head/",
	"Wayne-Sanderson Farms":  "https://www.prnewswire.com/news/wayne-sanderson-farms/",
	"Foster Farms":           "https://www.prnewswire.com/news/foster-farms/",
	"Darling Ingredients":    "https://www.prnewswire.com/news/darling-ingredients-inc/",
	"Performance Food Group": "https://www.prnewswire.com/news/performance-food-group-company/",
	"Costco":                 "https://www.prnewswire.com/news/costco-wholesale-corporation/",
	"Ecolab":                 "https://www.prnewswire.com/news/ecolab-inc/",
	"Walmart":                "https://www.prnewswire.com/news/walmart-inc/",
	"Whole Foods Market":     "https://www.prnewswire.com/news/whole-foods-market/",
}

// executiveMoveQueries are Google News search templates. Only the first
// few run per company; they are ordered by hit rate.
var executiveMoveQueries = []string{
	`"%s" appointed CEO`,
	`"%s" appointed president`,
	`"%s" names CEO`,
	`"%s" new CEO`,
	`"%s" promoted`,
	`"%s" hires`,
	`"%s" executive`,
	`"%s" leadership`,
	`"%s" announces`,
	`"%s" vice president`,
	`"%s" VP appointed`,
	`"%s" director appointed`,
	`"%s" names VP`,
	`"%s" SVP`,
	`"%s" chief officer`,
}

// maxQueriesPerCompany bounds how many Google News searches run per
// company per scan.
const maxQueriesPerCompany = 6

// IndustryFeeds returns all configured wire-service and trade-press feeds.
func IndustryFeeds() []Source {
	feeds := make([]Source, len(industryFeeds))
	copy(feeds, industryFeeds)
	return feeds
}

// NewsroomFeed returns the newsroom RSS URL for a company, or "" when none
// is configured.
func NewsroomFeed(companyName string) string {
	return companyNewsrooms[companyName]
}

// PRNewswirePage returns the PR Newswire listing page for a company, or ""
// when none is configured.
func PRNewswirePage(companyName string) string {
	return prNewswireCompanies[companyName]
}

// BuildGoogleNewsURL builds a Google News RSS search URL from a query
// template and a company name.
func BuildGoogleNewsURL(companyName, queryTemplate string) string {
	query := fmt.Sprintf(queryTemplate, companyName)
	return fmt.Sprintf(googleNewsRSS, url.QueryEscape(query))
}

// GoogleNewsQueries returns the search URLs to run for a company.
func GoogleNewsQueries(companyName string) []string {
	urls := make([]string, 0, maxQueriesPerCompany)
	for _, tmpl := range executiveMoveQueries[:maxQueriesPerCompany] {
		urls = append(urls, BuildGoogleNewsURL(companyName, tmpl))
	}
	return urls
}
