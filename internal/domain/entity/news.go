// Package entity defines the domain records served by the aggregation API:
// news items, weather snapshots, poetry entries and wallpaper images, along
// with the domain errors shared by every layer.
//
// Entities are read-only projections of upstream responses (or of static
// data for the news provider); nothing in this package mutates them.
package entity

// NewsItem is one entry of the news list.
type NewsItem struct {
	ID       string
	Title    string
	Source   string
	Time     string // published time as displayed, e.g. "2024-01-15 10:30"
	Image    string // optional
	URL      string
	Category string
	Abstract string
}

// NewsDetail extends NewsItem with the article body and engagement counters.
type NewsDetail struct {
	NewsItem
	Content  string // HTML
	Tags     []string
	Views    int
	Comments int
}

// AllCategories is the category value that disables filtering.
const AllCategories = "all"

// DefaultNewsCategories is the category list offered to clients.
var DefaultNewsCategories = []string{
	"科技", "财经", "体育", "文化", "健康",
	"教育", "娱乐", "社会", "国际", "军事",
}
