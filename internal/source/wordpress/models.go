package wordpress

// Wire types for the WordPress REST API (wp/v2). Only the fields the syncer
// reads are declared.

type renderedField struct {
	Rendered string `json:"rendered"`
}

type apiPost struct {
	ID            int64         `json:"id"`
	DateGMT       string        `json:"date_gmt"`
	ModifiedGMT   string        `json:"modified_gmt"`
	Slug          string        `json:"slug"`
	Status        string        `json:"status"`
	Type          string        `json:"type"`
	Link          string        `json:"link"`
	Title         renderedField `json:"title"`
	Content       renderedField `json:"content"`
	Excerpt       renderedField `json:"excerpt"`
	Author        int64         `json:"author"`
	FeaturedMedia int64         `json:"featured_media"`
	Embedded      *apiEmbedded  `json:"_embedded"`
}

type apiEmbedded struct {
	Author []apiAuthor `json:"author"`
	Terms  [][]apiTerm `json:"wp:term"`
}

type apiAuthor struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type apiTerm struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Taxonomy string `json:"taxonomy"`
}

type apiMedia struct {
	ID        int64  `json:"id"`
	SourceURL string `json:"source_url"`
}
