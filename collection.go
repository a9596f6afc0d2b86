package docs2prompt

// Document is a single piece of collected documentation.
type Document struct {
	// Key is the logical identifier: "<repo>/<lowercased path>" for
	// repository files, the absolute URL for crawled pages.
	Key     string
	Content string
}

// Collection is an ordered mapping of document keys to content.
//
// Iteration follows first-insertion order. Setting an existing key replaces
// its content but keeps its position. The zero value is ready to use.
type Collection struct {
	keys    []string
	content map[string]string
}

// NewCollection returns an empty Collection.
func NewCollection() *Collection {
	return &Collection{content: make(map[string]string)}
}

// Set records content under key, overwriting any earlier value.
func (c *Collection) Set(key, content string) {
	if c.content == nil {
		c.content = make(map[string]string)
	}
	if _, ok := c.content[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.content[key] = content
}

// Get returns the content stored under key.
func (c *Collection) Get(key string) (string, bool) {
	content, ok := c.content[key]
	return content, ok
}

// Has reports whether key is present.
func (c *Collection) Has(key string) bool {
	_, ok := c.content[key]
	return ok
}

// Len returns the number of documents.
func (c *Collection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.keys)
}

// Keys returns document keys in iteration order.
func (c *Collection) Keys() []string {
	keys := make([]string, len(c.keys))
	copy(keys, c.keys)
	return keys
}

// Documents returns the documents in iteration order.
func (c *Collection) Documents() []*Document {
	if c == nil {
		return nil
	}
	docs := make([]*Document, 0, len(c.keys))
	for _, key := range c.keys {
		docs = append(docs, &Document{Key: key, Content: c.content[key]})
	}
	return docs
}

// Merge copies every document of other into c. On key collision the
// document from other wins.
func (c *Collection) Merge(other *Collection) {
	if other == nil {
		return
	}
	for _, key := range other.keys {
		c.Set(key, other.content[key])
	}
}

// Bytes returns the total size of all document contents.
func (c *Collection) Bytes() int {
	var n int
	for _, content := range c.content {
		n += len(content)
	}
	return n
}

// Record adds the outcome's document unless the fetch was skipped.
// Reports whether the document was recorded.
func (c *Collection) Record(o FetchOutcome) bool {
	if o.Skipped() {
		return false
	}
	c.Set(o.Key, o.Content)
	return true
}

// FetchOutcome is the result of fetching a single document.
//
// A failed fetch is a skip rather than an error: collection is best-effort
// and the document is simply left out. Empty content is a success.
type FetchOutcome struct {
	Key     string
	Content string
	Err     error
}

// Skipped reports whether the fetch failed.
func (o FetchOutcome) Skipped() bool {
	return o.Err != nil
}

// VisitedSet tracks URLs already fetched by a crawl. It can be shared across
// crawls so chained crawls do not refetch the same pages.
type VisitedSet struct {
	urls map[string]struct{}
}

// NewVisitedSet returns a set containing urls.
func NewVisitedSet(urls ...string) *VisitedSet {
	s := &VisitedSet{urls: make(map[string]struct{}, len(urls))}
	for _, u := range urls {
		s.Add(u)
	}
	return s
}

// Add marks url as visited.
func (s *VisitedSet) Add(url string) {
	if s.urls == nil {
		s.urls = make(map[string]struct{})
	}
	s.urls[url] = struct{}{}
}

// Has reports whether url was visited.
func (s *VisitedSet) Has(url string) bool {
	_, ok := s.urls[url]
	return ok
}

// Len returns the number of visited URLs.
func (s *VisitedSet) Len() int {
	return len(s.urls)
}
