package document

// Document is a loaded text file.
type Document struct {
	Path string // Absolute path as configured
	Name string // Base name shown as the page title
	Text string // Full decoded content
}

// Payload is what a view renders for one page.
type Payload struct {
	Title      string `json:"title"`
	Text       string `json:"text"`
	Total      int    `json:"total"`
	PageNumber int    `json:"pageNumber"`
}
