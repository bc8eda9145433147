package models

// Item adalah satu entri di dalam section: pertanyaan FAQ, tips, berita, atau event.
type Item struct {
	Title    string `yaml:"title" json:"title"`
	Body     string `yaml:"body,omitempty" json:"body,omitempty"`
	Date     string `yaml:"date,omitempty" json:"date,omitempty"`
	Location string `yaml:"location,omitempty" json:"location,omitempty"`
	Link     string `yaml:"link,omitempty" json:"link,omitempty"`
	Image    string `yaml:"image,omitempty" json:"image,omitempty"`
}

type Section struct {
	Heading    string   `yaml:"heading" json:"heading"`
	Paragraphs []string `yaml:"paragraphs,omitempty" json:"paragraphs,omitempty"`
	Items      []Item   `yaml:"items,omitempty" json:"items,omitempty"`
}

type Page struct {
	Slug     string    `yaml:"slug" json:"slug"`
	Title    string    `yaml:"title" json:"title"`
	Intro    string    `yaml:"intro,omitempty" json:"intro,omitempty"`
	Sections []Section `yaml:"sections" json:"sections"`
}

// PageSummary dipakai untuk daftar halaman.
type PageSummary struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
}
