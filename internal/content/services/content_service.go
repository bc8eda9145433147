package services

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/Nour60555/Graduation-Project-KDD/internal/content/models"
)

var ErrPageNotFound = errors.New("page not found")

//go:embed pages.yaml
var defaultPages []byte

type ContentService struct {
	order []string
	pages map[string]models.Page
}

// NewContentService memuat halaman bawaan yang di-embed ke binary.
func NewContentService() (*ContentService, error) {
	return ParseContent(defaultPages)
}

// ParseContent membaca dokumen YAML berisi daftar halaman. Slug harus unik dan tidak kosong.
func ParseContent(data []byte) (*ContentService, error) {
	var doc struct {
		Pages []models.Page `yaml:"pages"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse content: %w", err)
	}

	s := &ContentService{pages: make(map[string]models.Page, len(doc.Pages))}
	for _, p := range doc.Pages {
		if p.Slug == "" {
			return nil, fmt.Errorf("parse content: page %q has no slug", p.Title)
		}
		if _, dup := s.pages[p.Slug]; dup {
			return nil, fmt.Errorf("parse content: duplicate page %q", p.Slug)
		}
		s.pages[p.Slug] = p
		s.order = append(s.order, p.Slug)
	}
	return s, nil
}

func (s *ContentService) Page(slug string) (models.Page, error) {
	p, ok := s.pages[slug]
	if !ok {
		return models.Page{}, ErrPageNotFound
	}
	return p, nil
}

// List mengembalikan ringkasan halaman sesuai urutan di dokumen.
func (s *ContentService) List() []models.PageSummary {
	out := make([]models.PageSummary, 0, len(s.order))
	for _, slug := range s.order {
		out = append(out, models.PageSummary{Slug: slug, Title: s.pages[slug].Title})
	}
	return out
}
