package content

import (
	"context"
	"testing"
)

type fakeContentRepo struct {
	rows map[string]*SiteContent
}

func newFakeContentRepo() *fakeContentRepo {
	return &fakeContentRepo{rows: make(map[string]*SiteContent)}
}

func (r *fakeContentRepo) List(ctx context.Context) ([]SiteContent, error) {
	result := make([]SiteContent, 0, len(r.rows))
	for _, row := range r.rows {
		result = append(result, *row)
	}
	return result, nil
}

func (r *fakeContentRepo) GetBySection(ctx context.Context, section string) (*SiteContent, error) {
	row, ok := r.rows[section]
	if !ok {
		return nil, ErrSectionNotFound
	}
	copied := *row
	return &copied, nil
}

func (r *fakeContentRepo) Upsert(ctx context.Context, row *SiteContent) error {
	r.rows[row.Section] = row
	return nil
}

func (r *fakeContentRepo) DeleteBySection(ctx context.Context, section string) (bool, error) {
	if _, ok := r.rows[section]; !ok {
		return false, nil
	}
	delete(r.rows, section)
	return true, nil
}

func TestUpsertIsIdempotentPerSection(t *testing.T) {
	repo := newFakeContentRepo()
	service := NewService(repo)

	first, err := service.Upsert(context.Background(), UpsertInput{Section: SectionHero, Title: "Primeiro"})
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	second, err := service.Upsert(context.Background(), UpsertInput{Section: SectionHero, Title: "Segundo"})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	if len(repo.rows) != 1 {
		t.Fatalf("expected exactly one row, got %d", len(repo.rows))
	}
	if second.ID != first.ID {
		t.Fatalf("upsert created a new row: %s != %s", second.ID, first.ID)
	}
	if repo.rows[SectionHero].Title != "Segundo" {
		t.Fatalf("latest title not stored: %q", repo.rows[SectionHero].Title)
	}
}

func TestUpsertKeepsImageWhenNotProvided(t *testing.T) {
	repo := newFakeContentRepo()
	service := NewService(repo)

	image := "https://cdn.example.com/hero.jpg"
	if _, err := service.Upsert(context.Background(), UpsertInput{Section: SectionHero, Title: "Título", ImageURL: &image}); err != nil {
		t.Fatalf("upsert with image: %v", err)
	}

	row, err := service.Upsert(context.Background(), UpsertInput{Section: SectionHero, Title: "Novo título"})
	if err != nil {
		t.Fatalf("upsert without image: %v", err)
	}
	if row.ImageURL == nil || *row.ImageURL != image {
		t.Fatalf("previous image lost: %+v", row.ImageURL)
	}

	fresh := "https://cdn.example.com/hero-2.jpg"
	row, err = service.Upsert(context.Background(), UpsertInput{Section: SectionHero, Title: "Novo título", ImageURL: &fresh})
	if err != nil {
		t.Fatalf("upsert with new image: %v", err)
	}
	if row.ImageURL == nil || *row.ImageURL != fresh {
		t.Fatalf("new image not applied: %+v", row.ImageURL)
	}
}

func TestUpsertRejectsUnknownSection(t *testing.T) {
	service := NewService(newFakeContentRepo())

	if _, err := service.Upsert(context.Background(), UpsertInput{Section: "banner"}); err != ErrUnknownSection {
		t.Fatalf("expected ErrUnknownSection, got %v", err)
	}
}

func TestResolveFallsBackToDefaults(t *testing.T) {
	resolved := Resolve(SectionNews, nil)
	if resolved.Title != "Notícias" {
		t.Fatalf("default title = %q", resolved.Title)
	}
	if resolved.ImageURL != nil {
		t.Fatal("default must not carry an image")
	}

	row := &SiteContent{Section: SectionNews, Title: "Atualidade"}
	resolved = Resolve(SectionNews, row)
	if resolved.Title != "Atualidade" {
		t.Fatalf("override title = %q", resolved.Title)
	}
	if resolved.Subtitle != "As últimas novidades do clube." {
		t.Fatalf("empty subtitle must fall back, got %q", resolved.Subtitle)
	}
}

func TestResolveAllCoversEveryKnownSection(t *testing.T) {
	repo := newFakeContentRepo()
	service := NewService(repo)

	if _, err := service.Upsert(context.Background(), UpsertInput{Section: SectionShop, Title: "Merch"}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	resolved, err := service.ResolveAll(context.Background())
	if err != nil {
		t.Fatalf("resolve all: %v", err)
	}
	if len(resolved) != len(KnownSections()) {
		t.Fatalf("resolved %d sections, want %d", len(resolved), len(KnownSections()))
	}
	if resolved[SectionShop].Title != "Merch" {
		t.Fatalf("stored override not applied: %q", resolved[SectionShop].Title)
	}
	if resolved[SectionHero].Title == "" {
		t.Fatal("unstored section missing defaults")
	}
}

func TestHasMarkup(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"Notícias do clube", false},
		{"<b>Notícias</b>", true},
		{"a < b e c > d", false},
		{"<span style=\"color:red\">Força</span>", true},
		{"", false},
	}

	for _, tc := range cases {
		if got := HasMarkup(tc.value); got != tc.want {
			t.Errorf("HasMarkup(%q) = %v, want %v", tc.value, got, tc.want)
		}
	}
}

func TestSplitHeading(t *testing.T) {
	lead, last := SplitHeading("As Nossas Equipas")
	if lead != "As Nossas" || last != "Equipas" {
		t.Fatalf("got %q / %q", lead, last)
	}

	lead, last = SplitHeading("Galeria")
	if lead != "" || last != "Galeria" {
		t.Fatalf("single word: got %q / %q", lead, last)
	}

	lead, last = SplitHeading("   ")
	if lead != "" || last != "" {
		t.Fatalf("blank: got %q / %q", lead, last)
	}
}
