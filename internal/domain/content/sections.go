package content

import (
	"regexp"
	"strings"
)

// Well-known section keys. A row stored under any other key is rejected.
const (
	SectionHero     = "hero"
	SectionNews     = "news"
	SectionCalendar = "calendar"
	SectionTeams    = "teams"
	SectionShop     = "shop"
	SectionPartners = "partners"
	SectionPhotos   = "photos"
	SectionContacts = "contacts"
	SectionBranding = "branding"
	SectionFooter   = "footer"
)

type SectionDefault struct {
	Title    string
	Subtitle string
}

var sectionDefaults = map[string]SectionDefault{
	SectionHero:     {Title: "Paixão pelo Voleibol", Subtitle: "Formação, competição e comunidade."},
	SectionNews:     {Title: "Notícias", Subtitle: "As últimas novidades do clube."},
	SectionCalendar: {Title: "Calendário e Resultados", Subtitle: "Próximos jogos e resultados recentes."},
	SectionTeams:    {Title: "As Nossas Equipas", Subtitle: "Dos iniciados aos séniores."},
	SectionShop:     {Title: "Loja do Clube", Subtitle: "Veste as cores do clube."},
	SectionPartners: {Title: "Parceiros", Subtitle: "Quem torna tudo isto possível."},
	SectionPhotos:   {Title: "Galeria", Subtitle: "Momentos da época."},
	SectionContacts: {Title: "Contactos", Subtitle: "Fala connosco."},
	SectionBranding: {},
	SectionFooter:   {},
}

func KnownSections() []string {
	return []string{
		SectionHero, SectionNews, SectionCalendar, SectionTeams, SectionShop,
		SectionPartners, SectionPhotos, SectionContacts, SectionBranding, SectionFooter,
	}
}

func IsKnownSection(section string) bool {
	_, ok := sectionDefaults[section]
	return ok
}

// Resolved is the merged view a public section renders from: the stored
// row's non-empty fields over the section's defaults.
type Resolved struct {
	Section       string  `json:"section"`
	Title         string  `json:"title"`
	Subtitle      string  `json:"subtitle"`
	ImageURL      *string `json:"image_url"`
	TitleIsMarkup bool    `json:"title_is_markup"`
}

// Resolve merges a stored row (may be nil) into the section defaults.
// An empty stored field falls back to the default, mirroring how the
// page treats missing overrides.
func Resolve(section string, row *SiteContent) Resolved {
	defaults := sectionDefaults[section]
	resolved := Resolved{
		Section:  section,
		Title:    defaults.Title,
		Subtitle: defaults.Subtitle,
	}

	if row != nil {
		if row.Title != "" {
			resolved.Title = row.Title
		}
		if row.Subtitle != "" {
			resolved.Subtitle = row.Subtitle
		}
		if row.ImageURL != nil && *row.ImageURL != "" {
			resolved.ImageURL = row.ImageURL
		}
	}

	resolved.TitleIsMarkup = HasMarkup(resolved.Title)
	return resolved
}

var tagPattern = regexp.MustCompile(`<[a-zA-Z][^>]*>`)

// HasMarkup is the naive tag sniff deciding whether a title is rendered
// as raw HTML or as plain words. It is a display heuristic, not a parser.
func HasMarkup(value string) bool {
	return tagPattern.MatchString(value)
}

// SplitHeading breaks a plain-text title into its leading words and the
// final word, which the page highlights. Single-word titles come back
// entirely in last.
func SplitHeading(title string) (lead, last string) {
	words := strings.Fields(title)
	if len(words) == 0 {
		return "", ""
	}
	last = words[len(words)-1]
	lead = strings.Join(words[:len(words)-1], " ")
	return lead, last
}
