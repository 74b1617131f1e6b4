package site

import (
	"time"

	"club-site-go/internal/domain/club"
	"club-site-go/internal/domain/content"
	"club-site-go/internal/domain/matches"
	"club-site-go/internal/domain/news"
	"club-site-go/internal/domain/shop"
	"club-site-go/internal/domain/teams"
)

// Snapshot is the whole-site payload the public page mounts from: every
// collection plus the derived match windows and resolved section content.
type Snapshot struct {
	News         []news.NewsItem             `json:"news"`
	Upcoming     []matches.Match             `json:"upcoming_matches"`
	Past         []matches.Match             `json:"past_matches"`
	NextMatch    *matches.Match              `json:"next_match"`
	Teams        []teams.Team                `json:"teams"`
	TeamMembers  []teams.TeamMember          `json:"team_members"`
	Products     []shop.Product              `json:"products"`
	Partners     []club.Partner              `json:"partners"`
	Gallery      []club.GalleryItem          `json:"gallery"`
	Organization []club.OrganizationMember   `json:"organization"`
	Content      map[string]content.Resolved `json:"content"`
}

type HighlightKind string

const (
	KindNews    HighlightKind = "news"
	KindProduct HighlightKind = "product"
	KindTeam    HighlightKind = "team"
	KindGallery HighlightKind = "gallery"
)

// Highlight is the tagged display record behind the page's detail modal.
// One constructor per source entity replaces the duck-typed shape the
// four entities used to share.
type Highlight struct {
	Kind        HighlightKind      `json:"kind"`
	ID          string             `json:"id"`
	Image       string             `json:"image"`
	Title       string             `json:"title"`
	Subtitle    string             `json:"subtitle,omitempty"`
	Description string             `json:"description,omitempty"`
	Members     []teams.TeamMember `json:"members,omitempty"`
}

func HighlightFromNews(item news.NewsItem) Highlight {
	return Highlight{
		Kind:        KindNews,
		ID:          item.ID,
		Image:       imageOrPlaceholder(item.ImageURL, item.ID),
		Title:       item.Title,
		Subtitle:    DisplayDate(item.CreatedAt),
		Description: item.Content,
	}
}

func HighlightFromProduct(product shop.Product) Highlight {
	return Highlight{
		Kind:        KindProduct,
		ID:          product.ID,
		Image:       imageOrPlaceholder(product.ImageURL, product.ID),
		Title:       product.Name,
		Subtitle:    shop.FormatPrice(product.Price),
		Description: product.Description,
	}
}

func HighlightFromTeam(team teams.Team, roster []teams.TeamMember) Highlight {
	return Highlight{
		Kind:        KindTeam,
		ID:          team.ID,
		Image:       imageOrPlaceholder(team.ImageURL, team.ID),
		Title:       team.Name,
		Subtitle:    team.Category,
		Description: team.Description,
		Members:     roster,
	}
}

func HighlightFromGallery(item club.GalleryItem) Highlight {
	title := ""
	if item.Title != nil {
		title = *item.Title
	}
	return Highlight{
		Kind:  KindGallery,
		ID:    item.ID,
		Image: item.ImageURL,
		Title: title,
	}
}

// DisplayDate renders timestamps the way the pt-PT page shows them.
func DisplayDate(value time.Time) string {
	return value.Format("02/01/2006")
}

func imageOrPlaceholder(url *string, seed string) string {
	if url != nil && *url != "" {
		return *url
	}
	return "https://picsum.photos/seed/" + seed + "/800/600"
}
