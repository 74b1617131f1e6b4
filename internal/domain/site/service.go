package site

import (
	"context"

	"club-site-go/internal/domain/club"
	"club-site-go/internal/domain/content"
	"club-site-go/internal/domain/matches"
	"club-site-go/internal/domain/news"
	"club-site-go/internal/domain/shop"
	"club-site-go/internal/domain/teams"
	"golang.org/x/sync/errgroup"
)

// The page shows at most this many matches per window.
const matchWindowLimit = 10

type NewsLister interface {
	List(ctx context.Context) ([]news.NewsItem, error)
}

type MatchScheduler interface {
	Schedule(ctx context.Context) (upcoming, past []matches.Match, err error)
}

type TeamLister interface {
	ListTeams(ctx context.Context) ([]teams.Team, error)
	ListMembers(ctx context.Context) ([]teams.TeamMember, error)
}

type ProductLister interface {
	List(ctx context.Context) ([]shop.Product, error)
}

type DirectoryLister interface {
	ListPartners(ctx context.Context) ([]club.Partner, error)
	ListGallery(ctx context.Context) ([]club.GalleryItem, error)
	ListOrganization(ctx context.Context) ([]club.OrganizationMember, error)
}

type ContentResolver interface {
	ResolveAll(ctx context.Context) (map[string]content.Resolved, error)
}

type Service struct {
	news      NewsLister
	matches   MatchScheduler
	teams     TeamLister
	products  ProductLister
	directory DirectoryLister
	content   ContentResolver
}

func NewService(news NewsLister, matches MatchScheduler, teams TeamLister, products ProductLister, directory DirectoryLister, content ContentResolver) *Service {
	return &Service{
		news:      news,
		matches:   matches,
		teams:     teams,
		products:  products,
		directory: directory,
		content:   content,
	}
}

// Snapshot fetches every collection in parallel and assembles the single
// payload the public page renders from. Any failed read fails the whole
// snapshot; there is no partial result.
func (s *Service) Snapshot(ctx context.Context) (*Snapshot, error) {
	var snapshot Snapshot

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		items, err := s.news.List(ctx)
		if err != nil {
			return err
		}
		snapshot.News = items
		return nil
	})
	group.Go(func() error {
		upcoming, past, err := s.matches.Schedule(ctx)
		if err != nil {
			return err
		}
		snapshot.Upcoming = capMatches(upcoming)
		snapshot.Past = capMatches(past)
		if len(upcoming) > 0 {
			next := upcoming[0]
			snapshot.NextMatch = &next
		}
		return nil
	})
	group.Go(func() error {
		list, err := s.teams.ListTeams(ctx)
		if err != nil {
			return err
		}
		snapshot.Teams = list
		return nil
	})
	group.Go(func() error {
		members, err := s.teams.ListMembers(ctx)
		if err != nil {
			return err
		}
		snapshot.TeamMembers = members
		return nil
	})
	group.Go(func() error {
		products, err := s.products.List(ctx)
		if err != nil {
			return err
		}
		snapshot.Products = products
		return nil
	})
	group.Go(func() error {
		partners, err := s.directory.ListPartners(ctx)
		if err != nil {
			return err
		}
		snapshot.Partners = partners
		return nil
	})
	group.Go(func() error {
		gallery, err := s.directory.ListGallery(ctx)
		if err != nil {
			return err
		}
		snapshot.Gallery = gallery
		return nil
	})
	group.Go(func() error {
		organization, err := s.directory.ListOrganization(ctx)
		if err != nil {
			return err
		}
		snapshot.Organization = organization
		return nil
	})
	group.Go(func() error {
		resolved, err := s.content.ResolveAll(ctx)
		if err != nil {
			return err
		}
		snapshot.Content = resolved
		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func capMatches(list []matches.Match) []matches.Match {
	if len(list) > matchWindowLimit {
		return list[:matchWindowLimit]
	}
	return list
}
