package club

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListPartners(ctx context.Context) ([]Partner, error) {
	return s.repo.ListPartners(ctx)
}

func (s *Service) CreatePartner(ctx context.Context, input CreatePartnerInput) (*Partner, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	partner := Partner{
		ID:         uuid.NewString(),
		Name:       name,
		WebsiteURL: strings.TrimSpace(input.WebsiteURL),
		LogoURL:    input.LogoURL,
	}

	if err := s.repo.CreatePartner(ctx, &partner); err != nil {
		return nil, err
	}
	return &partner, nil
}

func (s *Service) UpdatePartner(ctx context.Context, input UpdatePartnerInput) (*Partner, error) {
	partner, err := s.repo.GetPartnerByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		trimmed := strings.TrimSpace(*input.Name)
		if trimmed == "" {
			return nil, fmt.Errorf("name is required")
		}
		partner.Name = trimmed
	}
	if input.WebsiteURL != nil {
		partner.WebsiteURL = strings.TrimSpace(*input.WebsiteURL)
	}
	if input.LogoURL != nil {
		partner.LogoURL = input.LogoURL
	}

	if err := s.repo.UpdatePartner(ctx, partner); err != nil {
		return nil, err
	}
	return partner, nil
}

func (s *Service) DeletePartner(ctx context.Context, id string) error {
	deleted, err := s.repo.DeletePartner(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrPartnerNotFound
	}
	return nil
}

func (s *Service) ListGallery(ctx context.Context) ([]GalleryItem, error) {
	return s.repo.ListGallery(ctx)
}

func (s *Service) GetGalleryItemByID(ctx context.Context, id string) (*GalleryItem, error) {
	return s.repo.GetGalleryItemByID(ctx, id)
}

func (s *Service) CreateGalleryItem(ctx context.Context, input CreateGalleryItemInput) (*GalleryItem, error) {
	image := strings.TrimSpace(input.ImageURL)
	if image == "" {
		return nil, fmt.Errorf("image_url is required")
	}

	item := GalleryItem{
		ID:       uuid.NewString(),
		Title:    input.Title,
		ImageURL: image,
	}

	if err := s.repo.CreateGalleryItem(ctx, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Service) UpdateGalleryItem(ctx context.Context, input UpdateGalleryItemInput) (*GalleryItem, error) {
	item, err := s.repo.GetGalleryItemByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		item.Title = input.Title
	}
	if input.ImageURL != nil {
		image := strings.TrimSpace(*input.ImageURL)
		if image == "" {
			return nil, fmt.Errorf("image_url is required")
		}
		item.ImageURL = image
	}

	if err := s.repo.UpdateGalleryItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) DeleteGalleryItem(ctx context.Context, id string) error {
	deleted, err := s.repo.DeleteGalleryItem(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrGalleryItemNotFound
	}
	return nil
}

func (s *Service) ListOrganization(ctx context.Context) ([]OrganizationMember, error) {
	return s.repo.ListOrganization(ctx)
}

func (s *Service) CreateOrganizationMember(ctx context.Context, input CreateOrganizationMemberInput) (*OrganizationMember, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	member := OrganizationMember{
		ID:       uuid.NewString(),
		Name:     name,
		Role:     strings.TrimSpace(input.Role),
		ImageURL: input.ImageURL,
	}

	if err := s.repo.CreateOrganizationMember(ctx, &member); err != nil {
		return nil, err
	}
	return &member, nil
}

func (s *Service) UpdateOrganizationMember(ctx context.Context, input UpdateOrganizationMemberInput) (*OrganizationMember, error) {
	member, err := s.repo.GetOrganizationMemberByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		trimmed := strings.TrimSpace(*input.Name)
		if trimmed == "" {
			return nil, fmt.Errorf("name is required")
		}
		member.Name = trimmed
	}
	if input.Role != nil {
		member.Role = strings.TrimSpace(*input.Role)
	}
	if input.ImageURL != nil {
		member.ImageURL = input.ImageURL
	}

	if err := s.repo.UpdateOrganizationMember(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *Service) DeleteOrganizationMember(ctx context.Context, id string) error {
	deleted, err := s.repo.DeleteOrganizationMember(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrOrganizationMemberNotFound
	}
	return nil
}
