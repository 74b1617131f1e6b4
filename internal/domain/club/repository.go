package club

import "context"

type Repository interface {
	ListPartners(ctx context.Context) ([]Partner, error)
	GetPartnerByID(ctx context.Context, id string) (*Partner, error)
	CreatePartner(ctx context.Context, partner *Partner) error
	UpdatePartner(ctx context.Context, partner *Partner) error
	DeletePartner(ctx context.Context, id string) (bool, error)

	ListGallery(ctx context.Context) ([]GalleryItem, error)
	GetGalleryItemByID(ctx context.Context, id string) (*GalleryItem, error)
	CreateGalleryItem(ctx context.Context, item *GalleryItem) error
	UpdateGalleryItem(ctx context.Context, item *GalleryItem) error
	DeleteGalleryItem(ctx context.Context, id string) (bool, error)

	ListOrganization(ctx context.Context) ([]OrganizationMember, error)
	GetOrganizationMemberByID(ctx context.Context, id string) (*OrganizationMember, error)
	CreateOrganizationMember(ctx context.Context, member *OrganizationMember) error
	UpdateOrganizationMember(ctx context.Context, member *OrganizationMember) error
	DeleteOrganizationMember(ctx context.Context, id string) (bool, error)
}
