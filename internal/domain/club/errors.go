package club

import "errors"

var (
	ErrPartnerNotFound            = errors.New("partner not found")
	ErrGalleryItemNotFound        = errors.New("gallery item not found")
	ErrOrganizationMemberNotFound = errors.New("organization member not found")
)
