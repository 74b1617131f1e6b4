package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"club-site-go/internal/admin"
	clubdomain "club-site-go/internal/domain/club"
	matchesdomain "club-site-go/internal/domain/matches"
	newsdomain "club-site-go/internal/domain/news"
	shopdomain "club-site-go/internal/domain/shop"
	teamsdomain "club-site-go/internal/domain/teams"
	"club-site-go/internal/storage"
	"github.com/go-chi/chi/v5"
)

// adminResource binds one entity schema to the domain service calls the
// generic admin endpoints dispatch to. Payloads pass through
// Schema.Normalize before they reach a service.
type adminResource struct {
	schema   admin.Schema
	notFound error
	create   func(ctx context.Context, rec admin.Record) (any, error)
	update   func(ctx context.Context, id string, rec admin.Record) (any, error)
	delete   func(ctx context.Context, id string) error
}

// adminResources wires every schema-driven entity. site_content is absent
// on purpose: sections are upserted by name, not created by id.
func (h *Handlers) adminResources() map[string]adminResource {
	resources := map[string]adminResource{
		"news": {
			notFound: newsdomain.ErrNewsNotFound,
			create: func(ctx context.Context, rec admin.Record) (any, error) {
				return h.News.Create(ctx, newsdomain.CreateNewsInput{
					Title:    rec.String("title"),
					Content:  rec.String("content"),
					ImageURL: rec.StringPtr("image_url"),
				})
			},
			update: func(ctx context.Context, id string, rec admin.Record) (any, error) {
				return h.News.Update(ctx, newsdomain.UpdateNewsInput{
					ID:       id,
					Title:    rec.StringPtr("title"),
					Content:  rec.StringPtr("content"),
					ImageURL: rec.StringPtr("image_url"),
				})
			},
			delete: h.News.Delete,
		},
		"matches": {
			notFound: matchesdomain.ErrMatchNotFound,
			create: func(ctx context.Context, rec admin.Record) (any, error) {
				date, _ := rec.Time("date")
				return h.Matches.Create(ctx, matchesdomain.CreateMatchInput{
					Date:       date,
					HomeTeam:   rec.String("home_team"),
					GuestTeam:  rec.String("guest_team"),
					Location:   rec.String("location"),
					Category:   rec.String("category"),
					ScoreHome:  rec.IntPtr("score_home"),
					ScoreGuest: rec.IntPtr("score_guest"),
				})
			},
			update: func(ctx context.Context, id string, rec admin.Record) (any, error) {
				return h.Matches.Update(ctx, matchesdomain.UpdateMatchInput{
					ID:         id,
					Date:       rec.TimePtr("date"),
					HomeTeam:   rec.StringPtr("home_team"),
					GuestTeam:  rec.StringPtr("guest_team"),
					Location:   rec.StringPtr("location"),
					Category:   rec.StringPtr("category"),
					ScoreHome:  rec.IntPtr("score_home"),
					ScoreGuest: rec.IntPtr("score_guest"),
				})
			},
			delete: h.Matches.Delete,
		},
		"products": {
			notFound: shopdomain.ErrProductNotFound,
			create: func(ctx context.Context, rec admin.Record) (any, error) {
				return h.Shop.Create(ctx, shopdomain.CreateProductInput{
					Name:        rec.String("name"),
					Price:       rec.Float("price"),
					Description: rec.String("description"),
					ImageURL:    rec.StringPtr("image_url"),
				})
			},
			update: func(ctx context.Context, id string, rec admin.Record) (any, error) {
				return h.Shop.Update(ctx, shopdomain.UpdateProductInput{
					ID:          id,
					Name:        rec.StringPtr("name"),
					Price:       rec.FloatPtr("price"),
					Description: rec.StringPtr("description"),
					ImageURL:    rec.StringPtr("image_url"),
				})
			},
			delete: h.Shop.Delete,
		},
		"partners": {
			notFound: clubdomain.ErrPartnerNotFound,
			create: func(ctx context.Context, rec admin.Record) (any, error) {
				return h.Club.CreatePartner(ctx, clubdomain.CreatePartnerInput{
					Name:       rec.String("name"),
					WebsiteURL: rec.String("website_url"),
					LogoURL:    rec.StringPtr("logo_url"),
				})
			},
			update: func(ctx context.Context, id string, rec admin.Record) (any, error) {
				return h.Club.UpdatePartner(ctx, clubdomain.UpdatePartnerInput{
					ID:         id,
					Name:       rec.StringPtr("name"),
					WebsiteURL: rec.StringPtr("website_url"),
					LogoURL:    rec.StringPtr("logo_url"),
				})
			},
			delete: h.Club.DeletePartner,
		},
		"teams": {
			notFound: teamsdomain.ErrTeamNotFound,
			create: func(ctx context.Context, rec admin.Record) (any, error) {
				return h.Teams.CreateTeam(ctx, teamsdomain.CreateTeamInput{
					Name:        rec.String("name"),
					Category:    rec.String("category"),
					Description: rec.String("description"),
					Coaches:     rec.StringPtr("coaches"),
					ImageURL:    rec.StringPtr("image_url"),
				})
			},
			update: func(ctx context.Context, id string, rec admin.Record) (any, error) {
				return h.Teams.UpdateTeam(ctx, teamsdomain.UpdateTeamInput{
					ID:          id,
					Name:        rec.StringPtr("name"),
					Category:    rec.StringPtr("category"),
					Description: rec.StringPtr("description"),
					Coaches:     rec.StringPtr("coaches"),
					ImageURL:    rec.StringPtr("image_url"),
				})
			},
			delete: h.Teams.DeleteTeam,
		},
		"team_members": {
			notFound: teamsdomain.ErrMemberNotFound,
			create: func(ctx context.Context, rec admin.Record) (any, error) {
				return h.Teams.CreateMember(ctx, teamsdomain.CreateMemberInput{
					TeamID:   rec.String("team_id"),
					Name:     rec.String("name"),
					Number:   rec.String("number"),
					Position: rec.String("position"),
					ImageURL: rec.StringPtr("image_url"),
				})
			},
			update: func(ctx context.Context, id string, rec admin.Record) (any, error) {
				return h.Teams.UpdateMember(ctx, teamsdomain.UpdateMemberInput{
					ID:       id,
					TeamID:   rec.StringPtr("team_id"),
					Name:     rec.StringPtr("name"),
					Number:   rec.StringPtr("number"),
					Position: rec.StringPtr("position"),
					ImageURL: rec.StringPtr("image_url"),
				})
			},
			delete: h.Teams.DeleteMember,
		},
		"gallery": {
			notFound: clubdomain.ErrGalleryItemNotFound,
			create: func(ctx context.Context, rec admin.Record) (any, error) {
				return h.Club.CreateGalleryItem(ctx, clubdomain.CreateGalleryItemInput{
					Title:    rec.StringPtr("title"),
					ImageURL: rec.String("image_url"),
				})
			},
			update: func(ctx context.Context, id string, rec admin.Record) (any, error) {
				return h.Club.UpdateGalleryItem(ctx, clubdomain.UpdateGalleryItemInput{
					ID:       id,
					Title:    rec.StringPtr("title"),
					ImageURL: rec.StringPtr("image_url"),
				})
			},
			delete: h.Club.DeleteGalleryItem,
		},
		"organization": {
			notFound: clubdomain.ErrOrganizationMemberNotFound,
			create: func(ctx context.Context, rec admin.Record) (any, error) {
				return h.Club.CreateOrganizationMember(ctx, clubdomain.CreateOrganizationMemberInput{
					Name:     rec.String("name"),
					Role:     rec.String("role"),
					ImageURL: rec.StringPtr("image_url"),
				})
			},
			update: func(ctx context.Context, id string, rec admin.Record) (any, error) {
				return h.Club.UpdateOrganizationMember(ctx, clubdomain.UpdateOrganizationMemberInput{
					ID:       id,
					Name:     rec.StringPtr("name"),
					Role:     rec.StringPtr("role"),
					ImageURL: rec.StringPtr("image_url"),
				})
			},
			delete: h.Club.DeleteOrganizationMember,
		},
	}

	for entity := range resources {
		schema, ok := admin.SchemaFor(entity)
		if !ok {
			panic("admin: no schema declared for entity " + entity)
		}
		r := resources[entity]
		r.schema = schema
		resources[entity] = r
	}
	return resources
}

// AdminSchemas returns every entity schema for the editor UI.
func (h *Handlers) AdminSchemas(w http.ResponseWriter, r *http.Request) {
	writeList(w, admin.Schemas(), len(admin.Schemas()))
}

func (h *Handlers) AdminSchema(w http.ResponseWriter, r *http.Request) {
	entity := chi.URLParam(r, "entity")
	schema, ok := admin.SchemaFor(entity)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown_entity", "unknown entity")
		return
	}
	writeJSON(w, http.StatusOK, schema)
}

func (h *Handlers) AdminCreate(w http.ResponseWriter, r *http.Request) {
	entity := chi.URLParam(r, "entity")
	res, ok := h.resources[entity]
	if !ok {
		writeError(w, http.StatusNotFound, "unknown_entity", "unknown entity")
		return
	}

	var payload map[string]any
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	rec, err := res.schema.Normalize(payload, true)
	if err != nil {
		h.log.BusinessError("admin: payload rejected", err, "entity", entity)
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	created, err := res.create(r.Context(), rec)
	if err != nil {
		if errors.Is(err, res.notFound) || errors.Is(err, teamsdomain.ErrTeamNotFound) {
			h.log.BusinessError("admin: create target missing", err, "entity", entity)
			writeError(w, http.StatusNotFound, "not_found", err.Error())
			return
		}
		h.log.BusinessError("admin: create failed", err, "entity", entity)
		writeError(w, http.StatusBadRequest, "write_failed", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *Handlers) AdminUpdate(w http.ResponseWriter, r *http.Request) {
	entity := chi.URLParam(r, "entity")
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	res, ok := h.resources[entity]
	if !ok {
		writeError(w, http.StatusNotFound, "unknown_entity", "unknown entity")
		return
	}

	var payload map[string]any
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	rec, err := res.schema.Normalize(payload, false)
	if err != nil {
		h.log.BusinessError("admin: payload rejected", err, "entity", entity, "id", id)
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	updated, err := res.update(r.Context(), id, rec)
	if err != nil {
		if errors.Is(err, res.notFound) {
			h.log.BusinessError("admin: update target missing", err, "entity", entity, "id", id)
			writeError(w, http.StatusNotFound, "not_found", err.Error())
			return
		}
		h.log.BusinessError("admin: update failed", err, "entity", entity, "id", id)
		writeError(w, http.StatusBadRequest, "write_failed", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *Handlers) AdminDelete(w http.ResponseWriter, r *http.Request) {
	entity := chi.URLParam(r, "entity")
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	res, ok := h.resources[entity]
	if !ok {
		writeError(w, http.StatusNotFound, "unknown_entity", "unknown entity")
		return
	}

	if err := res.delete(r.Context(), id); err != nil {
		if errors.Is(err, res.notFound) {
			h.log.BusinessError("admin: delete target missing", err, "entity", entity, "id", id)
			writeError(w, http.StatusNotFound, "not_found", err.Error())
			return
		}
		h.log.BusinessError("admin: delete failed", err, "entity", entity, "id", id)
		writeError(w, http.StatusBadRequest, "write_failed", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type uploadResponse struct {
	URL string `json:"url"`
}

// Upload stores one multipart file under a fresh timestamped key and
// returns its public URL for use in image_url fields.
func (h *Handlers) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)

	file, header, err := r.FormFile("file")
	if err != nil {
		h.log.BusinessError("upload: missing file", err)
		writeError(w, http.StatusBadRequest, "invalid_request", "multipart field 'file' is required")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := storage.NewKey(header.Filename)
	url, err := h.uploads.Upload(r.Context(), key, contentType, file)
	if err != nil {
		h.log.InternalError("upload: store failed", err, "key", key)
		writeError(w, http.StatusBadGateway, "upload_failed", err.Error())
		return
	}

	h.log.Info("upload: stored", "key", key, "size", header.Size)
	writeJSON(w, http.StatusCreated, uploadResponse{URL: url})
}
