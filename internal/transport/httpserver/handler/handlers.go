package handler

import (
	clubdomain "club-site-go/internal/domain/club"
	contentdomain "club-site-go/internal/domain/content"
	matchesdomain "club-site-go/internal/domain/matches"
	newsdomain "club-site-go/internal/domain/news"
	shopdomain "club-site-go/internal/domain/shop"
	sitedomain "club-site-go/internal/domain/site"
	teamsdomain "club-site-go/internal/domain/teams"
	"club-site-go/internal/storage"
	"club-site-go/pkg/logger"
)

type Handlers struct {
	News    *newsdomain.Service
	Matches *matchesdomain.Service
	Teams   *teamsdomain.Service
	Shop    *shopdomain.Service
	Club    *clubdomain.Service
	Content *contentdomain.Service
	Site    *sitedomain.Service

	uploads       storage.Storage
	maxUploadSize int64
	resources     map[string]adminResource
	log           logger.Logger
}

func New(
	news *newsdomain.Service,
	matches *matchesdomain.Service,
	teams *teamsdomain.Service,
	shop *shopdomain.Service,
	club *clubdomain.Service,
	content *contentdomain.Service,
	site *sitedomain.Service,
	uploads storage.Storage,
	maxUploadSize int64,
	log logger.Logger,
) *Handlers {
	h := &Handlers{
		News:          news,
		Matches:       matches,
		Teams:         teams,
		Shop:          shop,
		Club:          club,
		Content:       content,
		Site:          site,
		uploads:       uploads,
		maxUploadSize: maxUploadSize,
		log:           log,
	}
	h.resources = h.adminResources()
	return h
}
