package service

import (
	"context"
	"strings"

	"github.com/lhgiang/eduquest/config"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// VideoSearchService resolves a search phrase to a single video URL. It never
// fails outward: missing configuration, provider errors and empty result sets
// all degrade to a deterministic web-search URL so video enrichment can never
// break the pipeline around it.
type VideoSearchService interface {
	FindVideo(query string) string
}

type videoSearchService struct {
	yt *youtube.Service
}

func NewVideoSearchService(cfg *config.Config) VideoSearchService {
	if cfg.YoutubeApiKey == "" {
		log.Warn().Msg("YOUTUBE_API_KEY is not set. Video lookups will return fallback search URLs.")
		return &videoSearchService{yt: nil}
	}

	yt, err := youtube.NewService(context.Background(), option.WithAPIKey(cfg.YoutubeApiKey))
	if err != nil {
		log.Warn().Err(err).Msg("Failed to initialize YouTube client. Video lookups will return fallback search URLs.")
		return &videoSearchService{yt: nil}
	}
	return &videoSearchService{yt: yt}
}

func (s *videoSearchService) FindVideo(query string) string {
	if s.yt == nil {
		return fallbackSearchURL(query)
	}

	call := s.yt.Search.List([]string{"snippet"}).
		Q("tutorial for " + query).
		MaxResults(1).
		Type("video")
	resp, err := call.Do()
	if err != nil {
		log.Warn().Err(err).Str("query", query).Msg("YouTube search failed, returning fallback URL")
		return fallbackSearchURL(query)
	}
	if len(resp.Items) == 0 || resp.Items[0].Id == nil || resp.Items[0].Id.VideoId == "" {
		return fallbackSearchURL(query)
	}
	return "https://www.youtube.com/watch?v=" + resp.Items[0].Id.VideoId
}

// fallbackSearchURL builds a well-formed web search URL from the query phrase,
// collapsing whitespace runs into '+'.
func fallbackSearchURL(query string) string {
	return "https://www.google.com/search?q=" + strings.Join(strings.Fields(query), "+")
}
