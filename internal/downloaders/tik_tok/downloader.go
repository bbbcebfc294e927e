package tiktok

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/StounhandJ/tiktok_saver/internal/downloaders"
	"github.com/StounhandJ/tiktok_saver/internal/utils"
	"github.com/StounhandJ/tiktok_saver/internal/video"
)

type resolver struct {
	client          *http.Client
	metadataTimeout time.Duration
}

func New(client *http.Client, metadataTimeout time.Duration) downloaders.IResolver {
	return &resolver{
		client:          client,
		metadataTimeout: metadataTimeout,
	}
}

// Resolve: сначала основной API, при любой его ошибке - скрейп страницы
// ролика. Повторов нет: одна попытка на путь.
func (d resolver) Resolve(url string) (*downloaders.Resolution, error) {
	metadata, err := fetchMetadata(d.client, url, d.metadataTimeout)
	if err == nil {
		return &downloaders.Resolution{
			DownloadURL: downloadURL(metadata.Data),
			Record:      video.Normalize(rawFromApi(metadata.Data)),
		}, nil
	}

	utils.Log.Warnf("tikwm api: %s", err)

	if extractVideoID(url) == "" {
		return nil, err
	}

	raw, scrapeErr := scrapePageMeta(d.client, url, d.metadataTimeout)
	if scrapeErr != nil {
		return nil, fmt.Errorf("all upstream paths failed: %w", scrapeErr)
	}

	return &downloaders.Resolution{Record: video.Normalize(raw)}, nil
}

func (resolver) Valid(url string) bool {
	return strings.Contains(url, "tiktok.com/")
}

func downloadURL(data ApiData) string {
	u := utils.StringNotEmptyCoalesce(data.Hdplay, data.Play, data.Wmplay)

	switch {
	case strings.HasPrefix(u, "//"):
		u = "https:" + u
	case strings.HasPrefix(u, "/"):
		u = video.UpstreamHost + u
	}

	return u
}

func rawFromApi(data ApiData) video.RawData {
	return video.RawData{
		ID:       data.ID,
		Title:    data.Title,
		Duration: data.Duration,
		Cover:    data.Cover,

		AuthorNickname: data.Author.Nickname,
		AuthorUniqueID: data.Author.UniqueID,
		AuthorAvatar:   data.Author.Avatar,

		MusicTitle:   data.MusicInfo.Title,
		MusicAuthor:  data.MusicInfo.Author,
		MusicPlayURL: data.MusicInfo.Play,
		Music:        data.Music,

		PlayCount:    data.PlayCount,
		DiggCount:    data.DiggCount,
		CommentCount: data.CommentCount,
		ShareCount:   data.ShareCount,
	}
}
