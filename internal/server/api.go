//go:generate easyjson api.go
package server

import (
	"strings"
	"time"

	"github.com/StounhandJ/tiktok_saver/internal/utils"
	"github.com/StounhandJ/tiktok_saver/internal/video"
	easyjson "github.com/mailru/easyjson"
	"github.com/valyala/fasthttp"
)

// easyjson:json
type InfoRequest struct {
	URL string `json:"url"`
}

// easyjson:json
type InfoResponse struct {
	Success     bool         `json:"success"`
	DownloadURL string       `json:"downloadUrl"`
	VideoData   video.Record `json:"videoData"`
}

// easyjson:json
type DownloadResponse struct {
	Success      bool         `json:"success"`
	VideoData    video.Record `json:"videoData"`
	DownloadInfo DownloadInfo `json:"downloadInfo"`
}

// easyjson:json
type DownloadInfo struct {
	Filename  string `json:"filename"`
	Size      int64  `json:"size"`
	BlobURL   string `json:"blobUrl"`
	DirectURL string `json:"directUrl"`
}

// easyjson:json
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Path    string `json:"path,omitempty"`
}

// easyjson:json
type CleanupResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Removed int    `json:"removed"`
}

// easyjson:json
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
	Version   string `json:"version"`
}

// Info отдаёт метаданные ролика. Когда оба пути апстрима исчерпаны,
// вместо 404 уходит полностью дефолтная запись - интерфейсу всегда
// есть что показать.
func (s *Server) Info(ctx *fasthttp.RequestCtx) {
	url, ok := s.requestURL(ctx)
	if !ok {
		return
	}

	utils.Log.Infof("Запрос информации: %s", url)

	res, err := s.resolver.Resolve(url)
	if err != nil {
		utils.Log.Warnf("resolve %s: %s", url, err)
		s.writeJSON(ctx, fasthttp.StatusOK, &InfoResponse{
			Success:   true,
			VideoData: video.DefaultRecord(),
		})

		return
	}

	s.writeJSON(ctx, fasthttp.StatusOK, &InfoResponse{
		Success:     true,
		DownloadURL: res.DownloadURL,
		VideoData:   res.Record,
	})
}

func (s *Server) Download(ctx *fasthttp.RequestCtx) {
	url, ok := s.requestURL(ctx)
	if !ok {
		return
	}

	utils.Log.Infof("Запрос скачивания: %s", url)

	res, err := s.resolver.Resolve(url)
	if err != nil || res.DownloadURL == "" {
		s.writeError(ctx, fasthttp.StatusNotFound, "Could not get download link")

		return
	}

	filename := s.store.Filename(res.Record.ID)

	size, err := s.store.Fetch(res.DownloadURL, filename)
	if err != nil {
		utils.Log.Error(err)
		s.writeError(ctx, fasthttp.StatusInternalServerError, err.Error())

		return
	}

	s.writeJSON(ctx, fasthttp.StatusOK, &DownloadResponse{
		Success:   true,
		VideoData: res.Record,
		DownloadInfo: DownloadInfo{
			Filename:  filename,
			Size:      size,
			BlobURL:   "/api/blob/" + filename,
			DirectURL: res.DownloadURL,
		},
	})
}

func (s *Server) Cleanup(ctx *fasthttp.RequestCtx) {
	removed, err := s.store.Sweep(s.sweepMaxAge)
	if err != nil {
		utils.Log.Error(err)
		s.writeError(ctx, fasthttp.StatusInternalServerError, err.Error())

		return
	}

	s.writeJSON(ctx, fasthttp.StatusOK, &CleanupResponse{
		Success: true,
		Message: "Cleanup completed",
		Removed: removed,
	})
}

func (s *Server) Health(ctx *fasthttp.RequestCtx) {
	s.writeJSON(ctx, fasthttp.StatusOK, &HealthResponse{
		Status:    "OK",
		Timestamp: time.Now().Format(time.RFC3339),
		Service:   ServiceName,
		Version:   ServiceVersion,
	})
}

func (s *Server) requestURL(ctx *fasthttp.RequestCtx) (string, bool) {
	var req InfoRequest

	if err := easyjson.Unmarshal(ctx.PostBody(), &req); err != nil || strings.TrimSpace(req.URL) == "" {
		s.writeError(ctx, fasthttp.StatusBadRequest, "TikTok URL is required")

		return "", false
	}

	return strings.TrimSpace(req.URL), true
}
