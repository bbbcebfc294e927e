package server

import (
	"strings"
	"time"

	"github.com/StounhandJ/tiktok_saver/internal/downloaders"
	"github.com/StounhandJ/tiktok_saver/internal/storage"
	"github.com/StounhandJ/tiktok_saver/internal/utils"
	easyjson "github.com/mailru/easyjson"
	"github.com/valyala/fasthttp"
)

const (
	ServiceName    = "TikTok Saver API"
	ServiceVersion = "1.1.0"
)

type Server struct {
	resolver    downloaders.IResolver
	store       *storage.Store
	sweepMaxAge time.Duration

	static    fasthttp.RequestHandler
	downloads fasthttp.RequestHandler
}

func New(resolver downloaders.IResolver, store *storage.Store, publicDir string, sweepMaxAge time.Duration) *Server {
	s := &Server{
		resolver:    resolver,
		store:       store,
		sweepMaxAge: sweepMaxAge,
	}

	staticFS := &fasthttp.FS{
		Root:         publicDir,
		IndexNames:   []string{"index.html"},
		PathNotFound: s.NotFound,
	}
	s.static = staticFS.NewRequestHandler()

	// Скачанные файлы доступны и напрямую, диапазоны здесь отдаёт fasthttp
	downloadsFS := &fasthttp.FS{
		Root:            store.Dir(),
		PathRewrite:     fasthttp.NewPathSlashesStripper(1),
		AcceptByteRange: true,
		PathNotFound:    s.NotFound,
	}
	s.downloads = downloadsFS.NewRequestHandler()

	return s
}

// Handler - единственная точка входа: CORS, recover и маршрутизация
func (s *Server) Handler() fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		defer func() {
			if r := recover(); r != nil {
				utils.Log.Errorf("panic: %v", r)
				s.writeError(ctx, fasthttp.StatusInternalServerError, "Internal server error")
			}
		}()

		ctx.Response.Header.Set(fasthttp.HeaderAccessControlAllowOrigin, "*")
		ctx.Response.Header.Set(fasthttp.HeaderAccessControlAllowMethods, "GET, POST, DELETE, OPTIONS")
		ctx.Response.Header.Set(fasthttp.HeaderAccessControlAllowHeaders, "Content-Type")

		if ctx.IsOptions() {
			ctx.SetStatusCode(fasthttp.StatusNoContent)

			return
		}

		path := string(ctx.Path())

		switch {
		case path == "/api/info" && ctx.IsPost():
			s.Info(ctx)
		case path == "/api/download" && ctx.IsPost():
			s.Download(ctx)
		case strings.HasPrefix(path, "/api/blob/") && ctx.IsGet():
			s.Blob(ctx)
		case path == "/api/cleanup" && ctx.IsDelete():
			s.Cleanup(ctx)
		case path == "/api/health" && ctx.IsGet():
			s.Health(ctx)
		case strings.HasPrefix(path, "/downloads/"):
			s.downloads(ctx)
		case strings.HasPrefix(path, "/api/"):
			s.NotFound(ctx)
		default:
			s.static(ctx)
		}
	}
}

func (s *Server) NotFound(ctx *fasthttp.RequestCtx) {
	s.writeJSON(ctx, fasthttp.StatusNotFound, &ErrorResponse{
		Error: "Endpoint not found",
		Path:  string(ctx.Path()),
	})
}

func (s *Server) writeJSON(ctx *fasthttp.RequestCtx, status int, v easyjson.Marshaler) {
	b, err := easyjson.Marshal(v)
	if err != nil {
		utils.Log.Error(err)
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)

		return
	}

	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json; charset=utf-8")
	ctx.SetBody(b)
}

func (s *Server) writeError(ctx *fasthttp.RequestCtx, status int, msg string) {
	s.writeJSON(ctx, status, &ErrorResponse{Error: msg})
}
