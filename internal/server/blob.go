package server

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/StounhandJ/tiktok_saver/internal/utils"
	"github.com/valyala/fasthttp"
)

// Blob отдаёт сохранённый файл целиком либо по байтовому диапазону.
// Все заголовки выставляются до начала стриминга.
func (s *Server) Blob(ctx *fasthttp.RequestCtx) {
	filename := strings.TrimPrefix(string(ctx.Path()), "/api/blob/")

	path, err := s.store.Path(filename)
	if err != nil {
		s.writeError(ctx, fasthttp.StatusNotFound, "File not found")

		return
	}

	info, err := os.Stat(path)

	switch {
	case os.IsNotExist(err):
		s.writeError(ctx, fasthttp.StatusNotFound, "File not found")

		return
	case err != nil:
		utils.Log.Error(err)
		s.writeError(ctx, fasthttp.StatusInternalServerError, "Error serving video file")

		return
	}

	fileSize := info.Size()

	rangeHeader := string(ctx.Request.Header.Peek(fasthttp.HeaderRange))
	if rangeHeader == "" {
		s.serveWhole(ctx, path, filename, fileSize)

		return
	}

	start, end, ok := parseRange(rangeHeader, fileSize)
	if !ok {
		ctx.Response.Header.Set(fasthttp.HeaderContentRange, fmt.Sprintf("bytes */%d", fileSize))
		s.writeError(ctx, fasthttp.StatusRequestedRangeNotSatisfiable, "Range not satisfiable")

		return
	}

	f, err := os.Open(path)
	if err != nil {
		utils.Log.Error(err)
		s.writeError(ctx, fasthttp.StatusInternalServerError, "Error serving video file")

		return
	}

	if _, err := f.Seek(start, io.SeekStart); err != nil {
		_ = f.Close()
		utils.Log.Error(err)
		s.writeError(ctx, fasthttp.StatusInternalServerError, "Error serving video file")

		return
	}

	chunkSize := end - start + 1

	ctx.SetStatusCode(fasthttp.StatusPartialContent)
	ctx.Response.Header.Set(fasthttp.HeaderContentRange, fmt.Sprintf("bytes %d-%d/%d", start, end, fileSize))
	ctx.Response.Header.Set(fasthttp.HeaderAcceptRanges, "bytes")
	ctx.SetContentType("video/mp4")
	ctx.SetBodyStream(&fileSection{f: f, r: io.LimitReader(f, chunkSize)}, int(chunkSize))
}

func (s *Server) serveWhole(ctx *fasthttp.RequestCtx, path, filename string, fileSize int64) {
	f, err := os.Open(path)
	if err != nil {
		utils.Log.Error(err)
		s.writeError(ctx, fasthttp.StatusInternalServerError, "Error serving video file")

		return
	}

	ctx.SetContentType("video/mp4")
	ctx.Response.Header.Set(fasthttp.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	ctx.SetBodyStream(f, int(fileSize))
}

// parseRange разбирает "bytes=<start>-<end>?". end по умолчанию и при
// выходе за конец файла - последний байт. start за концом файла или
// после end - диапазон невыполним.
func parseRange(header string, fileSize int64) (int64, int64, bool) {
	spec, found := strings.CutPrefix(header, "bytes=")
	if !found {
		return 0, 0, false
	}

	startStr, endStr, found := strings.Cut(spec, "-")
	if !found {
		return 0, 0, false
	}

	start, err := strconv.ParseInt(startStr, 10, 64)
	if err != nil || start < 0 {
		return 0, 0, false
	}

	end := fileSize - 1

	if endStr != "" {
		end, err = strconv.ParseInt(endStr, 10, 64)
		if err != nil {
			return 0, 0, false
		}

		if end > fileSize-1 {
			end = fileSize - 1
		}
	}

	if start > end || start >= fileSize {
		return 0, 0, false
	}

	return start, end, true
}

// fileSection закрывает файл после вычитки диапазона
type fileSection struct {
	f *os.File
	r io.Reader
}

func (s *fileSection) Read(p []byte) (int, error) { return s.r.Read(p) }

func (s *fileSection) Close() error { return s.f.Close() }
