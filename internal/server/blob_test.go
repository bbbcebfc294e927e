package server

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

const blobFileSize = 1000

// кладёт в каталог хранилища файл из 1000 различимых байт
func newBlobServer(t *testing.T) (*Server, string, []byte) {
	t.Helper()

	s := newTestServer(t, stubResolver{})

	payload := make([]byte, blobFileSize)
	for i := range payload {
		payload[i] = byte(i % 251)
	}

	name := "tiktok_7123_1700000000000.mp4"
	require.NoError(t, os.WriteFile(filepath.Join(s.store.Dir(), name), payload, 0o644))

	return s, name, payload
}

func doRangeRequest(s *Server, name, rangeHeader string) *fasthttp.RequestCtx {
	var req fasthttp.Request
	req.Header.SetMethod("GET")
	req.SetRequestURI("/api/blob/" + name)

	if rangeHeader != "" {
		req.Header.Set(fasthttp.HeaderRange, rangeHeader)
	}

	ctx := &fasthttp.RequestCtx{}
	ctx.Init(&req, nil, nil)

	s.Handler()(ctx)

	return ctx
}

func TestBlobWholeFile(t *testing.T) {
	s, name, payload := newBlobServer(t)

	ctx := doRangeRequest(s, name, "")

	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	require.Equal(t, "video/mp4", string(ctx.Response.Header.ContentType()))
	require.Equal(t,
		fmt.Sprintf("attachment; filename=%q", name),
		string(ctx.Response.Header.Peek(fasthttp.HeaderContentDisposition)))
	require.Equal(t, payload, ctx.Response.Body())
}

func TestBlobRangePrefix(t *testing.T) {
	s, name, payload := newBlobServer(t)

	ctx := doRangeRequest(s, name, "bytes=0-99")

	require.Equal(t, fasthttp.StatusPartialContent, ctx.Response.StatusCode())
	require.Equal(t, "bytes 0-99/1000", string(ctx.Response.Header.Peek(fasthttp.HeaderContentRange)))
	require.Equal(t, "bytes", string(ctx.Response.Header.Peek(fasthttp.HeaderAcceptRanges)))
	require.Equal(t, payload[:100], ctx.Response.Body())
}

func TestBlobRangeOpenEnd(t *testing.T) {
	s, name, payload := newBlobServer(t)

	ctx := doRangeRequest(s, name, "bytes=900-")

	require.Equal(t, fasthttp.StatusPartialContent, ctx.Response.StatusCode())
	require.Equal(t, "bytes 900-999/1000", string(ctx.Response.Header.Peek(fasthttp.HeaderContentRange)))
	require.Equal(t, payload[900:], ctx.Response.Body())
}

func TestBlobRangeMiddle(t *testing.T) {
	s, name, payload := newBlobServer(t)

	ctx := doRangeRequest(s, name, "bytes=250-749")

	require.Equal(t, fasthttp.StatusPartialContent, ctx.Response.StatusCode())
	require.Equal(t, "bytes 250-749/1000", string(ctx.Response.Header.Peek(fasthttp.HeaderContentRange)))
	require.Equal(t, payload[250:750], ctx.Response.Body())
}

func TestBlobRangeEndClamped(t *testing.T) {
	s, name, payload := newBlobServer(t)

	ctx := doRangeRequest(s, name, "bytes=990-5000")

	require.Equal(t, fasthttp.StatusPartialContent, ctx.Response.StatusCode())
	require.Equal(t, "bytes 990-999/1000", string(ctx.Response.Header.Peek(fasthttp.HeaderContentRange)))
	require.Equal(t, payload[990:], ctx.Response.Body())
}

func TestBlobRangeUnsatisfiable(t *testing.T) {
	s, name, _ := newBlobServer(t)

	for _, header := range []string{"bytes=1000-", "bytes=1000-1100", "bytes=5-2"} {
		ctx := doRangeRequest(s, name, header)

		require.Equal(t, fasthttp.StatusRequestedRangeNotSatisfiable, ctx.Response.StatusCode(), header)
		require.Equal(t, "bytes */1000", string(ctx.Response.Header.Peek(fasthttp.HeaderContentRange)), header)
	}
}

func TestBlobMissingFile(t *testing.T) {
	s, _, _ := newBlobServer(t)

	ctx := doRangeRequest(s, "tiktok_nope_1.mp4", "")
	require.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	require.Equal(t, "File not found", resp.Error)
}

func TestBlobRejectsDotfiles(t *testing.T) {
	s, _, _ := newBlobServer(t)

	ctx := doRangeRequest(s, ".hidden", "")
	require.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())
}

func TestParseRange(t *testing.T) {
	cases := []struct {
		header string
		start  int64
		end    int64
		ok     bool
	}{
		{"bytes=0-99", 0, 99, true},
		{"bytes=500-", 500, 999, true},
		{"bytes=0-", 0, 999, true},
		{"bytes=990-5000", 990, 999, true},
		{"bytes=1000-", 0, 0, false},
		{"bytes=5-2", 0, 0, false},
		{"bytes=-100", 0, 0, false},
		{"items=0-99", 0, 0, false},
		{"bytes=abc-def", 0, 0, false},
	}

	for _, tc := range cases {
		start, end, ok := parseRange(tc.header, 1000)
		require.Equal(t, tc.ok, ok, tc.header)

		if tc.ok {
			require.Equal(t, tc.start, start, tc.header)
			require.Equal(t, tc.end, end, tc.header)
		}
	}
}
