package tiktok

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/StounhandJ/tiktok_saver/internal/utils"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	utils.InitLogger("fatal")
	os.Exit(m.Run())
}

const apiSuccessBody = `{
	"code": 0,
	"msg": "success",
	"processed_time": 0.21,
	"data": {
		"id": "7123456789",
		"title": "Cool video #dance",
		"cover": "/static/cover.jpg",
		"duration": 15,
		"play": "/video/media/play.mp4",
		"hdplay": "//cdn.tikwm.com/video/hd.mp4",
		"wmplay": "/video/media/wm.mp4",
		"music": "https://cdn/music-url.mp3",
		"music_info": {
			"title": "Song",
			"play": "https://cdn/song.mp3",
			"author": "Artist"
		},
		"play_count": 1000,
		"digg_count": 50,
		"comment_count": 7,
		"share_count": 3,
		"author": {
			"unique_id": "alice123",
			"nickname": "Alice",
			"avatar": "/static/avatar.jpg"
		}
	}
}`

// подменяет BaseUrl на время теста
func stubAPI(t *testing.T, handler http.HandlerFunc) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	old := BaseUrl
	BaseUrl = srv.URL + "/api/"
	t.Cleanup(func() { BaseUrl = old })
}

func TestFetchMetadataSuccess(t *testing.T) {
	var gotQuery map[string]string
	stubAPI(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"url": r.URL.Query().Get("url"),
			"hd":  r.URL.Query().Get("hd"),
		}
		fmt.Fprint(w, apiSuccessBody)
	})

	data, err := fetchMetadata(http.DefaultClient, "https://tiktok.com/@alice/video/7123456789", 5*time.Second)
	require.NoError(t, err)

	require.Equal(t, "https://tiktok.com/@alice/video/7123456789", gotQuery["url"])
	require.Equal(t, "1", gotQuery["hd"])

	require.Equal(t, "7123456789", data.Data.ID)
	require.Equal(t, "Cool video #dance", data.Data.Title)
	require.Equal(t, 15, data.Data.Duration)
	require.Equal(t, "Alice", data.Data.Author.Nickname)
	require.Equal(t, "Song", data.Data.MusicInfo.Title)
	require.Equal(t, 1000, data.Data.PlayCount)
}

func TestFetchMetadataErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		body string
		want error
	}{
		{"rate limit", `{"code":-1,"msg":"Free Api Limit: 1 request/second"}`, ErrRateLimit},
		{"bad url", `{"code":-1,"msg":"Url parsing is failed! Fix url."}`, ErrParse},
		{"unknown", `{"code":-1,"msg":"something else"}`, ErrUnknown},
		{"empty payload", `{"code":0,"msg":"success","data":{}}`, ErrNoData},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stubAPI(t, func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, tc.body)
			})

			_, err := fetchMetadata(http.DefaultClient, "https://tiktok.com/@a/video/1", 5*time.Second)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestResolvePrimaryPath(t *testing.T) {
	stubAPI(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, apiSuccessBody)
	})

	res, err := New(http.DefaultClient, 5*time.Second).Resolve("https://tiktok.com/@alice/video/7123456789")
	require.NoError(t, err)

	// hdplay приоритетнее, protocol-relative ссылка достраивается
	require.Equal(t, "https://cdn.tikwm.com/video/hd.mp4", res.DownloadURL)

	require.Equal(t, "7123456789", res.Record.ID)
	require.Equal(t, "Alice", res.Record.Author.Nickname)
	require.Equal(t, "https://tikwm.com/static/avatar.jpg", res.Record.Author.Avatar)
	require.Equal(t, "https://cdn/song.mp3", res.Record.Music.Play)
	require.Equal(t, []string{"dance"}, res.Record.Hashtags)
}

func TestResolveScrapeFallback(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"code":-1,"msg":"Free Api Limit: 1 request/second"}`)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><head>
			<meta property="og:title" content="Alice on TikTok"/>
			<meta property="og:description" content="Cool video #dance&#10;second line"/>
		</head><body></body></html>`)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	old := BaseUrl
	BaseUrl = srv.URL + "/api/"
	t.Cleanup(func() { BaseUrl = old })

	// ссылка распознаётся по подстроке, а запрос уходит на тестовый сервер
	pageUrl := srv.URL + "/tiktok.com/@alice/video/7123456789"

	res, err := New(http.DefaultClient, 5*time.Second).Resolve(pageUrl)
	require.NoError(t, err)

	require.Empty(t, res.DownloadURL, "скрейп не даёт прямой ссылки на файл")
	require.Equal(t, "Alice", res.Record.Author.Nickname)
	require.Equal(t, "tiktokuser", res.Record.Author.UniqueID)
	require.Equal(t, "Cool video #dance", res.Record.Title)
	require.Equal(t, []string{"dance"}, res.Record.Hashtags)
}

func TestResolveBothPathsFail(t *testing.T) {
	stubAPI(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"code":-1,"msg":"Free Api Limit"}`)
	})

	// id не извлекается, скрейп даже не пробуем
	_, err := New(http.DefaultClient, 5*time.Second).Resolve("https://example.com/video")
	require.ErrorIs(t, err, ErrRateLimit)
}

func TestExtractVideoID(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"https://www.tiktok.com/@some.user/video/7123456789", "7123456789"},
		{"https://vt.tiktok.com/ZS8abc123/", "ZS8abc123"},
		{"https://vm.tiktok.com/XYZ987/", "XYZ987"},
		{"https://www.tiktok.com/t/ZTshort1/", "ZTshort1"},
		{"https://example.com/watch?v=123", ""},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, extractVideoID(tc.url), tc.url)
	}
}

func TestValid(t *testing.T) {
	r := New(http.DefaultClient, time.Second)

	require.True(t, r.Valid("https://www.tiktok.com/@a/video/1"))
	require.True(t, r.Valid("https://vm.tiktok.com/XYZ/"))
	require.False(t, r.Valid("https://youtube.com/watch?v=1"))
}

func TestDownloadURLPriority(t *testing.T) {
	require.Equal(t, "https://hd", downloadURL(ApiData{Hdplay: "https://hd", Play: "https://sd", Wmplay: "https://wm"}))
	require.Equal(t, "https://sd", downloadURL(ApiData{Play: "https://sd", Wmplay: "https://wm"}))
	require.Equal(t, "https://wm", downloadURL(ApiData{Wmplay: "https://wm"}))
	require.Equal(t, "https://tikwm.com/video/x.mp4", downloadURL(ApiData{Play: "/video/x.mp4"}))
	require.Empty(t, downloadURL(ApiData{}))
}
