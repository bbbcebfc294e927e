//go:generate easyjson api.go
package tiktok

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	netUrl "net/url"

	"github.com/StounhandJ/tiktok_saver/internal/utils"
	easyjson "github.com/mailru/easyjson"
)

// BaseUrl переопределяется в тестах
var BaseUrl = "https://tikwm.com/api/"

const userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/140.0.0.0 YaBrowser/25.10.0.0 Safari/537.36"

var (
	ErrRateLimit = errors.New("rate limit exceeded")
	ErrParse     = errors.New("parse error")
	ErrNoData    = errors.New("no data received from API")
	ErrUnknown   = errors.New("unknown error")
)

func fetchMetadata(client *http.Client, postUrl string, timeout time.Duration) (ApiResponse, error) {
	query := netUrl.Values{}
	query.Set("url", postUrl)
	query.Set("count", "12")
	query.Set("cursor", "0")
	query.Set("web", "1")
	query.Set("hd", "1")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, "GET", fmt.Sprintf("%s?%s", BaseUrl, query.Encode()), nil)
	if err != nil {
		return ApiResponse{}, err
	}

	req.Header.Set("Accept", "application/json, text/plain, */*")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Origin", "https://tikwm.com")
	req.Header.Set("Referer", "https://tikwm.com/")

	resp, err := client.Do(req)
	if err != nil {
		return ApiResponse{}, err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			utils.Log.Error(err)
		}
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return ApiResponse{}, err
	}

	var data ApiResponse

	err = easyjson.Unmarshal(b, &data)
	if err != nil {
		return ApiResponse{}, err
	}

	if data.Code != 0 {
		switch {
		case strings.HasPrefix(data.Msg, "Free Api Limit"):
			return data, ErrRateLimit
		case strings.HasPrefix(data.Msg, "Url parsing is failed"):
			return data, ErrParse
		default:
			return data, ErrUnknown
		}
	}

	// code == 0, но payload пустой - тоже отказ
	if data.Data.ID == "" && data.Data.Play == "" {
		return data, ErrNoData
	}

	return data, nil
}

// easyjson:json
type ApiResponse struct {
	Code          int     `json:"code,omitempty"`
	Msg           string  `json:"msg"`
	ProcessedTime float64 `json:"processed_time,omitempty"`
	Data          ApiData `json:"data,omitempty"`
}

// easyjson:json
type ApiData struct {
	ID          string `json:"id,omitempty"`
	Region      string `json:"region,omitempty"`
	Title       string `json:"title,omitempty"`
	Cover       string `json:"cover,omitempty"`
	OriginCover string `json:"origin_cover,omitempty"`
	Duration    int    `json:"duration,omitempty"`
	Play        string `json:"play,omitempty"`
	Hdplay      string `json:"hdplay,omitempty"`
	Wmplay      string `json:"wmplay,omitempty"`
	Size        int    `json:"size,omitempty"`
	WmSize      int    `json:"wm_size,omitempty"`
	HdSize      int    `json:"hd_size,omitempty"`

	Music     string       `json:"music,omitempty"`
	MusicInfo ApiMusicInfo `json:"music_info,omitempty"`

	PlayCount    int `json:"play_count,omitempty"`
	DiggCount    int `json:"digg_count,omitempty"`
	CommentCount int `json:"comment_count,omitempty"`
	ShareCount   int `json:"share_count,omitempty"`

	Author ApiAuthor `json:"author,omitempty"`
}

// easyjson:json
type ApiMusicInfo struct {
	ID       string `json:"id,omitempty"`
	Title    string `json:"title,omitempty"`
	Play     string `json:"play,omitempty"`
	Cover    string `json:"cover,omitempty"`
	Author   string `json:"author,omitempty"`
	Original bool   `json:"original,omitempty"`
	Duration int    `json:"duration,omitempty"`
	Album    string `json:"album,omitempty"`
}

// easyjson:json
type ApiAuthor struct {
	ID       string `json:"id,omitempty"`
	UniqueID string `json:"unique_id,omitempty"`
	Nickname string `json:"nickname,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}
