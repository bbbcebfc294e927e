package tiktok

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/StounhandJ/tiktok_saver/internal/utils"
	"github.com/StounhandJ/tiktok_saver/internal/video"
)

// Четыре известных формы ссылок на ролик
var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`tiktok\.com/@[\w.-]+/video/(\d+)`),
	regexp.MustCompile(`vt\.tiktok\.com/(\w+)`),
	regexp.MustCompile(`vm\.tiktok\.com/(\w+)`),
	regexp.MustCompile(`tiktok\.com/t/(\w+)/`),
}

func extractVideoID(url string) string {
	for _, p := range videoIDPatterns {
		if m := p.FindStringSubmatch(url); m != nil {
			return m[1]
		}
	}

	return ""
}

// scrapePageMeta - деградированный источник данных: og:title и og:description
// со страницы самого ролика. Прямой ссылки на файл этот путь не даёт.
func scrapePageMeta(client *http.Client, pageUrl string, timeout time.Duration) (video.RawData, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, "GET", pageUrl, nil)
	if err != nil {
		return video.RawData{}, err
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := client.Do(req)
	if err != nil {
		return video.RawData{}, err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			utils.Log.Error(err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return video.RawData{}, fmt.Errorf("page returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return video.RawData{}, err
	}

	title, _ := doc.Find(`meta[property="og:title"]`).Attr("content")
	description, _ := doc.Find(`meta[property="og:description"]`).Attr("content")

	if title == "" && description == "" {
		return video.RawData{}, errors.New("og meta tags not found")
	}

	firstLine, _, _ := strings.Cut(description, "\n")

	return video.RawData{
		Title:          utils.StringNotEmptyCoalesce(firstLine, "TikTok Video"),
		Description:    description,
		AuthorNickname: strings.TrimSuffix(title, " on TikTok"),
		AuthorUniqueID: "tiktokuser",
	}, nil
}
