package video

import (
	"strconv"
	"strings"
	"time"

	"github.com/StounhandJ/tiktok_saver/internal/utils"
)

// UpstreamHost - хост, от которого приходят относительные ссылки апстрима
const UpstreamHost = "https://tikwm.com"

const (
	defaultNickname    = "Unknown User"
	defaultUniqueID    = "unknown"
	defaultMusicTitle  = "Original Sound"
	defaultMusicAuthor = "Unknown Artist"
)

// Normalize - тотальная функция: для любого RawData (включая пустой)
// возвращает полностью заполненный Record.
func Normalize(raw RawData) Record {
	id := raw.ID
	if id == "" {
		id = strconv.FormatInt(time.Now().UnixMilli(), 10)
	}

	nickname := utils.StringNotEmptyCoalesce(raw.AuthorNickname, defaultNickname)
	uniqueID := utils.StringNotEmptyCoalesce(raw.AuthorUniqueID, defaultUniqueID)

	return Record{
		ID:          id,
		Title:       raw.Title,
		Description: utils.StringNotEmptyCoalesce(raw.Description, raw.Title),
		Duration:    raw.Duration,
		Cover:       raw.Cover,
		Author: Author{
			Nickname:       nickname,
			UniqueID:       uniqueID,
			Avatar:         NormalizeAvatarURL(raw.AuthorAvatar),
			FallbackAvatar: FallbackAvatar(nickname),
		},
		Music: Music{
			Title:  utils.StringNotEmptyCoalesce(raw.MusicTitle, defaultMusicTitle),
			Author: utils.StringNotEmptyCoalesce(raw.MusicAuthor, defaultMusicAuthor),
			// Предпочтение: явная ссылка из music_info, потом общее поле music
			Play: utils.StringNotEmptyCoalesce(raw.MusicPlayURL, raw.Music),
		},
		Statistics: Statistics{
			PlayCount:    raw.PlayCount,
			DiggCount:    raw.DiggCount,
			CommentCount: raw.CommentCount,
			ShareCount:   raw.ShareCount,
		},
		Hashtags: ExtractHashtags(raw.Title, raw.Description),
	}
}

// NormalizeAvatarURL чинит относительные ссылки апстрима.
// Всё, что после починки не стало http-ссылкой, выбрасывается.
func NormalizeAvatarURL(avatar string) string {
	if avatar == "" {
		return ""
	}

	switch {
	case strings.HasPrefix(avatar, "//"):
		avatar = "https:" + avatar
	case strings.HasPrefix(avatar, "/"):
		avatar = UpstreamHost + avatar
	}

	if !strings.HasPrefix(avatar, "http") {
		return ""
	}

	return avatar
}

// DefaultRecord - полностью синтетическая запись, когда оба пути апстрима исчерпаны
func DefaultRecord() Record {
	return Normalize(RawData{
		Title:          "TikTok Video",
		Description:    "Downloaded from TikTok",
		AuthorNickname: "TikTok User",
		AuthorUniqueID: "tiktokuser",
	})
}
