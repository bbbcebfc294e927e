package video

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeEmptyInputIsTotal(t *testing.T) {
	record := Normalize(RawData{})

	require.NotEmpty(t, record.ID, "id should be generated when upstream omits it")
	require.Equal(t, "Unknown User", record.Author.Nickname)
	require.Equal(t, "unknown", record.Author.UniqueID)
	require.Empty(t, record.Author.Avatar)
	require.NotEmpty(t, record.Author.FallbackAvatar)
	require.Equal(t, "Original Sound", record.Music.Title)
	require.Equal(t, "Unknown Artist", record.Music.Author)
	require.Zero(t, record.Statistics.PlayCount)
	require.Zero(t, record.Statistics.DiggCount)
	require.Zero(t, record.Statistics.CommentCount)
	require.Zero(t, record.Statistics.ShareCount)
	require.Equal(t, []string{"tiktok"}, record.Hashtags)
}

func TestNormalizeKeepsUpstreamFields(t *testing.T) {
	record := Normalize(RawData{
		ID:             "7123",
		Title:          "My #dance video",
		Duration:       15,
		Cover:          "https://cdn/cover.jpg",
		AuthorNickname: "Alice",
		AuthorUniqueID: "alice123",
		AuthorAvatar:   "https://cdn/avatar.jpg",
		MusicTitle:     "Song",
		MusicAuthor:    "Artist",
		MusicPlayURL:   "https://cdn/song.mp3",
		PlayCount:      100,
		DiggCount:      10,
		CommentCount:   5,
		ShareCount:     1,
	})

	require.Equal(t, "7123", record.ID)
	require.Equal(t, "My #dance video", record.Title)
	require.Equal(t, "My #dance video", record.Description, "description defaults to title")
	require.Equal(t, 15, record.Duration)
	require.Equal(t, "Alice", record.Author.Nickname)
	require.Equal(t, "https://cdn/avatar.jpg", record.Author.Avatar)
	require.NotEmpty(t, record.Author.FallbackAvatar, "fallback avatar is present even with a valid avatar")
	require.Equal(t, "https://cdn/song.mp3", record.Music.Play)
	require.Equal(t, 100, record.Statistics.PlayCount)
	require.Equal(t, []string{"dance"}, record.Hashtags)
}

func TestNormalizeMusicPlayPreference(t *testing.T) {
	record := Normalize(RawData{MusicPlayURL: "https://cdn/a.mp3", Music: "https://cdn/b.mp3"})
	require.Equal(t, "https://cdn/a.mp3", record.Music.Play)

	record = Normalize(RawData{Music: "https://cdn/b.mp3"})
	require.Equal(t, "https://cdn/b.mp3", record.Music.Play)

	record = Normalize(RawData{})
	require.Empty(t, record.Music.Play)
}

func TestNormalizeAvatarURL(t *testing.T) {
	require.Equal(t, "https://host/x.jpg", NormalizeAvatarURL("//host/x.jpg"))
	require.Equal(t, UpstreamHost+"/x.jpg", NormalizeAvatarURL("/x.jpg"))
	require.Equal(t, "https://host/x.jpg", NormalizeAvatarURL("https://host/x.jpg"))
	require.Empty(t, NormalizeAvatarURL("not-a-url"))
	require.Empty(t, NormalizeAvatarURL(""))
}

func TestDefaultRecordIsFullyPopulated(t *testing.T) {
	record := DefaultRecord()

	require.NotEmpty(t, record.ID)
	require.Equal(t, "TikTok Video", record.Title)
	require.Equal(t, "TikTok User", record.Author.Nickname)
	require.Equal(t, "tiktokuser", record.Author.UniqueID)
	require.NotEmpty(t, record.Author.FallbackAvatar)
	require.Equal(t, "Original Sound", record.Music.Title)
	require.Equal(t, []string{"tiktok"}, record.Hashtags)
}

func TestFallbackAvatarDeterministic(t *testing.T) {
	first := FallbackAvatar("StounhandJ")
	second := FallbackAvatar("StounhandJ")

	require.Equal(t, first, second, "same nickname must produce the same image")
	require.True(t, strings.HasPrefix(first, "data:image/svg+xml;utf8,"))
	require.Contains(t, first, ">S</text>", "initial is the uppercased first rune")
}

func TestFallbackAvatarLowercaseInitial(t *testing.T) {
	require.Contains(t, FallbackAvatar("alice"), ">A</text>")
}

func TestFallbackAvatarEmptyNickname(t *testing.T) {
	require.Equal(t, FallbackAvatar("Unknown User"), FallbackAvatar(""))
}
