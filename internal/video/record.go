//go:generate easyjson record.go
package video

// Record - стабильная форма данных ролика, отдаётся всем потребителям.
// Инвариант: все поля всегда заполнены, у каждого отсутствующего
// поля апстрима есть дефолт (см. Normalize).
// easyjson:json
type Record struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Duration    int        `json:"duration"`
	Cover       string     `json:"cover"`
	Author      Author     `json:"author"`
	Music       Music      `json:"music"`
	Statistics  Statistics `json:"statistics"`
	Hashtags    []string   `json:"hashtags"`
}

// easyjson:json
type Author struct {
	Nickname string `json:"nickname"`
	UniqueID string `json:"unique_id"`
	Avatar   string `json:"avatar"`
	// FallbackAvatar заполнен всегда, даже при валидном Avatar,
	// чтобы у интерфейса не было состояния без картинки.
	FallbackAvatar string `json:"fallback_avatar"`
}

// easyjson:json
type Music struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Play   string `json:"play"`
}

// easyjson:json
type Statistics struct {
	PlayCount    int `json:"play_count"`
	DiggCount    int `json:"digg_count"`
	CommentCount int `json:"comment_count"`
	ShareCount   int `json:"share_count"`
}

// RawData - явная схема опциональных полей апстрима на границе системы.
// Сырые ответы API дальше этой структуры не проходят.
type RawData struct {
	ID          string
	Title       string
	Description string
	Duration    int
	Cover       string

	AuthorNickname string
	AuthorUniqueID string
	AuthorAvatar   string

	MusicTitle   string
	MusicAuthor  string
	MusicPlayURL string
	Music        string

	PlayCount    int
	DiggCount    int
	CommentCount int
	ShareCount   int
}
