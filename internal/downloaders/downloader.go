package downloaders

import "github.com/StounhandJ/tiktok_saver/internal/video"

type IResolver interface {
	Resolve(url string) (*Resolution, error)
	Valid(url string) bool
}

// Resolution - результат разбора ссылки: прямая ссылка на медиафайл
// (пустая на деградированном пути) и нормализованные данные ролика.
type Resolution struct {
	DownloadURL string
	Record      video.Record
}
