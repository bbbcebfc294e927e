package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/StounhandJ/tiktok_saver/internal/utils"
)

const userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/140.0.0.0 YaBrowser/25.10.0.0 Safari/537.36"

var ErrBadFilename = errors.New("bad filename")

// Store - каталог со скачанными роликами. Файлы не дедуплицируются:
// каждый запрос на скачивание кладёт новый файл, старые убирает Sweep.
type Store struct {
	dir     string
	client  *http.Client
	timeout time.Duration
}

func New(dir string, client *http.Client, timeout time.Duration) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir %s: %w", dir, err)
	}

	return &Store{
		dir:     dir,
		client:  client,
		timeout: timeout,
	}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

// Filename - имя вида tiktok_<id>_<unixmilli>.mp4, коллизий между
// параллельными запросами не бывает за счёт таймстемпа
func (s *Store) Filename(id string) string {
	return fmt.Sprintf("tiktok_%s_%s.mp4", utils.SanitizeFileName(id), strconv.FormatInt(time.Now().UnixMilli(), 10))
}

// Path проверяет имя файла и возвращает полный путь внутри каталога
func (s *Store) Path(filename string) (string, error) {
	if filename == "" || filename != filepath.Base(filename) || strings.HasPrefix(filename, ".") {
		return "", ErrBadFilename
	}

	return filepath.Join(s.dir, filename), nil
}

// Fetch качает файл потоково: тело ответа через io.Copy уходит прямо на
// диск, медленная запись сама притормаживает чтение из сети. Частичный
// файл при обрыве остаётся, его уберёт Sweep.
func (s *Store) Fetch(mediaUrl, filename string) (int64, error) {
	path, err := s.Path(filename)
	if err != nil {
		return 0, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, "GET", mediaUrl, nil)
	if err != nil {
		return 0, fmt.Errorf("download failed: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Referer", "https://tiktok.com/")

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("download failed: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			utils.Log.Error(err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("download failed: media returned status %d", resp.StatusCode)
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("download failed: %w", err)
	}

	size, err := io.Copy(f, resp.Body)
	if err != nil {
		_ = f.Close()

		return 0, fmt.Errorf("download failed: %w", err)
	}

	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("download failed: %w", err)
	}

	return size, nil
}

// Sweep удаляет файлы старше maxAge, возвращает число удалённых
func (s *Store) Sweep(maxAge time.Duration) (int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, fmt.Errorf("sweep: %w", err)
	}

	removed := 0
	now := time.Now()

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		if now.Sub(info.ModTime()) <= maxAge {
			continue
		}

		if err := os.Remove(filepath.Join(s.dir, entry.Name())); err != nil {
			utils.Log.Error(err)

			continue
		}

		utils.Log.Infof("Удалён старый файл %s", entry.Name())
		removed++
	}

	return removed, nil
}
