package config

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/urfave/cli/v3"
)

// Субкоманд нет, поэтому urfave/cli используется напрямую: флаги и env
// накладываются поверх значений из yaml (Value берётся из уже прочитанного конфига).
func applyFlags(c *Config) error {
	a := &c.Application

	// Duration-поля идут через временные time.Duration: Destination у
	// cli.DurationFlag требует именно этот тип
	metadataTimeout := time.Duration(a.MetadataTimeout)
	mediaTimeout := time.Duration(a.MediaTimeout)
	sweepMaxAge := time.Duration(a.SweepMaxAge)

	var helpWasCalled bool

	original := cli.HelpPrinterCustom
	cli.HelpPrinterCustom = func(w io.Writer, templ string, data any, customFunc map[string]any) {
		helpWasCalled = true

		original(w, templ, data, customFunc)
	}

	cmd := &cli.Command{
		Name:  "tiktok_saver",
		Usage: "Запустить сервер",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "port", Usage: "Порт HTTP сервера", Value: a.Port, Destination: &a.Port, Sources: cli.EnvVars("APP_PORT", "PORT")},
			&cli.StringFlag{Name: "log-level", Usage: "Уровень логов (debug|warning|info|error|fatal)", Value: a.LogLevel, Destination: &a.LogLevel, Sources: cli.EnvVars("APP_LOGLEVEL")},
			&cli.StringFlag{Name: "proxy-url", Usage: "Прокси для отправки запросов", Value: a.ProxyURL, Destination: &a.ProxyURL, Sources: cli.EnvVars("APP_PROXY_URL")},
			&cli.StringFlag{Name: "downloads-dir", Usage: "Каталог для скачанных роликов", Value: a.DownloadsDir, Destination: &a.DownloadsDir, Sources: cli.EnvVars("APP_DOWNLOADS_DIR")},
			&cli.StringFlag{Name: "public-dir", Usage: "Каталог статики (веб-интерфейс)", Value: a.PublicDir, Destination: &a.PublicDir, Sources: cli.EnvVars("APP_PUBLIC_DIR")},
			&cli.DurationFlag{Name: "metadata-timeout", Usage: "Таймаут запроса метаданных", Value: metadataTimeout, Destination: &metadataTimeout, Sources: cli.EnvVars("APP_METADATA_TIMEOUT")},
			&cli.DurationFlag{Name: "media-timeout", Usage: "Таймаут скачивания файла", Value: mediaTimeout, Destination: &mediaTimeout, Sources: cli.EnvVars("APP_MEDIA_TIMEOUT")},
			&cli.DurationFlag{Name: "sweep-max-age", Usage: "Возраст файлов для очистки", Value: sweepMaxAge, Destination: &sweepMaxAge, Sources: cli.EnvVars("APP_SWEEP_MAX_AGE")},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return nil
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		return fmt.Errorf("cmd.Run: %w", err)
	}

	if helpWasCalled {
		os.Exit(0)
	}

	a.MetadataTimeout = Duration(metadataTimeout)
	a.MediaTimeout = Duration(mediaTimeout)
	a.SweepMaxAge = Duration(sweepMaxAge)

	return nil
}
