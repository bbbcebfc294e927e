package main

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/StounhandJ/tiktok_saver/internal/config"
	tiktok "github.com/StounhandJ/tiktok_saver/internal/downloaders/tik_tok"
	"github.com/StounhandJ/tiktok_saver/internal/server"
	"github.com/StounhandJ/tiktok_saver/internal/storage"
	"github.com/StounhandJ/tiktok_saver/internal/utils"
	"github.com/valyala/fasthttp"
)

var cfg config.Config

func main() {
	//------ Получение Конфигурации ------//
	if err := config.LoadConfig(&cfg); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	utils.InitLogger(cfg.Application.LogLevel)
	//---------------//

	//------ HTTP клиент для отправки запросов ------//
	client := http.Client{}

	if cfg.Application.ProxyURL != "" {
		proxyURL, err := url.Parse(cfg.Application.ProxyURL)
		if err != nil {
			utils.Log.Panic(err)
		}

		client.Transport = &http.Transport{
			Proxy: http.ProxyURL(proxyURL), // прокси
		}
	}
	//---------------//

	//------ Хранилище и апстрим ------//
	store, err := storage.New(cfg.Application.DownloadsDir, &client, time.Duration(cfg.Application.MediaTimeout))
	if err != nil {
		utils.Log.Error(err)
		os.Exit(1)
	}

	resolver := tiktok.New(&client, time.Duration(cfg.Application.MetadataTimeout))
	//---------------//

	//------ HTTP сервер ------//
	srv := server.New(resolver, store, cfg.Application.PublicDir, time.Duration(cfg.Application.SweepMaxAge))

	httpServer := &fasthttp.Server{
		Handler: srv.Handler(),
		Name:    server.ServiceName,
	}

	go func() {
		utils.Log.Infof("HTTP сервер на http://localhost:%d", cfg.Application.Port)
		utils.Log.Fatal(httpServer.ListenAndServe(fmt.Sprintf(":%d", cfg.Application.Port)))
	}()
	//---------------//

	//------ Ожидание заершения программы ------//
	utils.Log.Info("Всё запущено")

	cSignal := make(chan os.Signal, 2)
	signal.Notify(cSignal, os.Interrupt, syscall.SIGTERM)
	<-cSignal
}
