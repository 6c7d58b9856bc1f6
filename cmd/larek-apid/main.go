package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"

	"github.com/Vladislav970/weblarek/internal/mockapi"
)

func main() {
	os.Exit(run())
}

func run() int {
	addr := flag.String("addr", "127.0.0.1:8081", "listen address")
	products := flag.Int("products", 12, "number of fake products to generate")
	seed := flag.Uint64("seed", 0, "catalog seed (0 = random)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	catalog := mockapi.GenerateProducts(*products, *seed)
	srv := &http.Server{
		Addr:    *addr,
		Handler: mockapi.NewServer(log, catalog).Router(),
	}

	color.Cyan("larek-apid listening on http://%s", *addr)
	fmt.Printf("point the storefront at it with api_origin = %q\n", "http://"+*addr)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", "error", err)
			return 1
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown failed", "error", err)
			return 1
		}
	}

	return 0
}
