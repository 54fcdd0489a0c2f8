package nextrip

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

var (
	server *http.Server
)

// StartServer starts the passthrough proxy server on the configured port.
// LoadAppConfig must have run first.
func StartServer() {
	var opts []Option
	if Config.Service.BaseURL != "" {
		opts = append(opts, WithBaseURL(Config.Service.BaseURL))
	}
	if Config.Service.TimeoutMS > 0 {
		opts = append(opts, WithTimeout(time.Duration(Config.Service.TimeoutMS)*time.Millisecond))
	}
	client := NewClient(opts...)

	port := Config.Server.Port
	if port == 0 {
		port = defaultPort
	}
	addr := fmt.Sprintf(":%d", port)
	server = &http.Server{
		Addr:              addr,
		Handler:           NewProxyMux(client),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()
	log.Printf("server listening on %s, proxying %s", addr, client.BaseURL())
}

func HandleGracefulShutdown() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Printf("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if server != nil {
		if err := server.Shutdown(ctx); err != nil {
			log.Printf("server shutdown error: %v", err)
		} else {
			log.Printf("server shut down successfully")
		}
	}
}
