package main

import (
	"context"
	"crypto/tls"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"

	mw "github.com/5w1tchy/password-checker/internal/api/middlewares"
	"github.com/5w1tchy/password-checker/internal/api/router"
	"github.com/5w1tchy/password-checker/internal/config"
	"github.com/5w1tchy/password-checker/internal/security/password"
	"github.com/5w1tchy/password-checker/pkg/utils"
)

func main() {
	opts, err := config.Load(os.Args[1:])
	if err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		log.Fatalf("config: %v", err)
	}
	for _, w := range opts.HardeningWarnings() {
		log.Printf("[WARN] %s", w)
	}

	handler := utils.ApplyMiddleware(
		router.Router(password.Generator{}),
		mw.RequestID,
		mw.Recovery,
		mw.ResponseTimeMiddleware,
		mw.Cors(opts.AllowedOrigins),
		mw.SecurityHeaders(opts.StrictSecurity),
		mw.BodySizeLimit(opts.MaxBodySize),
		mw.Compression,
	)

	server := &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		TLSConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	drained := make(chan struct{})
	go func() {
		defer close(drained)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), opts.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	scheme := "http"
	if opts.TLS() {
		scheme = "https"
	}
	log.Println("Password Security Checker is running!")
	log.Printf("Open %s://%s in your browser", scheme, displayAddr(opts.Addr))
	log.Println("Features: real-time strength analysis, security recommendations, secure password generator, entropy calculation")

	if opts.TLS() {
		err = server.ListenAndServeTLS(opts.TLSCert, opts.TLSKey)
	} else {
		err = server.ListenAndServe()
	}
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalln("Error starting server:", err)
	}
	<-drained
	log.Println("server stopped")
}

// displayAddr turns ":3000" into "127.0.0.1:3000" for the banner.
func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "127.0.0.1" + addr
	}
	return addr
}
