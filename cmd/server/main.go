package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ray-ellipsoid/internal/api"
	"ray-ellipsoid/internal/ellipsoid"
)

var (
	port       = flag.Int("port", 8080, "Port to listen on")
	ecc        = flag.Float64("ecc", ellipsoid.EEarth, "Default ellipsoid eccentricity")
	radius     = flag.Float64("radius", ellipsoid.REarthKm, "Default ellipsoid equatorial radius (km)")
	configPath = flag.String("ellipsoid", "", "Path to a default ellipsoid JSON file")
)

func main() {
	flag.Parse()

	// Default ellipsoid (WGS84 unless overridden)
	ell := ellipsoid.WGS84()
	ell.Eccentricity = *ecc
	ell.EquatorialRadius = *radius
	if *configPath != "" {
		e, err := ellipsoid.Load(*configPath)
		if err != nil {
			log.Fatalf("ellipsoid config: %v", err)
		}
		ell = e
	}
	if err := ell.Validate(); err != nil {
		log.Fatalf("ellipsoid config: %v", err)
	}

	// Create API server
	server := api.NewServer(api.Config{Ellipsoid: ell})

	// Create HTTP server
	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", *port),
		Handler: server.Handler(),
	}

	// Start HTTP server in background
	go func() {
		log.Printf("Starting HTTP server on :%d (R=%v km, e=%v)", *port, ell.EquatorialRadius, ell.Eccentricity)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutting down...")

	// Shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	log.Println("Shutdown complete")
}
