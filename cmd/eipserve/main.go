// Eipserve - EtherNet/IP device server
//
// Serves the standard Identity and Message Router objects over the
// EtherNet/IP encapsulation protocol, with session management and
// protocol-level debug logging.
package main

import (
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"eiplink/config"
	"eiplink/device"
	"eiplink/logging"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	// Parse command line flags
	configPath := flag.String("config", config.DefaultPath(), "Path to configuration file")
	listen := flag.String("listen", "", "Listen address (overrides config)")
	debugLog := flag.String("debug-log", "", "Protocol debug log path (overrides config)")
	debugFilter := flag.String("debug-filter", "", "Comma-separated protocol filter for debug logging")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("eipserve %s\n", Version)
		os.Exit(0)
	}

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *listen != "" {
		cfg.Listen = *listen
	}
	if *debugLog != "" {
		cfg.DebugLog = *debugLog
	}
	if *debugFilter != "" {
		cfg.DebugFilter = *debugFilter
	}

	// Set up protocol debug logging
	if cfg.DebugLog != "" {
		dbg, err := logging.NewDebugLogger(cfg.DebugLog)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening debug log: %v\n", err)
			os.Exit(1)
		}
		dbg.SetFilter(cfg.DebugFilter)
		logging.SetGlobalDebugLogger(dbg)
		defer dbg.Close()
	}

	dev := device.New(cfg)

	// Connection event log
	if cfg.EventLog != "" {
		events, err := logging.NewEventLogger(cfg.EventLog)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening event log: %v\n", err)
			os.Exit(1)
		}
		dev.SetEventLogger(events)
		defer events.Close()
	}

	ln, err := net.Listen("tcp", cfg.Listen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listening on %s: %v\n", cfg.Listen, err)
		os.Exit(1)
	}

	fmt.Printf("eipserve %s listening on %s\n", Version, cfg.Listen)

	done := make(chan error, 1)
	go func() {
		done <- dev.Serve(ln)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sig:
		fmt.Println("shutting down")
		_ = ln.Close()
		<-done
	case err := <-done:
		if err != nil {
			fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
			os.Exit(1)
		}
	}
}
