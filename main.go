package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/alecthomas/kingpin/v2"
	"github.com/vflame6/credsweep/config"
	"github.com/vflame6/credsweep/logger"
	"github.com/vflame6/credsweep/sweep"
	"github.com/vflame6/credsweep/utils"
	"os"
	"os/signal"
	"syscall"
)

// AUTHOR of the program
const AUTHOR = "Maksim Radaev (@vflame6)"

// VERSION should be linked to actual tag
const VERSION = "v0.1.0"

// BANNER format string. It is used in PrintBanner function with VERSION
const BANNER = "                      __                            \n  _____________  ____/ /_____      _____  ___  ____ \n / ___/ ___/ _ \\/ __  / ___/ | /| / / _ \\/ _ \\/ __ \\\n/ /__/ /  /  __/ /_/ (__  )| |/ |/ /  __/  __/ /_/ /\n\\___/_/   \\___/\\__,_/____/ |__/|__/\\___/\\___/ .___/  %s\n                                           /_/      \nMade by %s\n\n"

// program flags and arguments
var (
	app = kingpin.New("credsweep", "credsweep is a default credentials audit tool for network services.")

	// services config
	configFlag = app.Flag("config", "Path to the services config file, \"-\" to read it from stdin").Short('c').Required().String()

	// sweep flags
	timeoutFlag  = app.Flag("timeout", "Connection timeout per attempt, overrides the config value").Default("0s").Duration()
	defaultsFlag = app.Flag("defaults", "Fill empty credential lists with built-in defaults for the service type").Default("false").Bool()

	// connection flags
	proxyFlag     = app.Flag("proxy", "SOCKS-proxy address to use for connection in format IP:PORT").Default("").String()
	proxyAuthFlag = app.Flag("proxy-auth", "Proxy username and password in format username:password").Default("").String()
	ifaceFlag     = app.Flag("iface", "Network interface to bind outgoing connections to (e.g. eth0)").Short('I').Default("").String()

	// output options
	quietFlag   = app.Flag("quiet", "Enable quiet mode, print results only").Short('q').Default("false").Bool()
	debugFlag   = app.Flag("debug", "Enable debug mode, print all logs").Short('D').Default("false").Bool()
	verboseFlag = app.Flag("verbose", "Enable verbose mode, log every attempt with timestamp").Short('v').Default("false").Bool()
	jsonFlag    = app.Flag("json", "Output results as JSONL (one JSON object per line)").Short('j').Default("false").Bool()
	outputFlag  = app.Flag("output", "Filename to write results in raw format").Short('o').Default("").String()
)

// PrintBanner is a function to print program banner
func PrintBanner() {
	fmt.Printf(BANNER, VERSION, AUTHOR)
}

func main() {
	// kingpin settings
	app.Version(VERSION)
	app.Author(AUTHOR)
	app.HelpFlag.Short('h')

	// parse program arguments
	kingpin.MustParse(app.Parse(os.Args[1:]))

	// instantiate logger
	if err := logger.Init(*quietFlag, *debugFlag); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	if *verboseFlag {
		logger.SetVerbose(true)
	}

	// print program banner
	if !*quietFlag {
		PrintBanner()
	}

	if *configFlag == "-" && !utils.HasStdin() {
		logger.Fatalf("--config - is set but stdin is empty")
	}

	// load services config
	cfg, err := config.Load(*configFlag)
	if err != nil {
		logger.Fatal(err)
	}
	if *defaultsFlag {
		cfg.ApplyBuiltinCredentials()
	}

	// flag timeout wins over the config one
	timeout := *timeoutFlag
	if timeout <= 0 {
		timeout = cfg.Timeout
	}
	if timeout <= 0 {
		timeout = config.DefaultTimeout
	}

	dialer, err := utils.NewDialer(*proxyFlag, *proxyAuthFlag, *ifaceFlag, timeout)
	if err != nil {
		logger.Fatal(err)
	}

	sink, err := sweep.NewLogSink(*jsonFlag, *outputFlag)
	if err != nil {
		logger.Fatal(err)
	}

	engine := sweep.NewEngine(cfg, sweep.Options{
		Timeout: timeout,
		Dialer:  dialer,
		Sink:    sink,
	})

	// set up context with signal-based cancellation (Ctrl+C / SIGTERM)
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	findings, err := engine.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		// invalid config, nothing was probed
		_ = sink.Close()
		logger.Fatal(err)
	}

	// report findings, partial ones included on interrupt
	reporter := sweep.NewReporter(*jsonFlag, os.Stdout)
	if rerr := reporter.Report(findings); rerr != nil {
		logger.Fatalf("failed to write report: %v", rerr)
	}
	if cerr := sink.Close(); cerr != nil {
		logger.Fatalf("failed to close output file: %v", cerr)
	}

	if err != nil {
		logger.Fatalf("sweep interrupted: %v", err)
	}

	// finish the execution
	if !*quietFlag {
		logger.Infof("finished sweep of %d services", len(cfg.Services))
	}
}
