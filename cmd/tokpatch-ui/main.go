package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/jacobmentalconstruct/tokpatch/internal/config"
	"github.com/jacobmentalconstruct/tokpatch/internal/logger"
	"github.com/jacobmentalconstruct/tokpatch/internal/ollama"
	"github.com/jacobmentalconstruct/tokpatch/internal/repl"
	"github.com/jacobmentalconstruct/tokpatch/internal/ui"
)

// Version info set by ldflags at build time
var (
	version    = "dev"
	commitHash = "dev"
	commitDate = "unknown"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	model := flag.String("model", "", "override model name")
	baseURL := flag.String("base-url", "", "override Ollama base URL")
	logFile := flag.String("log", "", "log file path (empty to disable)")
	showVersion := flag.Bool("version", false, "show version information and exit")

	flag.Parse()

	if *showVersion {
		fmt.Printf("%s-%s-%s\n", version, commitDate, commitHash)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *model != "" {
		cfg.Ollama.Model = *model
	}
	if *baseURL != "" {
		cfg.Ollama.BaseURL = *baseURL
	}

	logPath := *logFile
	if logPath == "" {
		logPath = cfg.Log.File
	}
	lg, err := logger.New(logPath)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer lg.Close()

	r := repl.New(repl.Options{
		ConfigPath: *configPath,
		Config:     cfg,
		Client:     ollama.NewClient(cfg.Ollama.BaseURL),
		Log:        lg,
		Writer:     ui.NewWriter(),
	})

	if err := r.Run(); err != nil {
		log.Fatalf("UI error: %v", err)
	}
}
