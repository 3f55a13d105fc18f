package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/jacobmentalconstruct/tokpatch/internal/config"
	"github.com/jacobmentalconstruct/tokpatch/internal/logger"
	"github.com/jacobmentalconstruct/tokpatch/internal/patch"
	"github.com/jacobmentalconstruct/tokpatch/internal/patchfile"
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
	filePath := flag.String("file", "", "file to patch")
	patchPath := flag.String("patch", "", "hunk JSON file (or '-' for stdin)")
	outPath := flag.String("o", "", "output path (default: versioned name next to the input)")
	suffix := flag.String("suffix", "", "override version suffix (e.g. _v2)")
	logFile := flag.String("log", "", "log file path (empty to disable)")
	dryRun := flag.Bool("dry-run", false, "resolve and validate the patch without writing anything")
	quiet := flag.Bool("quiet", false, "suppress progress output")
	showVersion := flag.Bool("version", false, "show version information and exit")

	flag.Parse()

	if *showVersion {
		fmt.Printf("%s-%s-%s\n", version, commitDate, commitHash)
		return
	}

	writer := ui.NewWriter()
	writer.SetHeadless(true)
	if *quiet {
		writer.SetQuiet(true)
	}

	if *filePath == "" || *patchPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: tokpatch -file <path> -patch <path> [options]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "tokpatch is headless. Use tokpatch-ui for interactive mode.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Options:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *suffix != "" {
		cfg.Output.VersionSuffix = *suffix
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

	text, err := patchfile.Load(*filePath)
	if err != nil {
		writer.Error(fmt.Sprintf("Load failed: %v", err))
		os.Exit(1)
	}

	var patchData []byte
	if *patchPath == "-" {
		patchData, err = io.ReadAll(os.Stdin)
	} else {
		var s string
		s, err = patchfile.Load(*patchPath)
		patchData = []byte(s)
	}
	if err != nil {
		writer.Error(fmt.Sprintf("Read patch failed: %v", err))
		os.Exit(1)
	}

	set, err := patch.ParseHunkSet(patchData)
	if err != nil {
		writer.Error(fmt.Sprintf("Patch error: %v", err))
		lg.PatchFailed(*filePath, err)
		os.Exit(1)
	}

	narrate := func(msg string) {
		writer.Narrate(msg)
		lg.Info(msg)
	}

	start := time.Now()
	patched, err := patch.Apply(text, set, narrate)
	if err != nil {
		writer.Error(fmt.Sprintf("Patch error: %v", err))
		lg.PatchFailed(*filePath, err)
		os.Exit(1)
	}
	lg.PatchApplied(*filePath, len(set.Hunks), time.Since(start))

	if *dryRun {
		writer.Info(fmt.Sprintf("Dry run: %d hunks apply cleanly to %s (%s)",
			len(set.Hunks), *filePath, ui.SummarizeText(patched)))
		return
	}

	target := *outPath
	if target == "" {
		target = patchfile.VersionedPath(*filePath, cfg.Output.VersionSuffix,
			cfg.Output.Dir, cfg.Output.DefaultFilename)
	}
	if err := patchfile.Save(target, patched); err != nil {
		writer.Error(fmt.Sprintf("Save failed: %v", err))
		lg.Error("save failed", err)
		os.Exit(1)
	}
	lg.FileSaved(target, len(patched))
	writer.Info(fmt.Sprintf("Saved: %s", target))
}
