// Package repl provides the interactive terminal loop for tokpatch-ui.
package repl

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jacobmentalconstruct/tokpatch/internal/config"
	"github.com/jacobmentalconstruct/tokpatch/internal/logger"
	"github.com/jacobmentalconstruct/tokpatch/internal/ollama"
	"github.com/jacobmentalconstruct/tokpatch/internal/patch"
	"github.com/jacobmentalconstruct/tokpatch/internal/patchfile"
	"github.com/jacobmentalconstruct/tokpatch/internal/prompt"
	"github.com/jacobmentalconstruct/tokpatch/internal/ui"
)

// Options contains configuration for the REPL
type Options struct {
	ConfigPath string
	Config     *config.Config
	Client     *ollama.Client
	Log        *logger.Logger
	Writer     *ui.Writer
}

// REPL manages the interactive patching session
type REPL struct {
	cfg        *config.Config
	configPath string
	client     *ollama.Client
	log        *logger.Logger
	out        *ui.Writer

	model     string
	fileText  string
	filePath  string
	patchJSON string

	history     []string
	historyFile string
}

// New creates a new REPL instance
func New(opts Options) *REPL {
	homeDir, _ := os.UserHomeDir()
	historyFile := filepath.Join(homeDir, ".tokpatch-history")

	history, _ := ui.LoadHistory(historyFile)

	return &REPL{
		cfg:         opts.Config,
		configPath:  opts.ConfigPath,
		client:      opts.Client,
		log:         opts.Log,
		out:         opts.Writer,
		model:       opts.Config.Ollama.Model,
		history:     history,
		historyFile: historyFile,
	}
}

// Run starts the interactive loop
func (r *REPL) Run() error {
	// Ensure terminal is properly reset on exit
	restoreTerminal := func() {
		if os.Stdin.Fd() == 0 {
			cmd := exec.Command("sh", "-c", "stty sane </dev/tty >/dev/tty 2>&1")
			_ = cmd.Run()
		}
	}
	defer func() {
		fmt.Println()
		restoreTerminal()
	}()

	r.out.StartupInfo("tokpatch REPL")
	r.out.StartupInfo(fmt.Sprintf("Model: %s @ %s", r.model, r.cfg.Ollama.BaseURL))
	r.out.StartupInfo("Paste patch JSON, or ':help' for commands. Ctrl+C exits.")
	fmt.Println()

	for {
		input, shouldExit, err := r.readInput()
		if err != nil {
			r.out.Error(fmt.Sprintf("Input error: %v", err))
			break
		}
		if shouldExit {
			break
		}

		if input == "" {
			continue
		}

		r.history = append(r.history, input)
		_ = ui.SaveHistory(r.historyFile, r.history) // Silently ignore history save errors

		if strings.HasPrefix(input, ":") {
			if r.handleCommand(input) {
				break
			}
			continue
		}

		// Anything else is patch JSON for the next :apply.
		r.patchJSON = input
		if _, err := patch.ParseHunkSet([]byte(input)); err != nil {
			r.out.Warn(fmt.Sprintf("Stored patch does not parse yet: %v", err))
			r.out.Info("Use :fix-patch to let the AI repair it, or paste corrected JSON.")
		} else {
			r.out.Info("Patch stored. Use :apply to run it.")
		}
		fmt.Println()
	}

	return nil
}

// readInput reads user input using the BubbleTea-based input model
func (r *REPL) readInput() (string, bool, error) {
	promptText := r.buildPromptText()

	inputModel := ui.NewInputModel(promptText, r.history)
	p := tea.NewProgram(inputModel)
	result, err := p.Run()
	if err != nil {
		return "", false, err
	}

	finalModel := result.(ui.InputModel)
	if finalModel.Cancelled() || !finalModel.Submitted() {
		return "", true, nil // User cancelled (Ctrl+C)
	}

	input := strings.TrimSpace(finalModel.Value())

	// Echo the submitted input with gray background
	colorStart := "\033[97;100m"
	colorEnd := "\033[0m"
	for _, line := range strings.Split(finalModel.Value(), "\n") {
		fmt.Printf("%s%s%s\n", colorStart, line, colorEnd)
	}
	fmt.Println()

	return input, false, nil
}

// buildPromptText builds the prompt text with the loaded file name
func (r *REPL) buildPromptText() string {
	var fileInfo string
	if r.filePath != "" {
		fileInfo = fmt.Sprintf(" %s", filepath.Base(r.filePath))
	}
	return ui.MakePrompt(fmt.Sprintf("[tokpatch%s]> ", fileInfo))
}

// handleCommand handles REPL meta-commands. Returns true to exit.
func (r *REPL) handleCommand(input string) bool {
	cmd := strings.TrimPrefix(input, ":")
	parts := strings.Fields(cmd)
	if len(parts) == 0 {
		return false
	}

	switch parts[0] {
	case "quit", "q", "exit":
		return true

	case "help", "h":
		r.showHelp()

	case "load":
		if len(parts) < 2 {
			fmt.Println("Usage: :load <path>")
			fmt.Println()
			return false
		}
		r.loadFile(strings.TrimSpace(strings.TrimPrefix(cmd, "load")))

	case "save":
		var target string
		if len(parts) >= 2 {
			target = strings.TrimSpace(strings.TrimPrefix(cmd, "save"))
		}
		r.saveFile(target)

	case "show":
		what := "file"
		if len(parts) >= 2 {
			what = parts[1]
		}
		r.show(what)

	case "schema":
		fmt.Println(prompt.Schema)
		fmt.Println()

	case "apply":
		r.applyPatch()

	case "fix-patch":
		r.fixPatch()

	case "fix-indent":
		r.fixIndent()

	case "ask":
		question := strings.TrimSpace(strings.TrimPrefix(cmd, "ask"))
		if question == "" {
			fmt.Println("Usage: :ask <question>")
			fmt.Println()
			return false
		}
		r.ask(question)

	case "models":
		r.listModels()

	case "model":
		if len(parts) < 2 {
			fmt.Printf("Current model: %s\n\n", r.model)
			return false
		}
		r.model = parts[1]
		fmt.Printf("Model set to %s\n\n", r.model)

	case "status":
		r.showStatus()

	case "clear":
		r.fileText = ""
		r.filePath = ""
		r.patchJSON = ""
		fmt.Print("\033[2J\033[H")
		r.out.Info("Cleared file and patch.")
		fmt.Println()

	default:
		fmt.Printf("Unknown command: %s. Type :help for available commands.\n\n", parts[0])
	}

	return false
}

func (r *REPL) showHelp() {
	fmt.Println("Available commands:")
	fmt.Println("  :help, :h          Show this help message")
	fmt.Println("  :quit, :q          Exit")
	fmt.Println("  :load <path>       Load a file to patch")
	fmt.Println("  :save [path]       Save the working text (default: versioned name)")
	fmt.Println("  :show [file|patch] Print the working text or the stored patch")
	fmt.Println("  :schema            Print the patch JSON schema")
	fmt.Println("  :apply             Apply the stored patch to the working text")
	fmt.Println("  :fix-patch         AI-repair the stored patch into valid JSON")
	fmt.Println("  :fix-indent        AI-repair the working text's indentation")
	fmt.Println("  :ask <question>    Ask the AI about the working text")
	fmt.Println("  :models            List models on the Ollama server")
	fmt.Println("  :model [name]      Show or set the active model")
	fmt.Println("  :status            Show session state")
	fmt.Println("  :clear             Clear file, patch, and screen")
	fmt.Println()
	fmt.Println("Any other input is stored as the patch JSON for the next :apply.")
	fmt.Println()
}

func (r *REPL) loadFile(path string) {
	text, err := patchfile.Load(path)
	if err != nil {
		r.out.Error(fmt.Sprintf("Load failed: %v", err))
		fmt.Println()
		return
	}
	r.fileText = text
	r.filePath = path
	r.out.Info(fmt.Sprintf("Loaded %s (%s)", path, ui.SummarizeText(text)))
	fmt.Println()
}

func (r *REPL) saveFile(target string) {
	if r.fileText == "" && r.filePath == "" {
		r.out.Warn("Nothing to save. Use :load first.")
		fmt.Println()
		return
	}
	if target == "" {
		target = patchfile.VersionedPath(r.filePath, r.cfg.Output.VersionSuffix,
			r.cfg.Output.Dir, r.cfg.Output.DefaultFilename)
	}
	if err := patchfile.Save(target, r.fileText); err != nil {
		r.out.Error(fmt.Sprintf("Save failed: %v", err))
		r.log.Error("save failed", err)
		fmt.Println()
		return
	}
	r.log.FileSaved(target, len(r.fileText))
	r.out.Info(fmt.Sprintf("Saved: %s", target))
	fmt.Println()
}

func (r *REPL) show(what string) {
	switch what {
	case "file":
		if r.fileText == "" {
			r.out.Warn("No file loaded.")
		} else {
			r.out.Result(r.fileText)
		}
	case "patch":
		if r.patchJSON == "" {
			r.out.Warn("No patch stored.")
		} else {
			r.out.Result(r.patchJSON)
		}
	default:
		fmt.Println("Usage: :show [file|patch]")
	}
	fmt.Println()
}

func (r *REPL) applyPatch() {
	if r.fileText == "" {
		r.out.Warn("No file loaded. Use :load first.")
		fmt.Println()
		return
	}
	if r.patchJSON == "" {
		r.out.Warn("No patch stored. Paste patch JSON first.")
		fmt.Println()
		return
	}

	set, err := patch.ParseHunkSet([]byte(r.patchJSON))
	if err != nil {
		r.out.Error(fmt.Sprintf("Patch error: %v", err))
		fmt.Println()
		return
	}

	start := time.Now()
	patched, err := patch.Apply(r.fileText, set, r.out.Narrate)
	if err != nil {
		r.out.Error(fmt.Sprintf("Patch error: %v", err))
		r.log.PatchFailed(r.filePath, err)
		fmt.Println()
		return
	}

	r.fileText = patched
	r.log.PatchApplied(r.filePath, len(set.Hunks), time.Since(start))
	r.out.Info(fmt.Sprintf("Patch applied (%d hunks). Use :save to write it out.", len(set.Hunks)))
	fmt.Println()
}

// generate runs an AI task against the active model with the configured
// timeout.
func (r *REPL) generate(task prompt.Task, input string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), r.cfg.Timeout())
	defer cancel()

	start := time.Now()
	resp, err := r.client.Generate(ctx, r.model, input, r.cfg.SystemPrompt(task))
	r.log.GenerateCall(r.model, string(task), time.Since(start), err)
	if err != nil {
		return "", err
	}
	return ollama.CleanResponse(resp), nil
}

func (r *REPL) fixPatch() {
	if r.patchJSON == "" {
		r.out.Warn("No patch stored. Paste patch JSON first.")
		fmt.Println()
		return
	}
	r.out.Info("Asking the model to repair the patch...")
	fixed, err := r.generate(prompt.TaskFixPatch, r.patchJSON)
	if err != nil {
		r.out.Error(fmt.Sprintf("AI Error: %v", err))
		fmt.Println()
		return
	}
	if _, err := patch.ParseHunkSet([]byte(fixed)); err != nil {
		r.out.Warn(fmt.Sprintf("Model output still does not parse: %v", err))
	}
	r.patchJSON = fixed
	r.out.Result(fixed)
	fmt.Println()
}

func (r *REPL) fixIndent() {
	if r.fileText == "" {
		r.out.Warn("No file loaded. Use :load first.")
		fmt.Println()
		return
	}
	r.out.Info("Asking the model to repair indentation...")
	fixed, err := r.generate(prompt.TaskFixIndent, r.fileText)
	if err != nil {
		r.out.Error(fmt.Sprintf("AI Error: %v", err))
		fmt.Println()
		return
	}
	r.out.Result(fixed)
	if ui.Confirm("Replace the working text with this output?") {
		r.fileText = fixed
		r.out.Info("Working text replaced.")
	} else {
		r.out.Info("Working text unchanged.")
	}
	fmt.Println()
}

func (r *REPL) ask(question string) {
	full := prompt.AskWithContext(r.fileText, question)
	r.out.Info("Thinking...")
	answer, err := r.generate(prompt.TaskAsk, full)
	if err != nil {
		r.out.Error(fmt.Sprintf("AI Error: %v", err))
		fmt.Println()
		return
	}
	r.out.Result(answer)
	fmt.Println()
}

func (r *REPL) listModels() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	models, err := r.client.Models(ctx)
	if err != nil {
		r.out.Error(fmt.Sprintf("Cannot reach Ollama at %s: %v", r.cfg.Ollama.BaseURL, err))
		fmt.Println()
		return
	}
	if len(models) == 0 {
		r.out.Warn("No models installed on the server.")
		fmt.Println()
		return
	}
	for _, m := range models {
		marker := ""
		if m == r.model {
			marker = " *"
		}
		fmt.Printf("  %s%s\n", m, marker)
	}
	fmt.Println()
}

func (r *REPL) showStatus() {
	fmt.Printf("Config: %s\n", r.configPath)
	fmt.Printf("Model: %s @ %s\n", r.model, r.cfg.Ollama.BaseURL)
	if r.filePath != "" {
		fmt.Printf("File: %s (%s)\n", r.filePath, ui.SummarizeText(r.fileText))
	} else {
		fmt.Println("File: none")
	}
	if r.patchJSON != "" {
		if set, err := patch.ParseHunkSet([]byte(r.patchJSON)); err == nil {
			fmt.Printf("Patch: %d hunks\n", len(set.Hunks))
		} else {
			fmt.Println("Patch: stored, not valid JSON")
		}
	} else {
		fmt.Println("Patch: none")
	}
	fmt.Println()
}
