// Package prompt holds the system prompts for the AI repair tasks and
// assembles user prompts from file context.
package prompt

import "fmt"

// Task names an AI repair task. Each task has its own system prompt.
type Task string

const (
	TaskFixPatch  Task = "fix_patch"
	TaskFixIndent Task = "fix_indent"
	TaskAsk       Task = "ask_ai"
)

// Defaults are the built-in system prompts, keyed by task. Config can
// override any of them.
var Defaults = map[Task]string{
	TaskFixPatch: "You are a strict JSON formatting tool. " +
		"The user will provide a code patch that might be malformed, contain comments, or be wrapped in markdown. " +
		"Output ONLY valid JSON matching this schema:\n" +
		"{ 'hunks': [ { 'description': '...', 'search_block': '...', 'replace_block': '...' } ] }\n" +
		"Do not output markdown backticks. Do not output explanations. Output ONLY the raw JSON string.",
	TaskFixIndent: "You are a Python indentation repair tool. " +
		"The user will provide code with broken or mixed indentation. " +
		"Return the exact same code logic, but fix the indentation to use consistent 4 spaces. " +
		"Do not change variable names or logic. Return ONLY the code.",
	TaskAsk: "You are a helpful coding assistant. " +
		"Answer the user's question concisely based on the code provided. " +
		"If the user asks for code, provide it in a clean format.",
}

// Schema is the hunk JSON schema shown to users as a template.
const Schema = `{
  "hunks": [
    {
      "description": "Short human description",
      "search_block": "exact text to find\n(can span multiple lines)",
      "replace_block": "replacement text\n(same or different length)"
    }
  ]
}`

// AskWithContext builds the prompt for an ask task, prefixing the
// question with the file the user is working on.
func AskWithContext(code, question string) string {
	return fmt.Sprintf("CODE CONTEXT:\n%s\n\nUSER QUESTION: %s", code, question)
}
