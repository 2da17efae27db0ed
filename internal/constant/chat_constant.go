package constant

import (
	"fmt"
	"strings"
)

const (
	// ContextItemFormat renders one content item: title, type, content.
	ContextItemFormat = "Title: %s\nType: %s\nContent: %s\n---"

	// NotebookChatPromptV1 takes the notebook name, the context block and the question.
	NotebookChatPromptV1 = `You are an AI assistant helping with a knowledge base called "%s". 

The user has the following content in this notebook:
%s

User question: %s

Please provide a helpful response based on the content in this notebook. If the question relates to specific content, reference it. If there's no relevant content, suggest ways the user could add relevant information to help answer their question.`

	CompletionFailedMessage    = "Failed to get AI response. Please try again."
	ClipboardReadFailedMessage = "Failed to read clipboard"

	DefaultNotebookIcon  = "📓"
	DefaultNotebookColor = "blue"

	CaptureSourceManual    = "manual_capture"
	CaptureSourceClipboard = "clipboard"

	DefaultCaptureTitle = "Captured Content"
	ImageCaptureTitle   = "Captured Image"
	MaxTitleRunes       = 100
)

// NotebookIcons is the palette offered when creating a notebook.
var NotebookIcons = []string{"📓", "📔", "📕", "📗", "📘", "📙", "🗂️", "📁", "💼", "🎯", "💡", "🔬", "🎨", "🛠️", "💻", "📊"}

func IsNotebookIcon(icon string) bool {
	for _, candidate := range NotebookIcons {
		if candidate == icon {
			return true
		}
	}
	return false
}

// BuildNotebookChatPrompt renders NotebookChatPromptV1.
func BuildNotebookChatPrompt(notebookName string, contextItems []string, question string) string {
	return fmt.Sprintf(NotebookChatPromptV1, notebookName, strings.Join(contextItems, "\n"), question)
}
