package service

import (
	"ai-notecapture-be/internal/constant"
	"ai-notecapture-be/internal/pkg/serverutils"
)

// Sentinels carry their HTTP status; compare with errors.Is.
var (
	ErrNotebookNotFound = serverutils.NewNotFoundError("Notebook not found")
	ErrContentNotFound  = serverutils.NewNotFoundError("Content not found")
	ErrChatInFlight     = serverutils.NewConflictError("A response is already being generated for this notebook")
	ErrCompletionFailed = serverutils.NewBadGatewayError(constant.CompletionFailedMessage)
	ErrClipboardRead    = serverutils.NewUnprocessableError(constant.ClipboardReadFailedMessage)
	ErrNothingToCapture = serverutils.NewBadRequestError("Clipboard has no text or image to capture")
)
