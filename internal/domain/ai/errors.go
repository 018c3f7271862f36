package ai

import "errors"

// ErrCompletionService indicates the completion call failed or returned nothing usable.
var ErrCompletionService = errors.New("completion service error")

// ErrQuotaExceeded indicates the AI provider returned a quota/limit error (HTTP 429 or similar).
// Errors carrying it also match ErrCompletionService.
var ErrQuotaExceeded = errors.New("ai quota exceeded")

// ErrRewriteFailed is the rewrite-specific completion failure.
var ErrRewriteFailed = errors.New("contract rewrite failed")
