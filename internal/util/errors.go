package util

import "errors"

var (
	ErrNoExtractableText = errors.New("no readable text found in document")
	ErrExtraction        = errors.New("content extraction failed")
	ErrStorage           = errors.New("storage operation failed")

	ErrQuotaExhausted = errors.New("provider quota exhausted")
	ErrRateLimited    = errors.New("provider rate limited")
	ErrAuthFailed     = errors.New("provider auth failed")
	ErrTransient      = errors.New("transient provider error")
	ErrPermanent      = errors.New("permanent provider error")
	ErrContextTooLong = errors.New("context too long")
)
