package providers

import "strings"

type ErrorType string

const (
	ErrorQuota     ErrorType = "quota"
	ErrorRate      ErrorType = "rate"
	ErrorAuth      ErrorType = "auth"
	ErrorTimeout   ErrorType = "timeout"
	ErrorTransient ErrorType = "transient"
	ErrorPermanent ErrorType = "permanent"
	ErrorContext   ErrorType = "context"
)

func ClassifyError(err error) ErrorType {
	if err == nil {
		return ""
	}
	e := strings.ToLower(err.Error())
	switch {
	case strings.Contains(e, "quota"), strings.Contains(e, "credit"), strings.Contains(e, "insufficient_quota"):
		return ErrorQuota
	case strings.Contains(e, "rate"), strings.Contains(e, "429"):
		return ErrorRate
	case strings.Contains(e, "401"), strings.Contains(e, "403"), strings.Contains(e, "unauthorized"), strings.Contains(e, "api key"):
		return ErrorAuth
	case strings.Contains(e, "deadline exceeded"), strings.Contains(e, "timeout"):
		return ErrorTimeout
	case strings.Contains(e, "context"), strings.Contains(e, "too long"):
		return ErrorContext
	case strings.Contains(e, "temporarily"), strings.Contains(e, "unavailable"), strings.Contains(e, "connection"):
		return ErrorTransient
	default:
		return ErrorPermanent
	}
}
