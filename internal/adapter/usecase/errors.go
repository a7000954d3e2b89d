package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/osteele/liquid"

	"adpilot/internal/core/port"
)

// errorClass maps known substrings of upstream error text to a message.
type errorClass struct {
	message string
	needles []string
}

// errorClasses are consulted in order for errors without a typed cause.
var errorClasses = []errorClass{
	{message: msgTimeout, needles: []string{"timeout", "timed out", "deadline exceeded"}},
	{message: msgRateLimited, needles: []string{"rate limit", "too many requests", "429", "throttl", "overloaded"}},
	{message: msgAuthFailed, needles: []string{"401", "unauthorized", "invalid token", "access token", "oauth"}},
	{message: msgParseFailed, needles: []string{"json", "unmarshal", "parse", "invalid character", "no draft"}},
}

// describeError turns any failure of the creation path into the text shown
// to the operator. Balance errors pass through verbatim.
func describeError(msgs *Messages, err error) string {
	var balance *port.InsufficientBalanceError
	switch {
	case errors.As(err, &balance):
		return balance.Message
	case errors.Is(err, port.ErrInterpreterTimeout), errors.Is(err, context.DeadlineExceeded):
		return msgs.Render(msgTimeout, nil)
	case errors.Is(err, port.ErrPostResolution):
		return msgs.Render(msgPostResolution, nil)
	case errors.Is(err, port.ErrInvalidPostID):
		return msgs.Render(msgInvalidPostID, liquid.Bindings{"error": err.Error()})
	case errors.Is(err, port.ErrMissingCallToAction):
		return msgs.Render(msgMissingCTA, nil)
	case errors.Is(err, port.ErrPlatformRejected):
		return msgs.Render(msgPlatformRejected, liquid.Bindings{"error": rejectionReason(err)})
	}

	lower := strings.ToLower(err.Error())
	for _, c := range errorClasses {
		for _, n := range c.needles {
			if strings.Contains(lower, n) {
				return msgs.Render(c.message, nil)
			}
		}
	}
	return msgs.Render(msgGenericError, liquid.Bindings{"error": err.Error()})
}

// rejectionReason drops the sentinel prefix from a wrapped rejection.
func rejectionReason(err error) string {
	s := err.Error()
	if rest, ok := strings.CutPrefix(s, port.ErrPlatformRejected.Error()+": "); ok {
		return rest
	}
	return s
}
