package kube

import (
	"errors"
	"net/http"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
)

// messageSources are tried in order; the first non-empty result wins.
var messageSources = []func(error) string{
	apiStatusMessage,
	errorText,
	describeFailure,
}

// Normalize turns any upstream failure into the single string shown to the UI.
func Normalize(err error) string {
	if err == nil {
		return ""
	}
	for _, src := range messageSources {
		if msg := src(err); msg != "" {
			return msg
		}
	}
	return "unknown error"
}

// apiStatusMessage reads the message of a structured API server response.
func apiStatusMessage(err error) string {
	var status apierrors.APIStatus
	if errors.As(err, &status) {
		return status.Status().Message
	}
	return ""
}

func errorText(err error) string {
	return err.Error()
}

func describeFailure(err error) string {
	var status apierrors.APIStatus
	if !errors.As(err, &status) {
		return ""
	}
	s := status.Status()
	if s.Reason != "" {
		return string(s.Reason)
	}
	return http.StatusText(int(s.Code))
}

// StatusCode picks the HTTP status for an error envelope. An upstream 401
// means the service's own credentials were rejected, which is reported as 502
// so it cannot be confused with a missing API token.
func StatusCode(err error) int {
	switch {
	case apierrors.IsUnauthorized(err):
		return http.StatusBadGateway
	case apierrors.IsForbidden(err):
		return http.StatusForbidden
	case apierrors.IsNotFound(err):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
