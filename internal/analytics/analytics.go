package analytics

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"activation-engine/internal/auth"
)

type CtxKey string

const (
	ctxRequestIDKey CtxKey = "analytics_request_id"
)

// Envelope is what we attach to every event.
type Envelope struct {
	RequestID    string
	Subject      string
	SessionID    string
	Platform     string
	AppVersion   string
	DeviceLocale string
}

// FromRequest extracts event envelope fields from request.
func FromRequest(r *http.Request) Envelope {
	platform := strings.TrimSpace(r.Header.Get("X-Platform"))
	if platform == "" {
		platform = "unknown"
	} else {
		platform = strings.ToLower(platform)
		if platform != "ios" && platform != "android" && platform != "web" && platform != "cli" {
			platform = "unknown"
		}
	}

	locale := strings.TrimSpace(r.Header.Get("Accept-Language"))
	if locale == "" {
		locale = strings.TrimSpace(r.Header.Get("X-Device-Locale"))
	}

	env := Envelope{
		SessionID:    strings.TrimSpace(r.Header.Get("X-Session-Id")),
		Platform:     platform,
		AppVersion:   strings.TrimSpace(r.Header.Get("X-App-Version")),
		DeviceLocale: locale,
	}
	env.RequestID, _ = RequestIDFromContext(r.Context())
	env.Subject, _ = auth.SubjectFromContext(r.Context())
	return env
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxRequestIDKey, id)
}

func RequestIDFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(ctxRequestIDKey)
	if v == nil {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}

// Log emits one usage event.
// Never logs raw user text; callers pass counts and flags only.
func Log(ctx context.Context, logger *slog.Logger, env Envelope, eventName string, props map[string]any) {
	if eventName == "" || logger == nil {
		return
	}

	attrs := []slog.Attr{
		slog.String("event", eventName),
		slog.String("platform", env.Platform),
	}
	attrs = appendNonEmpty(attrs, "request_id", env.RequestID)
	attrs = appendNonEmpty(attrs, "subject", env.Subject)
	attrs = appendNonEmpty(attrs, "session_id", env.SessionID)
	attrs = appendNonEmpty(attrs, "app_version", env.AppVersion)
	attrs = appendNonEmpty(attrs, "device_locale", env.DeviceLocale)

	if len(props) > 0 {
		group := make([]any, 0, len(props)*2)
		for k, v := range props {
			group = append(group, k, v)
		}
		attrs = append(attrs, slog.Group("props", group...))
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "usage event", attrs...)
}

func appendNonEmpty(attrs []slog.Attr, key, value string) []slog.Attr {
	if strings.TrimSpace(value) == "" {
		return attrs
	}
	return append(attrs, slog.String(key, value))
}

// Band buckets an energy level the same way the engine does.
func Band(energy int) string {
	switch {
	case energy <= 2:
		return "low"
	case energy >= 4:
		return "high"
	default:
		return "neutral"
	}
}
