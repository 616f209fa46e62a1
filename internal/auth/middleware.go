package auth

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

const subjectKey ctxKey = "subject"

type Middleware struct {
	secret []byte
}

func New(secret []byte) Middleware {
	return Middleware{secret: secret}
}

// Wrap rejects requests without a valid "Bearer <token>" header and stores
// the token subject in the request context.
func (m Middleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := r.Header.Get("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			http.Error(w, "missing token", http.StatusUnauthorized)
			return
		}

		tokenString := strings.TrimPrefix(h, "Bearer ")
		subject, err := ParseToken(m.secret, tokenString)
		if err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithSubject(r.Context(), subject)))
	})
}

func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, subjectKey, subject)
}

func SubjectFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(subjectKey)
	if v == nil {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}
