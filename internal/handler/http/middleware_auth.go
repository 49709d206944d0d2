package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-flatnav/internal/app"
	"github.com/MKhiriev/go-flatnav/internal/logger"
	"github.com/MKhiriev/go-flatnav/internal/utils"
)

const authTokenHeader = "x-auth-token"

// auth guards writes. The x-auth-token header must hold a write token
// issued by this proxy; a leading "Bearer " is tolerated. On success the
// token subject is stored in the request context under
// [utils.TokenSubjectCtxKey].
//
// Rejections answer 401 with the plain-text body "Unauthorized".
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString := strings.TrimSpace(r.Header.Get(authTokenHeader))
		if bearer, err := utils.ParseBearerToken(tokenString); err == nil {
			tokenString = bearer
		}
		if tokenString == "" {
			log.Err(ErrEmptyAuthToken).Send()
			http.Error(w, app.MsgUnauthorized, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.tokens.VerifyToken(ctx, tokenString)
		if err != nil {
			log.Err(err).AnErr("reason", ErrInvalidAuthToken).Msg("write rejected")
			http.Error(w, app.MsgUnauthorized, http.StatusUnauthorized)
			return
		}

		ctx = context.WithValue(ctx, utils.TokenSubjectCtxKey, token.Subject)
		subjectLogger := log.With().Str("subject", token.Subject).Logger()
		ctx = subjectLogger.WithContext(ctx)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
