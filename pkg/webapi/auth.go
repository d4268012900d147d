package webapi

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/zsoltkebel/relica/pkg/rlog"
)

// Guard gates mutating operations behind the shared credential pair.
type Guard struct {
	username   string
	password   string
	configured bool
	log        *rlog.Logger
}

// NewGuard builds a Guard. When the credential pair is unconfigured the
// guard fails closed: every attempt is unauthorized.
func NewGuard(username, password string, configured bool, log *rlog.Logger) *Guard {
	return &Guard{username: username, password: password, configured: configured, log: log}
}

// Middleware returns a huma middleware enforcing HTTP basic auth.
func (g *Guard) Middleware(api huma.API) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		user, pass, ok := parseBasicAuth(ctx.Header("Authorization"))
		if !ok || !g.Check(user, pass) {
			if !g.configured {
				g.log.Warn("rejected mutation attempt: no credentials configured")
			} else {
				g.log.Warn("login attempt with wrong credentials")
			}
			ctx.SetHeader("WWW-Authenticate", `Basic realm="relica"`)
			huma.WriteErr(api, ctx, 401, "Incorrect username or password")
			return
		}
		next(ctx)
	}
}

// Check compares the supplied pair in constant time. Both sides are hashed
// first so the comparison length never depends on the secrets.
func (g *Guard) Check(user, pass string) bool {
	if !g.configured {
		return false
	}
	userOK := constantTimeEqual(user, g.username)
	passOK := constantTimeEqual(pass, g.password)
	return userOK && passOK
}

func parseBasicAuth(header string) (user, pass string, ok bool) {
	const prefix = "Basic "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", "", false
	}
	decoded, err := base64.StdEncoding.DecodeString(header[len(prefix):])
	if err != nil {
		return "", "", false
	}
	user, pass, found := strings.Cut(string(decoded), ":")
	if !found {
		return "", "", false
	}
	return user, pass, true
}

func constantTimeEqual(a, b string) bool {
	ha := sha256.Sum256([]byte(a))
	hb := sha256.Sum256([]byte(b))
	return subtle.ConstantTimeCompare(ha[:], hb[:]) == 1
}
