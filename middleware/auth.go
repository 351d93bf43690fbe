package middleware

import (
	"context"
	"strings"
	"time"

	adminRepo "servana/database/repository/admin"
	providerRepo "servana/database/repository/provider"
	userRepo "servana/database/repository/user"
	"servana/models"
	"servana/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

const (
	principalKey    = "principal"
	authCookieName  = "auth_token"
	adminCookieName = "admin_token"

	authCacheTTL = 15 * time.Minute
)

// Principal is the resolved caller of an authenticated request. Exactly one
// of User, Provider, Admin is non-nil, matching Kind.
type Principal struct {
	Kind     models.PrincipalKind
	User     *models.User
	Provider *models.Provider
	Admin    *models.Admin
}

// ID returns the id of whichever account is set.
func (p *Principal) ID() string {
	switch p.Kind {
	case models.KindUser:
		return p.User.ID
	case models.KindProvider:
		return p.Provider.ID
	case models.KindAdmin:
		return p.Admin.ID
	}
	return ""
}

// Authenticator resolves bearer tokens to principals, with a Redis
// token-hash cache in front of Mongo.
type Authenticator struct {
	Tokens    *utils.TokenIssuer
	Users     userRepo.UserRepository
	Providers providerRepo.ProviderRepository
	Admins    adminRepo.AdminRepository
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		if token := strings.TrimPrefix(authHeader, "Bearer "); token != "" {
			return token
		}
	}
	for _, name := range []string{adminCookieName, authCookieName} {
		if cookie, err := c.Cookie(name); err == nil && cookie != "" {
			return cookie
		}
	}
	return ""
}

// Authenticate verifies the token and resolves it to a principal. The
// resolution order depends on which secret verified the token: an admin hint
// tries the admins collection first, otherwise admins come last since admin
// tokens can fall back to the default secret.
func (a *Authenticator) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			utils.RespondError(c, utils.AuthError("missing or invalid authorization"))
			c.Abort()
			return
		}

		subject, adminHint, err := a.Tokens.Verify(tokenString)
		if err != nil || subject == "" {
			utils.RespondError(c, utils.AuthError("invalid or expired token"))
			c.Abort()
			return
		}

		tokenHash := utils.HashToken(tokenString)
		principal := a.resolve(c.Request.Context(), subject, adminHint, tokenHash)
		if principal == nil {
			utils.RespondError(c, utils.AuthError("account not found or inactive"))
			c.Abort()
			return
		}

		a.touchLastActive(principal)
		c.Set(principalKey, principal)
		c.Next()
	}
}

func (a *Authenticator) resolve(ctx context.Context, subject string, adminHint bool, tokenHash string) *Principal {
	if kind, ok := a.cachedKind(ctx, tokenHash); ok {
		if p := a.load(kind, subject); p != nil {
			return p
		}
		// Stale cache entry; fall through to the full resolution order.
	}

	order := []models.PrincipalKind{models.KindUser, models.KindProvider, models.KindAdmin}
	if adminHint {
		order = []models.PrincipalKind{models.KindAdmin, models.KindUser, models.KindProvider}
	}
	for _, kind := range order {
		if p := a.load(kind, subject); p != nil {
			a.cacheKind(ctx, tokenHash, kind)
			return p
		}
	}
	return nil
}

// load fetches one account kind by id and checks it is usable as a
// principal. Lockout is an authentication concern, so a locked admin token
// stops resolving even before permission checks.
func (a *Authenticator) load(kind models.PrincipalKind, id string) *Principal {
	switch kind {
	case models.KindUser:
		u, err := a.Users.GetByID(id)
		if err != nil || u == nil || !u.IsActive() {
			return nil
		}
		return &Principal{Kind: models.KindUser, User: u}
	case models.KindProvider:
		p, err := a.Providers.GetByID(id)
		if err != nil || p == nil || !p.CanOperate() {
			return nil
		}
		return &Principal{Kind: models.KindProvider, Provider: p}
	case models.KindAdmin:
		adm, err := a.Admins.GetByID(id)
		if err != nil || adm == nil || !adm.IsActive() || adm.IsLocked(time.Now()) {
			return nil
		}
		return &Principal{Kind: models.KindAdmin, Admin: adm}
	}
	return nil
}

func (a *Authenticator) cachedKind(ctx context.Context, tokenHash string) (models.PrincipalKind, bool) {
	client := utils.GetAuthCacheClient()
	if client == nil {
		return "", false
	}
	val, err := client.Get(ctx, utils.AuthCachePrefix+tokenHash).Result()
	if err != nil || val == "" {
		return "", false
	}
	return models.PrincipalKind(val), true
}

func (a *Authenticator) cacheKind(ctx context.Context, tokenHash string, kind models.PrincipalKind) {
	client := utils.GetAuthCacheClient()
	if client == nil {
		return
	}
	if err := client.Set(ctx, utils.AuthCachePrefix+tokenHash, string(kind), authCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache auth resolution", zap.Error(err))
	}
}

func (a *Authenticator) touchLastActive(p *Principal) {
	update := bson.M{"lastActiveAt": time.Now()}
	var err error
	switch p.Kind {
	case models.KindUser:
		err = a.Users.UpdateSet(p.User.ID, update)
	case models.KindProvider:
		err = a.Providers.UpdateSet(p.Provider.ID, update)
	case models.KindAdmin:
		err = a.Admins.UpdateSet(p.Admin.ID, update)
	}
	if err != nil {
		utils.GetLogger().Warn("failed to touch last-active",
			zap.String("kind", string(p.Kind)), zap.Error(err))
	}
}

// GetPrincipal returns the principal set by Authenticate, or nil.
func GetPrincipal(c *gin.Context) *Principal {
	val, ok := c.Get(principalKey)
	if !ok {
		return nil
	}
	p, ok := val.(*Principal)
	if !ok {
		return nil
	}
	return p
}

// RequireUser restricts a route to user principals.
func RequireUser() gin.HandlerFunc {
	return requireKind(models.KindUser)
}

// RequireProvider restricts a route to verified, active providers.
func RequireProvider() gin.HandlerFunc {
	return func(c *gin.Context) {
		p := GetPrincipal(c)
		if p == nil || p.Kind != models.KindProvider {
			utils.RespondError(c, utils.ForbiddenError("provider account required"))
			c.Abort()
			return
		}
		if !p.Provider.CanOperate() {
			utils.RespondError(c, utils.ForbiddenError("provider account is pending verification"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin restricts a route to admin principals.
func RequireAdmin() gin.HandlerFunc {
	return requireKind(models.KindAdmin)
}

// RequirePermission restricts a route to admins holding a specific
// module/action permission.
func RequirePermission(module, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := GetPrincipal(c)
		if p == nil || p.Kind != models.KindAdmin {
			utils.RespondError(c, utils.ForbiddenError("admin account required"))
			c.Abort()
			return
		}
		if !p.Admin.HasPermission(module, action) {
			utils.RespondError(c, utils.ForbiddenError("insufficient permissions"))
			c.Abort()
			return
		}
		c.Next()
	}
}

func requireKind(kind models.PrincipalKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := GetPrincipal(c)
		if p == nil || p.Kind != kind {
			utils.RespondError(c, utils.ForbiddenError(string(kind)+" account required"))
			c.Abort()
			return
		}
		c.Next()
	}
}
