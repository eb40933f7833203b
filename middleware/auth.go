package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	customerRepo "hoofline/database/repository/customer"
	providerRepo "hoofline/database/repository/provider"
	"hoofline/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middleware.
const (
	CtxCustomerID = "customerID"
	CtxProviderID = "providerID"
)

// authCacheTTL bounds how long a revoked token can keep passing the
// middleware before the stored hash is re-read.
const authCacheTTL = 60 * time.Second

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")
	return token, token != ""
}

// cachedAuth checks the auth cache for a previously validated token hash.
func cachedAuth(ctx context.Context, key string) (string, bool) {
	id, err := utils.GetAuthCacheClient().Get(ctx, key).Result()
	if err != nil || id == "" {
		return "", false
	}
	return id, true
}

func cacheAuth(ctx context.Context, key, id string) {
	utils.GetAuthCacheClient().Set(ctx, key, id, authCacheTTL)
}

// JWTAuthCustomer validates the bearer token against the customer's stored
// token hash and sets the customer ID on the context.
func JWTAuthCustomer(repo customerRepo.CustomerRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		id, err := utils.ExtractIDFromToken(token)
		if err != nil || id == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		ctx := c.Request.Context()
		tokenHash := utils.HashToken(token)
		cacheKey := "auth:customer:" + tokenHash

		if cachedID, hit := cachedAuth(ctx, cacheKey); hit && cachedID == id {
			c.Set(CtxCustomerID, id)
			c.Next()
			return
		}

		customer, err := repo.GetByID(ctx, id)
		if err != nil || customer == nil || customer.TokenHash != tokenHash {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		cacheAuth(ctx, cacheKey, id)
		c.Set(CtxCustomerID, id)
		c.Next()
	}
}

// JWTAuthProvider validates the bearer token against the provider's stored
// token hash and sets the provider ID on the context.
func JWTAuthProvider(repo providerRepo.ProviderRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		id, err := utils.ExtractIDFromToken(token)
		if err != nil || id == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		ctx := c.Request.Context()
		tokenHash := utils.HashToken(token)
		cacheKey := "auth:provider:" + tokenHash

		if cachedID, hit := cachedAuth(ctx, cacheKey); hit && cachedID == id {
			c.Set(CtxProviderID, id)
			c.Next()
			return
		}

		provider, err := repo.GetByID(ctx, id)
		if err != nil || provider == nil || provider.TokenHash != tokenHash {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		cacheAuth(ctx, cacheKey, id)
		c.Set(CtxProviderID, id)
		c.Next()
	}
}
