package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/agrimart/repayment/pkg/response"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// VendorIDKey is the context key for the authenticated vendor ID
	VendorIDKey ContextKey = "vendor_id"
	// RoleKey is the context key for the authenticated role
	RoleKey ContextKey = "role"
)

// Role values recognized by the API
const (
	RoleVendor = "vendor"
	RoleAdmin  = "admin"
)

// AuthMiddleware is a placeholder for JWT authentication
// TODO: Implement proper JWT validation
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header required")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		token := parts[1]

		// TODO: Validate JWT token and extract vendor ID + role claims
		// For now, accept any non-empty token and fall back to a test identity
		vendorID := validateToken(token)
		if vendorID == 0 {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), VendorIDKey, vendorID)
		ctx = context.WithValue(ctx, RoleKey, RoleVendor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// validateToken is a placeholder for JWT validation
// TODO: Implement proper JWT validation
func validateToken(token string) int64 {
	if token == "" {
		return 0
	}
	// For development, accept any non-empty token and return a test vendor ID
	return 1
}

// TestIdentityMiddleware allows setting vendor ID and role via headers (DEV ONLY)
// X-Test-Vendor-ID selects the acting vendor; X-Test-Role selects vendor|admin.
// This makes it easy to exercise the API as different identities without real auth.
func TestIdentityMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		vendorID := int64(1)
		if idStr := r.Header.Get("X-Test-Vendor-ID"); idStr != "" {
			if id, err := strconv.ParseInt(idStr, 10, 64); err == nil && id > 0 {
				vendorID = id
			}
		}

		role := RoleVendor
		if h := r.Header.Get("X-Test-Role"); h == RoleAdmin {
			role = RoleAdmin
		}

		ctx := context.WithValue(r.Context(), VendorIDKey, vendorID)
		ctx = context.WithValue(ctx, RoleKey, role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole rejects requests whose context role does not match
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if got, ok := GetRole(r.Context()); !ok || got != role {
				response.Forbidden(w, "Insufficient permissions")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetVendorID extracts the vendor ID from the request context
func GetVendorID(ctx context.Context) (int64, bool) {
	vendorID, ok := ctx.Value(VendorIDKey).(int64)
	return vendorID, ok
}

// GetRole extracts the role from the request context
func GetRole(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(RoleKey).(string)
	return role, ok
}
