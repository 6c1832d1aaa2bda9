// Package middleware provides the HTTP middleware for the BlinkMD backend.
//
// Middleware stack includes:
//   - CORS: Cross-origin resource sharing for the editor web view
//   - RateLimit: Per-IP token bucket rate limiting with idle eviction
//
// Example Usage:
//
//	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
//	router.Use(middleware.RateLimit(middleware.DefaultRateLimitConfig()))
package middleware
