package logger

import (
	"context"

	"go.uber.org/zap"
)

// contextKey is a type for context keys used by the logger package
type contextKey string

const (
	// LoggerKey is the context key for the logger
	LoggerKey contextKey = "logger"
	// RequestIDKey is the context key for request ID
	RequestIDKey contextKey = "request_id"
	// ProviderKey is the context key for the supplier provider code
	ProviderKey contextKey = "provider"
	// OrderRefKey is the context key for the client order reference
	OrderRefKey contextKey = "order_ref"
)

// WithContext returns a new context with the logger attached
func WithContext(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, LoggerKey, logger)
}

// FromContext retrieves the logger from context, returns default logger if not found
func FromContext(ctx context.Context) *zap.Logger {
	if logger, ok := ctx.Value(LoggerKey).(*zap.Logger); ok {
		return logger
	}
	// Return a no-op logger if not found
	return zap.NewNop()
}

// WithRequestID adds request ID to context and returns enriched logger
func WithRequestID(ctx context.Context, logger *zap.Logger, requestID string) (context.Context, *zap.Logger) {
	ctx = context.WithValue(ctx, RequestIDKey, requestID)
	enrichedLogger := logger.With(zap.String("request_id", requestID))
	return WithContext(ctx, enrichedLogger), enrichedLogger
}

// WithProvider adds the supplier provider code to context and returns enriched logger
func WithProvider(ctx context.Context, logger *zap.Logger, provider string) (context.Context, *zap.Logger) {
	ctx = context.WithValue(ctx, ProviderKey, provider)
	enrichedLogger := logger.With(zap.String("provider", provider))
	return WithContext(ctx, enrichedLogger), enrichedLogger
}

// WithOrderRef adds the client order reference to context and returns enriched logger
func WithOrderRef(ctx context.Context, logger *zap.Logger, orderRef string) (context.Context, *zap.Logger) {
	ctx = context.WithValue(ctx, OrderRefKey, orderRef)
	enrichedLogger := logger.With(zap.String("order_ref", orderRef))
	return WithContext(ctx, enrichedLogger), enrichedLogger
}

// GetRequestID retrieves request ID from context
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}

// GetProvider retrieves the supplier provider code from context
func GetProvider(ctx context.Context) string {
	if provider, ok := ctx.Value(ProviderKey).(string); ok {
		return provider
	}
	return ""
}

// GetOrderRef retrieves the client order reference from context
func GetOrderRef(ctx context.Context) string {
	if orderRef, ok := ctx.Value(OrderRefKey).(string); ok {
		return orderRef
	}
	return ""
}
