package obs

import "context"

type routePatternKey struct{}

// WithRoutePattern attaches the matched router template to the context so
// metrics and logs label by template rather than raw path.
func WithRoutePattern(ctx context.Context, pattern string) context.Context {
	return context.WithValue(ctx, routePatternKey{}, pattern)
}

// RoutePatternFromContext returns the stored template, or "" when none was
// recorded.
func RoutePatternFromContext(ctx context.Context) string {
	v, _ := ctx.Value(routePatternKey{}).(string)
	return v
}
