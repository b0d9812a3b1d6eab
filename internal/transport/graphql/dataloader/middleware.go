package dataloader

import "net/http"

// Attach gives every request its own Loaders. Cached skills and module
// lists never outlive the request that loaded them.
func (r *Repos) Attach(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ctx := WithLoaders(req.Context(), NewLoaders(r))
		next.ServeHTTP(w, req.WithContext(ctx))
	})
}
