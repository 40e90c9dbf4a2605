package middlewares

import (
	"mime"
	"net/http"
)

// BodyLimitMiddleware caps request bodies. Multipart uploads are proxied to the backend
// and get uploadLimit, every other body is a JSON form and gets jsonLimit.
func BodyLimitMiddleware(jsonLimit, uploadLimit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			limit := bodyLimitFor(r, jsonLimit, uploadLimit)
			if r.ContentLength > limit {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusRequestEntityTooLarge)
				w.Write([]byte(`{"error":"request body too large"}`))
				return
			}

			// Chunked bodies carry no length, the reader enforces the cap while decoding.
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}

func bodyLimitFor(r *http.Request, jsonLimit, uploadLimit int64) int64 {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err == nil && mediaType == "multipart/form-data" {
		return uploadLimit
	}
	return jsonLimit
}
