package http

import (
	"io"
	"net/http"
	"strings"

	"github.com/techspire/talenthub/errors"
	"github.com/techspire/talenthub/jwt"
	"github.com/techspire/talenthub/media"
)

// maxUploadSize bounds the preview payloads held in memory.
const maxUploadSize = 64 << 20

// RegisterMediaEndpoints mounts the asset handlers. They move raw bytes, not
// JSON envelopes, so they bypass the go-kit pipeline and check the bearer
// token directly.
func RegisterMediaEndpoints(srv Server, manager *media.Manager, decoder *jwt.EncodeDecoder) {
	srv.RegisterHandler("/media", "POST", requireToken(decoder, uploadMedia(manager)))
	srv.RegisterHandler("/media/:id", "GET", http.HandlerFunc(serveMedia(manager)))
	srv.RegisterHandler("/media/:id", "DELETE", requireToken(decoder, deleteMedia(manager)))
}

func requireToken(decoder *jwt.EncodeDecoder, next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		bearer := r.Header.Get("Authorization")
		if !strings.HasPrefix(bearer, "Bearer ") {
			encodeError(r.Context(), errors.New("no token found", errors.Unauthorized()), w)
			return
		}

		if _, err := decoder.Decode(bearer[len("Bearer "):]); err != nil {
			encodeError(r.Context(), errors.New("invalid token", errors.Unauthorized(), errors.WithCause(err)), w)
			return
		}

		next(w, r)
	})
}

func uploadMedia(manager *media.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, header, err := r.FormFile("file")
		if err != nil {
			encodeError(r.Context(), errors.New("no file in request", errors.BadRequest(), errors.WithCause(err)), w)
			return
		}
		defer file.Close()

		data, err := io.ReadAll(io.LimitReader(file, maxUploadSize))
		if err != nil {
			encodeError(r.Context(), err, w)
			return
		}

		asset, err := manager.Put(header.Filename, header.Header.Get("Content-Type"), data)
		if err != nil {
			encodeError(r.Context(), err, w)
			return
		}

		encodeJSON(w, http.StatusOK, map[string]interface{}{
			"data": asset,
		})
	}
}

func serveMedia(manager *media.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := r.Context().Value("params").(map[string]string)

		asset, data, err := manager.Get(params["id"])
		if err != nil {
			encodeError(r.Context(), err, w)
			return
		}

		if asset.ContentType != "" {
			w.Header().Set("Content-Type", asset.ContentType)
		}
		w.Write(data)
	}
}

func deleteMedia(manager *media.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := r.Context().Value("params").(map[string]string)

		manager.Release(params["id"])
		w.WriteHeader(http.StatusNoContent)
	}
}
