package httpapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	"github.com/dmitrijs2005/secureshare/internal/common"
	pb "github.com/dmitrijs2005/secureshare/internal/proto"
	"github.com/dmitrijs2005/secureshare/internal/server/render"
	"github.com/dmitrijs2005/secureshare/internal/server/wire"
)

// decode reads a protojson body of at most h.maxBody bytes into m. Unknown
// fields are rejected.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, m proto.Message) error {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBody)
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytes *http.MaxBytesError
		if errors.As(err, &maxBytes) {
			return fmt.Errorf("%w: %w", common.ErrPayloadTooLarge, err)
		}
		return common.Validationf("read request body: %v", err)
	}
	if len(raw) == 0 {
		return common.Validationf("empty request body")
	}
	if err := protojson.Unmarshal(raw, m); err != nil {
		return common.Validationf("malformed request body: %v", err)
	}
	return nil
}

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	req := &pb.UploadRequest{}
	if err := h.decode(w, r, req); err != nil {
		h.respondError(w, r, err)
		return
	}

	res, err := h.shares.Upload(r.Context(), wire.UploadRequest(req))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respondProto(w, http.StatusCreated, wire.UploadResponse(res, h.baseURL))
}

func (h *Handler) access(w http.ResponseWriter, r *http.Request) {
	req := &pb.AccessRequest{}
	if err := h.decode(w, r, req); err != nil {
		h.respondError(w, r, err)
		return
	}

	res, err := h.shares.Access(r.Context(), wire.AccessRequest(req, clientIP(r), r.UserAgent()))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respondProto(w, http.StatusOK, wire.AccessResponse(res))
}

// stream returns the raw ciphertext; the iv and key hash travel in headers.
func (h *Handler) stream(w http.ResponseWriter, r *http.Request) {
	token, err := bearerToken(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	res, err := h.shares.Stream(r.Context(), mux.Vars(r)["id"], token)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Length", strconv.Itoa(len(res.Ciphertext)))
	w.Header().Set("X-Content-IV", res.Content.IV)
	w.Header().Set("X-Content-Key-Hash", res.Content.KeyHash)
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	w.Write(res.Ciphertext)
}

func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	res, err := h.shares.Status(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respondProto(w, http.StatusOK, wire.StatusResponse(res))
}

func (h *Handler) terminate(w http.ResponseWriter, r *http.Request) {
	req := &pb.TerminateRequest{}
	if err := h.decode(w, r, req); err != nil {
		h.respondError(w, r, err)
		return
	}

	cert, err := h.shares.Terminate(r.Context(), mux.Vars(r)["id"], req.Pin)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respondProto(w, http.StatusOK, wire.Certificate(cert, true))
}

func (h *Handler) reportActivity(w http.ResponseWriter, r *http.Request) {
	req := &pb.ActivityRequest{}
	if err := h.decode(w, r, req); err != nil {
		h.respondError(w, r, err)
		return
	}

	res, err := h.shares.ReportActivity(r.Context(), wire.ActivityReport(mux.Vars(r)["id"], req, clientIP(r)))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respondProto(w, http.StatusOK, wire.ActivityResponse(res))
}

func (h *Handler) rotatePin(w http.ResponseWriter, r *http.Request) {
	req := &pb.RotatePinRequest{}
	if err := h.decode(w, r, req); err != nil {
		h.respondError(w, r, err)
		return
	}

	res, err := h.shares.RotatePin(r.Context(), wire.RotatePinRequest(mux.Vars(r)["id"], req))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respondProto(w, http.StatusOK, wire.RotatePinResponse(res))
}

// shareQR encodes the share URL only; the PIN never leaves the uploader.
func (h *Handler) shareQR(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, err := h.shares.Status(r.Context(), id); err != nil {
		h.respondError(w, r, err)
		return
	}

	size := render.DefaultQRSize
	if v := r.URL.Query().Get("size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 64 || n > 1024 {
			h.respondError(w, r, common.Validationf("size must be between 64 and 1024"))
			return
		}
		size = n
	}

	png, err := render.ShareQR(h.baseURL, id, size)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *Handler) certificate(w http.ResponseWriter, r *http.Request) {
	cert, verified, err := h.shares.Certificate(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respondProto(w, http.StatusOK, wire.Certificate(cert, verified))
}

func (h *Handler) certificatePDF(w http.ResponseWriter, r *http.Request) {
	cert, verified, err := h.shares.Certificate(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	doc, err := render.CertificatePDF(cert, verified)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=certificate-%s.pdf", cert.ContentID))
	w.WriteHeader(http.StatusOK)
	w.Write(doc)
}

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	st, err := h.shares.Stats(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respondProto(w, http.StatusOK, wire.Stats(st))
}

func (h *Handler) cleanup(w http.ResponseWriter, r *http.Request) {
	res, err := h.shares.Sweep(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respondProto(w, http.StatusOK, wire.Cleanup(res))
}
