package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	"github.com/dmitrijs2005/secureshare/internal/common"
)

// messageJSON writes proto field names and zero values.
var messageJSON = protojson.MarshalOptions{UseProtoNames: true, EmitUnpopulated: true}

type errorBody struct {
	Error       string     `json:"error"`
	Status      string     `json:"status,omitempty"`
	LockedUntil *time.Time `json:"locked_until,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondProto(w http.ResponseWriter, status int, m proto.Message) {
	raw, err := messageJSON.Marshal(m)
	if err != nil {
		respondJSON(w, http.StatusInternalServerError, errorBody{Error: common.ErrorInternal.Error()})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(raw)
}

// statusFor maps the error taxonomy onto HTTP status codes. Gone is checked
// before Conflict because a viewed item matches both.
func statusFor(err error) int {
	var maxBytes *http.MaxBytesError
	switch {
	case errors.As(err, &maxBytes), errors.Is(err, common.ErrPayloadTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, common.ErrUnsupportedType):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, common.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrInvalidPin), errors.Is(err, common.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, common.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound
	case errors.Is(err, common.ErrGone):
		return http.StatusGone
	case errors.Is(err, common.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, common.ErrLocked):
		return http.StatusLocked
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	code := statusFor(err)
	body := errorBody{Error: err.Error()}

	var gone *common.GoneError
	var locked *common.LockedError
	switch {
	case errors.As(err, &gone):
		body.Status = gone.Status
	case errors.As(err, &locked):
		body.LockedUntil = &locked.Until
	}

	if code == http.StatusInternalServerError {
		h.logger.Error(r.Context(), "request failed", "path", r.URL.Path, "error", err)
		body.Error = common.ErrorInternal.Error()
	}
	respondJSON(w, code, body)
}
