package transport

import (
	"encoding/json"
	"net/http"

	"github.com/cafelumiere/cafe-api/constant"
	"github.com/cafelumiere/cafe-api/utils/errors"
)

type errorEnvelope struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeSuccess merges the payload's JSON fields into the top-level body, so
// each handler decides the keys that sit next to "success", e.g.
// {"success":true,"order":{...},"discountApplied":true}.
func writeSuccess(w http.ResponseWriter, payload interface{}) {
	body := map[string]interface{}{"success": true}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			writeError(w, errors.SetCustomError(constant.ErrInternal))
			return
		}
		fields := map[string]json.RawMessage{}
		if err := json.Unmarshal(raw, &fields); err != nil {
			// non-object payloads ride under a data key
			body["data"] = json.RawMessage(raw)
		} else {
			for k, v := range fields {
				body[k] = v
			}
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, err error) {
	ce, ok := err.(errors.CustomError)
	if !ok {
		ce = errors.SetCustomError(constant.ErrInternal)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(ce.ErrorHTTPCode())
	_ = json.NewEncoder(w).Encode(errorEnvelope{
		Success: false,
		Code:    ce.ErrorCode(),
		Message: ce.Error(),
	})
}
