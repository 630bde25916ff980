package web

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// ErrInvalidPayload is returned by Decode for bodies that are not valid JSON
// for the target type.
var ErrInvalidPayload = errors.New("invalid request payload, unable to parse")

// MaxBodyBytes caps the request bodies Decode reads.
const MaxBodyBytes = 1 << 16

type Response struct {
	Results interface{}     `json:"results,omitempty"`
	Errors  []ResponseError `json:"errors,omitempty"`
}

type ResponseError struct {
	Message string `json:"message"`
}

func (re ResponseError) Error() string {
	return re.Message
}

// Decode reads a JSON body of at most MaxBodyBytes into v and closes it.
// Unknown fields are rejected.
func Decode(w http.ResponseWriter, r *http.Request, v interface{}) error {
	body := http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	defer body.Close()

	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		log.WithError(err).Debug("decode request body")
		return ErrInvalidPayload
	}
	return nil
}

func Respond(w http.ResponseWriter, r *http.Request, code int, data interface{}) {
	writeResponse(w, r, code, &Response{Results: data})
}

// RespondError logs err and writes it as the single response error. Server
// side failures are masked behind the generic status text.
func RespondError(w http.ResponseWriter, r *http.Request, code int, err error) {
	log.WithFields(log.Fields{
		"error":  err,
		"method": r.Method,
		"path":   r.URL.Path,
		"status": code,
	}).Error("error while serving request")

	if code >= http.StatusInternalServerError && code != http.StatusServiceUnavailable && code != http.StatusNotImplemented {
		code = http.StatusInternalServerError
		err = errors.New(http.StatusText(http.StatusInternalServerError))
	}

	writeResponse(w, r, code, &Response{
		Errors: []ResponseError{{Message: err.Error()}},
	})
}

func writeResponse(w http.ResponseWriter, r *http.Request, code int, resp *Response) {
	w.Header().Set("Content-Type", "application/json")

	if code == http.StatusNoContent || resp == nil {
		w.WriteHeader(code)
		return
	}

	b, err := json.Marshal(resp)
	if err != nil {
		RespondError(w, r, http.StatusInternalServerError, errors.Wrap(err, "marshal response"))
		return
	}

	w.WriteHeader(code)

	if _, err := w.Write(b); err != nil {
		log.WithError(errors.Wrap(err, "write response body")).Warn("respond")
	}
}
