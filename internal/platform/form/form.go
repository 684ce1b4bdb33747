// Package form lee el cuerpo de un POST (form HTML o JSON) como records.Fields.
package form

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"

	"pet-records/internal/domain/records"
)

// MaxBodyBytes limita el cuerpo aceptado.
const MaxBodyBytes = 1 << 20

var ErrInvalidBody = errors.New("invalid request body")

// Decode acepta application/json y application/x-www-form-urlencoded (o multipart).
// Un cuerpo vacío devuelve Fields vacíos; la validación de presencia la hace el handler.
func Decode(w http.ResponseWriter, r *http.Request) (records.Fields, error) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)

	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if ct == "application/json" {
		return decodeJSON(r.Body)
	}

	switch ct {
	case "multipart/form-data":
		if err := r.ParseMultipartForm(MaxBodyBytes); err != nil {
			return nil, ErrInvalidBody
		}
	default:
		if err := r.ParseForm(); err != nil {
			return nil, ErrInvalidBody
		}
	}

	out := records.Fields{}
	for k, vs := range r.PostForm {
		if len(vs) > 0 {
			out[k] = vs[0]
		}
	}
	return out, nil
}

func decodeJSON(body io.Reader) (records.Fields, error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, ErrInvalidBody
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return records.Fields{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	// json.Number para distinguir 2 de 2.5 al validar enteros.
	dec.UseNumber()

	var out records.Fields
	if err := dec.Decode(&out); err != nil {
		return nil, ErrInvalidBody
	}
	if out == nil {
		out = records.Fields{}
	}
	return out, nil
}
