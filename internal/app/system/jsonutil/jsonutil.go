// internal/app/system/jsonutil/jsonutil.go
package jsonutil

import (
	"net/http"
	"strconv"

	"github.com/bytedance/sonic"
)

// Write encodes v as JSON and writes it with the given status code.
// Nothing is written if encoding fails, so the caller can still send an
// error response.
func Write(w http.ResponseWriter, status int, v any) error {
	b, err := sonic.ConfigStd.Marshal(v)
	if err != nil {
		return err
	}
	b = append(b, '\n')

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(b)))
	w.WriteHeader(status)
	_, err = w.Write(b)
	return err
}

// Error writes {"error": msg} with the given status code.
func Error(w http.ResponseWriter, status int, msg string) {
	_ = Write(w, status, map[string]string{"error": msg})
}
