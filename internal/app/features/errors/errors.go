// internal/app/features/errors/errors.go
package errors

import (
	"net/http"
	"strings"

	"github.com/dalemusser/gentlelibrary/internal/app/system/jsonutil"
	"github.com/dalemusser/gentlelibrary/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
)

// pageData is the basic view model for error pages.
type pageData struct {
	viewdata.BaseVM
	Message string
	BackURL string
}

// Handler is the errors feature handler.
// No back end needed; it just renders templates.
type Handler struct{}

// NewHandler constructs an errors Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// NotFound renders a friendly "page not found" page. API paths get a JSON
// error instead.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		jsonutil.Error(w, http.StatusNotFound, "not found")
		return
	}

	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, "Not found"),
		Message: "There's nothing here. The catalog is a click away.",
		BackURL: "/",
	}

	w.WriteHeader(http.StatusNotFound)
	templates.Render(w, r, "error_not_found", data)
}
