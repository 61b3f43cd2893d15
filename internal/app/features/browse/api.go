// internal/app/features/browse/api.go
package browse

import (
	"net/http"

	"github.com/dalemusser/gentlelibrary/internal/app/catalog"
	"github.com/dalemusser/gentlelibrary/internal/app/system/jsonutil"
	"github.com/dalemusser/gentlelibrary/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type apiSection struct {
	Key       string            `json:"key"`
	Label     string            `json:"label"`
	Resources []models.Resource `json:"resources"`
}

type apiList struct {
	Count    int          `json:"count"`
	Total    int          `json:"total"`
	Sections []apiSection `json:"sections"`
}

// ServeList handles GET /api/resources. It takes the same query parameters
// as the catalog page.
//
//	{ "count": 2, "total": 7, "sections": [{ "key": "time", "label": "Time & transitions", "resources": [...] }] }
//
// Without a data file it answers 503.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	if h.Catalog == nil {
		jsonutil.Error(w, http.StatusServiceUnavailable, "catalog data not available")
		return
	}

	res := catalog.Browse(h.Catalog.All(), catalog.ParseQuery(r.URL.Query()))

	out := apiList{
		Count:    res.Matched,
		Total:    res.Total,
		Sections: make([]apiSection, 0, len(res.Sections)),
	}
	for _, s := range res.Sections {
		out.Sections = append(out.Sections, apiSection{
			Key:       string(s.Key),
			Label:     s.Title,
			Resources: s.Resources,
		})
	}

	h.writeJSON(w, out)
}

// ServeOne handles GET /api/resources/{id}.
func (h *Handler) ServeOne(w http.ResponseWriter, r *http.Request) {
	if h.Catalog == nil {
		jsonutil.Error(w, http.StatusServiceUnavailable, "catalog data not available")
		return
	}

	res, ok := h.Catalog.ByID(chi.URLParam(r, "id"))
	if !ok {
		jsonutil.Error(w, http.StatusNotFound, "resource not found")
		return
	}
	h.writeJSON(w, res)
}

func (h *Handler) writeJSON(w http.ResponseWriter, v any) {
	if err := jsonutil.Write(w, http.StatusOK, v); err != nil {
		h.Log.Error("browse: encode response", zap.Error(err))
		jsonutil.Error(w, http.StatusInternalServerError, "internal error")
	}
}
