package health

import (
	"net/http"

	resourcestore "github.com/dalemusser/gentlelibrary/internal/app/store/resources"
	"github.com/dalemusser/gentlelibrary/internal/app/system/jsonutil"
	"go.uber.org/zap"
)

// Catalog states reported by the health endpoint.
const (
	CatalogLoaded  = "loaded"
	CatalogMissing = "missing"
)

// Handler holds dependencies needed for health checks.
type Handler struct {
	Catalog *resourcestore.Catalog // nil when no data file was found
	Log     *zap.Logger
}

// NewHandler constructs a health Handler with the loaded catalog and logger.
func NewHandler(cat *resourcestore.Catalog, logger *zap.Logger) *Handler {
	return &Handler{
		Catalog: cat,
		Log:     logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status    string `json:"status"`
	Catalog   string `json:"catalog"`
	Resources int    `json:"resources"`
	BuildID   string `json:"build_id,omitempty"`
}

// Serve handles GET /health.
//
// The server is healthy whether or not a catalog was generated; a missing
// data file is reported, not treated as a failure:
//
//	{ "status":"ok", "catalog":"loaded", "resources":42, "build_id":"…" }
//	{ "status":"ok", "catalog":"missing", "resources":0 }
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{
		Status:  "ok",
		Catalog: CatalogMissing,
	}
	if h.Catalog != nil {
		resp.Catalog = CatalogLoaded
		resp.Resources = h.Catalog.Len()
		resp.BuildID = h.Catalog.BuildID()
	}

	if err := jsonutil.Write(w, http.StatusOK, resp); err != nil {
		h.Log.Error("health-check: encode response", zap.Error(err))
	}
}
