// internal/app/features/browse/handler.go
package browse

import (
	"net/http"

	"github.com/dalemusser/gentlelibrary/internal/app/catalog"
	resourcestore "github.com/dalemusser/gentlelibrary/internal/app/store/resources"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// resultsTarget is the element id the results pane is swapped into on
// HTMX requests.
const resultsTarget = "catalog-results"

// Handler serves the catalog page and its JSON API.
type Handler struct {
	// Catalog is nil when no generated data file was found at startup.
	Catalog *resourcestore.Catalog
	Cards   catalog.CardOptions
	Log     *zap.Logger
}

// NewHandler constructs a browse Handler. cat may be nil.
func NewHandler(cat *resourcestore.Catalog, cards catalog.CardOptions, logger *zap.Logger) *Handler {
	return &Handler{
		Catalog: cat,
		Cards:   cards,
		Log:     logger,
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET / – browse the catalog                                                  |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeCatalog renders the catalog for the filter in the query string.
func (h *Handler) ServeCatalog(w http.ResponseWriter, r *http.Request) {
	f := catalog.ParseQuery(r.URL.Query())
	data := h.buildPage(r, f)

	// HTMX partial results refresh; link groups ride along out of band
	if r.Header.Get("HX-Request") != "" && r.Header.Get("HX-Target") == resultsTarget {
		data.OOB = true
		templates.RenderSnippet(w, "catalog_partial", data)
		return
	}

	templates.Render(w, r, "catalog_index", data)
}
