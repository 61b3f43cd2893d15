// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	resourcestore "github.com/dalemusser/gentlelibrary/internal/app/store/resources"
)

// DBDeps holds back-end dependencies for the app. The only back end is the
// generated catalog file, loaded once at startup and never written.
type DBDeps struct {
	// Catalog is nil when the data file does not exist yet; pages then show
	// the onboarding state.
	Catalog *resourcestore.Catalog
}
