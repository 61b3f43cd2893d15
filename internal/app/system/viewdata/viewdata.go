// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/httpnav"
)

// Default site identity used until Init is called.
const (
	DefaultSiteName    = "Gentle Library"
	DefaultSiteTagline = "Tools and ideas that make everyday things a little easier."
)

// Site is the identity shown in every page header.
type Site struct {
	Name    string
	Tagline string
}

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := myPageData{
//	    BaseVM: viewdata.NewBaseVM(r, "Page Title"),
//	    // page-specific fields...
//	}
type BaseVM struct {
	// Site identity (from config)
	SiteName    string
	SiteTagline string

	// Page context
	Title       string
	CurrentPath string
}

var site = Site{Name: DefaultSiteName, Tagline: DefaultSiteTagline}

// Init sets the site identity. Call this once at startup from bootstrap.
// Blank fields keep their defaults.
func Init(s Site) {
	if s.Name != "" {
		site.Name = s.Name
	}
	if s.Tagline != "" {
		site.Tagline = s.Tagline
	}
}

// CurrentSite returns the configured site identity.
func CurrentSite() Site {
	return site
}

// NewBaseVM creates a fully populated BaseVM for a page.
func NewBaseVM(r *http.Request, title string) BaseVM {
	return BaseVM{
		SiteName:    site.Name,
		SiteTagline: site.Tagline,
		Title:       title,
		CurrentPath: httpnav.CurrentPath(r),
	}
}
