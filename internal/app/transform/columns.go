package transform

// Spreadsheet column names. Lookups ignore case.
const (
	ColApproved    = "Approved"
	ColTitle       = "Resource name"
	ColURL         = "Link to the resource"
	ColType        = "What type is this?"
	ColHelpsWith   = "What does this help with?"
	ColWhyHelpful  = "Why is this helpful?"
	ColSensoryLoad = "Sensory Load (Optional)"
	ColSetupEffort = "Setup effort (optional)"
	ColPriceType   = "Price type (Optional)"
	ColFeatured    = "Featured"
)
