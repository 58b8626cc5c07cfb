package supplier

import "github.com/shopspring/decimal"

// ---------------------------------------------------------------------------
// Print-on-Demand
// ---------------------------------------------------------------------------

// PODPlacement is one printable area on a print-on-demand base product.
type PODPlacement struct {
	// Code is the provider's placement identifier (e.g. "front", "back")
	Code string
	// Name is the human-readable placement name
	Name string
	// WidthPx and HeightPx bound the printable area in pixels
	WidthPx  int
	HeightPx int
	// AdditionalCost is charged on top of the base price for this placement
	AdditionalCost decimal.Decimal
}

// PODTemplate is the print template payload attached to a POD base product.
type PODTemplate struct {
	// ExternalID is the template identifier on the provider
	ExternalID string
	// ProductID is the base product the template belongs to
	ProductID string
	// Placements lists the printable areas
	Placements []PODPlacement
	// PrintFileRequirements holds provider-specific file constraints
	PrintFileRequirements map[string]string
}

// MockupStatus is the terminal outcome of an async mockup render job.
type MockupStatus string

const (
	// MockupStatusPending indicates the job is queued or rendering
	MockupStatusPending MockupStatus = "PENDING"
	// MockupStatusCompleted indicates the render finished successfully
	MockupStatusCompleted MockupStatus = "COMPLETED"
	// MockupStatusFailed indicates the provider reported a render failure
	MockupStatusFailed MockupStatus = "FAILED"
	// MockupStatusTimeout indicates the job did not finish within the polling
	// budget. Distinct from FAILED: the job may still complete provider-side.
	MockupStatusTimeout MockupStatus = "TIMEOUT"
)

// PODMockup is the result of a mockup render job.
type PODMockup struct {
	// TaskID is the render job identifier on the provider
	TaskID string
	// ProductID is the base product the mockup renders
	ProductID string
	// Status is the job outcome
	Status MockupStatus
	// MockupURLs contains the rendered preview image URLs (when completed)
	MockupURLs []string
}

// MockupOptions tunes a mockup render request.
type MockupOptions struct {
	// Placement selects the printable area, empty for the provider default
	Placement string
	// VariantIDs restricts rendering to specific variants
	VariantIDs []string
}

// PODDesign registers a finished design as an orderable catalog entry.
type PODDesign struct {
	// ExternalID is the created catalog entry identifier on the provider
	ExternalID string
	// ProductID is the base product the design was applied to
	ProductID string
	// Name is the catalog entry name
	Name string
	// DesignURL is the submitted artwork URL
	DesignURL string
	// RetailPrice is the configured retail price for the entry
	RetailPrice decimal.Decimal
	// Currency is the retail price currency
	Currency string
}
