// Package supplier defines the port interface and canonical data model for
// external dropshipping supplier integrations.
//
// The package follows the Ports & Adapters pattern: the Connector interface
// and the provider-agnostic value objects (SupplierProduct, SupplierOrder,
// InventoryUpdate, TrackingEvent) live here in the domain layer, while the
// concrete provider connectors (AliExpress, CJ Dropshipping, Printful, BigBuy)
// live in the infrastructure layer and translate each provider's wire format
// into these shapes.
//
// All model types are transient values handed from a connector to its caller;
// nothing in this package persists state.
package supplier
