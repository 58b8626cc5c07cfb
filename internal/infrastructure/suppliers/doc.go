// Package suppliers contains the concrete connector implementations for the
// supplier port defined in internal/domain/supplier, plus the shared outbound
// plumbing every connector funnels through: the per-provider fixed-window rate
// limiter, the retry executor, webhook signature helpers and the connector
// registry.
//
// Each provider lives in its own config/types/connector file trio. Configs
// know how to validate themselves and how to sign requests; connectors own an
// HTTP session, translate provider payloads into the canonical model and are
// safe for concurrent use.
package suppliers
