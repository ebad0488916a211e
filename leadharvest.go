// Package leadharvest provides a CLI-based toolkit for small-business
// lead generation. It searches businesses via the Google Places API,
// harvests public contact emails from their websites, stores leads in a
// local database, and imports/exports lead lists as CSV.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency or concern (e.g., sqlite/, http/, harvest/).
package leadharvest
