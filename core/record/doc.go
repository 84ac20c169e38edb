// Package record handles the untyped boundary shape of external JSON feeds.
//
// Every feed response decodes into string-keyed maps first; the extraction
// helpers in this package turn individual fields into typed values under a
// strict contract: a missing field resolves to nil, while a field present
// with the wrong JSON kind is a feed contract violation reported as a
// KindError.
//
// # Extraction Helpers
//
//   - String / TrimmedString: textual fields.
//   - Float / Int: numeric fields (JSON numbers decode as float64).
//   - Bool: boolean fields.
//   - ID: identifier fields, normalized to their textual form.
//   - Instant: RFC 3339 timestamps.
//   - Child / List: nested objects and lists of objects.
//
// # Alternatives
//
// Alternatives implements first-non-nil-wins resolution across multiple
// candidate sources for one logical value. It backs both cross-reference
// resolution (bare id vs. embedded object) and counter reconciliation
// (statistics feed vs. event feed).
package record
