// Package notice defines the system-message model owned by a grid.
//
// # Purpose
//
//   - Accumulate notices produced during a grid's evaluation cycle: user-facing
//     validation errors and critical (internal) failures.
//   - Offer keyed lookup by the composite "rowID;columnID" location.
//   - Render the accumulated notices into a single themed markup fragment that
//     the grid splices into its output.
//
// # Data model
//
// Notice is an immutable record:
//
//   - Text – the message, embedded verbatim into the markup.
//   - Critical – true when the notice comes from an internal failure.
//   - Style – StyleGrid (shown inside the grid's own wrapper) or StylePlain
//     (left for the host page to display).
//   - Location – optional composite key built with LocationKey.
//
// Registry is the ordered store. Insertion order is render order. The registry
// keeps no derived state: every count and lookup rescans the sequence.
//
// # Rendering
//
// Registry.Render returns ("", false) when there is nothing to show. A registry
// without a single StyleGrid notice renders nothing at all, even when it holds
// plain-styled notices. Otherwise every notice is listed, regardless of style.
//
// The registry reads its rendering context (width, id, theme flag, localized
// label) from a Host and optionally reports progress to a Tracer. Neither is a
// concrete grid type, so rendering can be tested in isolation.
//
// # Emitting notices
//
// Producers that should not depend on the registry use a Reporter. The
// ReportBuilder returned by Report chains Critical / Styled / At before Emit.
// DedupReporter suppresses repeats of an identical notice.
//
// The registry is not safe for concurrent use; one grid owns one registry per
// rendering pass.
package notice
