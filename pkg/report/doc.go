// Package report talks to the external report-rendering collaborator that
// produces itinerary PDF documents.
//
// Rendering is a two-step RPC: Load prepares a report execution for a
// report path with parameters, then Render exports it to a binary format.
// RenderPDF wraps both steps and guarantees non-empty output - an empty
// document aborts the itinerary send.
//
// Two implementations ship with the package:
//   - Client: HTTP client for the reporting service.
//   - DevRenderer: local gofpdf-based stand-in for development, mirroring
//     the role of mail.DevSender.
package report
