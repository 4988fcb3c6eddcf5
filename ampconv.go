// Package ampconv converts HTML documents to AMP markup.
// It rewrites embed markup that is invalid in AMP (currently Twitter status
// blockquotes and their widget scripts) into AMP components and reports
// every change it made together with the source line it came from.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, slog/).
package ampconv
