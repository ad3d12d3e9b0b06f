// Package outlet defines the retail branch record used for email footer
// contact details and the Directory collaborator that resolves outlets by
// code. Lookups are read-only and best-effort: a missing outlet leaves the
// footer tokens blank rather than failing the message.
package outlet
