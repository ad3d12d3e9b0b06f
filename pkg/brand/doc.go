// Package brand parameterizes email composition per product line.
//
// A Policy is a plain configuration value - there is no brand type
// hierarchy. It decides three things: which report path the itinerary PDF
// is rendered from, whether the attachment wildcard rules apply, and
// whether the confirmation footer carries the associated-outlet block.
//
// Built-in policies cover the known product lines; Load reads an
// ops-managed policy table from YAML for deployments that add or adjust
// brands without a code change.
//
// # Usage
//
//	policy, ok := brand.Get("mixau")
//	if !ok {
//	    policy = brand.Default
//	}
//	path := policy.ReportPath(items)
package brand
