// Package csvbatch streams CSV rows through a link resolver.
//
// Input has the header-named columns page, link and label; output has
// page, original, label, link and action. An empty page or label means
// "absent". Rows are resolved strictly one at a time with one round trip
// each, so memory use stays constant however large the input is.
//
// Rows that cannot be decoded are skipped and counted in the [Report]
// unless [WithStrictRows] is given. A resolution failure aborts the run;
// rows already written stay written.
package csvbatch
