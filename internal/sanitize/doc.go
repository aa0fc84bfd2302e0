// Package sanitize derives safe PostgreSQL identifiers from file names and
// column headers.
//
// The mapping is deterministic and total: any input string, including the
// empty string, yields a non-empty lowercase identifier matching
// ^[a-z][a-z0-9_]*$ or ^t_[0-9][a-z0-9_]*$. Because the resulting table and
// column names are the durable contract with downstream consumers of the
// loaded tables, the rules here must not change casually.
package sanitize
