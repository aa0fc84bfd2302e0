// Package reader parses tabular input files into in-memory tables.
//
// Every cell is read as text: no type coercion happens and no value is
// converted to a null marker, so leading zeros and intentional blank
// strings survive exactly as written. One reader exists per supported
// format (CSV, XLSX, XLS), dispatched by file extension.
package reader
