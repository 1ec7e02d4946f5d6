// Package server holds the HTTP server configuration.
//
// The Config struct defines the listen port, the optional API key and the request
// body limit used for workbook uploads. It is embedded by core/config and read by
// the start command.
package server
