// Package logging provides the zap-based logger shared by the library and
// CLI. Logging is silent by default so command output stays scriptable;
// it is enabled through the CLI verbosity flags or the LINKPLAYCTL_LOG_LEVEL
// environment variable.
package logging
