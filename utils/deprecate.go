package utils

import (
	"fmt"
	"sync"
)

// warnedDeprecations records which identifiers have already produced a
// deprecation warning in this process. Keyed by identifier name so each
// deprecated entry point warns exactly once no matter how hot the call site.
var warnedDeprecations sync.Map

// WarnDeprecated emits a one-time warning that the named identifier is
// deprecated, with an optional extra message. Subsequent calls for the same
// name are no-ops. Safe for concurrent use.
func WarnDeprecated(logger Logger, name, msg string) {
	if _, loaded := warnedDeprecations.LoadOrStore(name, struct{}{}); loaded {
		return
	}
	warning := fmt.Sprintf("%s is deprecated and will be removed in future versions.", name)
	if msg != "" {
		warning = warning + " " + msg
	}
	logger.Warn(warning, "deprecated", name)
}
