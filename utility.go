package ringlog

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// fmtErrorf wrapper, keeps the package prefix consistent.
func fmtErrorf(format string, args ...any) error {
	if !strings.HasPrefix(format, "ringlog: ") {
		format = "ringlog: " + format
	}
	return fmt.Errorf(format, args...)
}

var dumper = &spew.ConfigState{
	Indent:                  " ",
	MaxDepth:                10,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Dump renders an arbitrary value in a compact, log-friendly form for
// use inside format arguments:
//
//	logger.Debug("CACHE", "state after evict: %s", ringlog.Dump(state))
//
// The result is subject to the record's message capacity like any
// other formatted text.
func Dump(v any) string {
	var b bytes.Buffer
	dumper.Fdump(&b, v)
	return string(bytes.TrimSpace(b.Bytes()))
}
