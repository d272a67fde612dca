package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Traverse bool
	Visit    bool
	Patch    bool
	Build    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Traverse = boolEnv("ARBOR_DEBUG_TRAVERSE")
	d.Visit = boolEnv("ARBOR_DEBUG_VISIT")
	d.Patch = boolEnv("ARBOR_DEBUG_PATCH")
	d.Build = boolEnv("ARBOR_DEBUG_BUILD")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Traverse() bool {
	return d.Traverse
}
func Visit() bool {
	return d.Visit
}
func Patch() bool {
	return d.Patch
}
func Build() bool {
	return d.Build
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
