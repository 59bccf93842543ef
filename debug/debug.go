package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Scan    bool
	Content bool
	Convert bool
}

var d *debug

func init() {
	d = &debug{}
	d.Scan = boolEnv("SECTOR_DEBUG_SCAN")
	d.Content = boolEnv("SECTOR_DEBUG_CONTENT")
	d.Convert = boolEnv("SECTOR_DEBUG_CONVERT")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Scan() bool {
	return d.Scan
}
func Content() bool {
	return d.Content
}
func Convert() bool {
	return d.Convert
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
