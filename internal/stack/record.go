package stack

import (
	"runtime"
	"strconv"
	"strings"
)

type call struct {
	function uintptr
	file     string
	line     int
}

func Call(depth int) (c call) {
	c.function, c.file, c.line, _ = runtime.Caller(depth + 1)

	return c
}

// Record returns the caller description in the form
// "pkg/path.(*Struct).Func(file.go:123)".
func (c call) Record() string {
	name := runtime.FuncForPC(c.function).Name()
	name = strings.ReplaceAll(name, "[...]", "")

	file := c.file
	if i := strings.LastIndex(file, "/"); i > -1 {
		file = file[i+1:]
	}

	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('(')
	b.WriteString(file)
	b.WriteByte(':')
	b.WriteString(strconv.Itoa(c.line))
	b.WriteByte(')')

	return b.String()
}

func Record(depth int) string {
	return Call(depth + 1).Record()
}
