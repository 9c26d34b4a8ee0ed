package cmd

import (
	"flag"
	"strings"
)

// stringList collects repeated flag values. The first occurrence replaces
// any defaults loaded from the environment.
type stringList struct {
	target  *[]string
	touched bool
}

func (l *stringList) String() string {
	if l == nil || l.target == nil {
		return ""
	}
	return strings.Join(*l.target, ",")
}

func (l *stringList) Set(value string) error {
	if !l.touched {
		*l.target = nil
		l.touched = true
	}
	*l.target = append(*l.target, value)
	return nil
}

// StringListVar registers a repeatable string flag writing into target.
func StringListVar(fs *flag.FlagSet, target *[]string, name, usage string) {
	fs.Var(&stringList{target: target}, name, usage)
}
