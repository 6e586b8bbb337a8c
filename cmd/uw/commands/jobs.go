package commands

import (
	"strconv"

	"github.com/spf13/pflag"
	"go.trai.ch/uw/internal/core/domain"
)

// jobsValue is a pflag.Value for the parallelism flag. Invalid input never
// fails parsing; it falls back to the default and keeps a warning.
type jobsValue struct {
	n       int
	warning string
}

var _ pflag.Value = (*jobsValue)(nil)

func (v *jobsValue) String() string {
	if v.n == 0 {
		return strconv.Itoa(domain.DefaultMaxParallelJobs)
	}
	return strconv.Itoa(v.n)
}

func (v *jobsValue) Set(raw string) error {
	n, err := domain.ParseJobCount(raw)
	v.n = n
	v.warning = ""
	if err != nil {
		v.warning = "invalid job count " + strconv.Quote(raw) + ", using " + strconv.Itoa(n)
	}
	return nil
}

func (v *jobsValue) Type() string {
	return "int"
}
