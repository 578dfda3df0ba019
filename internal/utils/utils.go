package utils

import (
	"github.com/sahilKumar1122/portfolio-api/internal/appenv"
)

func Assert(ok bool, v any) {
	if !ok {
		panic(v)
	}
}

// panics only in local and staging, no-op in production
func AssertDev(ok bool, v any) {
	if appenv.IsStagOrLocal() {
		Assert(ok, v)
	}
}

// usage e.g:
//
//	func success() (int, error) {
//		return 0, nil
//	}
//	n1 := Must(success())
func Must[T any](d T, err error) T {
	if err != nil {
		panic(err)
	}
	return d
}

func Clamp(x, min, max int) int {
	if x < min {
		x = min
	} else if x > max {
		x = max
	}
	return x
}
