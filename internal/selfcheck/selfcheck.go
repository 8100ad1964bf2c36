// Package selfcheck runs the field-cleaning examples the CLI verifies before
// touching any file.
package selfcheck

import (
	"errors"
	"fmt"
	"time"

	"github.com/gyeh/conclean/internal/model"
	"github.com/gyeh/conclean/internal/normalize"
)

// Check is a single named assertion.
type Check struct {
	Name string
	Fn   func() error
}

func expect(got, want string) error {
	if got != want {
		return fmt.Errorf("got %q, want %q", got, want)
	}
	return nil
}

// Checks lists the built-in assertions in run order.
var Checks = []Check{
	{"full name skips missing fragments", func() error {
		return expect(normalize.BuildFullName(model.RawRecord{
			"Name 1": "Jim", "Name 2": "Jones", "Name 4": "", "Name 6": "Smith",
		}), "Jim Jones Smith")
	}},
	{"full name from entity fragment", func() error {
		return expect(normalize.BuildFullName(model.RawRecord{"Name 6": "ZAPCHAST LLP"}), "ZAPCHAST LLP")
	}},
	{"full name strips numbered tags", func() error {
		return expect(normalize.BuildFullName(model.RawRecord{
			"Name 1": "(1) John", "Name 2": "", "Name 3": "", "Name 4": "", "Name 6": "(2) Doe",
		}), "John Doe")
	}},
	{"full name ignores Name 5", func() error {
		return expect(normalize.BuildFullName(model.RawRecord{
			"Name 1": "Jim", "Name 5": "Middle", "Name 6": "Smith",
		}), "Jim Smith")
	}},
	{"dob is day-first", func() error {
		d := normalize.ParseDOB("22/08/1990")
		want := time.Date(1990, time.August, 22, 0, 0, 0, 0, time.UTC)
		if d == nil || !d.Equal(want) {
			return fmt.Errorf("got %v, want %v", d, want)
		}
		return nil
	}},
	{"dob rejects garbage", func() error {
		if d := normalize.ParseDOB("not a date"); d != nil {
			return fmt.Errorf("got %v, want missing", d)
		}
		return nil
	}},
	{"nationality germany/morocco", func() error {
		s := "(1) Germany. (2) Morocco"
		return expect(normalize.CleanNationality(&s), "Germany. Morocco")
	}},
	{"nationality russia/ukraine", func() error {
		s := "(1) Russia. (2) Ukraine"
		return expect(normalize.CleanNationality(&s), "Russia. Ukraine")
	}},
}

// Run executes every check and joins all failures.
func Run() error {
	return run(Checks)
}

func run(checks []Check) error {
	var errs []error
	for _, c := range checks {
		if err := c.Fn(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", c.Name, err))
		}
	}
	return errors.Join(errs...)
}
