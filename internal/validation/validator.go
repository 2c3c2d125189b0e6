package validation

import (
	"fmt"
	"regexp"
	"strconv"

	validatorv10 "github.com/go-playground/validator/v10"
)

// isoTimeRegex matches HH:MM[:SS[.fraction]][Z|±HH:MM].
var isoTimeRegex = regexp.MustCompile(`^(\d{2}):(\d{2})(?::\d{2}(?:\.\d+)?)?(Z|[+-]\d{2}:\d{2})?$`)

const (
	tagISODate = "datetime=2006-01-02"
	tagISOTime = "iso8601time"
)

// New returns a configured validator with the custom iso8601time tag registered.
func New() *validatorv10.Validate {
	v := validatorv10.New()

	if err := v.RegisterValidation(tagISOTime, isoTimeValidation); err != nil {
		panic(fmt.Sprintf("register %s: %v", tagISOTime, err))
	}

	return v
}

// isoTimeValidation matches isoTimeRegex and then checks the hour is 0..23,
// since the pattern alone admits hours 24..99.
func isoTimeValidation(fl validatorv10.FieldLevel) bool {
	m := isoTimeRegex.FindStringSubmatch(fl.Field().String())
	if m == nil {
		return false
	}
	hour, err := strconv.Atoi(m[1])
	if err != nil {
		return false
	}
	return hour >= 0 && hour <= 23
}
