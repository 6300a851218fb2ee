package content

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// ErrInvalid is returned, wrapped with the list of problems, when a library
// fails validation.
var ErrInvalid = errors.New("invalid content")

var validate = validator.New()

// Validate checks field constraints and key uniqueness for every collection.
// All problems are reported together.
func Validate(lib *Library) error {
	if lib == nil {
		return errors.Wrap(ErrInvalid, "library is nil")
	}

	var problems []string
	if err := validate.Struct(lib); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return errors.Wrap(err, "validate content")
		}
		for _, fe := range fieldErrs {
			problems = append(problems, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
		}
	}

	experienceIDs := make(map[int]bool, len(lib.Experience))
	for _, e := range lib.Experience {
		if experienceIDs[e.ID] {
			problems = append(problems, fmt.Sprintf("duplicate experience id %d", e.ID))
		}
		experienceIDs[e.ID] = true
	}

	projectIDs := make(map[int]bool, len(lib.Projects))
	for _, p := range lib.Projects {
		if projectIDs[p.ID] {
			problems = append(problems, fmt.Sprintf("duplicate project id %d", p.ID))
		}
		projectIDs[p.ID] = true
	}

	skillNames := make(map[string]bool, len(lib.Skills))
	for _, s := range lib.Skills {
		if skillNames[s.Name] {
			problems = append(problems, fmt.Sprintf("duplicate skill %q", s.Name))
		}
		skillNames[s.Name] = true
	}

	if len(problems) > 0 {
		return errors.Wrap(ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}
