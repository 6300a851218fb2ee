package content

import (
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

// Load returns the validated library. An empty path selects the literal
// defaults; otherwise the YAML file at path replaces every collection it
// names (experience, projects, skills) and the rest keep their defaults.
func Load(path string) (*Library, error) {
	lib := Default()
	if path != "" {
		k := koanf.New(".")
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "read content file %s", path)
		}

		var doc Library
		if err := k.UnmarshalWithConf("", &doc, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
			return nil, errors.Wrapf(err, "decode content file %s", path)
		}

		if k.Exists("experience") {
			lib.Experience = doc.Experience
		}
		if k.Exists("projects") {
			lib.Projects = doc.Projects
		}
		if k.Exists("skills") {
			lib.Skills = doc.Skills
		}
	}

	if err := Validate(lib); err != nil {
		return nil, err
	}
	return lib, nil
}
