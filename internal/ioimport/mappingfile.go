package ioimport

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/velocitia/prospectsdata/pkg/importer"
	"gopkg.in/yaml.v3"
)

// MappingFile is a saved column mapping.
//
//	table: projects
//	columns:
//	  project_id: Project ID
//	  project_name: Project Name (AR)
//	translate:
//	  - project_name
type MappingFile struct {
	Table     string            `yaml:"table"     validate:"required"`
	Columns   map[string]string `yaml:"columns"   validate:"required,min=1,dive,keys,required,endkeys,required"`
	Translate []string          `yaml:"translate" validate:"dive,required"`
}

var validate = validator.New()

// LoadMappingFile reads and validates a YAML mapping file.
func LoadMappingFile(path string) (*MappingFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, MappingFileError(path, err)
	}

	var res MappingFile
	if err = yaml.Unmarshal(data, &res); err != nil {
		return nil, MappingFileError(path, err)
	}

	if err = validate.Struct(res); err != nil {
		return nil, MappingFileError(path, err)
	}
	return &res, nil
}

// Apply sets the file's mappings and translation toggles on top of the
// automatic mapping.
func (mf *MappingFile) Apply(m *importer.Mapping) error {
	for target, source := range mf.Columns {
		if err := m.SetMapping(target, source); err != nil {
			return err
		}
	}
	for _, target := range mf.Translate {
		if err := m.SetTranslate(target, true); err != nil {
			return err
		}
	}
	return nil
}
