package inference

import (
	"os"
	"path/filepath"

	"rpires/nf-control/internal/config"
	"rpires/nf-control/internal/models"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var log = config.Logger

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Mappings holds the sector suggestion tables. The built-in tables can be
// overridden by an optional YAML file.
type Mappings struct {
	CodePrefixSector map[string]string `yaml:"code_prefix_sectors"`
	CategorySector   map[string]string `yaml:"category_sectors"`
}

// DefaultMappings returns the built-in sector tables.
func DefaultMappings() *Mappings {
	prefix := make(map[string]string, len(models.CodePrefixSectorMap))
	for k, v := range models.CodePrefixSectorMap {
		prefix[k] = v
	}
	category := make(map[string]string, len(models.CategorySectorMap))
	for k, v := range models.CategorySectorMap {
		category[k] = v
	}
	return &Mappings{CodePrefixSector: prefix, CategorySector: category}
}

// LoadMappings loads sector tables from the given YAML file, or from
// "sectors.yaml" in the standard locations when filename is empty. A missing
// or unreadable file is not an error: the built-in tables are used and a
// warning is logged.
func LoadMappings(filename string) *Mappings {
	if filename == "" {
		filename = "sectors.yaml"
	}

	path, err := findMappingFile(filename)
	if err != nil {
		return DefaultMappings()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Warnf("Could not read sector mappings from %s: %v", path, err)
		return DefaultMappings()
	}

	// A section present in the file replaces the built-in table wholly; an
	// absent section keeps the default.
	var loaded Mappings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		log.Warnf("Could not parse sector mappings from %s: %v", path, err)
		return DefaultMappings()
	}
	defaults := DefaultMappings()
	if loaded.CodePrefixSector == nil {
		loaded.CodePrefixSector = defaults.CodePrefixSector
	}
	if loaded.CategorySector == nil {
		loaded.CategorySector = defaults.CategorySector
	}
	log.Debugf("Loaded sector mappings from %s", path)
	return &loaded
}

// findMappingFile looks for a mapping file in standard locations.
func findMappingFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".config", "nf-control", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// SuggestDepartmentByCode suggests the responsible department from the leading
// digit of a normalized operation code. Returns an empty string on no match.
func (m *Mappings) SuggestDepartmentByCode(code string) string {
	if code == "" {
		return ""
	}
	return m.CodePrefixSector[code[:1]]
}

// SuggestDepartmentByCategory suggests the responsible department for a
// category. Returns an empty string when the category is not in the table.
func (m *Mappings) SuggestDepartmentByCategory(category string) string {
	return m.CategorySector[category]
}

// SuggestDepartmentByCode uses the built-in tables.
func SuggestDepartmentByCode(code string) string {
	return DefaultMappings().SuggestDepartmentByCode(code)
}

// SuggestDepartmentByCategory uses the built-in tables.
func SuggestDepartmentByCategory(category string) string {
	return DefaultMappings().SuggestDepartmentByCategory(category)
}
