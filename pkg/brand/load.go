package brand

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidPolicyTable indicates a policy file that could not be read or
// parsed, or that defines a nameless brand.
var ErrInvalidPolicyTable = errors.New("brand.errors.invalid_policy_table")

type policyFile struct {
	Brands []struct {
		Name                   string `yaml:"name"`
		AllRegionsRule         bool   `yaml:"all_regions_rule"`
		AllDestinationsRule    bool   `yaml:"all_destinations_rule"`
		ReportPath             string `yaml:"report_path"`
		HotelOnlyReportPath    string `yaml:"hotel_only_report_path"`
		SkipItineraryPDF       bool   `yaml:"skip_itinerary_pdf"`
		AssociatedOutletFooter bool   `yaml:"associated_outlet_footer"`
	} `yaml:"brands"`
}

// Load reads an ops-managed brand policy table from a YAML file. The result
// starts from the built-in table; file entries override built-ins with the
// same name.
func Load(path string) (map[string]Policy, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrInvalidPolicyTable, err)
	}

	var file policyFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, errors.Join(ErrInvalidPolicyTable, err)
	}

	policies := Builtin()
	for _, b := range file.Brands {
		if strings.TrimSpace(b.Name) == "" {
			return nil, fmt.Errorf("%w: brand entry without a name", ErrInvalidPolicyTable)
		}
		policies[strings.ToLower(b.Name)] = Policy{
			Name:                   b.Name,
			AllRegionsRule:         b.AllRegionsRule,
			AllDestinationsRule:    b.AllDestinationsRule,
			Path:                   b.ReportPath,
			HotelOnlyPath:          b.HotelOnlyReportPath,
			SkipItineraryPDF:       b.SkipItineraryPDF,
			AssociatedOutletFooter: b.AssociatedOutletFooter,
		}
	}

	return policies, nil
}
