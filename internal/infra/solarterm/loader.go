package solarterm

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/octa-app/fengshui-backend/internal/domain/bazi"
)

// fileFormat is the YAML shape of a precomputed term-date file:
//
//	years:
//	  1990:
//	    lichun: 02-04
//	    jingzhe: 03-06
//	    ...
type fileFormat struct {
	Years map[int]map[string]string `yaml:"years"`
}

// Load reads a YAML file of precomputed solar-term dates into a term source.
// Years absent from the file fall back to the builtin approximation.
func Load(path string) (*bazi.TableTermSource, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read term table: %w", err)
	}
	return Parse(raw)
}

// Parse decodes YAML term-date content.
func Parse(raw []byte) (*bazi.TableTermSource, error) {
	var file fileFormat
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("decode term table: %w", err)
	}
	years := make(map[int][]bazi.TermDate, len(file.Years))
	for year, entries := range file.Years {
		dates := make([]bazi.TermDate, 0, len(entries))
		seen := make(map[bazi.Term]bool, len(entries))
		for name, value := range entries {
			term, ok := bazi.ParseTerm(name)
			if !ok {
				return nil, fmt.Errorf("term table year %d: unknown term %q", year, name)
			}
			var month, day int
			if _, err := fmt.Sscanf(value, "%d-%d", &month, &day); err != nil {
				return nil, fmt.Errorf("term table year %d: bad date %q for %s", year, value, name)
			}
			if month < 1 || month > 12 || day < 1 || day > 31 {
				return nil, fmt.Errorf("term table year %d: date %q for %s out of range", year, value, name)
			}
			dates = append(dates, bazi.TermDate{Term: term, Month: month, Day: day})
			seen[term] = true
		}
		// An incomplete year would otherwise fall through to the
		// approximation without any signal.
		var missing []string
		for term := bazi.TermLichun; term <= bazi.TermXiaohan; term++ {
			if !seen[term] {
				missing = append(missing, term.String())
			}
		}
		if len(missing) > 0 {
			return nil, fmt.Errorf("term table year %d: missing terms %s", year, strings.Join(missing, ", "))
		}
		years[year] = dates
	}
	return bazi.NewTableTermSource(years), nil
}
