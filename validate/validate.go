// Package validate checks a consolidated catalog against the import schema
// before upload. Checks accumulate every problem they find and never stop at
// the first failure, so one run reports everything that needs fixing.
package validate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tidewater-goods/catalogtools/catalog"
)

// RequiredColumns is the import template's column set. Every name must be
// present in the file being validated.
var RequiredColumns = []string{
	"Reference Handle",
	"Token",
	"Item Name",
	"Variation Name",
	"SKU",
	"Description",
	"Categories",
	"Reporting Category",
	"SEO Title",
	"SEO Description",
	"Item Type",
	"Sold Online",
	"Available for Sale",
	"Square Online Item Visibility",
}

// ExpectedValues maps columns to the literal value the importer requires to
// appear among the column's distinct non-blank values.
var ExpectedValues = map[string]string{
	"Square Online Item Visibility": "Visible",
	"Sold Online":                   "Y",
	"Available for Sale":            "Y",
	"Item Type":                     "Physical",
}

// Problem is one detected schema violation.
type Problem struct {
	Kind    string // missing_header, duplicate_header, unexpected_value
	Column  string
	Message string
}

func (p Problem) String() string {
	return fmt.Sprintf("%s: %s", p.Kind, p.Message)
}

// CheckHeaders reports every required column missing from the table and
// every duplicated header name.
func CheckHeaders(t *catalog.Table) []Problem {
	var problems []Problem

	present := make(map[string]int, len(t.Columns))
	for _, c := range t.Columns {
		present[strings.TrimSpace(c)]++
	}

	var missing []string
	for _, want := range RequiredColumns {
		if present[want] == 0 {
			missing = append(missing, want)
		}
	}
	sort.Strings(missing)
	for _, name := range missing {
		problems = append(problems, Problem{
			Kind:    "missing_header",
			Column:  name,
			Message: fmt.Sprintf("required column %q is not in the file", name),
		})
	}

	var dups []string
	for name, count := range present {
		if count > 1 {
			dups = append(dups, name)
		}
	}
	sort.Strings(dups)
	for _, name := range dups {
		problems = append(problems, Problem{
			Kind:    "duplicate_header",
			Column:  name,
			Message: fmt.Sprintf("column %q appears %d times", name, present[name]),
		})
	}

	return problems
}

// CheckValues reports, for each column with a fixed expected literal, whether
// that literal appears among the column's distinct non-blank values. When it
// does not, the problem message carries the observed set so the report is
// actionable on its own.
func CheckValues(t *catalog.Table) []Problem {
	var problems []Problem

	columns := make([]string, 0, len(ExpectedValues))
	for col := range ExpectedValues {
		columns = append(columns, col)
	}
	sort.Strings(columns)

	for _, col := range columns {
		expected := ExpectedValues[col]
		if !t.HasColumn(col) {
			problems = append(problems, Problem{
				Kind:    "missing_header",
				Column:  col,
				Message: fmt.Sprintf("expected column %q is not in the file", col),
			})
			continue
		}
		observed := t.DistinctValues(col)
		if !contains(observed, expected) {
			problems = append(problems, Problem{
				Kind:   "unexpected_value",
				Column: col,
				Message: fmt.Sprintf("expected %q in column %q, found %v",
					expected, col, observed),
			})
		}
	}

	return problems
}

// Run executes both checks to completion and returns the combined problem
// list.
func Run(t *catalog.Table) []Problem {
	problems := CheckHeaders(t)
	problems = append(problems, CheckValues(t)...)
	return problems
}

// Report renders problems as the stdout report, one line each, with a
// closing status line.
func Report(problems []Problem) string {
	var b strings.Builder
	if len(problems) == 0 {
		b.WriteString("all required headers and values are present\n")
		return b.String()
	}
	for _, p := range problems {
		fmt.Fprintf(&b, "%s\n", p)
	}
	fmt.Fprintf(&b, "%d problem(s) found\n", len(problems))
	return b.String()
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
