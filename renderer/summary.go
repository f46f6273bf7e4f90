// Package renderer builds markdown views of the book for terminal display.
package renderer

import (
	"strings"
	"text/template"

	"github.com/tmaret/finbook"
)

const summaryTemplate = `# Account {{.Name}}

Balance: **{{.Balance}}**
{{if .HasTarget}}Spending target: {{.Target}}
{{end}}Transactions recorded: {{.Count}}
`

var summaryTmpl = template.Must(template.New("summary").Parse(summaryTemplate))

// AccountSummary renders the account headline view: balance, spending
// target when one is set, and the number of recorded transactions.
func AccountSummary(a *finbook.Account) string {
	data := struct {
		Name      string
		Balance   string
		HasTarget bool
		Target    string
		Count     int
	}{
		Name:      a.Name(),
		Balance:   a.Balance().String(),
		HasTarget: !a.SpendingTarget().IsZero(),
		Target:    a.SpendingTarget().String(),
		Count:     len(a.Transactions()),
	}

	var b strings.Builder
	if err := summaryTmpl.Execute(&b, data); err != nil {
		// the template and its data are compile-time constants
		panic("could not render account summary: " + err.Error())
	}
	return b.String()
}
