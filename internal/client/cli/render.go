package cli

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/UhCardoso/travel-manager-front/internal/client/client"
	"github.com/UhCardoso/travel-manager-front/internal/client/models"
	"github.com/UhCardoso/travel-manager-front/internal/client/validation"
)

var (
	statusColors = map[models.Status]*color.Color{
		models.StatusPending:   color.New(color.FgYellow),
		models.StatusApproved:  color.New(color.FgGreen),
		models.StatusRejected:  color.New(color.FgRed),
		models.StatusCancelled: color.New(color.Faint),
	}
	errorColor = color.New(color.FgRed)
)

func statusLabel(s models.Status) string {
	if c, ok := statusColors[s]; ok {
		return c.Sprint(s.String())
	}
	return s.String()
}

// report prints err for the user. Validation failures are listed per
// field, backend rejections with their message and field errors.
func report(err error) {
	if err == nil {
		return
	}
	for _, line := range formatError(err) {
		printlnFn(line)
	}
}

func formatError(err error) []string {
	var vErr *validation.Error
	if errors.As(err, &vErr) {
		return fieldLines("Please fix the following:", vErr.Fields())
	}

	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		msg := apiErr.Message
		if msg == "" {
			msg = fmt.Sprintf("Request failed (%d %s)", apiErr.StatusCode, http.StatusText(apiErr.StatusCode))
		}
		lines := []string{errorColor.Sprint(msg)}
		if fe := apiErr.FieldErrors(); len(fe) > 0 {
			lines = append(lines, fieldLines("", fe)...)
		}
		return lines
	}

	return []string{errorColor.Sprint("Error: " + err.Error())}
}

func fieldLines(header string, fields map[string]string) []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var lines []string
	if header != "" {
		lines = append(lines, header)
	}
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("  %s: %s", k, fields[k]))
	}
	return lines
}

// renderPage prints one page of travel requests as a table. The owner
// column is shown for admin listings.
func renderPage(p *models.Page[models.TravelRequest], withOwner bool) string {
	if len(p.Items) == 0 {
		return "No travel requests."
	}

	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)

	header := "ID\tNAME\tDESTINATION\tDEPARTURE\tRETURN\tSTATUS"
	if withOwner {
		header = "ID\tOWNER\tNAME\tDESTINATION\tDEPARTURE\tRETURN\tSTATUS"
	}
	fmt.Fprintln(tw, header)

	for _, tr := range p.Items {
		dest := tr.Destination()
		if dest == "" {
			dest = "-"
		}
		if withOwner {
			owner := "-"
			if tr.User != nil {
				owner = tr.User.Email
			}
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n", tr.ID, owner, tr.Name, dest, tr.DepartureDate, tr.ReturnDate, statusLabel(tr.Status))
		} else {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n", tr.ID, tr.Name, dest, tr.DepartureDate, tr.ReturnDate, statusLabel(tr.Status))
		}
	}
	_ = tw.Flush()

	m := p.Meta
	fmt.Fprintf(&b, "Page %d of %d (%d total)", m.CurrentPage, m.LastPage, m.Total)
	if p.HasNext() {
		fmt.Fprintf(&b, ", next: %d", m.CurrentPage+1)
	}
	return b.String()
}

func renderRequest(tr *models.TravelRequest) string {
	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "ID:\t%d\n", tr.ID)
	fmt.Fprintf(tw, "Name:\t%s\n", tr.Name)
	if tr.User != nil {
		fmt.Fprintf(tw, "Owner:\t%s <%s>\n", tr.User.Name, tr.User.Email)
	}
	if d := tr.Destination(); d != "" {
		fmt.Fprintf(tw, "Destination:\t%s\n", d)
	}
	fmt.Fprintf(tw, "Departure:\t%s\n", tr.DepartureDate)
	fmt.Fprintf(tw, "Return:\t%s\n", tr.ReturnDate)
	fmt.Fprintf(tw, "Status:\t%s\n", statusLabel(tr.Status))
	if tr.CreatedAt != "" {
		fmt.Fprintf(tw, "Created:\t%s\n", tr.CreatedAt)
	}
	_ = tw.Flush()
	return strings.TrimRight(b.String(), "\n")
}

func renderDestinations(ds []models.Destination) string {
	if len(ds) == 0 {
		return "No destinations found."
	}
	var b strings.Builder
	for i, d := range ds {
		loc := d.Location()
		label := loc.FormattedAddress
		if label == "" {
			label = loc.DisplayName
		}
		fmt.Fprintf(&b, "%2d) %s", i+1, label)
		if loc.Coordinates.Lat != "" {
			fmt.Fprintf(&b, " [%s, %s]", loc.Coordinates.Lat, loc.Coordinates.Lon)
		}
		if i < len(ds)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
