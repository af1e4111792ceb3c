// Package leadcsv renders leads in the CSV layout used by the dashboard export.
//
// The layout is fixed: an unquoted header row, then one row per lead with every
// field wrapped in double quotes. Social-media links are flattened into a single
// "Platform: url | Platform: url" column.
package leadcsv

import (
	"bufio"
	"io"
	"strings"
	"time"

	"github.com/dalemusser/leadsadmin/internal/domain/models"
)

// Header is the first row of every export.
var Header = []string{"Business Name", "Category", "Email", "Phone", "Address", "Website", "Social Media"}

// Filename returns leads_<YYYY-MM-DD>.csv for the UTC date of t.
func Filename(t time.Time) string {
	return "leads_" + t.UTC().Format("2006-01-02") + ".csv"
}

// Row returns the quoted fields for one lead.
func Row(l models.Lead) []string {
	return []string{
		quote(l.BusinessName),
		quote(l.Category),
		quote(l.Email),
		quote(l.Phone),
		quote(l.Address),
		quote(l.Website),
		quote(Social(l.SocialMedia)),
	}
}

// Social flattens links as "Platform: url" joined by " | ".
func Social(links []models.SocialLink) string {
	parts := make([]string, 0, len(links))
	for _, s := range links {
		parts = append(parts, s.Platform+": "+s.URL)
	}
	return strings.Join(parts, " | ")
}

// Write streams the header and one line per lead to w. Lines end in "\n";
// there is no trailing newline after the last row.
func Write(w io.Writer, leads []models.Lead) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(strings.Join(Header, ",")); err != nil {
		return err
	}
	for _, l := range leads {
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
		if _, err := bw.WriteString(strings.Join(Row(l), ",")); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// String is Write into a string.
func String(leads []models.Lead) string {
	var sb strings.Builder
	_ = Write(&sb, leads)
	return sb.String()
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
