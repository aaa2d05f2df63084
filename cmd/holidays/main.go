// Command holidays prints the computed public holidays for a jurisdiction,
// or checks every built-in calculator over a range of years.
//
// Usage:
//
//	go run ./cmd/holidays -code FR -year 2026 -regions AM,RE
//	go run ./cmd/holidays -code JP -year 2026 -json
//	go run ./cmd/holidays -check -from 1950 -to 2100
//	go run ./cmd/holidays -jp-csv syukujitsu.csv -from 2000 -to 2026
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/zapponejosh/worldcal-api/internal/holidays"
)

func main() {
	code := flag.String("code", "US", "Jurisdiction code")
	year := flag.Int("year", time.Now().Year(), "Year to compute")
	regions := flag.String("regions", "", "Comma-separated France region keys")
	asJSON := flag.Bool("json", false, "Print the raw date map as JSON")
	check := flag.Bool("check", false, "Check every calculator over -from..-to")
	from := flag.Int("from", 1950, "First year for -check")
	to := flag.Int("to", 2100, "Last year for -check")
	jpCSV := flag.String("jp-csv", "", "Compare JP over -from..-to with the Cabinet Office syukujitsu.csv")
	flag.Parse()

	registry := holidays.Builtin()

	if *jpCSV != "" {
		data, err := os.ReadFile(*jpCSV)
		if err != nil {
			fmt.Fprintf(os.Stderr, "read %s: %v\n", *jpCSV, err)
			os.Exit(1)
		}
		rows, err := readCabinetCSV(data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "parse %s: %v\n", *jpCSV, err)
			os.Exit(1)
		}
		diff := compareJP(registry, rows, *from, *to)
		diff.print(os.Stdout)
		if len(diff.Missing)+len(diff.Extra) > 0 {
			os.Exit(1)
		}
		return
	}

	if *check {
		report := checkAll(registry, *from, *to)
		report.print(os.Stdout)
		if report.failed() {
			os.Exit(1)
		}
		return
	}

	opts := holidays.Options{Regions: map[string]bool{}}
	for _, r := range strings.Split(*regions, ",") {
		if r = strings.ToUpper(strings.TrimSpace(r)); r != "" {
			opts.Regions[r] = true
		}
	}

	m, ok := registry.Calculate(*code, *year, opts)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown jurisdiction %q; known: %s\n", *code, strings.Join(registry.Codes(), " "))
		os.Exit(1)
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(m); err != nil {
			fmt.Fprintf(os.Stderr, "encode: %v\n", err)
			os.Exit(1)
		}
		return
	}
	printYear(os.Stdout, strings.ToUpper(*code), *year, m)
}

func printYear(w io.Writer, code string, year int, m holidays.YearMap) {
	title := code
	if meta, ok := holidays.Meta(code); ok {
		title = fmt.Sprintf("%s %s (%s)", meta.Flag, meta.Label, code)
	}
	fmt.Fprintf(w, "=== %s %d: %d holidays ===\n\n", title, year, m.Len())

	for _, key := range m.Keys() {
		for _, occ := range m[key] {
			name := occ.InternationalName
			if occ.LocalName != occ.InternationalName {
				name += " / " + occ.LocalName
			}
			fmt.Fprintf(w, "  %s  %s\n", key, name)
		}
	}
}
