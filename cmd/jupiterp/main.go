package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/jupiterp/jupiterp-go/api"
	"github.com/jupiterp/jupiterp-go/catalog"
	"github.com/jupiterp/jupiterp-go/pkg/config"
	"github.com/jupiterp/jupiterp-go/pkg/export"
	"github.com/jupiterp/jupiterp-go/pkg/logger"
)

func main() {
	var (
		baseURL    string
		codes      string
		prefix     string
		genEds     string
		sections   bool
		limit      int
		offset     int
		sortSpec   string
		creditsMin float64
		creditsMax float64
		format     string
		outPath    string
	)

	flag.StringVar(&baseURL, "base", "", "API base URL (overrides JUPITERP_BASE_URL)")
	flag.StringVar(&codes, "codes", "", "Comma-separated course codes, e.g. CMSC131,MATH140")
	flag.StringVar(&prefix, "prefix", "", "Course code prefix, e.g. CMSC")
	flag.StringVar(&genEds, "gened", "", "Comma-separated gen-ed codes, e.g. DSNS,DSNL")
	flag.BoolVar(&sections, "sections", false, "Query sections instead of courses")
	flag.IntVar(&limit, "limit", -1, "Maximum number of records to return")
	flag.IntVar(&offset, "offset", -1, "Number of records to skip")
	flag.StringVar(&sortSpec, "sort", "", "Comma-separated sort keys, e.g. course_code.asc,name.desc")
	flag.Float64Var(&creditsMin, "credits-min", -1, "Minimum number of credits (courses only)")
	flag.Float64Var(&creditsMax, "credits-max", -1, "Maximum number of credits (courses only)")
	flag.StringVar(&format, "format", "table", "Output format: table, csv or pdf")
	flag.StringVar(&outPath, "out", "", "Output file path (defaults to stdout; required for pdf)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	client, err := api.NewClient(cfg.BaseURL,
		api.WithLogger(logr),
		api.WithHTTPClient(&http.Client{Timeout: cfg.HTTP.Timeout}),
	)
	if err != nil {
		log.Fatalf("failed to build client: %v", err)
	}

	sortBy := parseSortSpec(sortSpec)
	ctx := context.Background()

	var dataset export.Dataset
	if sections {
		secCfg := &api.SectionsConfig{
			CourseCodes: splitList(codes),
			Prefix:      prefix,
			Limit:       optionalInt(limit),
			Offset:      optionalInt(offset),
			SortBy:      sortBy,
		}
		resp, err := client.Sections(ctx, secCfg)
		if err != nil {
			log.Fatalf("sections request failed: %v", err)
		}
		if !resp.Ok() {
			log.Fatalf("sections request returned %d %s: %s", resp.StatusCode, resp.StatusMessage, resp.ErrorBody)
		}
		dataset = catalog.SectionsDataset(resp.Data)
	} else {
		courseCfg := &api.CoursesConfig{
			CourseCodes:   splitList(codes),
			Prefix:        prefix,
			Limit:         optionalInt(limit),
			Offset:        optionalInt(offset),
			SortBy:        sortBy,
			CreditFilters: creditFilter(creditsMin, creditsMax),
		}
		for _, code := range splitList(genEds) {
			g, err := catalog.GenEdFromCode(code)
			if err != nil {
				log.Fatalf("invalid -gened: %v", err)
			}
			courseCfg.GenEds = append(courseCfg.GenEds, g)
		}
		resp, err := client.Courses(ctx, courseCfg)
		if err != nil {
			log.Fatalf("courses request failed: %v", err)
		}
		if !resp.Ok() {
			log.Fatalf("courses request returned %d %s: %s", resp.StatusCode, resp.StatusMessage, resp.ErrorBody)
		}
		dataset = catalog.CoursesDataset(resp.Data)
	}

	if err := render(dataset, format, outPath, sections); err != nil {
		log.Fatalf("failed to render output: %v", err)
	}
}

func render(dataset export.Dataset, format, outPath string, landscape bool) error {
	switch format {
	case "table":
		out := os.Stdout
		if outPath != "" {
			f, err := os.Create(outPath)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}
		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, strings.Join(dataset.Headers, "\t"))
		for _, row := range dataset.Rows {
			fmt.Fprintln(w, strings.Join(row, "\t"))
		}
		return w.Flush()
	case "csv":
		data, err := export.NewCSVExporter().Render(dataset)
		if err != nil {
			return err
		}
		return writeOut(data, outPath)
	case "pdf":
		if outPath == "" {
			return fmt.Errorf("pdf output requires -out")
		}
		exporter := export.NewPDFExporter()
		exporter.Landscape = landscape
		data, err := exporter.Render(dataset)
		if err != nil {
			return err
		}
		return writeOut(data, outPath)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func writeOut(data []byte, outPath string) error {
	if outPath == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(outPath, data, 0o644)
}

// optionalInt maps the flag sentinel -1 to an absent parameter.
func optionalInt(v int) *int {
	if v < 0 {
		return nil
	}
	return &v
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func parseSortSpec(raw string) *api.SortBy {
	if raw == "" {
		return nil
	}
	sortBy := &api.SortBy{}
	for _, key := range splitList(raw) {
		switch {
		case strings.HasSuffix(key, ".desc"):
			sortBy.Descending(strings.TrimSuffix(key, ".desc"))
		case strings.HasSuffix(key, ".asc"):
			sortBy.Ascending(strings.TrimSuffix(key, ".asc"))
		default:
			sortBy.Ascending(key)
		}
	}
	return sortBy
}

func creditFilter(min, max float64) *api.Filter {
	if min < 0 && max < 0 {
		return nil
	}
	filter := api.NewCreditFilter()
	if min >= 0 {
		filter.GreaterThanOrEqualTo(min)
	}
	if max >= 0 {
		filter.LessThanOrEqualTo(max)
	}
	return filter
}
