package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	formbuilder "github.com/goliatone/go-formbuilder"
	pkgopenapi "github.com/goliatone/go-formbuilder/pkg/openapi"
	"github.com/goliatone/go-formbuilder/pkg/renderers/tui"
	"github.com/goliatone/go-formbuilder/pkg/schema"
)

const usage = `Usage: formbuilder <command> [flags]

Commands:
  render    render a schema to HTML
  fill      fill a schema interactively in the terminal
  validate  lint a schema for structural problems
  import    import OpenAPI operations as form schemas
`

func main() {
	log.SetFlags(0)

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	ctx := context.Background()

	switch os.Args[1] {
	case "render":
		runRender(ctx, os.Args[2:])
	case "fill":
		runFill(ctx, os.Args[2:])
	case "validate":
		runValidate(os.Args[2:])
	case "import":
		runImport(ctx, os.Args[2:])
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
}

func runRender(ctx context.Context, args []string) {
	flags := flag.NewFlagSet("render", flag.ExitOnError)
	schemaPath := flags.String("schema", "", "form schema file (json or yaml)")
	valuesPath := flags.String("values", "", "values file (json), optional")
	tab := flags.String("tab", "", "tab id to render (first tab if empty)")
	output := flags.String("output", "", "output file (stdout if empty)")
	_ = flags.Parse(args)

	formSchema := loadSchema(*schemaPath)

	opts := formbuilder.RenderOptions{ActiveTab: *tab}
	if *valuesPath != "" {
		opts.Values = loadValues(*valuesPath)
	}

	outputHTML, err := formbuilder.RenderHTML(ctx, formSchema, opts)
	if err != nil {
		log.Fatalf("Failed to render form: %v", err)
	}
	writeOutput(*output, outputHTML)
}

func runFill(ctx context.Context, args []string) {
	flags := flag.NewFlagSet("fill", flag.ExitOnError)
	schemaPath := flags.String("schema", "", "form schema file (json or yaml)")
	format := flags.String("format", "json", "output format: json, form, pretty")
	output := flags.String("output", "", "output file (stdout if empty)")
	_ = flags.Parse(args)

	formSchema := loadSchema(*schemaPath)

	collected, err := formbuilder.Fill(ctx, formSchema, formbuilder.RenderOptions{},
		tui.WithOutputFormat(tui.OutputFormat(*format)))
	if err != nil {
		log.Fatalf("Fill session failed: %v", err)
	}
	writeOutput(*output, collected)
}

func runValidate(args []string) {
	flags := flag.NewFlagSet("validate", flag.ExitOnError)
	schemaPath := flags.String("schema", "", "form schema file (json or yaml)")
	_ = flags.Parse(args)

	formSchema := loadSchema(*schemaPath)

	issues := formSchema.Validate()
	if len(issues) == 0 {
		fmt.Println("schema is valid")
		return
	}
	for _, issue := range issues {
		fmt.Printf("%s: %s\n", issue.Path, issue.Message)
	}
	os.Exit(1)
}

func runImport(ctx context.Context, args []string) {
	flags := flag.NewFlagSet("import", flag.ExitOnError)
	source := flags.String("source", "", "OpenAPI document path or URL")
	operation := flags.String("operation", "", "operation id to import (all if empty)")
	timeout := flags.Duration("timeout", 30*time.Second, "timeout for remote sources")
	output := flags.String("output", "", "output file (stdout if empty)")
	_ = flags.Parse(args)

	src := parseSource(*source)
	if src == nil {
		log.Fatalf("invalid source: %q", *source)
	}

	forms, err := formbuilder.ImportForms(ctx, src, []pkgopenapi.LoaderOption{
		pkgopenapi.WithHTTPFallback(*timeout),
	})
	if err != nil {
		log.Fatalf("Failed to import forms: %v", err)
	}

	if *operation != "" {
		form, ok := forms[*operation]
		if !ok {
			log.Fatalf("operation %q not found; available: %s", *operation, strings.Join(operationIDs(forms), ", "))
		}
		data, err := schema.EncodeJSON(form)
		if err != nil {
			log.Fatalf("Failed to encode schema: %v", err)
		}
		writeOutput(*output, data)
		return
	}

	data, err := json.MarshalIndent(forms, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode schemas: %v", err)
	}
	writeOutput(*output, data)
}

func loadSchema(path string) schema.Schema {
	if path == "" {
		log.Fatalf("-schema is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read schema: %v", err)
	}
	formSchema, err := schema.Decode(path, data)
	if err != nil {
		log.Fatalf("Failed to decode schema: %v", err)
	}
	return formSchema
}

func loadValues(path string) schema.Values {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read values: %v", err)
	}
	var values schema.Values
	if err := json.Unmarshal(data, &values); err != nil {
		log.Fatalf("Failed to decode values: %v", err)
	}
	return values
}

func writeOutput(path string, data []byte) {
	if path == "" {
		fmt.Println(string(data))
		return
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
	fmt.Printf("Output written to %s\n", path)
}

func operationIDs(forms map[string]formbuilder.Schema) []string {
	ids := make([]string, 0, len(forms))
	for id := range forms {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func parseSource(raw string) pkgopenapi.Source {
	path := strings.TrimSpace(raw)
	if path == "" {
		return nil
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return pkgopenapi.SourceFromURL(path)
	}
	return pkgopenapi.SourceFromFile(path)
}
