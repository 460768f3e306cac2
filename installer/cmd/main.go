// Binary scaffold installs a template-driven project
// scaffold: it loads a YAML scaffold definition, assembles
// a data context from JSON files, vars files, and NAME=VALUE
// assignments, and materializes the manifest into an empty
// target directory.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/byte4ever/scaffolder/datactx"
	"github.com/byte4ever/scaffolder/installer"
	"github.com/byte4ever/scaffolder/manifest"
)

type arrayFlags []string

func (af *arrayFlags) String() string {
	return ""
}

func (af *arrayFlags) Set(value string) error {
	*af = append(*af, value)
	return nil
}

func run() error {
	const errCtx = "scaffold"

	var (
		varsFiles arrayFlags
		variables arrayFlags
	)

	var (
		definition  string
		templateDir string
		installDir  string
		dataFile    string
		startTag    string
		endTag      string
		checksums   bool
	)

	flag.StringVar(
		&definition, "definition", "",
		"Scaffold definition YAML file path (required)",
	)

	flag.StringVar(
		&templateDir, "template-dir", "",
		"Template source directory"+
			" (default: the definition's packaged directory)",
	)

	flag.StringVar(
		&installDir, "install-dir", "",
		"Install target directory"+
			" (default: current working directory)",
	)

	flag.StringVar(
		&dataFile, "data", "",
		"JSON file holding the data context",
	)

	flag.Var(
		&varsFiles,
		"vars-file",
		"KEY VALUE file merged into the data context"+
			" (repeatable)",
	)

	flag.Var(
		&variables,
		"variable",
		"Context entry in NAME=VALUE format (repeatable)",
	)

	flag.StringVar(
		&startTag, "start-tag", "",
		"Override the definition's start delimiter",
	)

	flag.StringVar(
		&endTag, "end-tag", "",
		"Override the definition's end delimiter",
	)

	flag.BoolVar(
		&checksums, "checksums", false,
		"Record a .scaffolder.sum integrity file",
	)

	flag.Parse()

	if definition == "" {
		return fmt.Errorf(
			"%s: --definition is required", errCtx,
		)
	}

	de, err := manifest.Load(definition)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	de = applyDelimiterOverrides(de, startTag, endTag)

	data, err := assembleContext(
		dataFile, varsFiles, variables,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	fmt.Printf("Running install from %s...\n", de.Name)
	fmt.Println("Creating file structure...")

	outcomes, err := installer.Install(de, installer.Options{
		TemplateDir:    templateDir,
		InstallDir:     installDir,
		Data:           data,
		WriteChecksums: checksums,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	for _, ou := range outcomes {
		if ou.Written() {
			fmt.Println(ou.Path)
		}
	}

	return nil
}

// applyDelimiterOverrides replaces only the delimiters
// given on the command line, keeping the definition's
// value for the flag that was omitted.
func applyDelimiterOverrides(
	de manifest.Definition,
	startTag string,
	endTag string,
) manifest.Definition {
	if startTag == "" {
		startTag = de.StartTag
	}

	if endTag == "" {
		endTag = de.EndTag
	}

	return de.SetDelimiters(startTag, endTag)
}

// assembleContext merges the data sources in increasing
// precedence: JSON file, vars files, then explicit
// NAME=VALUE assignments.
func assembleContext(
	dataFile string,
	varsFiles []string,
	variables []string,
) (datactx.Context, error) {
	const errCtx = "assembling data context"

	var sources []datactx.Context

	if dataFile != "" {
		ctx, err := datactx.LoadJSON(dataFile)
		if err != nil {
			return nil, fmt.Errorf(
				"%s: %w", errCtx, err,
			)
		}

		sources = append(sources, ctx)
	}

	for _, vf := range varsFiles {
		ctx, err := datactx.LoadVarsFile(vf)
		if err != nil {
			return nil, fmt.Errorf(
				"%s: %w", errCtx, err,
			)
		}

		sources = append(sources, ctx)
	}

	ctx, err := datactx.ParseAssignments(variables)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	sources = append(sources, ctx)

	return datactx.Merge(sources...), nil
}

func main() {
	if err := run(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
