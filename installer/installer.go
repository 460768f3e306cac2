package installer

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/byte4ever/scaffolder/checksum"
	"github.com/byte4ever/scaffolder/datactx"
	"github.com/byte4ever/scaffolder/manifest"
	"github.com/byte4ever/scaffolder/rendering"
)

// Options holds the per-run configuration of one install.
type Options struct {
	// TemplateDir is the directory holding the template
	// sources. Empty means the resolver (if any), then the
	// definition's packaged template directory.
	TemplateDir string

	// InstallDir is the target directory. Empty means the
	// current working directory.
	InstallDir string

	// Data is the context available to template
	// expressions. It is passed through unmodified for
	// every template.
	Data datactx.Context

	// Renderer overrides the substitution engine. Nil
	// means a rendering.Engine built from the definition's
	// delimiter pair.
	Renderer rendering.Renderer

	// TemplateDirResolver maps a definition name to its
	// packaged template directory. Supplied by the hosting
	// environment; consulted only when TemplateDir is
	// empty.
	TemplateDirResolver func(defName string) string

	// WriteChecksums records a .scaffolder.sum integrity
	// file at the install root after the run.
	WriteChecksums bool
}

// Install materializes def into the target directory. It
// aborts with an error wrapping ErrDirNotEmpty or
// ErrDirAccess before any write if the target fails the
// directory guard; afterwards every failure is per-entry
// and non-fatal. It returns one Outcome per manifest entry
// in output-path order and never mutates def.
func Install(
	def manifest.Definition,
	opts Options,
) ([]Outcome, error) {
	const errCtx = "installing scaffold"

	installDir := opts.InstallDir
	if installDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf(
				"%s: resolving working directory: %w",
				errCtx, err,
			)
		}

		installDir = wd
	}

	if err := CheckEmptyDir(installDir); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	templateDir := opts.TemplateDir
	if templateDir == "" && opts.TemplateDirResolver != nil {
		templateDir = opts.TemplateDirResolver(def.Name)
	}

	if templateDir == "" {
		templateDir = def.TemplateDir
	}

	re := opts.Renderer
	if re == nil {
		re = rendering.Engine{
			StartTag: def.StartTag,
			EndTag:   def.EndTag,
		}
	}

	outcomes := make([]Outcome, 0, len(def.Files))

	for _, en := range def.Entries() {
		outcomes = append(outcomes, processEntry(
			en, templateDir, installDir, re, opts.Data,
		))
	}

	if opts.WriteChecksums {
		if err := recordChecksums(
			installDir, outcomes,
		); err != nil {
			slog.Warn(
				"recording checksums",
				"error", err,
			)
		}
	}

	return outcomes, nil
}

// processEntry runs the load/render/write pipeline for one
// manifest entry. Every failure is contained in the
// returned Outcome.
func processEntry(
	en manifest.Entry,
	templateDir string,
	installDir string,
	re rendering.Renderer,
	data datactx.Context,
) Outcome {
	ou := Outcome{
		Key:        en.Key,
		OutputPath: en.OutputPath,
	}

	content, err := os.ReadFile( //nolint:gosec // template dir is caller-provided by design
		filepath.Join(
			templateDir, filepath.FromSlash(en.Key),
		),
	)
	if err != nil {
		slog.Warn(
			"couldn't get content",
			"template", en.Key,
			"error", err,
		)

		ou.Kind = KindTemplateRead
		ou.Err = err

		return ou
	}

	if len(content) == 0 {
		slog.Warn(
			"couldn't get content",
			"template", en.Key,
			"error", "template is empty",
		)

		ou.Kind = KindEmptyContent
		ou.Err = fmt.Errorf(
			"template %s produced no content", en.Key,
		)

		return ou
	}

	rendered, err := re.Render(string(content), data)
	if err != nil {
		slog.Warn(
			"couldn't get content",
			"template", en.Key,
			"error", err,
		)

		ou.Kind = KindRender
		ou.Err = err

		return ou
	}

	outPath := filepath.Join(
		installDir, filepath.FromSlash(en.OutputPath),
	)

	if err := os.MkdirAll(
		filepath.Dir(outPath), 0o750,
	); err != nil {
		slog.Warn(
			"creating output directory",
			"path", filepath.Dir(outPath),
			"error", err,
		)

		ou.Kind = KindSubdirCreate
		ou.Err = err

		return ou
	}

	if err := os.WriteFile(
		outPath, []byte(rendered), 0o644, //nolint:gosec // scaffold output is meant to be readable
	); err != nil {
		slog.Warn(
			"writing output file",
			"path", outPath,
			"error", err,
		)

		ou.Kind = KindOutputWrite
		ou.Err = err

		return ou
	}

	slog.Info("wrote file", "path", outPath)

	ou.Kind = KindWritten
	ou.Path = outPath

	return ou
}

// recordChecksums writes the integrity record for every
// written outcome of the run.
func recordChecksums(
	installDir string,
	outcomes []Outcome,
) error {
	var written []string

	for _, ou := range outcomes {
		if ou.Written() {
			written = append(written, ou.OutputPath)
		}
	}

	if len(written) == 0 {
		return nil
	}

	return checksum.Write(installDir, written)
}
