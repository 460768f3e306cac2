package manifest

import (
	"sort"
)

// Manifest maps template keys (paths relative to the
// template directory) to output paths relative to the
// install root.
type Manifest map[string]string

// Entry is one template-key to output-path pair.
type Entry struct {
	Key        string
	OutputPath string
}

// Definition is the full configuration of one scaffold:
// its name, packaged template directory, delimiter pair,
// and file manifest. Empty tags mean the rendering
// defaults apply.
type Definition struct {
	Name        string   `yaml:"name"`
	TemplateDir string   `yaml:"template_dir"`
	StartTag    string   `yaml:"start_tag"`
	EndTag      string   `yaml:"end_tag"`
	Files       Manifest `yaml:"files"`
}

// SetFiles returns a copy of the definition with its
// manifest replaced wholesale by files. Previously
// registered entries are discarded, not merged. Paths are
// not validated here; illegal paths surface at write time.
func (de Definition) SetFiles(files Manifest) Definition {
	de.Files = files

	return de
}

// SetDelimiters returns a copy of the definition with the
// delimiter pair replaced by start and end.
func (de Definition) SetDelimiters(
	start string,
	end string,
) Definition {
	de.StartTag = start
	de.EndTag = end

	return de
}

// Entries returns the manifest as a slice sorted by output
// path, ties broken by template key. Sorting by output path
// makes progress reporting and directory-creation order
// predictable for a human reading the install log.
func (de Definition) Entries() []Entry {
	entries := make([]Entry, 0, len(de.Files))

	for key, op := range de.Files {
		entries = append(entries, Entry{
			Key:        key,
			OutputPath: op,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].OutputPath != entries[j].OutputPath {
			return entries[i].OutputPath < entries[j].OutputPath
		}

		return entries[i].Key < entries[j].Key
	})

	return entries
}
