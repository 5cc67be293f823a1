// Package discovery locates candidate workbooks beneath a root
// directory: subfolders whose name carries the configured prefix are
// scanned for .xlsx files, in directory-sorted order so repeated runs
// see candidates in the same sequence.
package discovery

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
)

// Candidate is one workbook selected for processing.
type Candidate struct {
	Path   string // path to the workbook
	File   string // workbook file name
	Folder string // containing folder name
}

// Summary reports what discovery saw versus what it selected, so the
// report can flag workbooks that exist but did not match the filter.
type Summary struct {
	FoldersSeen      int `json:"folders_seen" yaml:"folders_seen"`
	FoldersMatched   int `json:"folders_matched" yaml:"folders_matched"`
	WorkbooksSeen    int `json:"workbooks_seen" yaml:"workbooks_seen"`
	WorkbooksMatched int `json:"workbooks_matched" yaml:"workbooks_matched"`
}

// Discover walks the immediate subfolders of root and returns the
// workbooks inside folders whose name starts with folderPrefix. An
// empty prefix matches every folder. Excel lock files ("~$...") and
// non-.xlsx files are ignored.
func Discover(root, folderPrefix string) ([]Candidate, Summary, error) {
	var summary Summary

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, summary, eris.Wrapf(err, "discovery: read root %s", root)
	}

	var candidates []Candidate
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		summary.FoldersSeen++

		matched := strings.HasPrefix(entry.Name(), folderPrefix)
		if matched {
			summary.FoldersMatched++
		}

		books, err := listWorkbooks(filepath.Join(root, entry.Name()))
		if err != nil {
			return nil, summary, err
		}
		summary.WorkbooksSeen += len(books)

		if !matched {
			continue
		}
		summary.WorkbooksMatched += len(books)
		for _, name := range books {
			candidates = append(candidates, Candidate{
				Path:   filepath.Join(root, entry.Name(), name),
				File:   name,
				Folder: entry.Name(),
			})
		}
	}

	return candidates, summary, nil
}

func listWorkbooks(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, eris.Wrapf(err, "discovery: read folder %s", dir)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, "~$") {
			continue
		}
		if strings.EqualFold(filepath.Ext(name), ".xlsx") {
			names = append(names, name)
		}
	}
	return names, nil
}
