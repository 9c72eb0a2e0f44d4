package model

import "strings"

// Path represents a file system path.
type Path string

// Package identifies the crate that owns a source file. It is shared by
// every file of the crate and never changes once built.
type Package struct {
	name         string
	manifestPath string
}

// NewPackage builds a Package from the crate name and the tree-relative path
// of its Cargo.toml.
func NewPackage(name, relativeManifestPath string) *Package {
	return &Package{
		name:         name,
		manifestPath: strings.ReplaceAll(relativeManifestPath, "\\", "/"),
	}
}

// Name returns the crate name from the manifest.
func (p *Package) Name() string {
	return p.name
}

// RelativeManifestPath returns the tree-relative path of the crate's Cargo.toml.
func (p *Package) RelativeManifestPath() string {
	return p.manifestPath
}

// SourceFile is a Rust source file inside the tree being examined.
//
// A SourceFile is built once and then only read. Discovery and later stages
// share it by pointer.
type SourceFile struct {
	treeRelativePath string
	code             string
	pkg              *Package
}

// NewSourceFile builds a SourceFile from its tree-relative path, code and
// owning package. Windows line endings are normalized to "\n".
func NewSourceFile(treeRelativePath string, code string, pkg *Package) *SourceFile {
	return &SourceFile{
		treeRelativePath: strings.ReplaceAll(treeRelativePath, "\\", "/"),
		code:             strings.ReplaceAll(code, "\r\n", "\n"),
		pkg:              pkg,
	}
}

// Path returns the tree-relative path, always with forward slashes.
func (f *SourceFile) Path() string {
	return f.treeRelativePath
}

// Code returns the file's source text.
func (f *SourceFile) Code() string {
	return f.code
}

// Package returns the owning package, which may be nil for loose files.
func (f *SourceFile) Package() *Package {
	return f.pkg
}

func (f *SourceFile) String() string {
	return f.treeRelativePath
}
