package domain

import (
	"regexp"
	"strings"

	"go.trai.ch/zerr"
)

// Dependency is one pinned entry in a lock document. Exactly two
// implementations exist: SimpleDependency (name==version) and
// VCSDependency (url@ref#egg=name). Operations that must only touch one
// variant type-switch on the concrete type, so the "freeze never rewrites
// a VCS pin" invariant is enforced at the call site.
type Dependency interface {
	// Name returns the package name the record pins.
	Name() string

	// Line returns the canonical textual form of the record. For records
	// that were parsed and never mutated this is the original line.
	Line() string
}

// VersionSpec is the version part of a simple pin: the raw version string
// plus any trailing specifier text (environment markers after a ';').
// The specifier is opaque and preserved verbatim across rewrites.
type VersionSpec struct {
	Value     string
	Specifier string
}

// SimpleDependency is a name==version pin, optionally followed by a
// ';'-separated environment specifier.
type SimpleDependency struct {
	name    string
	version VersionSpec

	// line is the current textual form. The version token is replaced
	// in place on mutation so surrounding whitespace and specifier text
	// survive untouched.
	line     string
	verStart int
	verEnd   int
}

// VCSDependency is a source-control pin of the form url@ref#egg=name.
// It is never rewritten by Freeze, only by a ref bump.
type VCSDependency struct {
	name string
	url  string
	ref  string
}

// simpleLineRe matches `name == version [; specifier]`. The version token
// span is captured so mutations can splice the line instead of
// re-rendering it.
var simpleLineRe = regexp.MustCompile(
	`^([[:alnum:]][[:alnum:]._-]*(?:\[[[:alnum:],._-]+\])?)\s*==\s*([^\s;]+)\s*(?:;\s*(.+?)\s*)?$`,
)

const eggMarker = "#egg="

// ParseDependency parses a single non-blank, non-comment lock line into a
// Dependency. The caller owns line numbering; the codec is stateless.
func ParseDependency(line string) (Dependency, error) {
	if strings.Contains(line, eggMarker) {
		return parseVCS(line)
	}
	return parseSimple(line)
}

func parseSimple(line string) (*SimpleDependency, error) {
	loc := simpleLineRe.FindStringSubmatchIndex(line)
	if loc == nil {
		return nil, zerr.New("expected `<name>==<version>` or `<url>@<ref>#egg=<name>`")
	}

	name := line[loc[2]:loc[3]]
	verStart, verEnd := loc[4], loc[5]
	specifier := ""
	if loc[6] >= 0 {
		specifier = line[loc[6]:loc[7]]
	}

	return &SimpleDependency{
		name:     name,
		version:  VersionSpec{Value: line[verStart:verEnd], Specifier: specifier},
		line:     line,
		verStart: verStart,
		verEnd:   verEnd,
	}, nil
}

func parseVCS(line string) (*VCSDependency, error) {
	egg := strings.LastIndex(line, eggMarker)
	name := line[egg+len(eggMarker):]
	if name == "" {
		return nil, zerr.New("missing package name after `#egg=`")
	}

	prefix := line[:egg]
	at := strings.LastIndex(prefix, "@")
	if at <= 0 {
		return nil, zerr.New("missing `@<ref>` before `#egg=`")
	}
	url, ref := prefix[:at], prefix[at+1:]
	if ref == "" {
		return nil, zerr.New("empty ref before `#egg=`")
	}

	return &VCSDependency{name: name, url: url, ref: ref}, nil
}

// NewSimpleDependency creates a pin for a freshly observed dependency.
func NewSimpleDependency(name, version string) *SimpleDependency {
	line := name + "==" + version
	return &SimpleDependency{
		name:     name,
		version:  VersionSpec{Value: version},
		line:     line,
		verStart: len(name) + 2,
		verEnd:   len(line),
	}
}

// Name implements Dependency.
func (d *SimpleDependency) Name() string { return d.name }

// Line implements Dependency.
func (d *SimpleDependency) Line() string { return d.line }

// Version returns the current version spec.
func (d *SimpleDependency) Version() VersionSpec { return d.version }

// SetVersion rewrites the version token in place, preserving any specifier
// text. It reports whether the value actually changed.
func (d *SimpleDependency) SetVersion(version string) bool {
	if d.version.Value == version {
		return false
	}
	d.line = d.line[:d.verStart] + version + d.line[d.verEnd:]
	d.verEnd = d.verStart + len(version)
	d.version.Value = version
	return true
}

// AddPythonVersion appends an interpreter-version qualifier. The expression
// is taken verbatim, e.g. `< '3.6'` renders as `python_version < '3.6'`.
func (d *SimpleDependency) AddPythonVersion(expr string) {
	d.appendQualifier("python_version " + expr)
}

// AddSysPlatform appends a platform qualifier, e.g. `win32` renders as
// `sys_platform == 'win32'`.
func (d *SimpleDependency) AddSysPlatform(platform string) {
	d.appendQualifier("sys_platform == '" + platform + "'")
}

func (d *SimpleDependency) appendQualifier(q string) {
	if d.version.Specifier == "" {
		d.line += " ; " + q
		d.version.Specifier = q
		return
	}
	d.line += " and " + q
	d.version.Specifier += " and " + q
}

// Name implements Dependency.
func (d *VCSDependency) Name() string { return d.name }

// Line implements Dependency.
func (d *VCSDependency) Line() string { return d.url + "@" + d.ref + eggMarker + d.name }

// URL returns the repository location.
func (d *VCSDependency) URL() string { return d.url }

// Ref returns the pinned source-control reference.
func (d *VCSDependency) Ref() string { return d.ref }

// SetRef replaces the pinned reference. It reports whether the value
// actually changed.
func (d *VCSDependency) SetRef(ref string) bool {
	if d.ref == ref {
		return false
	}
	d.ref = ref
	return true
}
