package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"go.trai.ch/zerr"
)

// FrozenDependency is one name/version pair reported by the installer as
// currently installed. It is external input and never persisted directly.
type FrozenDependency struct {
	Name    string
	Version string
}

// Change is a notice emitted by Freeze for the caller's log. A version
// patch renders as `name: old -> new`, an appended record as `+ line`.
type Change struct {
	Name string
	Old  string
	New  string

	// Line is the full rendered record, set for appended records only.
	Line string
}

func (c Change) String() string {
	if c.Old == "" {
		return "+ " + c.Line
	}
	return fmt.Sprintf("%s: %s -> %s", c.Name, c.Old, c.New)
}

// Lock is an in-memory lock document: an ordered collection of dependency
// records plus optional ambient qualifiers that apply to records appended
// by Freeze. A Lock is built from text, mutated by exactly one operation
// and serialized back; it must not be shared across concurrent operations.
type Lock struct {
	dependencies []Dependency

	pythonVersion string
	sysPlatform   string
}

// ParseLock parses a whole lock document. Blank lines and lines starting
// with '#' are skipped; every other line must parse as a dependency
// record. The first failure aborts parsing and carries its 1-based line
// number.
func ParseLock(text string) (*Lock, error) {
	lock := &Lock{}
	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		dep, err := ParseDependency(line)
		if err != nil {
			return nil, errors.Join(
				ErrMalformedLock,
				zerr.With(zerr.Wrap(err, fmt.Sprintf("at line %d", i+1)), "line", i+1),
			)
		}
		lock.dependencies = append(lock.dependencies, dep)
	}
	return lock, nil
}

// String serializes the document. Lines are ordered by case-insensitive
// comparison of their rendered text so diffs against freshly regenerated
// locks stay minimal; this matches the ordering `pip freeze` itself uses.
// An empty document serializes to the empty string.
func (l *Lock) String() string {
	if len(l.dependencies) == 0 {
		return ""
	}
	lines := make([]string, len(l.dependencies))
	for i, dep := range l.dependencies {
		lines[i] = dep.Line()
	}
	sort.Slice(lines, func(i, j int) bool {
		return strings.ToLower(lines[i]) < strings.ToLower(lines[j])
	})
	return strings.Join(lines, "\n") + "\n"
}

// Dependencies returns the records in their current in-memory order.
func (l *Lock) Dependencies() []Dependency { return l.dependencies }

// SetPythonVersion sets the ambient interpreter-version qualifier applied
// to records appended by the next Freeze.
func (l *Lock) SetPythonVersion(expr string) { l.pythonVersion = expr }

// SetSysPlatform sets the ambient platform qualifier applied to records
// appended by the next Freeze.
func (l *Lock) SetSysPlatform(platform string) { l.sysPlatform = platform }

// Freeze merges the installer's observed dependencies into the document:
// versions of matching simple records are patched, unseen names are
// appended, VCS records are left alone. Nothing is ever deleted. The
// returned changes describe every mutation for the caller's log.
func (l *Lock) Freeze(frozen []FrozenDependency) []Change {
	changes := l.patchExisting(frozen)
	return append(changes, l.addMissing(frozen)...)
}

// patchExisting updates simple records whose name matches an observed
// dependency. Frozen output never carries VCS information, so VCS records
// are skipped wholesale.
func (l *Lock) patchExisting(frozen []FrozenDependency) []Change {
	var changes []Change
	for _, dep := range l.dependencies {
		simple, ok := dep.(*SimpleDependency)
		if !ok {
			continue
		}
		for _, f := range frozen {
			if f.Name != simple.Name() {
				continue
			}
			old := simple.Version().Value
			if simple.SetVersion(f.Version) {
				changes = append(changes, Change{Name: f.Name, Old: old, New: f.Version})
			}
			break
		}
	}
	return changes
}

// addMissing appends a simple record for every observed dependency whose
// name is not in the document yet. Ambient qualifiers are attached so a
// dependency first seen under a specific interpreter or platform is not
// recorded as universal.
func (l *Lock) addMissing(frozen []FrozenDependency) []Change {
	known := make(map[string]bool, len(l.dependencies))
	for _, dep := range l.dependencies {
		known[dep.Name()] = true
	}

	var changes []Change
	for _, f := range frozen {
		if known[f.Name] {
			continue
		}
		dep := NewSimpleDependency(f.Name, f.Version)
		if l.pythonVersion != "" {
			dep.AddPythonVersion(l.pythonVersion)
		}
		if l.sysPlatform != "" {
			dep.AddSysPlatform(l.sysPlatform)
		}
		changes = append(changes, Change{Name: f.Name, New: f.Version, Line: dep.Line()})
		l.dependencies = append(l.dependencies, dep)
	}
	return changes
}

// bumper mutates a single record variant; the other variant is a no-op.
type bumper interface {
	bump(dep Dependency) bool
}

// versionBumper rewrites the version of a SimpleDependency.
type versionBumper struct {
	version string
}

func (b versionBumper) bump(dep Dependency) bool {
	simple, ok := dep.(*SimpleDependency)
	if !ok {
		return false
	}
	return simple.SetVersion(b.version)
}

// refBumper rewrites the ref of a VCSDependency.
type refBumper struct {
	ref string
}

func (b refBumper) bump(dep Dependency) bool {
	vcs, ok := dep.(*VCSDependency)
	if !ok {
		return false
	}
	return vcs.SetRef(b.ref)
}

// Bump rewrites the pinned version of the named simple dependency.
// It reports whether the record actually changed.
func (l *Lock) Bump(name, version string) (bool, error) {
	return l.bump(name, versionBumper{version: version})
}

// BumpRef rewrites the pinned source-control ref of the named VCS
// dependency. It reports whether the record actually changed.
func (l *Lock) BumpRef(name, ref string) (bool, error) {
	return l.bump(name, refBumper{ref: ref})
}

// bump applies the strategy to the unique record matching name. Matches
// are counted before anything is mutated, so an ambiguous bump leaves the
// document untouched.
func (l *Lock) bump(name string, b bumper) (bool, error) {
	var match Dependency
	count := 0
	for _, dep := range l.dependencies {
		if dep.Name() == name {
			match = dep
			count++
		}
	}
	if count == 0 {
		return false, errors.Join(ErrNothingToBump, zerr.With(zerr.New("no record matches"), "name", name))
	}
	if count > 1 {
		return false, errors.Join(ErrMultipleBumps, zerr.With(zerr.New("name matches several records"), "name", name))
	}
	return b.bump(match), nil
}
