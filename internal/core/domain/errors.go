package domain

import "go.trai.ch/zerr"

var (
	// ErrMalformedLock is returned when a lock document contains a line that
	// parses as neither a pinned dependency nor a VCS reference.
	ErrMalformedLock = zerr.New("malformed lock")

	// ErrNothingToBump is returned when a bump targets a name absent from the lock.
	ErrNothingToBump = zerr.New("not found in lock")

	// ErrMultipleBumps is returned when a bump matches more than one record.
	ErrMultipleBumps = zerr.New("multiple matches found in lock")

	// ErrBrokenFreezeLine is returned when a line of installer freeze output
	// cannot be parsed as name==version.
	ErrBrokenFreezeLine = zerr.New("could not parse installer freeze output")

	// ErrMissingSetupScript is returned when the project has no setup.py.
	ErrMissingSetupScript = zerr.New("setup.py not found, you may want to run `denv init` first")

	// ErrMissingLock is returned when a command needs a lock file that does not exist.
	ErrMissingLock = zerr.New("lock file not found, you may want to run `denv lock` first")

	// ErrMissingVenv is returned when a command needs a virtualenv that does not exist.
	ErrMissingVenv = zerr.New("virtualenv does not exist, run `denv lock` or `denv install` to create it")

	// ErrPipUpgradeFailed is returned when upgrading pip inside the virtualenv fails.
	ErrPipUpgradeFailed = zerr.New("could not upgrade pip, try `denv clean`")

	// ErrNoPythonFound is returned when no usable Python interpreter is found on PATH.
	ErrNoPythonFound = zerr.New("neither `python3` nor `python` found in PATH")

	// ErrFileExists is returned when init would overwrite an existing file.
	ErrFileExists = zerr.New("file already exists")

	// ErrCommandFailed is returned when a process run inside the virtualenv fails.
	ErrCommandFailed = zerr.New("command failed")

	// ErrSettingsParseFailed is returned when the denv.yaml settings file is invalid.
	ErrSettingsParseFailed = zerr.New("failed to parse settings file")
)
