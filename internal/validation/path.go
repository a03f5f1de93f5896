// Package validation provides safety checks for user supplied text and file paths.
// It includes protection against path traversal attacks and validation of file system permissions.
package validation

import (
	"os"
	"path/filepath"
	"strings"

	apperrors "github.com/ankek/terraform-provider-infographic/internal/errors"
)

// ValidateOutputPath validates an output path for security and accessibility
// Returns error if path is invalid, contains path traversal attempts, or is not writable
func ValidateOutputPath(outputPath string) error {
	if outputPath == "" {
		return apperrors.New(apperrors.ErrCodeInvalidPath, "output path cannot be empty")
	}

	if hasParentSegment(outputPath) {
		return apperrors.New(apperrors.ErrCodeInvalidPath, "path traversal detected in output path: %s", outputPath)
	}

	cleanPath := filepath.Clean(outputPath)

	absPath, err := filepath.Abs(cleanPath)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInvalidPath, err, "failed to resolve absolute path")
	}

	dir := filepath.Dir(absPath)

	dirInfo, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return apperrors.New(apperrors.ErrCodeInvalidPath, "output directory does not exist: %s", dir)
		}
		return apperrors.Wrap(apperrors.ErrCodeInvalidPath, err, "failed to access output directory")
	}

	if !dirInfo.IsDir() {
		return apperrors.New(apperrors.ErrCodeInvalidPath, "output path parent is not a directory: %s", dir)
	}

	// Check if directory is writable by attempting to create a temp file
	testFile := filepath.Join(dir, ".infographic_write_test")
	f, err := os.OpenFile(testFile, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0600)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInvalidPath, err, "output directory is not writable: %s", dir)
	}
	f.Close()
	os.Remove(testFile)

	return nil
}

// ValidateOutputExtension checks that outputPath ends in one of the given
// extensions (without dot, case-insensitive).
func ValidateOutputExtension(outputPath string, extensions ...string) error {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(outputPath)), ".")
	for _, want := range extensions {
		if ext == strings.ToLower(want) {
			return nil
		}
	}
	return apperrors.New(apperrors.ErrCodeInvalidFormat, "output path %s should end in .%s", outputPath, strings.Join(extensions, " or ."))
}

// ValidateInputPath validates an input path (text or palette file)
// Returns error if path doesn't exist or is not accessible
func ValidateInputPath(inputPath string, mustBeDir bool) error {
	if inputPath == "" {
		return apperrors.New(apperrors.ErrCodeInvalidPath, "input path cannot be empty")
	}

	cleanPath := filepath.Clean(inputPath)

	// Check for path traversal in relative context
	if strings.Contains(cleanPath, "..") && !filepath.IsAbs(inputPath) {
		return apperrors.New(apperrors.ErrCodeInvalidPath, "potentially unsafe path detected: %s", inputPath)
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		if os.IsNotExist(err) {
			return apperrors.New(apperrors.ErrCodeInvalidPath, "input path does not exist: %s", cleanPath)
		}
		return apperrors.Wrap(apperrors.ErrCodeInvalidPath, err, "failed to access input path")
	}

	if mustBeDir && !info.IsDir() {
		return apperrors.New(apperrors.ErrCodeInvalidPath, "input path must be a directory: %s", cleanPath)
	}

	if !mustBeDir && info.IsDir() {
		return apperrors.New(apperrors.ErrCodeInvalidPath, "input path must be a file: %s", cleanPath)
	}

	return nil
}

// hasParentSegment reports whether any element of path is ".."
func hasParentSegment(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part == ".." {
			return true
		}
	}
	return false
}

// Validator exposes the path checks as methods for dependency injection
type Validator struct{}

func (Validator) ValidateOutputPath(path string) error { return ValidateOutputPath(path) }

func (Validator) ValidateInputPath(path string, mustBeDir bool) error {
	return ValidateInputPath(path, mustBeDir)
}
