package platform

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Muxer executable base name
const (
	MuxerBaseName = "ffmpeg"
)

// MuxerExecutableName returns the ffmpeg file name for the running OS.
func MuxerExecutableName() string {
	if runtime.GOOS == OSWindows {
		return MuxerBaseName + ".exe"
	}
	return MuxerBaseName
}

// ResolveMuxerPath locates ffmpeg once at startup. Lookup order: explicit
// override, next to the executable (packaged app, including the macOS bundle
// Resources directory), the working directory (run from source), PATH. When
// nothing is found the packaged location is returned and the engine reports
// the missing muxer when it needs it.
func ResolveMuxerPath(override string) string {
	exeDir := ""
	if exe, err := os.Executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		exeDir = filepath.Dir(exe)
	}
	workDir, _ := os.Getwd()

	return resolveMuxerPath(override, exeDir, workDir, exec.LookPath, fileExists)
}

func resolveMuxerPath(override, exeDir, workDir string, lookPath func(string) (string, error), exists func(string) bool) string {
	if override != "" {
		return override
	}

	name := MuxerExecutableName()
	var candidates []string
	if exeDir != "" {
		candidates = append(candidates,
			filepath.Join(exeDir, name),
			filepath.Join(exeDir, "..", "Resources", name),
		)
	}
	if workDir != "" {
		candidates = append(candidates, filepath.Join(workDir, name))
	}

	for _, candidate := range candidates {
		if exists(candidate) {
			return filepath.Clean(candidate)
		}
	}

	if lookPath != nil {
		if path, err := lookPath(name); err == nil {
			return path
		}
	}

	if exeDir != "" {
		return filepath.Join(exeDir, name)
	}
	return name
}

// MuxerAvailable reports whether path points at an existing file or resolves
// through PATH.
func MuxerAvailable(path string) bool {
	if fileExists(path) {
		return true
	}
	_, err := exec.LookPath(path)
	return err == nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
