package launcher

import (
	"runtime"
	"strings"
)

// Platform describes the host the install is provisioned for. Arch is the
// value substituted for ${os_arch} in native classifier keys.
type Platform struct {
	OS   string // windows | macos | linux
	Arch string // 64 | 32
}

func DetectPlatform() Platform {
	os := "linux"
	switch runtime.GOOS {
	case "windows":
		os = "windows"
	case "darwin":
		os = "macos"
	}

	arch := "32"
	if strings.Contains(runtime.GOARCH, "64") {
		arch = "64"
	}

	return Platform{OS: os, Arch: arch}
}

func (p Platform) IsWindows() bool {
	return p.OS == "windows"
}

// ClassifierOS is the OS name used in native classifier keys. Mojang
// historically uses "osx" for mac there.
func (p Platform) ClassifierOS() string {
	if p.OS == "macos" {
		return "osx"
	}
	return p.OS
}

// NativeExtension is the dynamic-library extension (without the dot)
// extracted from native jars for this platform.
func (p Platform) NativeExtension() string {
	switch p.OS {
	case "windows":
		return "dll"
	case "macos":
		return "dylib"
	default:
		return "so"
	}
}

// JavaBinaryName is the runtime executable searched for inside an extracted
// managed-runtime archive.
func (p Platform) JavaBinaryName() string {
	if p.OS == "windows" {
		return "java.exe"
	}
	return "java"
}

// ScriptName is the generated launch script file name at the install root.
func (p Platform) ScriptName() string {
	if p.OS == "windows" {
		return "launch.bat"
	}
	return "launch.sh"
}
