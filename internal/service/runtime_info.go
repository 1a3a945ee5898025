package service

import (
	"os"
	"runtime"
	"runtime/debug"

	"github.com/google/uuid"
)

// RuntimeInfo describes the running process for the /api/spec endpoint.
type RuntimeInfo struct {
	Framework           string `json:"framework"`
	TargetFramework     string `json:"targetFramework"`
	OS                  string `json:"os"`
	OSArchitecture      string `json:"osArchitecture"`
	ProcessArchitecture string `json:"processArchitecture"`
	NumCPU              int    `json:"numCpu"`
	ModuleVersion       string `json:"moduleVersion,omitempty"`
	MachineName         string `json:"machineName"`
	ProcessID           int    `json:"processId"`
	InstanceID          string `json:"instanceId"`
}

// NewRuntimeInfo collects process details. Call once at startup: the
// instance id identifies this process for its whole lifetime.
func NewRuntimeInfo() RuntimeInfo {
	info := RuntimeInfo{
		Framework:           runtime.Version(),
		OS:                  runtime.GOOS,
		OSArchitecture:      runtime.GOARCH,
		ProcessArchitecture: runtime.GOARCH,
		NumCPU:              runtime.NumCPU(),
		ProcessID:           os.Getpid(),
		InstanceID:          uuid.NewString(),
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		info.TargetFramework = bi.GoVersion
		if bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			info.ModuleVersion = bi.Main.Version
		}
	}

	if host, err := os.Hostname(); err == nil {
		info.MachineName = host
	}

	return info
}
