// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"os"
	"os/exec"
	"runtime"
)

// HasDisplay tells whether an interactive figure window can be opened
func HasDisplay() bool {
	switch runtime.GOOS {
	case "darwin", "windows":
		return true
	}
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}

// Python returns the interpreter called by the plotting backend: $PYTHON or "python"
func Python() string {
	if py := os.Getenv("PYTHON"); py != "" {
		return py
	}
	return "python"
}

// HasBackend tells whether the interpreter called by the plotting backend can import matplotlib
func HasBackend() bool {
	return exec.Command(Python(), "-c", "import matplotlib").Run() == nil
}
