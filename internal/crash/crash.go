/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package crash turns a panic into a readable report file instead of a bare
// stack trace on stderr. Uploading the report is strictly opt-in via
// environment variables and off by default.
package crash

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"time"

	applog "courtwriter/internal/log"
	"courtwriter/internal/version"
)

// Environment variables:
//   - CTW_CRASH_UPLOAD_URL: URL to POST crash reports to. Unset means no upload.
//   - CTW_CRASH_UPLOAD_OPT_IN: "1", "true", "yes" or "on" to allow uploads.
const (
	EnvUploadURL   = "CTW_CRASH_UPLOAD_URL"
	EnvUploadOptIn = "CTW_CRASH_UPLOAD_OPT_IN"
)

// exitFn is used to allow testing of Recover without terminating the test process.
var exitFn = os.Exit

// uploadClient is swappable for tests.
var uploadClient = &http.Client{Timeout: 1500 * time.Millisecond}

// Recover captures a panic, logs an error with stacktrace and writes an error
// report file. reportDir picks where the report lands; empty means the
// system temp directory.
//
// Usage: defer crash.Recover(dir)
func Recover(reportDir string) {
	if r := recover(); r != nil {
		l := applog.WithComponent("crash")
		stack := debug.Stack()
		l.Error("panic recovered", slog.Any("panic", r), slog.String("stack", string(stack)))

		reportPath, err := writeReport(reportDir, r, stack)
		if err != nil {
			l.Error("failed to write crash report", slog.Any("err", err))
		}

		if _, err := fmt.Fprintf(os.Stderr, "A fatal error occurred. A crash report was saved to: %s\n", reportPath); err != nil {
			l.Error("failed to write crash message to stderr", slog.Any("err", err))
		}
		if _, err := fmt.Fprintf(os.Stderr, "Version: %s\nOS/Arch: %s/%s\n", version.String(), runtime.GOOS, runtime.GOARCH); err != nil {
			l.Error("failed to write version info to stderr", slog.Any("err", err))
		}
		// Exit with a non-zero code to indicate failure in CLI context.
		exitFn(2)
	}
}

func writeReport(dir string, panicVal any, stack []byte) (string, error) {
	if dir == "" {
		dir = os.TempDir()
	} else {
		_ = os.MkdirAll(dir, 0o755)
	}
	stamp := time.Now().Format("20060102-150405")
	path := filepath.Join(dir, fmt.Sprintf("crash-%s.log", stamp))

	var buf bytes.Buffer
	_, _ = fmt.Fprintf(&buf, "CourtWriter Crash Report\n")
	_, _ = fmt.Fprintf(&buf, "Timestamp: %s\n", time.Now().Format(time.RFC3339))
	_, _ = fmt.Fprintf(&buf, "Version: %s\n", version.String())
	_, _ = fmt.Fprintf(&buf, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	_, _ = fmt.Fprintf(&buf, "\nPanic: %v\n\n", panicVal)
	_, _ = fmt.Fprintf(&buf, "Stack:\n%s\n", string(stack))

	err := writeReportFile(path, buf.Bytes())

	uploadReport(buf.Bytes())
	return path, err
}

func writeReportFile(path string, data []byte) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if _, err = f.Write(data); err != nil {
		return err
	}
	return f.Sync()
}

// uploadReport posts the report to the configured URL. It is a no-op unless
// both the URL and the opt-in flag are set; failures are logged and ignored.
func uploadReport(report []byte) {
	url := strings.TrimSpace(os.Getenv(EnvUploadURL))
	if url == "" || !optedIn(os.Getenv(EnvUploadOptIn)) {
		return
	}
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(report))
	if err != nil {
		return
	}
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")
	resp, err := uploadClient.Do(req)
	if err != nil {
		applog.WithComponent("crash").Debug("crash upload failed", slog.Any("err", err))
		return
	}
	_ = resp.Body.Close()
}

func optedIn(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
