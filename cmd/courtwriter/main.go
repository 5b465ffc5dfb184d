/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"courtwriter/internal/assets"
	"courtwriter/internal/compile"
	"courtwriter/internal/config"
	"courtwriter/internal/crash"
	"courtwriter/internal/export"
	applog "courtwriter/internal/log"
	"courtwriter/internal/script"
	"courtwriter/internal/textlayout"
	"courtwriter/internal/version"
)

func usage() {
	fmt.Println("CourtWriter — objection.lol case compiler")
	fmt.Printf("Version: %s\n", version.String())
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  courtwriter version|-v|--version           Show version")
	fmt.Println("  courtwriter compile <script> [flags]       Compile a screenplay to an objection.lol envelope")
	fmt.Println()
	fmt.Println("Compile flags:")
	fmt.Println("  -o <path>        Envelope output (default: script name with .objection)")
	fmt.Println("  -json <path>     Also write the raw wire JSON")
	fmt.Println("  -pdf <path>      Also write a transcript PDF")
	fmt.Println("  -offline         Skip the remote catalog; resolve against builtin presets only")
}

func main() {
	// initialize structured logging using environment defaults
	applog.Init(applog.FromEnv())
	l := applog.WithComponent("cli")
	defer crash.Recover("")

	args := os.Args
	l.Debug("start", slog.Int("args", len(args)))
	if len(args) > 1 {
		switch args[1] {
		case "version", "--version", "-v":
			fmt.Println("CourtWriter — objection.lol case compiler")
			fmt.Println(version.String())
			return
		case "compile":
			os.Exit(runCompile(l, args[2:]))
		}
	}

	usage()
}

func runCompile(l *slog.Logger, args []string) int {
	fs := flag.NewFlagSet("compile", flag.ExitOnError)
	outPath := fs.String("o", "", "envelope output path")
	jsonPath := fs.String("json", "", "raw wire JSON output path")
	pdfPath := fs.String("pdf", "", "transcript PDF output path")
	offline := fs.Bool("offline", false, "resolve assets against builtin presets only")
	_ = fs.Parse(args)
	if fs.NArg() < 1 {
		fmt.Println("compile requires <script>")
		usage()
		return 2
	}

	cfg, token, err := config.Load()
	if err != nil {
		l.Warn("config load failed, using defaults", slog.Any("err", err))
		cfg = config.Defaults()
	}

	scriptPath, _ := filepath.Abs(fs.Arg(0))
	l = applog.WithOperation(l, "compile")
	l.Info("compile screenplay", slog.String("script", scriptPath))

	src, err := os.ReadFile(scriptPath)
	if err != nil {
		fmt.Println("Error:", err)
		return 1
	}

	parsed, parseErrs := script.Parse(string(src))
	cast := script.PresetCast(speakers(parsed)...)
	project, buildErrs := script.BuildScene(parsed, cast)
	for _, e := range append(parseErrs, buildErrs...) {
		fmt.Printf("%s:%d: %s\n", filepath.Base(scriptPath), e.Line, e.Message)
	}
	if project == nil {
		return 1
	}

	comp := compile.New()
	comp.Warn = compile.LogWarnings()
	var cache *assets.Cache
	if cfg.Compile.AssetChecks {
		comp.Resolver, cache = buildResolver(l, cfg, token, filepath.Dir(scriptPath), *offline)
	}
	if cache != nil {
		defer func() {
			if err := cache.Close(); err != nil {
				l.Warn("close asset cache", slog.Any("err", err))
			}
		}()
	}

	obj, err := comp.Compile(context.Background(), project)
	if err != nil {
		fmt.Println("Error:", err)
		return 1
	}

	if cfg.Compile.TextLint {
		box := textlayout.DefaultBox()
		if cfg.Compile.MaxTextLines > 0 {
			box.MaxLines = cfg.Compile.MaxTextLines
		}
		for _, issue := range textlayout.Lint(nil, project, box) {
			fmt.Printf("lint: %q wraps to %d lines (max %d) in %s\n", issue.Text, issue.Lines, box.MaxLines, issue.Group)
		}
	}

	out := *outPath
	if out == "" {
		out = strings.TrimSuffix(scriptPath, filepath.Ext(scriptPath)) + ".objection"
	}
	if err := export.WriteEnvelope(out, obj); err != nil {
		fmt.Println("Error:", err)
		return 1
	}
	fmt.Println("Wrote", out)

	if *jsonPath != "" {
		if err := export.WriteJSON(*jsonPath, obj); err != nil {
			fmt.Println("Error:", err)
			return 1
		}
		fmt.Println("Wrote", *jsonPath)
	}
	if *pdfPath != "" {
		title := transcriptTitle(parsed, scriptPath)
		if err := export.ExportTranscriptPDF(project, *pdfPath, export.TranscriptOptions{Title: title}); err != nil {
			fmt.Println("Error:", err)
			return 1
		}
		fmt.Println("Wrote", *pdfPath)
	}
	return 0
}

// buildResolver picks the asset resolver for this run: builtin presets when
// offline, otherwise the remote catalog behind the on-disk cache. The cache
// lives next to the script so repeated compiles stay fast.
func buildResolver(l *slog.Logger, cfg config.AppConfig, token, root string, offline bool) (assets.Resolver, *assets.Cache) {
	if offline || cfg.Catalog.Offline || cfg.Catalog.BaseURL == "" {
		return assets.Presets(), nil
	}
	client := assets.NewClient(cfg.Catalog.BaseURL, token)
	cache, err := assets.OpenCache(root, client)
	if err != nil {
		l.Warn("asset cache unavailable, querying catalog directly", slog.Any("err", err))
		return client, nil
	}
	if cfg.Catalog.CacheTTLHours > 0 {
		cache.TTL = time.Duration(cfg.Catalog.CacheTTLHours) * time.Hour
	}
	return cache, cache
}

// speakers returns each distinct dialogue speaker in order of appearance.
func speakers(s script.Script) []string {
	seen := map[string]bool{}
	var out []string
	for _, sc := range s.Scenes {
		for _, ln := range sc.Lines {
			if ln.Type != script.LineDialogue || ln.Speaker == "" {
				continue
			}
			key := strings.ToLower(ln.Speaker)
			if !seen[key] {
				seen[key] = true
				out = append(out, ln.Speaker)
			}
		}
	}
	return out
}

func transcriptTitle(s script.Script, path string) string {
	if len(s.Scenes) > 0 && s.Scenes[0].Title != "" {
		return s.Scenes[0].Title
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
