package internalcheck

import (
	"fmt"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

const bindingsPath = "github.com/w-utter/realsense-go/internal/bindings"

// Only the wrapper package may touch the raw bindings. Everything else goes
// through pkg/realsense so ownership and error translation cannot be
// bypassed.
var bindingsImporters = map[string]bool{
	"github.com/w-utter/realsense-go/pkg/realsense": true,
}

func TestBindingsImportBoundary(t *testing.T) {
	cfg := &packages.Config{
		Mode: packages.NeedImports | packages.NeedName | packages.NeedFiles,
	}

	pkgs, err := packages.Load(cfg, "github.com/w-utter/realsense-go/...")
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}

	var findings []string

	for _, pkg := range pkgs {
		if pkg.PkgPath == bindingsPath || bindingsImporters[pkg.PkgPath] {
			continue
		}
		if _, ok := pkg.Imports[bindingsPath]; ok {
			findings = append(findings, fmt.Sprintf("%s imports %s directly", pkg.PkgPath, bindingsPath))
		}
	}

	if len(findings) > 0 {
		t.Fatalf("bindings layering violation:\n%s", strings.Join(findings, "\n"))
	}
}
