// Where: internal/scaffold/scaffold.go
// What: Render project scaffolding from embedded templates.
// Why: Keep template assets owned by the CLI, not generated code.
package scaffold

import (
	"bytes"
	"fmt"
	"path"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/cloudlet-dev/functions/assets"
)

var templateCache sync.Map

// ProjectData feeds the scaffold templates.
type ProjectData struct {
	// Module is the module path of the generated project.
	Module string
	// Name is the id of the first declared function.
	Name string
	// Project is the local default project id written to .env.
	Project string
}

// Render executes the named scaffold template with the given data.
func Render(name string, data any) (string, error) {
	tmpl, err := loadTemplate(name)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func loadTemplate(name string) (*template.Template, error) {
	if value, ok := templateCache.Load(name); ok {
		cached, ok := value.(*template.Template)
		if !ok {
			return nil, fmt.Errorf("template cache type mismatch for %s", name)
		}
		return cached, nil
	}
	pathName := "scaffold-templates/" + name
	tmpl, err := template.New(path.Base(pathName)).
		Funcs(sprig.TxtFuncMap()).
		ParseFS(assets.ScaffoldTemplatesFS, pathName)
	if err != nil {
		return nil, err
	}
	templateCache.Store(name, tmpl)
	return tmpl, nil
}
