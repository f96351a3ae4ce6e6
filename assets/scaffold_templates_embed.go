// Where: assets/scaffold_templates_embed.go
// What: Embed project scaffolding templates for the CLI renderer.
package assets

import "embed"

//go:embed scaffold-templates/*.tmpl
var ScaffoldTemplatesFS embed.FS
