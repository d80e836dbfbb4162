package scaffolding

import (
	"bytes"
	"text/template"

	"github.com/forgelabs/tsforge/internal/errors"
)

// TemplateContext carries the values available to project file templates
type TemplateContext struct {
	ProjectName string
	SourceDir   string
}

const gitignoreTemplate = `node_modules/
dist/
`

// tsconfig is JSONC, so the explanatory comments survive as-is.
const tsconfigTemplate = `{
  "compilerOptions": {
    // File Layout
    "rootDir": "./{{.SourceDir}}",
    "outDir": "./dist",

    // Environment Settings
    "module": "nodenext",
    "target": "esnext",
    "lib": ["esnext"],
    "types": ["node"],

    // Other Outputs
    "sourceMap": true,
    "declaration": true,
    "declarationMap": true,

    // Stricter Typechecking Options
    "noUncheckedIndexedAccess": true,
    "exactOptionalPropertyTypes": true,

    // Recommended Options
    "strict": true,
    "jsx": "react-jsx",
    "verbatimModuleSyntax": true,
    "isolatedModules": true,
    "noUncheckedSideEffectImports": true,
    "moduleDetection": "force",
    "skipLibCheck": true
  }
}
`

const indexTsTemplate = `console.log("demo");
`

// packageJSONTemplate is the fallback manifest written when the package
// manager's own init step is skipped.
const packageJSONTemplate = `{
  "name": "{{.ProjectName}}",
  "version": "1.0.0",
  "description": "",
  "main": "dist/index.js",
  "scripts": {},
  "license": "ISC"
}
`

// renderTemplate executes a project file template against the context
func renderTemplate(name, content string, ctx TemplateContext) ([]byte, error) {
	tmpl, err := template.New(name).Parse(content)
	if err != nil {
		return nil, errors.NewInternalError("TEMPLATE_PARSE_FAILED", "failed to parse template "+name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, ctx); err != nil {
		return nil, errors.NewInternalError("TEMPLATE_EXEC_FAILED", "failed to execute template "+name, err)
	}

	return buf.Bytes(), nil
}
