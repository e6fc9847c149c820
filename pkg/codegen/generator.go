package codegen

import (
	"bytes"
	"go/format"
	"strings"
	"text/template"

	"github.com/pkg/errors"
)

// RecordImport is the import path of the runtime the generated code delegates to.
const RecordImport = "github.com/harvester/mediaconvert/pkg/record"

const (
	RecordFile   = generatedPrefix + "record.go"
	EnumFile     = generatedPrefix + "enum.go"
	RegisterFile = generatedPrefix + "register.go"
)

var templates = template.Must(template.New("codegen").Funcs(template.FuncMap{
	"join":         strings.Join,
	"recordImport": func() string { return RecordImport },
}).Parse(""))

func init() {
	for name, text := range map[string]string{
		"recordHeader": recordHeaderTemplate,
		"record":       recordTemplate,
		"simpleHeader": simpleHeaderTemplate,
		"enum":         enumTemplate,
		"register":     registerTemplate,
	} {
		template.Must(templates.New(name).Parse(text))
	}
}

// File is a rendered, gofmt-ed source file.
type File struct {
	Name    string
	Content []byte
}

// Generate renders the accessor, enum and registry files of pkg.
func Generate(pkg *Package) ([]File, error) {
	var files []File

	recordChunks := make([]string, 0, len(pkg.Records))
	for _, r := range pkg.Records {
		chunk, err := render("record", r)
		if err != nil {
			return nil, err
		}
		recordChunks = append(recordChunks, chunk)
	}
	f, err := assemble(RecordFile, "recordHeader", pkg, recordChunks)
	if err != nil {
		return nil, err
	}
	files = append(files, f)

	enumChunks := make([]string, 0, len(pkg.Enums))
	for _, e := range pkg.Enums {
		chunk, err := render("enum", e)
		if err != nil {
			return nil, err
		}
		enumChunks = append(enumChunks, chunk)
	}
	if f, err = assemble(EnumFile, "simpleHeader", pkg, enumChunks); err != nil {
		return nil, err
	}
	files = append(files, f)

	registry, err := render("register", pkg)
	if err != nil {
		return nil, err
	}
	if f, err = assemble(RegisterFile, "simpleHeader", pkg, []string{registry}); err != nil {
		return nil, err
	}
	return append(files, f), nil
}

func render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", errors.Wrapf(err, "failed to render %s", name)
	}
	return buf.String(), nil
}

func assemble(fileName, header string, pkg *Package, chunks []string) (File, error) {
	head, err := render(header, pkg)
	if err != nil {
		return File{}, err
	}
	src := head + "\n" + strings.Join(chunks, "\n")
	formatted, err := format.Source([]byte(src))
	if err != nil {
		return File{}, errors.Wrapf(err, "generated %s does not parse", fileName)
	}
	return File{Name: fileName, Content: formatted}, nil
}
