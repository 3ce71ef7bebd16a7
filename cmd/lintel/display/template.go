package display

import (
	"bytes"
	"text/template"
)

// TemplateFile renders a template file with data to a string.
func TemplateFile(filename string, data interface{}) (string, error) {
	tmpl, err := template.ParseFiles(filename)
	if err != nil {
		return "", err
	}
	return Template(tmpl, data)
}

// Template renders a template with data to a string.
func Template(tmpl *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	err := tmpl.Execute(&buf, data)
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
