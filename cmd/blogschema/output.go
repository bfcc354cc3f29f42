package main

import (
	"io"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

type printer struct {
	w      io.Writer
	format string
}

func (p *printer) print(v any) error {
	if p.format == "yaml" {
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = p.w.Write(data)
	return err
}
