package files

import (
	"encoding/json"

	"github.com/BurntSushi/toml"
	"github.com/apex/log"
	yaml "gopkg.in/yaml.v2"
)

// An UnmarshalFunc parses raw bytes into v.
type UnmarshalFunc func(data []byte, v interface{}) error

func ReadJSON(v interface{}, path string) error {
	return ReadUnmarshal(v, path, json.Unmarshal)
}

func ReadTOML(v interface{}, path string) error {
	return ReadUnmarshal(v, path, toml.Unmarshal)
}

func ReadYAML(v interface{}, path string) error {
	return ReadUnmarshal(v, path, yaml.Unmarshal)
}

// ReadUnmarshal reads the file at path and parses it into v with unmarshal.
func ReadUnmarshal(v interface{}, path string, unmarshal UnmarshalFunc) error {
	contents, err := Read(path)
	if err != nil {
		return err
	}
	err = unmarshal(contents, v)
	if err != nil {
		log.WithError(err).WithField("file", path).Debug("could not parse file")
	}
	return err
}
