package tables

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// MapStructure is a map-like structure that may be stored in a persistent store
type MapStructure map[string]interface{}

// Value returns the map structures value
func (m MapStructure) Value() (driver.Value, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return driver.Value(""), err
	}
	return driver.Value(string(data)), nil
}

// Scan allows to scan a map structure
func (m *MapStructure) Scan(src interface{}) error {
	source, err := jsonSource(src, "{}")
	if err != nil {
		return err
	}
	return json.Unmarshal(source, m)
}

// JSONList is a list that is stored as a json array
type JSONList[T any] []T

// Value returns the lists json value, nil lists are stored as empty arrays
func (l JSONList[T]) Value() (driver.Value, error) {
	if l == nil {
		return driver.Value("[]"), nil
	}
	data, err := json.Marshal([]T(l))
	if err != nil {
		return driver.Value(""), err
	}
	return driver.Value(string(data)), nil
}

// Scan allows to scan a json list
func (l *JSONList[T]) Scan(src interface{}) error {
	source, err := jsonSource(src, "[]")
	if err != nil {
		return err
	}
	res := make([]T, 0)
	if err := json.Unmarshal(source, &res); err != nil {
		return err
	}
	*l = res
	return nil
}

func jsonSource(src interface{}, empty string) ([]byte, error) {
	var source []byte
	switch v := src.(type) {
	case string:
		source = []byte(v)
	case []byte:
		source = v
	default:
		if v != nil {
			return nil, fmt.Errorf("error scanning json value: %+v", src)
		}
	}
	if len(source) == 0 {
		source = []byte(empty)
	}
	return source, nil
}
