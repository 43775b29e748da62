package config

import (
	"fmt"
	"os"
	"reflect"
)

// processStructFields walks the config struct and overrides any field whose
// `env` tag names a set environment variable. A variable that is set but
// empty still overrides, which lets an operator blank out a file value.
func processStructFields(s interface{}) error {
	val := reflect.ValueOf(s)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return nil
	}

	typ := val.Type()
	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		fieldType := typ.Field(i)

		if field.Kind() == reflect.Struct {
			if err := processStructFields(field.Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		envTag := fieldType.Tag.Get("env")
		if envTag == "" {
			continue
		}
		envValue, exists := os.LookupEnv(envTag)
		if !exists {
			continue
		}

		if field.Kind() != reflect.String || !field.CanSet() {
			return fmt.Errorf("cannot set field %s from env var %s", fieldType.Name, envTag)
		}
		field.SetString(envValue)
	}

	return nil
}
