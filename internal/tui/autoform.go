// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package tui

import (
	"fmt"
	"path"
	"reflect"
	"strings"

	"github.com/charmbracelet/huh"
)

// AutoForm generates a huh.Form from a struct pointer using reflection.
// Fields are configured by a `tui:"..."` tag of ";" separated key=value
// pairs:
//
//	title     field title (default: the Go field name)
//	desc      description line
//	options   "|" separated choices, each "Label:value" or "value"
//	validate  name of an entry in Validators
//
// String fields become inputs, or selects when options are given. Bool
// fields become confirms. Fields without a tag are skipped.
func AutoForm(v any) *huh.Form {
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Ptr || val.Elem().Kind() != reflect.Struct {
		panic("AutoForm requires a pointer to a struct")
	}

	el := val.Elem()
	t := el.Type()
	var fields []huh.Field

	for i := 0; i < el.NumField(); i++ {
		tag := t.Field(i).Tag.Get("tui")
		if tag == "" {
			continue
		}
		props := parseTag(tag)
		title := props["title"]
		if title == "" {
			title = t.Field(i).Name
		}
		desc := props["desc"]

		switch field := el.Field(i); field.Kind() {
		case reflect.String:
			ptr := field.Addr().Interface().(*string)
			if opts, ok := props["options"]; ok {
				fields = append(fields, huh.NewSelect[string]().
					Title(title).
					Description(desc).
					Options(parseOptions(opts)...).
					Value(ptr))
				continue
			}
			input := huh.NewInput().
				Title(title).
				Description(desc).
				Value(ptr)
			if validator, ok := Validators[props["validate"]]; ok {
				input.Validate(validator)
			}
			fields = append(fields, input)

		case reflect.Bool:
			fields = append(fields, huh.NewConfirm().
				Title(title).
				Description(desc).
				Value(field.Addr().Interface().(*bool)))

		default:
			panic(fmt.Sprintf("AutoForm: unsupported field %s of kind %s", t.Field(i).Name, field.Kind()))
		}
	}

	return huh.NewForm(
		huh.NewGroup(fields...),
	).WithTheme(huh.ThemeBase16())
}

// parseTag parses "key=val;key2=val2".
func parseTag(tag string) map[string]string {
	res := make(map[string]string)
	for _, part := range strings.Split(tag, ";") {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) == 2 {
			res[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}
	return res
}

func parseOptions(s string) []huh.Option[string] {
	var opts []huh.Option[string]
	for _, o := range strings.Split(s, "|") {
		label, value, ok := strings.Cut(o, ":")
		if !ok {
			value = o
			label = o
		}
		opts = append(opts, huh.NewOption(strings.TrimSpace(label), strings.TrimSpace(value)))
	}
	return opts
}

// Validators holds the named input validators usable from tags.
var Validators = map[string]func(string) error{
	"required": func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("this field is required")
		}
		return nil
	},
	"relative": func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("this field is required")
		}
		if path.IsAbs(s) {
			return fmt.Errorf("must be a relative path")
		}
		return nil
	},
}
