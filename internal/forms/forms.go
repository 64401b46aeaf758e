// Package forms turns a parsed multipart form into plain string fields so
// handlers never deal with repeated values.
package forms

import (
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Form is a multipart form reduced to one value and one file per key.
type Form struct {
	fields map[string]string
	files  map[string]*multipart.FileHeader
}

// Normalize keeps the first value and the first file of every key.
func Normalize(mf *multipart.Form) *Form {
	f := &Form{
		fields: make(map[string]string),
		files:  make(map[string]*multipart.FileHeader),
	}
	if mf == nil {
		return f
	}
	for key, values := range mf.Value {
		if len(values) > 0 {
			f.fields[key] = values[0]
		}
	}
	for key, headers := range mf.File {
		if len(headers) > 0 {
			f.files[key] = headers[0]
		}
	}
	return f
}

// Lookup returns the field value and whether the key was sent at all.
func (f *Form) Lookup(key string) (string, bool) {
	v, ok := f.fields[key]
	return v, ok
}

// String returns the field value, or fallback when the key is absent.
func (f *Form) String(key, fallback string) string {
	if v, ok := f.fields[key]; ok {
		return v
	}
	return fallback
}

// Decimal parses the field as a decimal number. ok is false when the key
// is absent or the value is not a number.
func (f *Form) Decimal(key string) (decimal.Decimal, bool) {
	v, present := f.fields[key]
	if !present {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(strings.TrimSpace(v))
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// Int parses the field as a base-10 integer. ok is false when the key is
// absent or the value is not an integer.
func (f *Form) Int(key string) (int, bool) {
	v, present := f.fields[key]
	if !present {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, false
	}
	return n, true
}

// File returns the uploaded file for key, or nil. Empty file parts, as
// sent by browsers for an untouched file input, count as no file.
func (f *Form) File(key string) *multipart.FileHeader {
	fh, ok := f.files[key]
	if !ok || fh.Size == 0 {
		return nil
	}
	return fh
}
