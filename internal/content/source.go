package content

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/dmitrijs2005/journalquiz/internal/models"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported quiz file format")
	ErrMalformedItem     = errors.New("malformed quiz item")
)

// Source supplies an ordered list of quiz items.
type Source interface {
	Load(ctx context.Context) ([]models.QuizItem, error)
}

// Format is a serialization of the flat record layout.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// FormatOf picks the format from a file name's extension.
func FormatOf(name string) (Format, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".json":
		return FormatJSON, nil
	case ".csv":
		return FormatCSV, nil
	case ".xlsx":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// ForPath returns the file source matching the extension of p.
func ForPath(p string) (Source, error) {
	f, err := FormatOf(p)
	if err != nil {
		return nil, err
	}
	switch f {
	case FormatJSON:
		return &JSONFile{Path: p}, nil
	case FormatCSV:
		return &CSVFile{Path: p}, nil
	default:
		return &XLSXFile{Path: p}, nil
	}
}

// Decode reads items encoded as f from r.
func Decode(f Format, r io.Reader) ([]models.QuizItem, error) {
	switch f {
	case FormatJSON:
		return decodeJSON(r)
	case FormatCSV:
		return decodeCSV(r)
	case FormatXLSX:
		return decodeXLSX(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}
