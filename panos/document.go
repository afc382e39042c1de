// Package panos loads exported Panorama configuration and locates policy
// rules inside its device-group tree.
package panos

import (
	"errors"
	"fmt"
	"os"

	"github.com/antchfx/xmlquery"
)

var (
	// ErrInputNotFound is returned when the configuration path cannot be read
	ErrInputNotFound = errors.New("panorama configuration not found")
	// ErrMalformedInput is returned when the configuration is not well-formed XML
	ErrMalformedInput = errors.New("error parsing the XML, validate that it is a valid Panorama XML configuration")
)

// Document is a parsed configuration export
type Document struct {
	Root *xmlquery.Node // top-level <config> element
}

// LoadDocument reads and parses the XML configuration file
func LoadDocument(filePath string) (*Document, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w, check filepath and filename given to the --config argument: %v", ErrInputNotFound, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w, check filepath and filename given to the --config argument: %s is a directory", ErrInputNotFound, filePath)
	}

	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w, check filepath and filename given to the --config argument: %v", ErrInputNotFound, err)
	}
	defer f.Close()

	doc, err := xmlquery.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	root := rootElement(doc)
	if root == nil {
		return nil, fmt.Errorf("%w: no root element", ErrMalformedInput)
	}
	return &Document{Root: root}, nil
}

func rootElement(doc *xmlquery.Node) *xmlquery.Node {
	for n := doc.FirstChild; n != nil; n = n.NextSibling {
		if n.Type == xmlquery.ElementNode {
			return n
		}
	}
	return nil
}
