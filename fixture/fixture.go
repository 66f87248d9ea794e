package fixture

import (
	"fmt"
	"io"
	"os"
	"time"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/fixturetools/staberrors"
)

// DefaultMaxFileSize is the default maximum fixture file size accepted by
// the parser. Fixture snapshots are response bodies, so anything larger
// almost certainly indicates the wrong file was handed in.
const DefaultMaxFileSize int64 = 50 * 1024 * 1024

// Parser parses fixture documents from JSON or YAML sources
type Parser struct {
	// PreserveOrder enables order-preserving parsing.
	// When enabled, ParseResult retains the original yaml.Node structure,
	// allowing MarshalOrderedJSON and MarshalOrderedYAML to re-serialize
	// the document with the source's key ordering.
	PreserveOrder bool

	// MaxFileSize is the maximum file size in bytes (0 means DefaultMaxFileSize)
	MaxFileSize int64

	// Logger receives structured diagnostics. Defaults to NopLogger.
	Logger Logger
}

// New creates a new Parser with default settings
func New() *Parser {
	return &Parser{}
}

// log returns the configured logger or NopLogger
func (p *Parser) log() Logger {
	if p.Logger == nil {
		return NopLogger{}
	}
	return p.Logger
}

func (p *Parser) maxFileSize() int64 {
	if p.MaxFileSize <= 0 {
		return DefaultMaxFileSize
	}
	return p.MaxFileSize
}

// ParseResult contains a parsed fixture document and its source metadata
type ParseResult struct {
	// Document is the decoded value tree: map[string]any for objects,
	// []any for arrays, and nil/bool/int/float64/string scalars
	Document any
	// SourcePath is the path to the source file (or a placeholder for
	// reader/bytes input)
	SourcePath string
	// SourceFormat is the format of the source (JSON or YAML)
	SourceFormat SourceFormat
	// SourceSize is the size of the source in bytes
	SourceSize int64
	// LoadTime is the time spent reading the source
	LoadTime time.Duration
	// Warnings contains non-fatal issues encountered during parsing
	Warnings []string

	// sourceNode holds the original yaml.Node tree for order-preserving
	// marshaling. Only populated when PreserveOrder is enabled.
	sourceNode *yaml.Node
}

// HasPreservedOrder returns true if this ParseResult has preserved
// the original field ordering from the source document.
// This is true when PreserveOrder was enabled during parsing.
func (pr *ParseResult) HasPreservedOrder() bool {
	return pr.sourceNode != nil
}

// WithDocument returns a shallow copy of the result with Document replaced.
// Source metadata and the retained node tree carry over, so ordered
// marshaling of the new document keeps the original key order.
func (pr *ParseResult) WithDocument(doc any) *ParseResult {
	out := *pr
	out.Document = doc
	return &out
}

// Parse parses a fixture file from the local filesystem
func (p *Parser) Parse(path string) (*ParseResult, error) {
	loadStart := time.Now()
	data, err := os.ReadFile(path)
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, &staberrors.ParseError{
			Path:    path,
			Message: "failed to read file",
			Cause:   err,
		}
	}

	if int64(len(data)) > p.maxFileSize() {
		return nil, &staberrors.ResourceLimitError{
			ResourceType: "file_size",
			Limit:        p.maxFileSize(),
			Actual:       int64(len(data)),
			Message:      path,
		}
	}

	res, err := p.parseBytes(data, path)
	if err != nil {
		return nil, err
	}

	res.LoadTime = loadTime

	// Prefer the extension over content sniffing when it is conclusive
	if format := detectFormatFromPath(path); format != SourceFormatUnknown {
		res.SourceFormat = format
	}

	p.log().Debug("parsed fixture",
		"path", path, "format", res.SourceFormat, "size", res.SourceSize)
	return res, nil
}

// ParseReader parses a fixture document from an io.Reader
// Note: since there is no actual ParseResult.SourcePath, it will be set to: ParseReader.yaml or ParseReader.json
func (p *Parser) ParseReader(r io.Reader) (*ParseResult, error) {
	loadStart := time.Now()
	data, err := io.ReadAll(io.LimitReader(r, p.maxFileSize()+1))
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, &staberrors.ParseError{
			Message: "failed to read data",
			Cause:   err,
		}
	}
	if int64(len(data)) > p.maxFileSize() {
		return nil, &staberrors.ResourceLimitError{
			ResourceType: "file_size",
			Limit:        p.maxFileSize(),
		}
	}

	res, err := p.parseBytes(data, "")
	if err != nil {
		return nil, err
	}
	res.LoadTime = loadTime
	res.SourcePath = "ParseReader." + string(res.SourceFormat)
	return res, nil
}

// ParseBytes parses a fixture document from a byte slice
// Note: since there is no actual ParseResult.SourcePath, it will be set to: ParseBytes.yaml or ParseBytes.json
func (p *Parser) ParseBytes(data []byte) (*ParseResult, error) {
	res, err := p.parseBytes(data, "")
	if err != nil {
		return nil, err
	}
	res.SourcePath = "ParseBytes." + string(res.SourceFormat)
	return res, nil
}

// parseBytes decodes data into a generic value tree, optionally retaining
// the yaml.Node tree for ordered re-serialization.
func (p *Parser) parseBytes(data []byte, sourcePath string) (*ParseResult, error) {
	result := &ParseResult{
		SourcePath:   sourcePath,
		SourceFormat: detectFormatFromContent(data),
		SourceSize:   int64(len(data)),
	}

	if result.SourceFormat == SourceFormatUnknown {
		return nil, &staberrors.ParseError{
			Path:    sourcePath,
			Message: "empty document",
		}
	}

	// Order preservation requires parsing to yaml.Node first
	if p.PreserveOrder {
		var rootNode yaml.Node
		if err := yaml.Unmarshal(data, &rootNode); err != nil {
			// Don't fail parsing, just add a warning
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("yaml node parsing: failed to parse YAML nodes: %v", err))
		} else {
			result.sourceNode = &rootNode
		}
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &staberrors.ParseError{
			Path:    sourcePath,
			Message: "failed to parse YAML/JSON",
			Cause:   err,
		}
	}
	result.Document = doc

	return result, nil
}
