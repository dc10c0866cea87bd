/*
Package arff reads datasets from ARFF (Attribute-Relation File Format)
documents.

Nominal attributes (declared with their values between braces) and numeric
attributes (numeric, real or integer) are supported. The last attribute is
the class, which must be nominal with exactly two values. Data rows are read
as the strings they contain, in attribute order.
*/
package arff

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/feature"
	"github.com/pkg/errors"
)

type attribute struct {
	name   string
	values []string
	line   int
}

type parser struct {
	relation   string
	attributes []*attribute
	instances  []dataset.Instance
	inData     bool
}

/*
Read takes an io.Reader with an ARFF document and returns the dataset it
describes, or a *dataset.DataFormatError with the offending line number if the
document is malformed.
*/
func Read(r io.Reader) (*dataset.Dataset, error) {
	p := &parser{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for l := 1; scanner.Scan(); l++ {
		if err := p.parseLine(l, scanner.Text()); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading ARFF document")
	}
	if !p.inData {
		return nil, &dataset.DataFormatError{Reason: "no @data section"}
	}
	return p.dataset()
}

/*
ReadFile takes the path to an ARFF file and returns the dataset read from it
with Read.
*/
func ReadFile(path string) (*dataset.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening ARFF file")
	}
	defer f.Close()
	d, err := Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing ARFF file %s", path)
	}
	return d, nil
}

func (p *parser) parseLine(l int, line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "%") {
		return nil
	}
	if p.inData {
		return p.parseInstance(l, line)
	}
	keyword, rest := splitKeyword(line)
	switch strings.ToLower(keyword) {
	case "@relation":
		name, _, err := nextToken(rest)
		if err != nil {
			return formatError(l, line, err.Error())
		}
		p.relation = name
	case "@attribute":
		return p.parseAttribute(l, line, rest)
	case "@data":
		if len(p.attributes) == 0 {
			return formatError(l, line, "@data section before any @attribute")
		}
		p.inData = true
	default:
		return formatError(l, line, fmt.Sprintf("unexpected declaration %q", keyword))
	}
	return nil
}

func (p *parser) parseAttribute(l int, line, rest string) error {
	name, rest, err := nextToken(rest)
	if err != nil {
		return formatError(l, line, err.Error())
	}
	if name == "" {
		return formatError(l, line, "attribute without name")
	}
	for _, a := range p.attributes {
		if a.name == name {
			return formatError(l, line, fmt.Sprintf("attribute %s declared twice", name))
		}
	}
	a := &attribute{name: name, line: l}
	rest = strings.TrimSpace(rest)
	if strings.HasPrefix(rest, "{") {
		if !strings.HasSuffix(rest, "}") {
			return formatError(l, line, "unterminated nominal value list")
		}
		values, err := splitValues(rest[1 : len(rest)-1])
		if err != nil {
			return formatError(l, line, err.Error())
		}
		if len(values) == 0 {
			return formatError(l, line, fmt.Sprintf("nominal attribute %s without values", name))
		}
		a.values = values
	} else {
		switch strings.ToLower(rest) {
		case "numeric", "real", "integer":
		default:
			return formatError(l, line, fmt.Sprintf("unsupported type %q for attribute %s", rest, name))
		}
	}
	p.attributes = append(p.attributes, a)
	return nil
}

func (p *parser) parseInstance(l int, line string) error {
	if strings.HasPrefix(line, "{") {
		return formatError(l, line, "sparse instances are not supported")
	}
	values, err := splitValues(line)
	if err != nil {
		return formatError(l, line, err.Error())
	}
	if len(values) != len(p.attributes) {
		return formatError(l, line, fmt.Sprintf("expected %d values, got %d", len(p.attributes), len(values)))
	}
	for i, a := range p.attributes {
		if a.values == nil {
			if _, err := feature.ParseFloat(values[i]); err != nil {
				return &dataset.DataFormatError{Row: l, Feature: a.name, Value: values[i], Reason: "not a number"}
			}
		}
	}
	p.instances = append(p.instances, dataset.Instance(values))
	return nil
}

func (p *parser) dataset() (*dataset.Dataset, error) {
	ca := p.attributes[len(p.attributes)-1]
	if ca.values == nil {
		return nil, &dataset.DataFormatError{Row: ca.line, Feature: ca.name, Reason: "class attribute must be nominal"}
	}
	if len(ca.values) != 2 {
		return nil, &dataset.DataFormatError{Row: ca.line, Feature: ca.name, Reason: fmt.Sprintf("class attribute must have exactly 2 values, got %d", len(ca.values))}
	}
	features := make([]feature.Feature, 0, len(p.attributes)-1)
	for i, a := range p.attributes[:len(p.attributes)-1] {
		if a.values == nil {
			features = append(features, feature.NewContinuousFeature(i, a.name))
		} else {
			features = append(features, feature.NewNominalFeature(i, a.name, a.values))
		}
	}
	return dataset.New(features, feature.NewClassFeature(ca.name, ca.values), p.instances)
}

func formatError(l int, line, reason string) error {
	return &dataset.DataFormatError{Row: l, Value: line, Reason: reason}
}

func splitKeyword(line string) (string, string) {
	i := strings.IndexAny(line, " \t")
	if i < 0 {
		return line, ""
	}
	return line[:i], line[i+1:]
}

/*
nextToken returns the first token of s, which may be enclosed in single or
double quotes, and what follows it.
*/
func nextToken(s string) (string, string, error) {
	s = strings.TrimLeft(s, " \t")
	if s == "" {
		return "", "", nil
	}
	if q := s[0]; q == '\'' || q == '"' {
		end := strings.IndexByte(s[1:], q)
		if end < 0 {
			return "", "", errors.Errorf("unterminated quote in %q", s)
		}
		return s[1 : end+1], s[end+2:], nil
	}
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, "", nil
	}
	return s[:i], s[i:], nil
}

/*
splitValues splits a comma separated list of values, which may be enclosed in
single or double quotes, trimming the spaces around them.
*/
func splitValues(s string) ([]string, error) {
	values := []string{}
	if strings.TrimSpace(s) == "" {
		return values, nil
	}
	for {
		s = strings.TrimLeft(s, " \t")
		var v string
		if s != "" && (s[0] == '\'' || s[0] == '"') {
			q := s[0]
			end := strings.IndexByte(s[1:], q)
			if end < 0 {
				return nil, errors.Errorf("unterminated quote in %q", s)
			}
			v = s[1 : end+1]
			s = strings.TrimLeft(s[end+2:], " \t")
			if s != "" && s[0] != ',' {
				return nil, errors.Errorf("unexpected %q after quoted value %q", s, v)
			}
		} else {
			i := strings.IndexByte(s, ',')
			if i < 0 {
				i = len(s)
			}
			v = strings.TrimSpace(s[:i])
			s = s[i:]
		}
		values = append(values, v)
		if s == "" {
			return values, nil
		}
		s = s[1:]
	}
}
