// Copyright 2024 Google, LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package commands

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/cor"
	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/model"
	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/services"
)

// DocumentText reads the text of an uploaded pdf or docx directly. It only
// runs for document uploads.
type DocumentText struct {
	cor.BaseCommand
}

// NewDocumentText reads ParamUploadFile and writes ParamTranscript.
func NewDocumentText(name string) *DocumentText {
	out := &DocumentText{BaseCommand: *cor.NewBaseCommand(name)}
	out.InputParamName = ParamUploadFile
	out.OutputParamName = ParamTranscript
	return out
}

func (c *DocumentText) IsExecutable(context cor.Context) bool {
	f, ok := context.Get(c.GetInputParam()).(*model.UploadedFile)
	return ok && f != nil && f.Kind == model.SourceDocument && context.GetContext() != nil
}

func (c *DocumentText) Execute(context cor.Context) {
	file := context.Get(c.GetInputParam()).(*model.UploadedFile)

	text, err := ExtractDocumentText(file.Path, file.Extension)
	if err != nil {
		fail(c, context, fmt.Errorf("%w: %w", services.ErrAcquisition, err))
		return
	}
	if text == "" {
		fail(c, context, fmt.Errorf("%w: no text found in %s", services.ErrAcquisition, file.OriginalName))
		return
	}
	slog.InfoContext(context.GetContext(), "extracted document text", "file", file.OriginalName, "chars", len(text))
	succeed(c, context, text)
}

// ExtractDocumentText returns the whitespace-collapsed text of a pdf or docx
// file.
func ExtractDocumentText(path string, ext string) (string, error) {
	switch strings.ToLower(ext) {
	case "pdf":
		return extractPDF(path)
	case "docx":
		return extractDOCX(path)
	default:
		return "", fmt.Errorf("unsupported document type %q", ext)
	}
}

func extractPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("pdf reader: %w", err)
	}
	defer f.Close()

	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("pdf plaintext: %w", err)
	}
	b, err := io.ReadAll(plain)
	if err != nil {
		return "", fmt.Errorf("pdf read: %w", err)
	}
	return collapseWhitespace(string(b)), nil
}

func extractDOCX(path string) (string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("docx container: %w", err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("docx body: %w", err)
		}
		defer rc.Close()
		return collapseWhitespace(docxText(rc)), nil
	}
	return "", fmt.Errorf("docx body word/document.xml not found")
}

// docxText collects <w:t> runs, breaking lines at paragraph ends.
func docxText(r io.Reader) string {
	dec := xml.NewDecoder(r)
	var out strings.Builder
	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		switch se := tok.(type) {
		case xml.StartElement:
			if se.Name.Local != "t" {
				continue
			}
			var v string
			if err := dec.DecodeElement(&v, &se); err == nil {
				out.WriteString(v)
			}
		case xml.EndElement:
			if se.Name.Local == "p" {
				out.WriteString("\n")
			}
		}
	}
	return out.String()
}

var (
	spaceRun = regexp.MustCompile(`[ \t\r\f\v]+`)
	lineRun  = regexp.MustCompile(`\n\s*\n+`)
)

func collapseWhitespace(s string) string {
	s = spaceRun.ReplaceAllString(s, " ")
	s = lineRun.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}
