package report

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// ErrRender is returned when the document could not be assembled.
var ErrRender = errors.New("report render failed")

// Section is one labelled block of the report body.
type Section struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// Report is the renderer input: a title and ordered sections.
// Sections with an empty Label are rendered as plain body text.
type Report struct {
	Title    string
	Sections []Section
}

// ForAnalysis builds the export of analysis outputs for one document.
func ForAnalysis(documentID string, sections []Section) Report {
	return Report{
		Title:    fmt.Sprintf("Analysis Report for Document ID: %s", documentID),
		Sections: sections,
	}
}

// ForRewrite builds the export of a rewritten contract.
func ForRewrite(documentID, text string) Report {
	return Report{
		Title:    fmt.Sprintf("Rephrased Contract for Document ID: %s", documentID),
		Sections: []Section{{Text: text}},
	}
}

// Pair zips labels and texts the way the export endpoint receives them.
// Extra entries on either side are dropped.
func Pair(labels, texts []string) []Section {
	n := len(labels)
	if len(texts) < n {
		n = len(texts)
	}
	out := make([]Section, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, Section{Label: labels[i], Text: texts[i]})
	}
	return out
}

// Renderer lays a Report out as a paginated document.
type Renderer interface {
	Render(w io.Writer, r Report) error
	ContentType() string
	Extension() string
}

// ArtifactStore keeps rendered files. UploadAndCleanup removes localPath once stored.
type ArtifactStore interface {
	UploadAndCleanup(ctx context.Context, localPath, key string) (string, error)
}
