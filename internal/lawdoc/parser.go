// Package lawdoc parses Korean statute JSON documents into flat text
// segments and splits them into fixed-size word chunks for embedding.
package lawdoc

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Segment is a flat title/text pair extracted from a law document.
type Segment struct {
	Title string
	Text  string
}

// lawDocument mirrors the nested statute JSON schema. The top-level
// "법령" object carries amendment text (개정문) and addendum units
// (부칙단위), both as two-dimensional string arrays.
type lawDocument struct {
	Law struct {
		BasicInfo struct {
			Name string `json:"법령명_한글"`
		} `json:"기본정보"`
		Amendment struct {
			Content [][]string `json:"개정문내용"`
		} `json:"개정문"`
		Addendum struct {
			Units []addendumUnit `json:"부칙단위"`
		} `json:"부칙"`
	} `json:"법령"`
}

type addendumUnit struct {
	PromulgationNo string     `json:"부칙공포번호"`
	Content        [][]string `json:"부칙내용"`
}

// ParseLawDocument flattens a statute JSON document into title/text
// segments. Paragraph arrays are joined with newlines; whitespace-only
// segments are dropped. Malformed JSON is an error - the caller aborts
// the ingestion run rather than skipping the file.
func ParseLawDocument(data []byte) ([]Segment, error) {
	var doc lawDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse law document: %w", err)
	}

	lawName := doc.Law.BasicInfo.Name
	if lawName == "" {
		lawName = "미상_법령"
	}

	var segments []Segment

	for _, paragraphs := range doc.Law.Amendment.Content {
		text := strings.Join(paragraphs, "\n")
		if strings.TrimSpace(text) == "" {
			continue
		}
		segments = append(segments, Segment{
			Title: fmt.Sprintf("%s 개정문", lawName),
			Text:  text,
		})
	}

	for _, unit := range doc.Law.Addendum.Units {
		for _, paragraphs := range unit.Content {
			text := strings.Join(paragraphs, "\n")
			if strings.TrimSpace(text) == "" {
				continue
			}
			segments = append(segments, Segment{
				Title: fmt.Sprintf("%s_부칙_%s", lawName, unit.PromulgationNo),
				Text:  text,
			})
		}
	}

	return segments, nil
}
