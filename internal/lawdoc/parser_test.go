package lawdoc

import (
	"strings"
	"testing"
)

const sampleLaw = `{
  "법령": {
    "기본정보": {"법령명_한글": "도로교통법"},
    "개정문": {
      "개정문내용": [
        ["⊙법률 제19841호(2023.12.26)", "제1조를 다음과 같이 개정한다."],
        ["⊙법률 제20155호(2024.1.30)", "제2조를 다음과 같이 개정한다."]
      ]
    },
    "부칙": {
      "부칙단위": [
        {
          "부칙공포번호": "19841",
          "부칙내용": [["부칙 <제19841호>", "제1조(시행일) 이 법은 공포 후 시행한다."]]
        }
      ]
    }
  }
}`

func TestParseLawDocument(t *testing.T) {
	segments, err := ParseLawDocument([]byte(sampleLaw))
	if err != nil {
		t.Fatalf("ParseLawDocument failed: %v", err)
	}

	if len(segments) != 3 {
		t.Fatalf("Expected 3 segments, got %d", len(segments))
	}

	if segments[0].Title != "도로교통법 개정문" {
		t.Errorf("Segment 0 title: got %q", segments[0].Title)
	}
	if !strings.Contains(segments[0].Text, "제1조를 다음과 같이 개정한다.") {
		t.Errorf("Segment 0 missing amendment text")
	}
	// Paragraph arrays are joined with newlines.
	if !strings.Contains(segments[0].Text, "⊙법률 제19841호(2023.12.26)\n제1조를") {
		t.Errorf("Segment 0 paragraphs not newline-joined: %q", segments[0].Text)
	}

	if segments[2].Title != "도로교통법_부칙_19841" {
		t.Errorf("Addendum title: got %q", segments[2].Title)
	}
	if !strings.Contains(segments[2].Text, "제1조(시행일)") {
		t.Errorf("Addendum segment missing text")
	}
}

func TestParseLawDocument_MalformedJSON(t *testing.T) {
	if _, err := ParseLawDocument([]byte(`{"법령": `)); err == nil {
		t.Fatal("Expected error for malformed JSON")
	}
}

func TestParseLawDocument_SkipsBlankSegments(t *testing.T) {
	input := `{
  "법령": {
    "기본정보": {"법령명_한글": "테스트법"},
    "개정문": {"개정문내용": [["   ", ""], ["본문"]]}
  }
}`

	segments, err := ParseLawDocument([]byte(input))
	if err != nil {
		t.Fatalf("ParseLawDocument failed: %v", err)
	}
	if len(segments) != 1 {
		t.Fatalf("Expected 1 segment, got %d", len(segments))
	}
	if segments[0].Text != "본문" {
		t.Errorf("Expected text %q, got %q", "본문", segments[0].Text)
	}
}

func TestParseLawDocument_MissingName(t *testing.T) {
	input := `{"법령": {"개정문": {"개정문내용": [["내용"]]}}}`

	segments, err := ParseLawDocument([]byte(input))
	if err != nil {
		t.Fatalf("ParseLawDocument failed: %v", err)
	}
	if len(segments) != 1 {
		t.Fatalf("Expected 1 segment, got %d", len(segments))
	}
	if segments[0].Title != "미상_법령 개정문" {
		t.Errorf("Expected fallback law name, got %q", segments[0].Title)
	}
}
