package prompt

import (
	"strings"
	"testing"

	"github.com/TALA-AI/tala-web/internal/refdata"
)

func TestCaseAnalysis(t *testing.T) {
	c := refdata.Case{
		Accident:   "교차로 좌회전 추돌",
		BasicFault: "70:30",
		Cases:      "대법원 2020다1234",
		Laws:       "도로교통법 제25조",
	}

	p := CaseAnalysis(c, "과실비율이 어떻게 되나요?")

	for _, want := range []string{c.Accident, c.BasicFault, c.Cases, c.Laws, "과실비율이 어떻게 되나요?"} {
		if !strings.Contains(p, want) {
			t.Errorf("Prompt missing %q", want)
		}
	}
}

func TestRAG(t *testing.T) {
	p := RAG("횡단보도 사고 책임은?", "도로교통법 제27조 ...")

	if !strings.Contains(p, "질문:\n횡단보도 사고 책임은?") {
		t.Errorf("Prompt missing question section: %q", p)
	}
	if !strings.Contains(p, "[검색결과]\n도로교통법 제27조 ...") {
		t.Errorf("Prompt missing context section: %q", p)
	}
	if !strings.HasSuffix(p, "답변:") {
		t.Errorf("Prompt should end with the answer cue: %q", p)
	}
}
