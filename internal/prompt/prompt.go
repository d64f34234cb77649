// Package prompt builds the Korean prompts sent to the language model.
package prompt

import (
	"fmt"

	"github.com/TALA-AI/tala-web/internal/refdata"
)

// SystemPrompt constrains the model to answer legal questions from the
// retrieved context only, to state uncertainty when the context is
// insufficient, and to refuse unsafe requests. These are prompt-level
// constraints; the service cannot verify the model complies.
const SystemPrompt = `당신은 대한민국 법률 지식을 제공하는 고급 상담 모델입니다.
당신의 역할은 아래와 같이 작동합니다:

1. RAG(Retrieval Augmented Generation) 방식으로 사용자의 질문에 답변합니다.
- '검색 결과(context)'로 제공된 텍스트는 실제 대한민국 법률 정보이거나, 법령 해설 등으로 구성됩니다.
- 당신은 이 '검색 결과'를 참조하되, 그 외에 임의로 사실관계를 상상하거나 지어내지 않습니다.

2. 출력 형식:
- 먼저, 사용자의 질문에 대한 간결하고 정확한 답변을 제공합니다.
- 만약 확실한 근거(검색 결과나 일반적 법률 상식)가 없다면, '모르겠다' 혹은 '데이터가 부족합니다'라고 답변하세요.
- 그 후, 참고한 검색 결과(출처 or 일부 내용)나 법령 조항을 간략히 제시해줄 수 있습니다.

3. 제한사항:
- 법률 정보는 최신성을 완전히 보장하지 않을 수 있으므로, 특정 날짜나 최신 개정 내용이 요청되면 모호하다고 답하십시오.
- 민감한 개인정보나 변호사 자격 행사를 하지 않습니다. 단지 법률 해설이나 일반적 상담을 제공하는 역할입니다.
- 불법, 차별적, 폭력적 사용을 조장하는 답변은 거절합니다.

4. 요약:
- 당신은 '정직한 에이전트'로서, 법률 상담 목적으로만 답변하세요.
- 과도한 추측이나 과장 없이, '검색결과(context)' 기반으로 답변하되, 모호하거나 근거 없으면 '모름'을 표기합니다.`

// CaseAnalysis builds the per-case analysis prompt: the selected accident
// with its fault summary, precedent and statute citations, followed by
// the user's question.
func CaseAnalysis(c refdata.Case, question string) string {
	return fmt.Sprintf(`사고 사례 분석

- 사고 사례: %s
- 기본 과실 설명: %s
- 관련 판례: %s
- 관련 법규: %s

사용자 질문: %s`, c.Accident, c.BasicFault, c.Cases, c.Laws, question)
}

// RAG builds the user message for the retrieval-augmented endpoint:
// the question followed by the concatenated retrieved context.
func RAG(question, context string) string {
	return fmt.Sprintf("질문:\n%s\n\n[검색결과]\n%s\n---\n답변:", question, context)
}
