package detector

import (
	"fmt"
	"strings"

	"fake_news_detector/evidence"
)

// ClaimPrefix labels the claim in the user message.
const ClaimPrefix = "NEWS CLAIM TO VERIFY: "

// Prompt 表示发送给 LLM 的消息集合。
type Prompt struct {
	System string
	User   string
}

// AnalysisRequest is the composed model input for one claim.
type AnalysisRequest struct {
	Instruction string
	Claim       string
	Language    Language
}

// Prompt turns the request into the system + user message pair.
func (r AnalysisRequest) Prompt() Prompt {
	return Prompt{
		System: r.Instruction,
		User:   ClaimPrefix + r.Claim,
	}
}

const instructionTemplate = `You are an expert fact-checker. You need to analyze news content and determine if it's REAL, FAKE, or UNCERTAIN.

IMPORTANT: You must provide a clear verdict of either REAL, FAKE, or UNCERTAIN.
Reserve "UNCERTAIN" only for cases where there is genuinely insufficient information to make a determination.

Here are the search results found for this claim:

%s

Analyze the claim against these search results and determine if the claim is REAL, FAKE, or UNCERTAIN.

Your response must be in JSON format with the following structure:
{
    "verdict": "REAL/FAKE/UNCERTAIN",
    "confidence": "high/medium/low",
    "explanation": "Your detailed explanation",
    "supporting_facts": ["fact 1", "fact 2", ...],
    "contradicting_facts": ["contradiction 1", "contradiction 2", ...],
    "red_flags": ["red flag 1", "red flag 2", ...]
}

%s
`

// BuildEvidenceBlock 把检索结果拼成提示词里的上下文段落。
func BuildEvidenceBlock(items []evidence.Item) string {
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString(fmt.Sprintf("--- %s Results ---\n%s\n\n", item.Source, item.Text))
	}
	return sb.String()
}

// BuildInstruction renders the fact-checking system instruction.
func BuildInstruction(items []evidence.Item, lang Language) string {
	return fmt.Sprintf(instructionTemplate, BuildEvidenceBlock(items), Directive(lang))
}

// BuildRequest composes the request sent to the model for claim.
func BuildRequest(claim string, items []evidence.Item, lang Language) AnalysisRequest {
	return AnalysisRequest{
		Instruction: BuildInstruction(items, lang),
		Claim:       claim,
		Language:    lang,
	}
}
