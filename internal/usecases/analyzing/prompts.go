package analyzing

import (
	"fmt"
	"strings"

	"github.com/agencyflow/agency-manager-api/internal/domain"
)

// buildPrompt escolhe o prompt: o texto do chamador quando é regeneração de
// seção, senão o template do tipo de análise. Os prompts são mantidos em
// inglês, idioma esperado pelo modelo e pelo conteúdo gerado.
func buildPrompt(req *AnalysisRequest) string {
	if req.IsRegenerate && req.Prompt != "" {
		return req.Prompt
	}

	switch req.AnalysisType {
	case AnalysisTypeContent:
		return contentPrompt(req.ClientData)
	case AnalysisTypeOptimization:
		return optimizationPrompt(req.ClientData)
	default:
		return strategyPrompt(req.ClientData)
	}
}

func strategyPrompt(client domain.Client) string {
	return fmt.Sprintf(`As a marketing strategist, create a comprehensive marketing strategy for %s.

Client Profile:
- Industry: %s
- Primary Goal: %s
- Monthly Budget: %s
- Timeline: %s months
- Target Location: %s
- Pain Points: %s
- Brand Voice: %s

Provide a detailed strategy including:
1. Channel recommendations with rationale
2. Budget allocation suggestions
3. Key messaging and positioning
4. Timeline and milestones
5. Success metrics

Make this specific to their industry and goals.`,
		client.Name,
		strOr(client.Industry, "Not specified"),
		strOr(client.PrimaryObjective, "Not specified"),
		intOr(client.MonthlyBudget, "Not specified"),
		intOr(client.Timeline, "Not specified"),
		strOr(client.Location, "Not specified"),
		strOr(client.PainPoints, "Not specified"),
		brandVoiceOr(client.BrandVoice, "Professional"),
	)
}

func contentPrompt(client domain.Client) string {
	return fmt.Sprintf(`Create a content calendar for %s.

Client Profile:
- Industry: %s
- Brand Voice: %s
- Pain Points: %s
- Target Audience: %s

Generate a 4-week content calendar with:
1. Weekly themes
2. 3 posts per week (mix of LinkedIn, blog, social)
3. Content types and formats
4. Key messages for each post
5. Hashtags and calls-to-action

Focus on educational, thought leadership content that addresses their pain points.`,
		client.Name,
		strOr(client.Industry, "Not specified"),
		brandVoiceOr(client.BrandVoice, "Professional"),
		strOr(client.PainPoints, "Industry challenges"),
		strOr(client.ICP, "Business professionals"),
	)
}

func optimizationPrompt(client domain.Client) string {
	return fmt.Sprintf(`Analyze and optimize marketing campaigns for %s.

Client Profile:
- Industry: %s
- Current Budget: %s/month
- Primary Goal: %s

Provide optimization recommendations:
1. Channel performance analysis
2. Budget reallocation suggestions
3. A/B testing recommendations
4. Landing page optimization
5. Targeting improvements
6. Expected ROI improvements

Be specific and actionable.`,
		client.Name,
		strOr(client.Industry, "Not specified"),
		intOr(client.MonthlyBudget, "Not specified"),
		strOr(client.PrimaryObjective, "Not specified"),
	)
}

func strOr(value *string, fallback string) string {
	if value == nil || *value == "" {
		return fallback
	}
	return *value
}

func intOr(value *int, fallback string) string {
	if value == nil {
		return fallback
	}
	return fmt.Sprintf("%d", *value)
}

func brandVoiceOr(voice []string, fallback string) string {
	if len(voice) == 0 {
		return fallback
	}
	return strings.Join(voice, ", ")
}
