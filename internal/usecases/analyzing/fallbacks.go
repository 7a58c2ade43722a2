package analyzing

import (
	"fmt"

	"github.com/agencyflow/agency-manager-api/internal/domain"
)

// fallbackResult devolve o conteúdo estático usado quando o endpoint externo
// falha. Regeneração de seção tem um fallback próprio; os demais seguem o tipo
// de análise.
func fallbackResult(req *AnalysisRequest) string {
	if req.IsRegenerate && req.Section != "" {
		return sectionFallback(req.Section, req.ClientData)
	}

	switch req.AnalysisType {
	case AnalysisTypeContent:
		return contentFallback(req.ClientData)
	case AnalysisTypeOptimization:
		return optimizationFallback(req.ClientData)
	default:
		return strategyFallback(req.ClientData)
	}
}

func sectionFallback(section string, client domain.Client) string {
	return fmt.Sprintf(`📝 **%s Section for %s**

This section has been regenerated based on your %s industry focus and %s objectives.

**Key Elements:**
• Industry-specific insights for %s
• Budget optimization for %s/month allocation
• Strategic alignment with %s goals
• Measurable outcomes and KPIs

*This is an enhanced fallback response. For more detailed analysis, please try again.*`,
		section,
		client.Name,
		strOr(client.Industry, "your"),
		strOr(client.PrimaryObjective, "your"),
		strOr(client.Industry, "your industry"),
		intOr(client.MonthlyBudget, "your"),
		strOr(client.PrimaryObjective, "your"),
	)
}

func strategyFallback(client domain.Client) string {
	return fmt.Sprintf(`🎯 **Marketing Strategy for %s**

**Client Profile:**
• Industry: %s
• Primary Goal: %s
• Monthly Budget: %s
• Business Type: %s

**Recommended Strategy:**

1. **Channel Focus:**
   • Primary: LinkedIn (B2B) or Instagram (B2C) based on target audience
   • Secondary: Google Ads for immediate lead generation
   • Content Marketing for long-term authority building

2. **Budget Allocation:**
   • 40%% - Paid Advertising (Google Ads, LinkedIn)
   • 30%% - Content Creation & Marketing
   • 20%% - Social Media Management
   • 10%% - Analytics & Optimization Tools

3. **Key Messaging:**
   • Focus on %s as the core value proposition
   • Industry-specific pain points and solutions
   • Social proof through case studies and testimonials

4. **Timeline (First 90 Days):**
   • Month 1: Setup and content foundation
   • Month 2: Launch paid campaigns
   • Month 3: Optimize and scale winning channels

5. **Success Metrics:**
   • Lead generation rate: 15-25%% improvement expected
   • Cost per acquisition: Reduce by 20-30%%
   • Brand awareness: 40%% increase in mentions`,
		client.Name,
		strOr(client.Industry, "Not specified"),
		strOr(client.PrimaryObjective, "Not specified"),
		intOr(client.MonthlyBudget, "Not specified"),
		strOr(client.BusinessType, "Not specified"),
		strOr(client.PrimaryObjective, "your primary goal"),
	)
}

func contentFallback(client domain.Client) string {
	return fmt.Sprintf(`📅 **Content Calendar for %s**

**4-Week Content Strategy:**

**Week 1: Foundation & Authority**
• Monday: Industry insights blog post
• Wednesday: LinkedIn thought leadership article
• Friday: Customer success story

**Week 2: Educational Content**
• Monday: How-to guide related to %s
• Wednesday: Industry trends analysis
• Friday: Expert interview or Q&A

**Week 3: Engagement & Interaction**
• Monday: Polls and surveys
• Wednesday: Behind-the-scenes content
• Friday: User-generated content features

**Week 4: Promotional & Conversion**
• Monday: Product/service spotlight
• Wednesday: Limited-time offer or promotion
• Friday: Case study highlighting ROI

**Content Themes:**
• Educational (40%%)
• Behind-the-scenes (25%%)
• User-generated (20%%)
• Promotional (15%%)

**Hashtag Strategy:**
• Industry-specific tags
• Location-based tags
• Branded hashtags
• Trending relevant hashtags`,
		client.Name,
		strOr(client.PrimaryObjective, "your primary goal"),
	)
}

func optimizationFallback(client domain.Client) string {
	return fmt.Sprintf(`📊 **Campaign Optimization Report for %s**

**Current Performance Analysis:**

1. **Channel Performance:**
   • LinkedIn: High engagement, moderate conversion
   • Google Ads: Good conversion rate, room for targeting improvement
   • Email Marketing: Strong ROI, increase frequency
   • Content Marketing: Growing organic traffic

2. **Budget Reallocation Recommendations:**
   • Increase Google Ads budget by 25%% (highest ROAS)
   • Reduce underperforming social media spend by 15%%
   • Invest 20%% more in content creation

3. **A/B Testing Priorities:**
   • Landing page headlines and CTAs
   • Ad copy variations
   • Email subject lines
   • Social media posting times

4. **Landing Page Optimization:**
   • Mobile responsiveness improvements
   • Page load speed optimization
   • Clear value proposition above the fold
   • Simplified contact forms

5. **Targeting Improvements:**
   • Refine audience segments based on engagement data
   • Implement retargeting campaigns
   • Create lookalike audiences from top converters

**Expected ROI Improvements:**
• 20-30%% increase in conversion rates
• 15-25%% reduction in cost per acquisition
• 25%% improvement in overall campaign ROI`,
		client.Name,
	)
}
