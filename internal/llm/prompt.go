package llm

import (
	"fmt"
	"strings"

	"fricoach/internal/fri"
)

// BuildPrompt assembles the coaching prompt: customer profile, the message,
// the stress and FRI analysis with the weakest component called out as root
// cause, and the retrieved cases as grounding examples.
func BuildPrompt(in PromptInput) string {
	weakest := fri.WeakestComponent(in.FRI)

	concerns := "General financial stress"
	if len(in.Stress.DetectedKeywords) > 0 || len(in.Stress.DetectedPhrases) > 0 {
		concerns = strings.Join(append(in.Stress.DetectedPhrases, in.Stress.DetectedKeywords...), ", ")
	}

	var cases strings.Builder
	for i, sc := range in.Cases {
		if i >= 2 {
			break
		}
		fmt.Fprintf(&cases, "• %s → %s\n", sc.Case.Solution, sc.Case.Improvement)
	}
	if cases.Len() == 0 {
		cases.WriteString("• (no closely matching cases on file)\n")
	}

	var b strings.Builder
	b.WriteString("You are a compassionate, expert financial coach. Analyze this customer situation and provide empathetic, actionable advice. You can also use nudges.\n\n")

	fmt.Fprintf(&b, "CUSTOMER PROFILE:\n- Name: %s\n- Age: %d\n- Occupation: %s\n- Average Monthly Income: €%.0f\n\n",
		in.Profile.Name, in.Profile.Age, in.Profile.Occupation, in.Profile.AvgMonthlyIncome)

	fmt.Fprintf(&b, "CUSTOMER MESSAGE:\n%q\n\n", in.Message)

	fmt.Fprintf(&b, "STRESS DETECTION:\n- Stress Level: %s\n- Combined Stress Score: %.0f%%\n- Detected Concerns: %s\n- Urgency: %s\n\n",
		in.Stress.Level, in.Stress.CombinedScore*100, concerns, in.Stress.Urgency)

	b.WriteString("FINANCIAL RESILIENCE INDEX (FRI):\n")
	fmt.Fprintf(&b, "- Overall Score: %.0f/100 - %s\n", in.FRI.TotalScore, in.FRI.Interpretation)
	for _, comp := range in.FRI.Components {
		fmt.Fprintf(&b, "- %s: %.0f/100\n", componentCaption(comp.Name), comp.Score)
	}
	fmt.Fprintf(&b, "\nROOT CAUSE IDENTIFIED: The %s component is weakest at %.0f/100\n\n", weakest.Name, weakest.Score)

	fmt.Fprintf(&b, "SIMILAR SUCCESSFUL CASES FROM OUR DATABASE:\n%s\n", cases.String())

	b.WriteString(`YOUR TASK:
Generate a personalized, empathetic coaching response (300-400 words) that:

1. Acknowledges emotions - Start by validating their feelings with genuine empathy
2. Explains root cause - Clearly explain why they feel this way based on the FRI analysis (use simple language, no jargon)
3. Provides 2-3 specific actions - Give concrete, numbered steps they can take THIS WEEK
4. Shows projected impact - Quantify expected FRI improvement in 3 months if they follow advice
5. Ends with encouragement - Warm, hopeful closing that offers continued support

STYLE REQUIREMENTS:
- Tone: Warm, professional, hopeful (not corporate or robotic)
- Address customer by first name only
- Be specific with numbers (use exact euro amounts from their profile)
- No financial jargon - explain everything clearly
- Sign off as "Take care,\nFiona"

Begin your response now:`)

	return b.String()
}

func componentCaption(name string) string {
	switch name {
	case fri.ComponentBuffer:
		return "Liquidity Buffer (Security)"
	case fri.ComponentStability:
		return "Income Stability (Predictability)"
	case fri.ComponentMomentum:
		return "Financial Momentum (Trajectory)"
	default:
		return name
	}
}
