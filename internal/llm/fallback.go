package llm

import (
	"fmt"
	"strings"

	"fricoach/internal/fri"
)

// FallbackReply is the deterministic coach used when no LLM is configured or
// the model call fails. It greets the customer by first name, names the
// weakest FRI component as root cause, and emits a component-specific action
// plan with euro amounts derived from the profile.
func FallbackReply(in PromptInput) string {
	weakest := fri.WeakestComponent(in.FRI)
	first := firstName(in.Profile.Name)
	income := in.Profile.AvgMonthlyIncome
	essential := in.Profile.AvgMonthlyEssential

	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", first)
	fmt.Fprintf(&b, "I can see why you're feeling this way, and what you're experiencing is completely valid. Looking at your situation, you've earned about €%.0f this year - that's solid!\n\n", income*12)
	fmt.Fprintf(&b, "I've identified the core issue: your %s score is %.0f/100, and that's what's creating the uncertainty you're feeling. ", weakest.Name, weakest.Score)

	switch weakest.Name {
	case fri.ComponentStability:
		bufferMonths := bufferMonthsOf(in)
		fmt.Fprintf(&b, "Your income varies significantly month to month (some months €%.0f, others €%.0f), which makes planning hard.\n\n", income*0.4, income*1.6)
		b.WriteString("This isn't about earning more - it's about smoothing the ride. Here's what has helped others in your situation:\n\n")
		fmt.Fprintf(&b, "1. Build a 4-month buffer (you're at %.1f months now). Target: save €%.0f over the next 3 months.\n", bufferMonths, essential*2)
		fmt.Fprintf(&b, "2. Use an income smoother: spread strong months across weeks, so €%.0f in a good month becomes €%.0f per week for 4 weeks.\n", income*1.6, income*1.6/4)
		fmt.Fprintf(&b, "3. Consider one small, steady extra income stream (€%.0f/month). That alone can lift your Stability score by around 15 points.\n\n", income*0.2)
		fmt.Fprintf(&b, "If you follow these steps, your FRI could improve from %.0f to %.0f in 3 months.\n\n", in.FRI.TotalScore, in.FRI.TotalScore+18)

	case fri.ComponentBuffer:
		bufferMonths := bufferMonthsOf(in)
		fmt.Fprintf(&b, "You have only %.1f months of emergency savings, which creates constant background anxiety.\n\n", bufferMonths)
		b.WriteString("Here's your action plan:\n\n")
		fmt.Fprintf(&b, "1. Automate €%.0f/month to savings - set it up now, it takes 2 minutes and adds up to €%.0f a year.\n", essential*0.15, essential*0.15*12)
		fmt.Fprintf(&b, "2. Turn on round-up savings: every purchase rounds up and the difference is saved, a painless €%.0f/month.\n", essential*0.05)
		fmt.Fprintf(&b, "3. One-time boost: review subscriptions and cancel the €%.0f you don't use.\n\n", essential*0.1)
		fmt.Fprintf(&b, "These steps could raise your overall FRI to about %.0f within 6 months.\n\n", in.FRI.TotalScore+15)

	default: // Momentum
		b.WriteString("Your financial trajectory needs attention - things have been slowly declining over the past few months.\n\n")
		b.WriteString("Let's reverse the trend:\n\n")
		fmt.Fprintf(&b, "1. Pick your highest-interest debt and add €%.0f/month to its payment.\n", essential*0.1)
		fmt.Fprintf(&b, "2. Freeze one discretionary category for 30 days and redirect roughly €%.0f to savings.\n", essential*0.08)
		b.WriteString("3. Check in weekly: five minutes every Sunday to see the trend turning.\n\n")
		fmt.Fprintf(&b, "Reversing momentum shows up fast: your FRI could move from %.0f to %.0f within 3 months.\n\n", in.FRI.TotalScore, in.FRI.TotalScore+12)
	}

	b.WriteString("You're not failing at finances - your situation just needs the right tools. I'm here to support you every step of the way.\n\nTake care,\nFiona")
	return b.String()
}

// bufferMonthsOf converts the Buffer component score back to months of
// essential expenses covered (a score of 16.67 is one month).
func bufferMonthsOf(in PromptInput) float64 {
	for _, comp := range in.FRI.Components {
		if comp.Name == fri.ComponentBuffer {
			return comp.Score / 16.67
		}
	}
	return 0
}

func firstName(full string) string {
	if i := strings.IndexByte(full, ' '); i > 0 {
		return full[:i]
	}
	return full
}
